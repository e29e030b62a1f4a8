package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF extracts the text layer of a PDF page by page.
type PDF struct{}

// NewPDF creates a PDF extractor.
func NewPDF() *PDF { return &PDF{} }

// Extract joins the plain text of every page with a single space. A document
// whose pages carry no text at all yields the empty string.
func (e *PDF) Extract(r io.ReaderAt, size int64) (text string, err error) {
	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrCorrupt, rec)
		}
	}()
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	pages := make([]string, reader.NumPage())
	empty := true
	for i := range pages {
		page := reader.Page(i + 1)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w: %v", i+1, ErrCorrupt, err)
		}
		pages[i] = pageText
		if pageText != "" {
			empty = false
		}
	}
	if empty {
		return "", nil
	}
	return strings.Join(pages, " "), nil
}
