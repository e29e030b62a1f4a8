package extractor

import (
	"io"
	"unicode/utf8"
)

// Text passes plain UTF-8 uploads through unchanged.
type Text struct{}

// NewText creates a plain text extractor.
func NewText() *Text { return &Text{} }

// Extract returns the whole content. Invalid UTF-8 is treated as a corrupt upload.
func (e *Text) Extract(r io.ReaderAt, size int64) (string, error) {
	data, err := io.ReadAll(io.NewSectionReader(r, 0, size))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrCorrupt
	}
	return string(data), nil
}
