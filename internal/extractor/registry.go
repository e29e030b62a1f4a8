package extractor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"studymate/internal/domain"
)

var (
	// ErrCorrupt is returned when a document cannot be parsed.
	ErrCorrupt = errors.New("corrupt or unreadable document")
	// ErrUnsupportedFormat is returned for file types without an extractor.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Registry picks an extractor by file extension.
type Registry struct {
	byExt map[string]domain.Extractor
}

// NewRegistry returns a registry with no extractors.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]domain.Extractor)}
}

// DefaultRegistry handles .pdf and .txt uploads.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(".pdf", NewPDF())
	r.Register(".txt", NewText())
	return r
}

// ForExtensions builds a registry limited to exts. PDF goes through the PDF
// extractor, the plain text family through Text.
func ForExtensions(exts []string) (*Registry, error) {
	r := NewRegistry()
	for _, ext := range exts {
		switch normalizeExt(ext) {
		case ".pdf":
			r.Register(ext, NewPDF())
		case ".txt", ".text", ".md":
			r.Register(ext, NewText())
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
		}
	}
	return r, nil
}

// Register binds ext (with or without the leading dot) to e.
func (r *Registry) Register(ext string, e domain.Extractor) {
	r.byExt[normalizeExt(ext)] = e
}

// Extensions lists the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// For returns the extractor registered for path's extension.
func (r *Registry) For(path string) (domain.Extractor, error) {
	ext := normalizeExt(filepath.Ext(path))
	e, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return e, nil
}

// ExtractFile opens path and runs the matching extractor over it.
func (r *Registry) ExtractFile(path string) (string, error) {
	e, err := r.For(path)
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	return e.Extract(f, info.Size())
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
