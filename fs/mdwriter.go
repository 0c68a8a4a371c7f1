package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ragtools/ragingest"
)

// MarkdownWriter stores one assembled document per distinct source under
// the layout's md directory. Re-running a source overwrites its file.
type MarkdownWriter struct {
	layout *Layout
}

// NewMarkdownWriter creates a MarkdownWriter over a layout.
func NewMarkdownWriter(layout *Layout) *MarkdownWriter {
	return &MarkdownWriter{layout: layout}
}

// Write renders the document and returns the file path.
func (w *MarkdownWriter) Write(doc *ragingest.Document) (string, error) {
	path := filepath.Join(w.layout.Markdown, DocumentFileName(doc.Source))
	if err := os.WriteFile(path, []byte(doc.Markdown()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// DocumentFileName derives a flat .md file name from a source URL's path,
// falling back to "index" for the site root.
func DocumentFileName(source string) string {
	p := source
	if u, err := url.Parse(source); err == nil && u.Host != "" {
		p = u.Path
	}
	p = strings.Trim(p, "/")
	if p == "" {
		return "index.md"
	}
	return SafeName(p) + ".md"
}
