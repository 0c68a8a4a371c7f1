package fs

import (
	"os"
	"path/filepath"

	"github.com/ragtools/ragingest"
)

// Ensure RawStore implements ragingest.RawWriter at compile time.
var _ ragingest.RawWriter = (*RawStore)(nil)

// RawStore persists the normalized text of each fetched page as one flat
// .txt file under the layout's raw directory.
type RawStore struct {
	layout *Layout
}

// NewRawStore creates a RawStore over a layout.
func NewRawStore(layout *Layout) *RawStore {
	return &RawStore{layout: layout}
}

// WriteRaw stores the text for an origin and returns the file path.
func (s *RawStore) WriteRaw(origin, text string) (string, error) {
	path := filepath.Join(s.layout.Raw, SafeName(origin)+".txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", err
	}
	return path, nil
}
