package fs

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/ragtools/ragingest"
)

// JSONLWriter appends chunk entries to processed/entries.jsonl, one JSON
// object per line. Rows carry the embedding field even when null so the
// file is a complete record of the run.
type JSONLWriter struct {
	f *os.File
	w *bufio.Writer
}

// NewJSONLWriter opens (truncating) the layout's entries file.
func NewJSONLWriter(layout *Layout) (*JSONLWriter, error) {
	f, err := os.Create(layout.EntriesPath())
	if err != nil {
		return nil, err
	}
	return &JSONLWriter{f: f, w: bufio.NewWriter(f)}, nil
}

// Write appends one entry row.
func (j *JSONLWriter) Write(entry *ragingest.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if _, err := j.w.Write(data); err != nil {
		return err
	}
	return j.w.WriteByte('\n')
}

// Close flushes and closes the file.
func (j *JSONLWriter) Close() error {
	if err := j.w.Flush(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}
