// Package fs provides the on-disk layout of an ingestion run: raw page
// text, the processed JSONL chunk file, and assembled Markdown documents.
package fs

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Layout holds the directories of one output tree:
//
//	out/
//	  raw/                      one .txt file per fetched page
//	  processed/entries.jsonl   one row per chunk
//	  md/                       one .md document per distinct source
type Layout struct {
	Out       string
	Raw       string
	Processed string
	Markdown  string
}

// NewLayout derives the standard subdirectories of an output directory.
func NewLayout(out string) *Layout {
	return &Layout{
		Out:       out,
		Raw:       filepath.Join(out, "raw"),
		Processed: filepath.Join(out, "processed"),
		Markdown:  filepath.Join(out, "md"),
	}
}

// Ensure creates every directory of the layout.
func (l *Layout) Ensure() error {
	for _, dir := range []string{l.Out, l.Raw, l.Processed, l.Markdown} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// EntriesPath returns the path of the JSONL chunk file.
func (l *Layout) EntriesPath() string {
	return filepath.Join(l.Processed, "entries.jsonl")
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// SafeName converts an arbitrary origin (URL or path) into a flat,
// filesystem-safe file name. Distinct origins that sanitize to the same
// name overwrite each other; origins this tool produces stay distinct in
// practice because the full URL participates in the name.
func SafeName(origin string) string {
	name := unsafeChars.ReplaceAllString(strings.ToLower(origin), "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = "page"
	}
	const maxLen = 180
	if len(name) > maxLen {
		name = name[:maxLen]
	}
	return name
}
