package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ragtools/ragingest/fs"
)

// Run executes the clean command: every document under md/ is re-filtered
// in place. Clean is idempotent, so running it repeatedly is safe.
func (c *CleanCmd) Run(deps *Dependencies) error {
	layout := fs.NewLayout(c.Out)

	paths, err := filepath.Glob(filepath.Join(layout.Markdown, "*.md"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintf(deps.Stdout, "No documents found in %s\n", layout.Markdown)
		return nil
	}

	var cleaned int
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		header, body := splitFrontMatter(string(data))
		out := header + deps.Formatter.Clean(body) + "\n"
		if out == string(data) {
			continue
		}
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			return err
		}
		cleaned++
	}

	fmt.Fprintf(deps.Stdout, "Cleaned %d of %d documents\n", cleaned, len(paths))
	return nil
}

// splitFrontMatter separates a leading front matter block from the
// document body. Documents without front matter get an empty header.
func splitFrontMatter(text string) (header, body string) {
	if !strings.HasPrefix(text, "---\n") {
		return "", text
	}
	rest := text[len("---\n"):]
	idx := strings.Index(rest, "\n---\n")
	if idx == -1 {
		return "", text
	}
	end := len("---\n") + idx + len("\n---\n")
	return text[:end], text[end:]
}
