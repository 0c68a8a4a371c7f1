package ragingest

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into
	// Markdown: headings become heading lines of matching depth, inline
	// code becomes backtick-quoted text, preformatted blocks become
	// fenced code blocks.
	Convert(html string) (string, error)
}
