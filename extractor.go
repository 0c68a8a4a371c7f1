package ragingest

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the document <title> text, trimmed. Empty if missing.
	Title string

	// ContentHTML is the main content region as clean HTML.
	// Chrome elements (nav, header, footer, aside, script, style) have
	// been removed.
	ContentHTML string
}

// Extractor selects the main content region from raw HTML and strips chrome.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// A <main> or <article> landmark is preferred; otherwise the whole
	// document is used.
	Extract(html string) (*ExtractResult, error)
}

// LinkExtractor discovers hyperlinks in raw HTML.
type LinkExtractor interface {
	// Links returns the href targets of all anchors, resolved against
	// baseURL with fragments stripped, deduplicated in document order.
	// Non-HTTP schemes (mailto:, javascript:, ...) are skipped.
	Links(html string, baseURL string) ([]string, error)
}
