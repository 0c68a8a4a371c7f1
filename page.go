package ragingest

// Kind classifies the content of a page or repository file and drives the
// downstream chunking policy.
type Kind string

// Content kinds.
const (
	KindHTML     Kind = "html"
	KindMarkdown Kind = "markdown"
	KindText     Kind = "text"
	KindCode     Kind = "code"
	KindDoc      Kind = "doc"
)

// Mode identifies the ingestion mode a record came from.
type Mode string

// Ingestion modes.
const (
	ModeDocs Mode = "docs"
	ModeGit  Mode = "git"
)

// PageRecord is one accepted crawl target or repository file.
// Records are created once by the crawler or the repository ingester and are
// immutable thereafter; the chunker and assembler only read them.
type PageRecord struct {
	// Origin is the canonical URL (or repo-relative raw URL) of the content.
	// It is the unique key within a run.
	Origin string

	// StoredPath is where the extracted raw text was persisted.
	StoredPath string

	// Kind classifies the content.
	Kind Kind

	// Text is the normalized content.
	Text string

	// Title is the page title, if derivable. May be empty.
	Title string

	// ContentHash is a hash of Text, recorded for change detection.
	ContentHash string
}

// Validate returns an error if the record contains invalid fields.
func (r *PageRecord) Validate() error {
	if r.Origin == "" {
		return Errorf(EINVALID, "page record origin required")
	}
	if r.Kind == "" {
		return Errorf(EINVALID, "page record kind required")
	}
	return nil
}

// RawWriter persists the normalized raw text of a page or file.
// It returns the path the text was stored under.
type RawWriter interface {
	WriteRaw(origin string, text string) (string, error)
}
