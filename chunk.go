package ragingest

import "context"

// Chunk is one bounded fragment of a page record's text, the unit handed
// to embedding. For a fixed source, chunks ordered by Index concatenate
// back to a superset of the cleaned source text.
type Chunk struct {
	// Source is the origin of the record the chunk was cut from.
	Source string

	// StoredPath is the raw-text path of the record.
	StoredPath string

	// Index is the 0-based ordinal of the chunk within its source.
	// It is strictly increasing and defines reassembly order.
	Index int

	// Text is the fragment content, non-empty after trimming.
	Text string

	Kind  Kind
	Mode  Mode
	Title string
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.Source == "" {
		return Errorf(EINVALID, "chunk source required")
	}
	if c.Text == "" {
		return Errorf(EINVALID, "chunk text required")
	}
	if c.Index < 0 {
		return Errorf(EINVALID, "chunk index must not be negative")
	}
	return nil
}

// Entry is the persisted form of a chunk: one JSONL row in
// processed/entries.jsonl and, when it carries a vector, one object in the
// vector store. A nil Embedding marks an item whose embedding failed; such
// entries are still written to JSONL but excluded from the upsert.
type Entry struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Path      string    `json:"path"`
	Kind      Kind      `json:"kind"`
	ChunkID   int       `json:"chunk_id"`
	Text      string    `json:"text"`
	Mode      Mode      `json:"mode"`
	Title     string    `json:"title,omitempty"`
	Embedding []float32 `json:"embedding"`
}

// NewEntry builds an Entry from a chunk with the given id.
func NewEntry(id string, c *Chunk) *Entry {
	return &Entry{
		ID:      id,
		Source:  c.Source,
		Path:    c.StoredPath,
		Kind:    c.Kind,
		ChunkID: c.Index,
		Text:    c.Text,
		Mode:    c.Mode,
		Title:   c.Title,
	}
}

// Embedder turns a batch of texts into vectors, one per text in the same
// order. A failed item yields a nil vector at its position; the batch as a
// whole only errors when no progress is possible at all.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorStore persists embedded entries in a vector index.
// Entries with a nil embedding must be skipped, not rejected.
type VectorStore interface {
	Upsert(ctx context.Context, entries []*Entry) error
}
