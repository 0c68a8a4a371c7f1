// Package weaviate persists embedded chunk entries in a Weaviate index.
package weaviate

import (
	"context"
	"log/slog"

	"github.com/ragtools/ragingest"
	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate/entities/models"
)

// DefaultClass is the Weaviate class holding chunk objects.
const DefaultClass = "DocChunk"

// Ensure Store implements ragingest.VectorStore at compile time.
var _ ragingest.VectorStore = (*Store)(nil)

// Store writes chunk entries as vector objects. Entries whose embedding
// failed (nil vector) are skipped, never rejected.
type Store struct {
	client *weaviate.Client
	class  string
	logger *slog.Logger
}

// NewStore creates a Store over an existing client. An empty class
// selects DefaultClass.
func NewStore(client *weaviate.Client, class string, logger *slog.Logger) *Store {
	if class == "" {
		class = DefaultClass
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{client: client, class: class, logger: logger}
}

// NewClient builds a Weaviate client for the given host and scheme.
func NewClient(host, scheme string) (*weaviate.Client, error) {
	client, err := weaviate.NewClient(weaviate.Config{Host: host, Scheme: scheme})
	if err != nil {
		return nil, ragingest.Errorf(ragingest.EUNAVAILABLE, "weaviate client: %v", err)
	}
	return client, nil
}

// EnsureSchema creates the chunk class if it does not exist. The class
// carries no vectorizer; vectors are supplied at insert time.
func (s *Store) EnsureSchema(ctx context.Context) error {
	exists, err := s.client.Schema().ClassExistenceChecker().WithClassName(s.class).Do(ctx)
	if err != nil {
		return ragingest.Errorf(ragingest.EUNAVAILABLE, "check class %s: %v", s.class, err)
	}
	if exists {
		return nil
	}

	class := &models.Class{
		Class:       s.class,
		Description: "A chunk of an ingested document",
		Vectorizer:  "none",
		Properties: []*models.Property{
			{Name: "text", DataType: []string{"text"}},
			{Name: "source", DataType: []string{"string"}},
			{Name: "path", DataType: []string{"string"}},
			{Name: "kind", DataType: []string{"string"}},
			{Name: "mode", DataType: []string{"string"}},
			{Name: "title", DataType: []string{"text"}},
			{Name: "chunkIndex", DataType: []string{"int"}},
		},
	}
	if err := s.client.Schema().ClassCreator().WithClass(class).Do(ctx); err != nil {
		return ragingest.Errorf(ragingest.EUNAVAILABLE, "create class %s: %v", s.class, err)
	}
	return nil
}

// Upsert writes every entry that carries an embedding. A failed write is
// logged and skipped so one bad object cannot abort the batch.
func (s *Store) Upsert(ctx context.Context, entries []*ragingest.Entry) error {
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.Embedding == nil {
			continue
		}

		_, err := s.client.Data().Creator().
			WithClassName(s.class).
			WithID(entry.ID).
			WithProperties(Properties(entry)).
			WithVector(entry.Embedding).
			Do(ctx)
		if err != nil {
			s.logger.Warn("vector upsert failed", "id", entry.ID, "source", entry.Source, "error", err)
		}
	}
	return nil
}

// Properties maps an entry to its Weaviate object properties.
func Properties(entry *ragingest.Entry) map[string]interface{} {
	return map[string]interface{}{
		"text":       entry.Text,
		"source":     entry.Source,
		"path":       entry.Path,
		"kind":       string(entry.Kind),
		"mode":       string(entry.Mode),
		"title":      entry.Title,
		"chunkIndex": entry.ChunkID,
	}
}
