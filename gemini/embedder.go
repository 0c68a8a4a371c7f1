// Package gemini embeds text through the Google Gemini API.
package gemini

import (
	"context"

	"github.com/ragtools/ragingest"
	"google.golang.org/genai"
)

// DefaultModel is the embedding model requested when none is configured.
const DefaultModel = "gemini-embedding-001"

// Ensure Embedder implements ragingest.Embedder at compile time.
var _ ragingest.Embedder = (*Embedder)(nil)

// Embedder implements ragingest.Embedder using Google Gemini. A failed
// item yields a nil vector at its position so the batch can proceed.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates a new Embedder. An empty model selects DefaultModel.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultModel
	}
	return &Embedder{client: client, model: model}
}

// Embed returns one vector per text. Per-item failures leave a nil vector
// in place; only context cancellation aborts the batch.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return vectors, err
		}

		result, err := e.client.Models.EmbedContent(ctx, e.model,
			[]*genai.Content{genai.NewContentFromText(text, "user")}, nil)
		if err != nil || result == nil || len(result.Embeddings) == 0 {
			continue
		}
		vectors[i] = result.Embeddings[0].Values
	}
	return vectors, nil
}
