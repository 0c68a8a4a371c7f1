// Package ollama embeds text through a local Ollama server's embeddings
// endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ragtools/ragingest"
)

// DefaultBaseURL is the address of a locally running Ollama server.
const DefaultBaseURL = "http://localhost:11434"

// DefaultModel is the embedding model requested when none is configured.
const DefaultModel = "nomic-embed-text"

// Ensure Embedder implements ragingest.Embedder at compile time.
var _ ragingest.Embedder = (*Embedder)(nil)

// Embedder calls the Ollama embeddings API once per text. A failed item
// yields a nil vector at its position so the batch can proceed.
type Embedder struct {
	client  *http.Client
	baseURL string
	model   string
}

// Option configures an Embedder.
type Option func(*Embedder)

// WithBaseURL sets the Ollama server address.
func WithBaseURL(u string) Option {
	return func(e *Embedder) {
		e.baseURL = u
	}
}

// WithModel sets the embedding model.
func WithModel(m string) Option {
	return func(e *Embedder) {
		e.model = m
	}
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Embedder) {
		e.client = c
	}
}

// NewEmbedder creates an Embedder talking to a local Ollama server.
func NewEmbedder(opts ...Option) *Embedder {
	e := &Embedder{
		client:  &http.Client{Timeout: 60 * time.Second},
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type embedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// Embed returns one vector per text. Per-item failures leave a nil vector
// in place; only context cancellation aborts the batch.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return vectors, err
		}
		vec, err := e.embedOne(ctx, text)
		if err != nil {
			continue
		}
		vectors[i] = vec
	}
	return vectors, nil
}

func (e *Embedder) embedOne(ctx context.Context, text string) ([]float32, error) {
	payload, err := json.Marshal(embedRequest{Model: e.model, Prompt: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		e.baseURL+"/api/embeddings", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("ollama: HTTP %d", resp.StatusCode)
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Embedding) == 0 {
		return nil, fmt.Errorf("ollama: empty embedding")
	}
	return out.Embedding, nil
}
