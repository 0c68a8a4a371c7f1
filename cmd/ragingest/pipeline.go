package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ragtools/ragingest"
	"github.com/ragtools/ragingest/fs"
)

// Pipeline turns acquired page records into chunk entries, embeddings,
// JSONL rows, vector objects, and assembled Markdown documents.
type Pipeline struct {
	Formatter *ragingest.Formatter
	Embedder  ragingest.Embedder
	Store     ragingest.VectorStore
	BatchSize int
	Logger    *slog.Logger
	Stdout    io.Writer
}

// Run processes records end to end against an output layout.
func (p *Pipeline) Run(ctx context.Context, records []*ragingest.PageRecord, mode ragingest.Mode, layout *fs.Layout) error {
	var entries []*ragingest.Entry
	for _, rec := range records {
		for _, c := range ragingest.ChunkRecord(rec, mode) {
			entries = append(entries, ragingest.NewEntry(uuid.NewString(), c))
		}
	}
	p.Logger.Info("chunked", "records", len(records), "chunks", len(entries))

	if p.Embedder != nil {
		if err := p.embed(ctx, entries); err != nil {
			return err
		}
	}

	if err := p.writeJSONL(layout, entries); err != nil {
		return err
	}

	if p.Store != nil {
		if err := p.Store.Upsert(ctx, entries); err != nil {
			return err
		}
	}

	mdWriter := fs.NewMarkdownWriter(layout)
	for _, rec := range records {
		doc := p.Formatter.Document(rec, mode)
		if _, err := mdWriter.Write(doc); err != nil {
			return err
		}
	}

	var embedded int
	for _, e := range entries {
		if e.Embedding != nil {
			embedded++
		}
	}
	fmt.Fprintf(p.Stdout, "Ingested %d sources: %d chunks (%d embedded), documents in %s\n",
		len(records), len(entries), embedded, layout.Markdown)
	return nil
}

// embed fills entry vectors batch by batch. Items the embedder could not
// handle keep a nil vector and stay in the JSONL output.
func (p *Pipeline) embed(ctx context.Context, entries []*ragingest.Entry) error {
	batch := p.BatchSize
	if batch <= 0 {
		batch = 16
	}

	for start := 0; start < len(entries); start += batch {
		end := min(start+batch, len(entries))

		texts := make([]string, 0, end-start)
		for _, e := range entries[start:end] {
			texts = append(texts, e.Text)
		}

		vectors, err := p.Embedder.Embed(ctx, texts)
		if err != nil {
			return err
		}
		for i, v := range vectors {
			entries[start+i].Embedding = v
		}
	}
	return nil
}

func (p *Pipeline) writeJSONL(layout *fs.Layout, entries []*ragingest.Entry) error {
	w, err := fs.NewJSONLWriter(layout)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := w.Write(e); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
