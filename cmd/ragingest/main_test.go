package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ragtools/ragingest"
	main "github.com/ragtools/ragingest/cmd/ragingest"
	"github.com/ragtools/ragingest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// siteFetcher serves an in-memory documentation site.
func siteFetcher(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*ragingest.FetchResult, error) {
			body, ok := pages[url]
			if !ok {
				return nil, ragingest.Errorf(ragingest.ENOTFOUND, "no such page %q", url)
			}
			return &ragingest.FetchResult{Body: []byte(body), ContentType: "text/html"}, nil
		},
	}
}

func TestCmdDocs(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"https://x.test/docs": `<html><head><title>Start</title></head><body>
			<main><h1>Start</h1><p>Welcome to the documentation portal for this project.</p>
			<a href="/docs/guide">Guide</a></main></body></html>`,
		"https://x.test/docs/guide": `<html><head><title>Guide</title></head><body>
			<main><h1>Guide</h1><p>This page explains how the ingestion process works in detail.</p></main>
		</body></html>`,
	}

	t.Run("crawls, chunks, embeds, and writes outputs", func(t *testing.T) {
		t.Parallel()

		var upserted []*ragingest.Entry
		m := main.NewMain()
		m.Fetcher = siteFetcher(pages)
		m.Embedder = &mock.Embedder{
			EmbedFn: func(ctx context.Context, texts []string) ([][]float32, error) {
				vectors := make([][]float32, len(texts))
				for i := range vectors {
					vectors[i] = []float32{0.1, 0.2}
				}
				return vectors, nil
			},
		}
		m.Store = &mock.VectorStore{
			UpsertFn: func(ctx context.Context, entries []*ragingest.Entry) error {
				upserted = entries
				return nil
			},
		}

		out := filepath.Join(t.TempDir(), "out")
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"docs", "https://x.test/docs", "--out", out, "--rps", "0"}, stdout, stderr)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Crawled 2 pages")
		assert.Contains(t, stdout.String(), "Ingested 2 sources")

		// Raw text per page.
		rawFiles, err := filepath.Glob(filepath.Join(out, "raw", "*.txt"))
		require.NoError(t, err)
		assert.Len(t, rawFiles, 2)

		// One JSONL row per chunk, every one embedded and upserted.
		data, err := os.ReadFile(filepath.Join(out, "processed", "entries.jsonl"))
		require.NoError(t, err)
		assert.Equal(t, 2, bytes.Count(data, []byte("\n")))
		require.Len(t, upserted, 2)
		assert.NotNil(t, upserted[0].Embedding)

		// One assembled document per source.
		guide, err := os.ReadFile(filepath.Join(out, "md", "docs_guide.md"))
		require.NoError(t, err)
		assert.Contains(t, string(guide), "title: Guide")
		assert.Contains(t, string(guide), "ingestion process")
	})

	t.Run("no-vector skips embedding and storage", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher = siteFetcher(pages)
		m.Embedder = &mock.Embedder{
			EmbedFn: func(ctx context.Context, texts []string) ([][]float32, error) {
				t.Fatal("must not embed with --no-vector")
				return nil, nil
			},
		}

		out := filepath.Join(t.TempDir(), "out")
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := m.Run(context.Background(),
			[]string{"docs", "https://x.test/docs", "--out", out, "--rps", "0", "--no-vector"}, stdout, stderr)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(out, "processed", "entries.jsonl"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"embedding":null`)
	})

	t.Run("invalid start URL fails", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher = siteFetcher(nil)
		m.Embedder = &mock.Embedder{EmbedFn: func(ctx context.Context, texts []string) ([][]float32, error) {
			return make([][]float32, len(texts)), nil
		}}
		m.Store = &mock.VectorStore{UpsertFn: func(ctx context.Context, entries []*ragingest.Entry) error {
			return nil
		}}

		out := filepath.Join(t.TempDir(), "out")
		err := m.Run(context.Background(), []string{"docs", "::bad::", "--out", out, "--rps", "0"}, &bytes.Buffer{}, &bytes.Buffer{})

		assert.Error(t, err)
	})
}

func TestCmdGit(t *testing.T) {
	t.Parallel()

	t.Run("ingests repository files", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Lister = &mock.RepoLister{
			ListFilesFn: func(ctx context.Context, repoURL string) (*ragingest.RepoTree, error) {
				return &ragingest.RepoTree{
					Owner: "acme", Repo: "widget", Branch: "main",
					RawBase: "https://raw.example",
					Files: []ragingest.RepoFile{
						{Path: "README.md"},
						{Path: "main.go"},
						{Path: "logo.png"},
					},
				}, nil
			},
		}
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*ragingest.FetchResult, error) {
				return &ragingest.FetchResult{Body: []byte("# Widget\n\nA sample project readme.")}, nil
			},
		}

		out := filepath.Join(t.TempDir(), "out")
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := m.Run(context.Background(),
			[]string{"git", "acme/widget", "--out", out, "--rps", "0", "--no-vector"}, stdout, stderr)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Ingested 2 files")

		data, err := os.ReadFile(filepath.Join(out, "processed", "entries.jsonl"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"mode":"git"`)
	})
}

func TestCmdClean(t *testing.T) {
	t.Parallel()

	t.Run("rewrites noisy documents in place", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "out")
		require.NoError(t, os.MkdirAll(filepath.Join(out, "md"), 0755))

		doc := "---\nsource: https://x.test/a\ntitle: A\n---\n\n# A\n\nReal content line survives here.\nWas this page helpful?\n"
		path := filepath.Join(out, "md", "a.md")
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		m := main.NewMain()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"clean", "--out", out}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		cleaned, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(cleaned), "source: https://x.test/a")
		assert.Contains(t, string(cleaned), "Real content line survives here.")
		assert.NotContains(t, string(cleaned), "helpful")
		assert.Contains(t, stdout.String(), "Cleaned 1 of 1")
	})

	t.Run("empty output directory reports nothing to do", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "out")
		m := main.NewMain()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"clean", "--out", out}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No documents found")
	})
}
