package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/ragtools/ragingest"
	"github.com/ragtools/ragingest/mock"
	ragingestslog "github.com/ragtools/ragingest/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	inner := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*ragingest.FetchResult, error) {
			return &ragingest.FetchResult{Body: []byte("abc")}, nil
		},
	}

	f := ragingestslog.NewLoggingFetcher(inner, logger)
	res, err := f.Fetch(context.Background(), "https://x.test/a")

	require.NoError(t, err)
	assert.Equal(t, "abc", string(res.Body))
	assert.Contains(t, buf.String(), "msg=fetch")
	assert.Contains(t, buf.String(), "url=https://x.test/a")
	assert.Contains(t, buf.String(), "bytes=3")
}

func TestLoggingEmbedder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	inner := &mock.Embedder{
		EmbedFn: func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{0.1}, nil}, nil
		},
	}

	e := ragingestslog.NewLoggingEmbedder(inner, logger)
	vectors, err := e.Embed(context.Background(), []string{"a", "b"})

	require.NoError(t, err)
	assert.Len(t, vectors, 2)
	assert.Contains(t, buf.String(), "texts=2")
	assert.Contains(t, buf.String(), "failed=1")
}
