package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ragtools/ragingest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   ragingest.Fetcher
	Extractor ragingest.Extractor
	Converter ragingest.Converter
	Links     ragingest.LinkExtractor
	Decoder   ragingest.Decoder
	Limiter   ragingest.DomainLimiter
	Embedder  ragingest.Embedder
	Store     ragingest.VectorStore
	Lister    ragingest.RepoLister
	Formatter *ragingest.Formatter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Docs  DocsCmd  `cmd:"" help:"Crawl a documentation site and ingest its pages"`
	Git   GitCmd   `cmd:"" help:"Ingest the text files of a GitHub repository"`
	Clean CleanCmd `cmd:"" help:"Re-run noise filtering over assembled Markdown documents"`
}

// EmbedFlags are the embedding and vector store flags shared by the
// ingestion commands.
type EmbedFlags struct {
	BatchSize      int    `default:"16" help:"Chunks per embedding batch"`
	Provider       string `default:"ollama" enum:"ollama,gemini" help:"Embedding provider"`
	Model          string `help:"Embedding model (provider default when empty)"`
	OllamaURL      string `default:"http://localhost:11434" help:"Ollama server address"`
	WeaviateHost   string `default:"localhost:8080" help:"Weaviate host:port"`
	WeaviateScheme string `default:"http" help:"Weaviate scheme"`
	Class          string `default:"DocChunk" help:"Weaviate class name"`
	NoVector       bool   `help:"Skip embedding and vector storage; JSONL rows carry null embeddings"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	URL string `arg:"" help:"Start URL of the documentation site"`

	Out          string        `default:"out" help:"Output directory"`
	MaxPages     int           `default:"5000" help:"Maximum number of pages to ingest"`
	Include      []string      `sep:"," help:"Glob patterns a URL must match (comma separated)"`
	Exclude      []string      `sep:"," help:"Glob patterns that drop a URL (comma separated, win over include)"`
	IgnoreRobots bool          `help:"Skip robots.txt checks"`
	Timeout      time.Duration `default:"15s" help:"Per-request timeout"`
	RPS          float64       `default:"1" help:"Requests per second per domain (0 disables limiting)"`

	EmbedFlags `embed:""`
}

// GitCmd is the "git" subcommand.
type GitCmd struct {
	Repo string `arg:"" help:"Repository URL or owner/repo"`

	Out     string        `default:"out" help:"Output directory"`
	Timeout time.Duration `default:"15s" help:"Per-request timeout"`
	RPS     float64       `default:"4" help:"Requests per second against the raw file host"`

	EmbedFlags `embed:""`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	Out string `default:"out" help:"Output directory holding md/ documents"`
}
