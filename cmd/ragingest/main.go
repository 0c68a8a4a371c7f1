package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ragtools/ragingest"
	"github.com/ragtools/ragingest/chardet"
	"github.com/ragtools/ragingest/crawl"
	"github.com/ragtools/ragingest/gemini"
	"github.com/ragtools/ragingest/github"
	"github.com/ragtools/ragingest/goquery"
	"github.com/ragtools/ragingest/htmltomarkdown"
	raghttp "github.com/ragtools/ragingest/http"
	"github.com/ragtools/ragingest/ollama"
	ragslog "github.com/ragtools/ragingest/slog"
	"github.com/ragtools/ragingest/weaviate"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program. Service fields left nil are wired to their
// production implementations by Run; tests pre-seed them with mocks.
type Main struct {
	Fetcher  ragingest.Fetcher
	Embedder ragingest.Embedder
	Store    ragingest.VectorStore
	Lister   ragingest.RepoLister
	Logger   *slog.Logger
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := m.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ragingest"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ragingest --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Formatter = ragingest.NewFormatter()

	switch cmd {
	case "docs":
		if err := m.wireAcquisition(deps, cli.Docs.Timeout, cli.Docs.RPS); err != nil {
			return err
		}
		deps.Extractor = goquery.NewExtractor()
		deps.Converter = htmltomarkdown.NewConverter()
		deps.Links = goquery.NewLinkExtractor()
		if err := m.wireEmbedding(ctx, deps, &cli.Docs.EmbedFlags); err != nil {
			return err
		}
	case "git":
		if err := m.wireAcquisition(deps, cli.Git.Timeout, cli.Git.RPS); err != nil {
			return err
		}
		deps.Lister = m.Lister
		if deps.Lister == nil {
			deps.Lister = github.NewLister()
		}
		if err := m.wireEmbedding(ctx, deps, &cli.Git.EmbedFlags); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wireAcquisition sets up the fetch side shared by docs and git modes.
func (m *Main) wireAcquisition(deps *Dependencies, timeout time.Duration, rps float64) error {
	deps.Fetcher = m.Fetcher
	if deps.Fetcher == nil {
		deps.Fetcher = ragslog.NewLoggingFetcher(
			raghttp.NewFetcher(raghttp.WithTimeout(timeout)), deps.Logger)
	}
	deps.Decoder = chardet.NewDecoder()
	if rps > 0 {
		deps.Limiter = crawl.NewDomainLimiter(rps)
	}
	return nil
}

// wireEmbedding sets up the embedder and vector store from shared flags.
// With --no-vector both stay nil: chunks are still written to JSONL with
// null embeddings, and nothing is upserted.
func (m *Main) wireEmbedding(ctx context.Context, deps *Dependencies, flags *EmbedFlags) error {
	if flags.NoVector {
		return nil
	}

	deps.Embedder = m.Embedder
	if deps.Embedder == nil {
		switch flags.Provider {
		case "gemini":
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			deps.Embedder = gemini.NewEmbedder(client, flags.Model)
		default:
			deps.Embedder = ollama.NewEmbedder(
				ollama.WithBaseURL(flags.OllamaURL),
				ollama.WithModel(flags.Model))
		}
		deps.Embedder = ragslog.NewLoggingEmbedder(deps.Embedder, deps.Logger)
	}

	deps.Store = m.Store
	if deps.Store == nil {
		client, err := weaviate.NewClient(flags.WeaviateHost, flags.WeaviateScheme)
		if err != nil {
			return err
		}
		store := weaviate.NewStore(client, flags.Class, deps.Logger)
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		deps.Store = store
	}
	return nil
}
