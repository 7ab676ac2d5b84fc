package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/dochub"
	"github.com/fwojciec/dochub/goldmark"
	"github.com/fwojciec/dochub/htmltomarkdown"
	"github.com/fwojciec/dochub/index"
	dochubslog "github.com/fwojciec/dochub/slog"
	"github.com/fwojciec/dochub/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is fine.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); --db overrides it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService dochub.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dochub"),
		kong.Description("Search and serve a hub of markdown documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dochub --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.LogLevel, cli.LogFormat)

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCHUB_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.DocumentService = dochubslog.NewLoggingDocumentService(sqlite.NewDocumentService(m.DB), deps.Logger)
	deps.DB = m.DB
	deps.Documents = m.DocumentService

	switch cmd {
	case "serve", "search", "toc", "check":
		fetcher, err := newFetcher(cli.Root)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set DOCHUB_ROOT to the directory holding your markdown files")
			return fmt.Errorf("failed to open content root %q: %w", cli.Root, err)
		}
		defer fetcher.Close()
		deps.Fetcher = dochubslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Converter = htmltomarkdown.NewConverter()
	}

	switch cmd {
	case "serve", "search", "toc":
		docs, err := deps.Documents.FindDocuments(ctx, dochub.DocumentFilter{})
		if err != nil {
			return fmt.Errorf("failed to load documents: %w", err)
		}
		idx := index.New(docs, deps.Fetcher,
			index.WithConverter(deps.Converter),
			index.WithLogger(deps.Logger),
			index.WithConcurrency(cli.Concurrency),
		)
		deps.Search = dochubslog.NewLoggingSearchService(idx, deps.Logger)
		deps.Renderer = goldmark.NewRenderer()
	}

	return kongCtx.Run(deps)
}

// newLogger builds the process logger. Invalid values fall back to warn
// level text output.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func defaultDBPath() string {
	if path := os.Getenv("DOCHUB_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "dochub.db"
	}
	dir := filepath.Join(home, ".dochub")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "dochub.db")
}
