package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/dochub"
	"github.com/fwojciec/dochub/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Documents dochub.DocumentService
	Search    dochub.SearchService
	Fetcher   dochub.Fetcher
	Converter dochub.Converter
	Renderer  dochub.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB          string `name:"db" env:"DOCHUB_DB" help:"Database path (default ~/.dochub/dochub.db)"`
	Root        string `env:"DOCHUB_ROOT" default:"." help:"Content root for document paths that are not URLs"`
	LogLevel    string `env:"DOCHUB_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat   string `env:"DOCHUB_LOG_FORMAT" default:"text" enum:"text,json" help:"Log format"`
	Concurrency int    `env:"DOCHUB_CONCURRENCY" default:"8" help:"Documents fetched at once while indexing"`

	Serve  ServeCmd  `cmd:"" help:"Serve the search API and document pages"`
	Search SearchCmd `cmd:"" help:"Search registered documents"`
	TOC    TOCCmd    `cmd:"" name:"toc" help:"Show the table of contents of a document"`
	Add    AddCmd    `cmd:"" help:"Register a document"`
	Import ImportCmd `cmd:"" help:"Register documents from a YAML manifest"`
	Export ExportCmd `cmd:"" help:"Write registered documents as a YAML manifest"`
	List   ListCmd   `cmd:"" help:"List registered documents"`
	Delete DeleteCmd `cmd:"" help:"Remove a registered document"`
	Check  CheckCmd  `cmd:"" help:"Report unclosed code fences"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string  `env:"DOCHUB_ADDR" default:"127.0.0.1:8080" help:"Listen address"`
	SearchRPS float64 `name:"search-rps" env:"DOCHUB_SEARCH_RPS" default:"20" help:"Search requests per second, 0 for unlimited"`
	Warm      bool    `help:"Build the index at startup instead of on the first search"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `short:"n" default:"10" help:"Maximum results to show"`
}

// TOCCmd is the "toc" subcommand.
type TOCCmd struct {
	ID     string `arg:"" help:"Document ID"`
	Filter string `short:"f" help:"Only show headings containing this text"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Title    string `arg:"" help:"Document title"`
	Markdown string `arg:"" help:"Markdown location: URL or path under the content root"`
	ID       string `help:"Document ID (default: derived from the title)"`
	Page     string `help:"Page path that result links point to"`
	Color    string `help:"Accent color as #rrggbb"`
	Format   string `default:"markdown" enum:"markdown,html" help:"Source format"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Path         string `arg:"" type:"existingfile" help:"Manifest file"`
	SkipExisting bool   `help:"Skip documents whose ID is already registered"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct{}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Force bool   `help:"Confirm deletion"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Locations []string `arg:"" optional:"" help:"Markdown locations (default: all registered documents)"`
}
