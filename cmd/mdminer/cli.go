package main

import (
	"context"
	"io"
	"log/slog"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/extract"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Registry   mdminer.AdapterRegistry
	Dispatcher *extract.Dispatcher
	LoadPage   func(ctx context.Context, src PageSource) (*mdminer.Page, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Info    InfoCmd    `cmd:"" help:"Show the basic information of an article"`
	Convert ConvertCmd `cmd:"" help:"Convert an article to Markdown"`
	Sites   SitesCmd   `cmd:"" help:"List supported sites"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct {
	Site    string `short:"s" help:"Site adapter to use (defaults to juejin)"`
	URL     string `short:"u" help:"Article URL to fetch"`
	File    string `short:"f" help:"Saved HTML snapshot to read instead of fetching"`
	PageURL string `help:"Original page URL for a --file snapshot"`
	Render  bool   `short:"r" help:"Fetch through a headless browser"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Site    string `short:"s" help:"Site adapter to use (defaults to juejin)"`
	URL     string `short:"u" help:"Article URL to fetch"`
	File    string `short:"f" help:"Saved HTML snapshot to read instead of fetching"`
	PageURL string `help:"Original page URL for a --file snapshot"`
	Render  bool   `short:"r" help:"Fetch through a headless browser"`
	Images  bool   `short:"i" help:"Bundle images into a zip archive"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}
