package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/extract"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/fs"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/goquery"
	mdhttp "github.com/HaoQiuji-Pavel/juejin-md-miner/http"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/rod"
	mdslog "github.com/HaoQiuji-Pavel/juejin-md-miner/slog"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/zip"
)

// imageHostRPS limits image downloads per host during bundling.
const imageHostRPS = 4.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Output directory for converted articles. Set before calling Run().
	OutDir string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		OutDir: defaultOutDir(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := newLogger(stderr)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mdminer"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mdminer --help' to see available commands")
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

	// Wire core services into dependencies
	registry := mdslog.NewLoggingRegistry(goquery.NewDefaultRegistry(), logger)
	writer := fs.NewWriter(m.OutDir)
	limiter := mdhttp.NewHostLimiter(imageHostRPS)

	bundlerFor := func(referrer string) mdminer.Bundler {
		images := mdhttp.NewImageFetcher(
			mdhttp.WithReferrer(referrer),
			mdhttp.WithLimiter(limiter),
		)
		return zip.NewBundler(mdslog.NewLoggingImageFetcher(images, logger))
	}

	deps.Registry = registry
	deps.Dispatcher = extract.NewDispatcher(registry, bundlerFor, writer, logger)
	deps.LoadPage = func(ctx context.Context, src PageSource) (*mdminer.Page, error) {
		return loadPage(ctx, src, logger, stderr)
	}

	return kongCtx.Run(deps)
}

// PageSource describes where a command should obtain its page snapshot.
type PageSource struct {
	// URL to fetch. Mutually exclusive with File.
	URL string

	// File is a path to a saved HTML snapshot.
	File string

	// PageURL overrides the snapshot URL when loading from a file, so
	// relative references still resolve.
	PageURL string

	// Render fetches the URL through a headless browser instead of a
	// plain HTTP request.
	Render bool
}

// loadPage obtains a page snapshot from a file, a plain HTTP request or a
// rendered browser session.
func loadPage(ctx context.Context, src PageSource, logger *slog.Logger, stderr io.Writer) (*mdminer.Page, error) {
	if src.File != "" {
		data, err := os.ReadFile(src.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot %q: %w", src.File, err)
		}
		return &mdminer.Page{URL: src.PageURL, HTML: string(data)}, nil
	}

	if src.URL == "" {
		return nil, fmt.Errorf("either --url or --file is required")
	}

	var fetcher mdminer.Fetcher
	if src.Render {
		f, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = mdhttp.NewFetcher()
	}
	defer fetcher.Close()

	return mdslog.NewLoggingFetcher(fetcher, logger).Fetch(ctx, src.URL)
}

func newLogger(stderr io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("MDMINER_VERBOSE") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func defaultOutDir() string {
	if dir := os.Getenv("MDMINER_OUT"); dir != "" {
		return dir
	}
	return "."
}
