// Package extract orchestrates article extraction requests: it resolves the
// site adapter, runs the requested operation and normalizes every outcome
// into a Response.
package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
)

// Dispatcher routes Requests to site adapters and persists conversion
// output. Failures are reported through the Response; Handle never returns
// an error and never panics on malformed input.
type Dispatcher struct {
	registry   mdminer.AdapterRegistry
	bundlerFor func(referrer string) mdminer.Bundler
	writer     mdminer.MarkdownWriter
	logger     *slog.Logger
}

// NewDispatcher creates a Dispatcher. bundlerFor builds an image bundler
// for a given page URL so image requests carry the page as their referrer.
func NewDispatcher(
	registry mdminer.AdapterRegistry,
	bundlerFor func(referrer string) mdminer.Bundler,
	writer mdminer.MarkdownWriter,
	logger *slog.Logger,
) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		registry:   registry,
		bundlerFor: bundlerFor,
		writer:     writer,
		logger:     logger,
	}
}

// Handle processes a single request and returns its normalized response.
func (d *Dispatcher) Handle(ctx context.Context, req *mdminer.Request) *mdminer.Response {
	logger := d.logger.With("request_id", uuid.NewString(), "action", string(req.Action))

	if req.Page == nil {
		return d.failure(logger, mdminer.Errorf(mdminer.EINVALID, "no page snapshot provided"))
	}

	site := req.Site
	if site == "" {
		site = mdminer.DefaultSite
	}
	logger = logger.With("site", string(site), "url", req.Page.URL)

	adapter, err := d.registry.Resolve(site)
	if err != nil {
		return d.failure(logger, err)
	}

	switch req.Action {
	case mdminer.ActionGetArticleInfo:
		return d.articleInfo(logger, adapter, req.Page)
	case mdminer.ActionConvertToMarkdown:
		return d.convert(ctx, logger, adapter, req)
	default:
		return d.failure(logger, mdminer.Errorf(mdminer.EINVALID, "unknown action %q", req.Action))
	}
}

func (d *Dispatcher) articleInfo(logger *slog.Logger, adapter mdminer.Adapter, page *mdminer.Page) *mdminer.Response {
	meta, err := adapter.ExtractMetadata(page)
	if err != nil {
		return d.failure(logger, err)
	}
	if meta.Title == "" {
		return d.failure(logger, mdminer.Errorf(mdminer.ENOTFOUND, "article title not found"))
	}

	logger.Info("extracted article info", "title", meta.Title)
	return &mdminer.Response{
		Success:     true,
		ArticleInfo: meta,
	}
}

func (d *Dispatcher) convert(ctx context.Context, logger *slog.Logger, adapter mdminer.Adapter, req *mdminer.Request) *mdminer.Response {
	result, err := adapter.Convert(req.Page)
	if err != nil {
		return d.failure(logger, err)
	}

	hash := fmt.Sprintf("%016x", xxhash.Sum64String(result.Markdown))

	var path string
	if req.IncludeImages {
		data, err := d.bundlerFor(req.Page.URL).Bundle(ctx, result.Title, result.Markdown)
		if err != nil {
			return d.failure(logger, err)
		}
		path, err = d.writer.WriteArchive(result.Title, data)
		if err != nil {
			return d.failure(logger, err)
		}
	} else {
		path, err = d.writer.WriteMarkdown(result.Title, result.Markdown)
		if err != nil {
			return d.failure(logger, err)
		}
	}

	logger.Info("converted article", "title", result.Title, "path", path, "content_hash", hash)
	return &mdminer.Response{
		Success:     true,
		Message:     "Saved to " + path,
		ContentHash: hash,
	}
}

func (d *Dispatcher) failure(logger *slog.Logger, err error) *mdminer.Response {
	logger.Error("request failed", "code", mdminer.ErrorCode(err), "error", err)
	return &mdminer.Response{
		Success: false,
		Error:   mdminer.ErrorMessage(err),
	}
}
