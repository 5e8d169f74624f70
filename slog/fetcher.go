// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
)

// Ensure LoggingFetcher implements mdminer.Fetcher.
var _ mdminer.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with fetch logging.
type LoggingFetcher struct {
	next   mdminer.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next mdminer.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *mdminer.Page, err error) {
	defer func(begin time.Time) {
		size := 0
		if page != nil {
			size = len(page.HTML)
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingImageFetcher implements mdminer.ImageFetcher.
var _ mdminer.ImageFetcher = (*LoggingImageFetcher)(nil)

// LoggingImageFetcher wraps an ImageFetcher with per-image logging. Bundling
// tolerates individual image failures, so the log is the only place a
// skipped image is visible.
type LoggingImageFetcher struct {
	next   mdminer.ImageFetcher
	logger *slog.Logger
}

// NewLoggingImageFetcher creates a new LoggingImageFetcher.
func NewLoggingImageFetcher(next mdminer.ImageFetcher, logger *slog.Logger) *LoggingImageFetcher {
	return &LoggingImageFetcher{next: next, logger: logger}
}

// FetchImage logs the outcome of each image download and delegates to the
// wrapped fetcher.
func (f *LoggingImageFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	begin := time.Now()
	data, err := f.next.FetchImage(ctx, url)
	if err != nil {
		f.logger.Error("image fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	f.logger.Info("image fetch",
		"url", url,
		"bytes", len(data),
		"duration", time.Since(begin),
	)
	return data, nil
}
