// Package mock provides function-field mocks of the domain interfaces for
// testing.
package mock

import (
	"context"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
)

var _ mdminer.Adapter = (*Adapter)(nil)

// Adapter is a mock implementation of mdminer.Adapter.
type Adapter struct {
	SiteFn            func() mdminer.Site
	ExtractMetadataFn func(page *mdminer.Page) (*mdminer.ArticleMetadata, error)
	ConvertFn         func(page *mdminer.Page) (*mdminer.ConversionResult, error)
}

func (a *Adapter) Site() mdminer.Site {
	return a.SiteFn()
}

func (a *Adapter) ExtractMetadata(page *mdminer.Page) (*mdminer.ArticleMetadata, error) {
	return a.ExtractMetadataFn(page)
}

func (a *Adapter) Convert(page *mdminer.Page) (*mdminer.ConversionResult, error) {
	return a.ConvertFn(page)
}

var _ mdminer.AdapterRegistry = (*AdapterRegistry)(nil)

// AdapterRegistry is a mock implementation of mdminer.AdapterRegistry.
type AdapterRegistry struct {
	ResolveFn func(site mdminer.Site) (mdminer.Adapter, error)
	ListFn    func() []mdminer.Site
}

func (r *AdapterRegistry) Resolve(site mdminer.Site) (mdminer.Adapter, error) {
	return r.ResolveFn(site)
}

func (r *AdapterRegistry) List() []mdminer.Site {
	return r.ListFn()
}

var _ mdminer.Converter = (*Converter)(nil)

// Converter is a mock implementation of mdminer.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ mdminer.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of mdminer.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*mdminer.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*mdminer.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ mdminer.ImageFetcher = (*ImageFetcher)(nil)

// ImageFetcher is a mock implementation of mdminer.ImageFetcher.
type ImageFetcher struct {
	FetchImageFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *ImageFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	return f.FetchImageFn(ctx, url)
}

var _ mdminer.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of mdminer.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}

var _ mdminer.Bundler = (*Bundler)(nil)

// Bundler is a mock implementation of mdminer.Bundler.
type Bundler struct {
	BundleFn func(ctx context.Context, title, markdown string) ([]byte, error)
}

func (b *Bundler) Bundle(ctx context.Context, title, markdown string) ([]byte, error) {
	return b.BundleFn(ctx, title, markdown)
}

var _ mdminer.MarkdownWriter = (*MarkdownWriter)(nil)

// MarkdownWriter is a mock implementation of mdminer.MarkdownWriter.
type MarkdownWriter struct {
	WriteMarkdownFn func(title, markdown string) (string, error)
	WriteArchiveFn  func(title string, data []byte) (string, error)
}

func (w *MarkdownWriter) WriteMarkdown(title, markdown string) (string, error) {
	return w.WriteMarkdownFn(title, markdown)
}

func (w *MarkdownWriter) WriteArchive(title string, data []byte) (string, error) {
	return w.WriteArchiveFn(title, data)
}
