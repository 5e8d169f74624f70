// Package http provides HTTP-based implementations of mdminer.Fetcher and
// mdminer.ImageFetcher for static pages and image downloads.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies this tool on outgoing requests.
const DefaultUserAgent = "juejin-md-miner/1.0"

// Ensure Fetcher implements mdminer.Fetcher at compile time.
var _ mdminer.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page snapshots using plain HTTP requests. Unlike
// rod.Fetcher, this does not execute JavaScript and is suitable for
// server-rendered pages only.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header on outgoing requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at the given URL. The returned snapshot carries
// the final URL after redirects.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*mdminer.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, mdminer.Errorf(mdminer.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, mdminer.Errorf(mdminer.EUNAVAILABLE, "failed to fetch %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, mdminer.Errorf(mdminer.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, mdminer.Errorf(mdminer.EUNAVAILABLE, "failed to read %s: %v", rawURL, err)
	}

	return &mdminer.Page{
		URL:  resp.Request.URL.String(),
		HTML: string(body),
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// Ensure ImageFetcher implements mdminer.ImageFetcher at compile time.
var _ mdminer.ImageFetcher = (*ImageFetcher)(nil)

// ImageFetcher downloads image bytes for bundling. The referrer and
// user-agent of the page being converted are forwarded as request headers
// so image hosts that check them still serve the asset.
type ImageFetcher struct {
	client    *http.Client
	timeout   time.Duration
	limiter   mdminer.HostLimiter
	referrer  string
	userAgent string
}

// ImageOption configures an ImageFetcher.
type ImageOption func(*ImageFetcher)

// WithImageTimeout sets the timeout for image requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithImageTimeout(d time.Duration) ImageOption {
	return func(f *ImageFetcher) {
		f.timeout = d
	}
}

// WithLimiter rate-limits image requests per host.
func WithLimiter(l mdminer.HostLimiter) ImageOption {
	return func(f *ImageFetcher) {
		f.limiter = l
	}
}

// WithReferrer forwards the converted page's URL as the Referer header.
func WithReferrer(referrer string) ImageOption {
	return func(f *ImageFetcher) {
		f.referrer = referrer
	}
}

// WithImageUserAgent sets the User-Agent header on image requests.
func WithImageUserAgent(ua string) ImageOption {
	return func(f *ImageFetcher) {
		f.userAgent = ua
	}
}

// NewImageFetcher creates a new ImageFetcher.
func NewImageFetcher(opts ...ImageOption) *ImageFetcher {
	f := &ImageFetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// FetchImage downloads the image at the given URL and returns its bytes.
func (f *ImageFetcher) FetchImage(ctx context.Context, rawURL string) ([]byte, error) {
	if f.limiter != nil {
		if u, err := url.Parse(rawURL); err == nil {
			if err := f.limiter.Wait(ctx, u.Host); err != nil {
				return nil, mdminer.Errorf(mdminer.EUNAVAILABLE, "canceled while waiting for %s: %v", u.Host, err)
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, mdminer.Errorf(mdminer.EINVALID, "invalid image URL %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	if f.referrer != "" {
		req.Header.Set("Referer", f.referrer)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, mdminer.Errorf(mdminer.EUNAVAILABLE, "failed to fetch image %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, mdminer.Errorf(mdminer.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	return io.ReadAll(resp.Body)
}
