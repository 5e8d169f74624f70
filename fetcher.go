package mdminer

import "context"

// Fetcher retrieves rendered page snapshots from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content. The returned Page carries the final URL after redirects, which
// URL-derived adapters depend on.
type Fetcher interface {
	// Fetch navigates to the URL and returns the rendered page snapshot.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// ImageFetcher retrieves raw image bytes for bundling.
type ImageFetcher interface {
	// FetchImage downloads the image at url and returns its bytes.
	// Returns EUNAVAILABLE if the image cannot be retrieved.
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// HostLimiter rate-limits requests per host.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, host string) error
}
