// Package rod provides a browser-based page fetcher using Chrome automation.
// It renders JavaScript-driven pages, which is required for sites like
// Zhihu and Juejin that hydrate their article content client-side.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
)

// Ensure Fetcher implements mdminer.Fetcher at compile time.
var _ mdminer.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered page snapshots using a headless Chrome browser.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL and returns a snapshot of the rendered page.
// The snapshot carries the final URL after any client-side redirects, so
// relative image references resolve against the address the content was
// actually served from.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*mdminer.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, mdminer.Errorf(mdminer.EUNAVAILABLE, "failed to open page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, mdminer.Errorf(mdminer.EUNAVAILABLE, "failed to navigate to %s: %v", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return nil, mdminer.Errorf(mdminer.EUNAVAILABLE, "failed to load %s: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, mdminer.Errorf(mdminer.EUNAVAILABLE, "failed to read rendered HTML for %s: %v", url, err)
	}

	finalURL := url
	if info, err := page.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}

	return &mdminer.Page{
		URL:  finalURL,
		HTML: html,
	}, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
