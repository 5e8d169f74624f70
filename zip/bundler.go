// Package zip provides the asset bundler: it packages a Markdown document
// together with its remote images into a single zip archive.
package zip

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"regexp"

	"golang.org/x/sync/errgroup"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
)

// DefaultConcurrency is the default concurrent image fetch limit.
const DefaultConcurrency = 10

var imagePattern = regexp.MustCompile(`!\[[^\]]*\]\((https?://[^\s)]+)\)`)

// Ensure Bundler implements mdminer.Bundler at compile time.
var _ mdminer.Bundler = (*Bundler)(nil)

// imageRef pairs a remote image URL with its deterministic local name.
type imageRef struct {
	sourceURL string
	localName string
}

// Bundler scans Markdown for remote image references, fetches them
// concurrently, rewrites the references to local paths and packages
// everything into a zip archive. Individual fetch failures are tolerated:
// the reference is still rewritten but the file is absent from the archive.
type Bundler struct {
	fetcher     mdminer.ImageFetcher
	concurrency int
}

// Option configures a Bundler.
type Option func(*Bundler)

// WithConcurrency sets the concurrent fetch limit.
// Defaults to DefaultConcurrency if not specified.
func WithConcurrency(n int) Option {
	return func(b *Bundler) {
		b.concurrency = n
	}
}

// NewBundler creates a Bundler that downloads images with the given fetcher.
func NewBundler(fetcher mdminer.ImageFetcher, opts ...Option) *Bundler {
	b := &Bundler{
		fetcher:     fetcher,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Bundle returns the bytes of a zip archive containing the rewritten
// Markdown as "<title>.md" and an images/ folder of fetched blobs named
// image_<n>.<ext> in discovery order.
func (b *Bundler) Bundle(ctx context.Context, title, markdown string) ([]byte, error) {
	refs := collectImageRefs(markdown)

	// Fan out all fetches and join after every one has settled. A failed
	// fetch leaves a nil blob; the reference is rewritten regardless.
	blobs := make([][]byte, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, ref := range refs {
		g.Go(func() error {
			data, err := b.fetcher.FetchImage(gctx, ref.sourceURL)
			if err != nil {
				return nil
			}
			blobs[i] = data
			return nil
		})
	}
	_ = g.Wait()

	rewritten := rewriteImageRefs(markdown, refs)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create(mdminer.SanitizeTitle(title) + ".md")
	if err != nil {
		return nil, mdminer.Errorf(mdminer.EINTERNAL, "failed to package markdown: %v", err)
	}
	if _, err := w.Write([]byte(rewritten)); err != nil {
		return nil, mdminer.Errorf(mdminer.EINTERNAL, "failed to package markdown: %v", err)
	}

	for i, ref := range refs {
		if blobs[i] == nil {
			continue
		}
		w, err := zw.Create("images/" + ref.localName)
		if err != nil {
			return nil, mdminer.Errorf(mdminer.EINTERNAL, "failed to package image %s: %v", ref.localName, err)
		}
		if _, err := w.Write(blobs[i]); err != nil {
			return nil, mdminer.Errorf(mdminer.EINTERNAL, "failed to package image %s: %v", ref.localName, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, mdminer.Errorf(mdminer.EINTERNAL, "failed to finalize archive: %v", err)
	}
	return buf.Bytes(), nil
}

// collectImageRefs scans Markdown for remote image references in
// left-to-right order and assigns sequential local names. URLs are
// deduplicated: every occurrence of the same URL shares one local name and
// the counter advances per unique URL, so no filename is ever skipped.
func collectImageRefs(markdown string) []imageRef {
	seen := make(map[string]bool)
	var refs []imageRef

	for _, m := range imagePattern.FindAllStringSubmatch(markdown, -1) {
		sourceURL := m[1]
		if seen[sourceURL] {
			continue
		}
		seen[sourceURL] = true
		refs = append(refs, imageRef{
			sourceURL: sourceURL,
			localName: fmt.Sprintf("image_%d.%s", len(refs)+1, mdminer.ImageExtension(sourceURL)),
		})
	}
	return refs
}

// rewriteImageRefs replaces every occurrence of each original URL with its
// local images/ path.
func rewriteImageRefs(markdown string, refs []imageRef) string {
	for _, ref := range refs {
		pattern := regexp.MustCompile(`!\[([^\]]*)\]\(` + regexp.QuoteMeta(ref.sourceURL) + `\)`)
		markdown = pattern.ReplaceAllString(markdown, `![$1](images/`+ref.localName+`)`)
	}
	return markdown
}
