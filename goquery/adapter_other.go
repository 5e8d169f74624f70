package goquery

import (
	"regexp"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/htmltomarkdown"
)

var imageRefPattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// Placeholder metadata for pages where nothing better is discoverable.
const (
	fallbackTitle  = "Untitled article"
	fallbackAuthor = "Unknown author"
	fallbackDate   = "Unknown date"
)

var _ mdminer.Adapter = (*OtherAdapter)(nil)

// OtherAdapter is the fallback strategy for sites without a dedicated
// adapter. It assumes nothing beyond the presence of an article element:
// the whole element is converted generically and every image reference is
// rewritten to an absolute URL so the result remains fetchable offline.
type OtherAdapter struct {
	engine *htmltomarkdown.Engine
}

// NewOtherAdapter creates a new OtherAdapter.
func NewOtherAdapter() *OtherAdapter {
	return &OtherAdapter{engine: htmltomarkdown.NewEngine()}
}

// Site returns the identifier this adapter handles.
func (a *OtherAdapter) Site() mdminer.Site {
	return mdminer.SiteOther
}

// ExtractMetadata returns the first h1 as title, falling back to fixed
// placeholders. An article element must be present.
func (a *OtherAdapter) ExtractMetadata(page *mdminer.Page) (*mdminer.ArticleMetadata, error) {
	doc, err := parsePage(page)
	if err != nil {
		return nil, err
	}

	if doc.Find("article").Length() == 0 {
		return nil, mdminer.Errorf(mdminer.ENOTFOUND, "article not found")
	}

	title := mdminer.TrimText(doc.Find("h1").First().Text())
	if title == "" {
		title = fallbackTitle
	}

	return &mdminer.ArticleMetadata{
		Title:  title,
		Author: fallbackAuthor,
		Date:   fallbackDate,
	}, nil
}

// Convert renders the whole article element as Markdown and rewrites image
// references to absolute URLs resolved against the page.
func (a *OtherAdapter) Convert(page *mdminer.Page) (*mdminer.ConversionResult, error) {
	doc, err := parsePage(page)
	if err != nil {
		return nil, err
	}

	article := doc.Find("article").First()
	if article.Length() == 0 {
		return nil, mdminer.Errorf(mdminer.ENOTFOUND, "article content not found")
	}

	title := mdminer.TrimText(doc.Find("h1").First().Text())
	if title == "" {
		title = fallbackTitle
	}

	content, err := article.Html()
	if err != nil {
		return nil, mdminer.Errorf(mdminer.EINVALID, "failed to read article content: %v", err)
	}

	markdown, err := a.engine.Convert(content)
	if err != nil {
		return nil, err
	}

	markdown = imageRefPattern.ReplaceAllStringFunc(markdown, func(match string) string {
		m := imageRefPattern.FindStringSubmatch(match)
		return "![" + m[1] + "](" + mdminer.ResolveURL(page.URL, m[2]) + ")"
	})

	return &mdminer.ConversionResult{Title: title, Markdown: markdown}, nil
}
