package goquery

import (
	"net/url"
	"regexp"
	"strings"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/htmltomarkdown"
)

var camoImagePattern = regexp.MustCompile(`!\[([^\]]*)\]\((https://camo\.githubusercontent\.com/[^)]+)\)`)

var _ mdminer.Adapter = (*GithubAdapter)(nil)

// GithubAdapter extracts rendered Markdown documents from github.com.
//
// Title and author are derived purely from the URL path: the last decoded
// segment minus a .md suffix, and the first segment as owner. The page DOM
// is only consulted for the commit time and the document body. Two
// conversion modes exist: with ?plain=1 the raw text is read from GitHub's
// read-only text area; otherwise the rendered article markup is converted
// generically and camo-proxied image URLs are decoded back to their origin
// form.
type GithubAdapter struct {
	engine *htmltomarkdown.Engine
}

// NewGithubAdapter creates a new GithubAdapter.
func NewGithubAdapter() *GithubAdapter {
	return &GithubAdapter{engine: htmltomarkdown.NewEngine()}
}

// Site returns the identifier this adapter handles.
func (a *GithubAdapter) Site() mdminer.Site {
	return mdminer.SiteGithub
}

// ExtractMetadata derives title and author from the page URL and reads the
// commit time from the first available relative-time element, preferring
// one scoped to the latest-commit region. The time is required.
func (a *GithubAdapter) ExtractMetadata(page *mdminer.Page) (*mdminer.ArticleMetadata, error) {
	title, owner, err := titleFromURL(page.URL)
	if err != nil {
		return nil, err
	}

	doc, err := parsePage(page)
	if err != nil {
		return nil, err
	}

	date := mdminer.TrimText(doc.Find(`[data-testid="latest-commit-details"] relative-time`).First().Text())
	if date == "" {
		date = mdminer.TrimText(doc.Find("relative-time").First().Text())
	}
	if date == "" {
		return nil, mdminer.Errorf(mdminer.ENOTFOUND, "github commit time not found")
	}

	return &mdminer.ArticleMetadata{Title: title, Author: owner, Date: date}, nil
}

// Convert produces the document Markdown. In plain mode the raw text area
// is required; in rendered mode the article element's presence is not
// validated.
func (a *GithubAdapter) Convert(page *mdminer.Page) (*mdminer.ConversionResult, error) {
	title, _, err := titleFromURL(page.URL)
	if err != nil {
		return nil, err
	}

	doc, err := parsePage(page)
	if err != nil {
		return nil, err
	}

	if isPlainView(page.URL) {
		textarea := doc.Find("#read-only-cursor-text-area").First()
		if textarea.Length() == 0 {
			return nil, mdminer.Errorf(mdminer.ENOTFOUND, "github raw text content not found")
		}
		return &mdminer.ConversionResult{Title: title, Markdown: textarea.Text()}, nil
	}

	content, err := doc.Find("article").First().Html()
	if err != nil {
		return nil, mdminer.Errorf(mdminer.EINVALID, "failed to read github article content: %v", err)
	}

	markdown, err := a.engine.Convert(content)
	if err != nil {
		return nil, err
	}

	return &mdminer.ConversionResult{Title: title, Markdown: decodeCamoImages(markdown)}, nil
}

// titleFromURL derives the document title and repository owner from a
// GitHub file URL: the last decoded path segment minus its .md suffix, and
// the first path segment.
func titleFromURL(rawURL string) (title, owner string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", mdminer.Errorf(mdminer.EINVALID, "invalid github URL: %v", err)
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return "", "", mdminer.Errorf(mdminer.EINVALID, "github URL has no path")
	}

	owner = segments[0]

	name := segments[len(segments)-1]
	if decoded, decErr := url.PathUnescape(name); decErr == nil {
		name = decoded
	}
	if strings.HasSuffix(strings.ToLower(name), ".md") {
		name = name[:len(name)-len(".md")]
	}

	return mdminer.TrimText(name), owner, nil
}

// isPlainView reports whether the URL requests GitHub's plain source view.
func isPlainView(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Query().Get("plain") == "1"
}

// decodeCamoImages rewrites image references that point at GitHub's camo
// content proxy back to their original URLs. Undecodable links are left
// unchanged.
func decodeCamoImages(markdown string) string {
	return camoImagePattern.ReplaceAllStringFunc(markdown, func(match string) string {
		m := camoImagePattern.FindStringSubmatch(match)
		decoded := mdminer.DecodeProxyURL(m[2])
		if decoded == m[2] {
			return match
		}
		return "![" + m[1] + "](" + decoded + ")"
	})
}
