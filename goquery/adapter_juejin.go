package goquery

import (
	"strings"

	"golang.org/x/net/html"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/htmltomarkdown"
)

var _ mdminer.Adapter = (*JuejinAdapter)(nil)

// JuejinAdapter extracts articles from juejin.cn.
//
// Metadata comes from fixed selectors inside the article container; the
// body lives in a nested content viewer element. Juejin decorates code
// blocks with an extension header carrying the language name, so a
// dedicated rule reads the raw code text and renders a fenced block, and
// tables are rendered through the shared pipe-table rule.
type JuejinAdapter struct {
	engine *htmltomarkdown.Engine
}

// NewJuejinAdapter creates a new JuejinAdapter.
func NewJuejinAdapter() *JuejinAdapter {
	return &JuejinAdapter{
		engine: htmltomarkdown.NewEngine(
			htmltomarkdown.WithRemoveTags("style"),
			htmltomarkdown.WithRules(
				juejinCodeBlockRule(),
				pipeTableRule(htmltomarkdown.NewEngine()),
			),
		),
	}
}

// Site returns the identifier this adapter handles.
func (a *JuejinAdapter) Site() mdminer.Site {
	return mdminer.SiteJuejin
}

// ExtractMetadata extracts title, author and date from the article
// container. All three fields are required.
func (a *JuejinAdapter) ExtractMetadata(page *mdminer.Page) (*mdminer.ArticleMetadata, error) {
	doc, err := parsePage(page)
	if err != nil {
		return nil, err
	}

	article := doc.Find("article").First()
	if article.Length() == 0 {
		return nil, mdminer.Errorf(mdminer.ENOTFOUND, "juejin article not found")
	}

	meta := &mdminer.ArticleMetadata{
		Title:  mdminer.TrimText(article.Find(".article-title").First().Text()),
		Author: mdminer.TrimText(article.Find(".author-info-block .author-name span").First().Text()),
		Date:   mdminer.TrimText(article.Find(".author-info-block .meta-box time").First().Text()),
	}
	if meta.Title == "" || meta.Author == "" || meta.Date == "" {
		return nil, mdminer.Errorf(mdminer.ENOTFOUND, "incomplete juejin article info")
	}
	return meta, nil
}

// Convert renders the article content viewer as Markdown.
func (a *JuejinAdapter) Convert(page *mdminer.Page) (*mdminer.ConversionResult, error) {
	doc, err := parsePage(page)
	if err != nil {
		return nil, err
	}

	article := doc.Find("article").First()
	if article.Length() == 0 {
		return nil, mdminer.Errorf(mdminer.ENOTFOUND, "juejin article content not found")
	}

	heading := article.Find("h1").First()
	if heading.Length() == 0 {
		return nil, mdminer.Errorf(mdminer.ENOTFOUND, "juejin article title not found")
	}
	title := mdminer.TrimText(heading.Text())

	viewer := article.Find("#article-root .article-viewer").First()
	if viewer.Length() == 0 {
		return nil, mdminer.Errorf(mdminer.ENOTFOUND, "juejin article viewer not found")
	}

	content, err := viewer.Html()
	if err != nil {
		return nil, mdminer.Errorf(mdminer.EINVALID, "failed to read juejin article content: %v", err)
	}

	markdown, err := a.engine.Convert(content)
	if err != nil {
		return nil, err
	}

	return &mdminer.ConversionResult{Title: title, Markdown: markdown}, nil
}

// juejinCodeBlockRule fires on pre elements decorated with juejin's code
// block extension header and renders a fenced block with the header's
// language name (empty when absent). The raw code text is used instead of
// the converted children.
func juejinCodeBlockRule() htmltomarkdown.Rule {
	return htmltomarkdown.Rule{
		Name: "juejinCodeBlock",
		Tag:  "pre",
		Filter: func(node *html.Node) bool {
			doc := wrap(node)
			return doc.Find(".code-block-extension-header").Length() > 0 &&
				doc.Find("code").Length() > 0
		},
		Render: func(_ string, node *html.Node) string {
			doc := wrap(node)
			code := doc.Find("code").First().Text()
			lang := strings.TrimSpace(doc.Find(".code-block-extension-lang").First().Text())
			return "\n\n```" + lang + "\n" + code + "```\n\n"
		},
	}
}
