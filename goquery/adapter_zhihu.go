package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/htmltomarkdown"
)

// blockMathThreshold is the formula length above which zhihu math is
// rendered as a display block rather than inline.
const blockMathThreshold = 50

var _ mdminer.Adapter = (*ZhihuAdapter)(nil)

// ZhihuAdapter extracts articles from zhuanlan.zhihu.com columns.
//
// Zhihu serves code blocks without language markers and embeds TeX
// formulas as spans carrying the raw formula in a data-tex attribute, so
// the adapter registers a plain code-fence rule and a math rule that
// classifies each formula as inline or block-level.
type ZhihuAdapter struct {
	engine *htmltomarkdown.Engine
}

// NewZhihuAdapter creates a new ZhihuAdapter.
func NewZhihuAdapter() *ZhihuAdapter {
	return &ZhihuAdapter{
		engine: htmltomarkdown.NewEngine(
			htmltomarkdown.WithRemoveTags("style", "noscript"),
			htmltomarkdown.WithRules(
				zhihuCodeBlockRule(),
				zhihuMathRule(),
				pipeTableRule(htmltomarkdown.NewEngine()),
			),
		),
	}
}

// Site returns the identifier this adapter handles.
func (a *ZhihuAdapter) Site() mdminer.Site {
	return mdminer.SiteZhihu
}

// ExtractMetadata extracts title, author and date. Title and author are
// required; the publication time may be absent.
func (a *ZhihuAdapter) ExtractMetadata(page *mdminer.Page) (*mdminer.ArticleMetadata, error) {
	doc, err := parsePage(page)
	if err != nil {
		return nil, err
	}

	meta := &mdminer.ArticleMetadata{
		Title:  mdminer.TrimText(doc.Find(".Post-Title").First().Text()),
		Author: mdminer.TrimText(doc.Find(`.AuthorInfo meta[itemprop="name"]`).First().AttrOr("content", "")),
		Date:   mdminer.TrimText(doc.Find(".ContentItem-time").First().Text()),
	}
	if meta.Title == "" || meta.Author == "" {
		return nil, mdminer.Errorf(mdminer.ENOTFOUND, "incomplete zhihu article info")
	}
	return meta, nil
}

// Convert renders the rich-content container as Markdown.
func (a *ZhihuAdapter) Convert(page *mdminer.Page) (*mdminer.ConversionResult, error) {
	doc, err := parsePage(page)
	if err != nil {
		return nil, err
	}

	heading := doc.Find(".Post-Title").First()
	if heading.Length() == 0 {
		return nil, mdminer.Errorf(mdminer.ENOTFOUND, "zhihu article title not found")
	}
	title := mdminer.TrimText(heading.Text())

	container := doc.Find(".Post-RichContent").First()
	if container.Length() == 0 {
		return nil, mdminer.Errorf(mdminer.ENOTFOUND, "zhihu article content not found")
	}

	content, err := container.Html()
	if err != nil {
		return nil, mdminer.Errorf(mdminer.EINVALID, "failed to read zhihu article content: %v", err)
	}

	markdown, err := a.engine.Convert(content)
	if err != nil {
		return nil, err
	}

	return &mdminer.ConversionResult{Title: title, Markdown: markdown}, nil
}

// zhihuCodeBlockRule renders pre>code as a plain triple-backtick fence
// with no language marker, reading the raw code text.
func zhihuCodeBlockRule() htmltomarkdown.Rule {
	return htmltomarkdown.Rule{
		Name: "zhihuCodeBlock",
		Tag:  "pre",
		Filter: func(node *html.Node) bool {
			return wrap(node).Find("code").Length() > 0
		},
		Render: func(_ string, node *html.Node) string {
			code := wrap(node).Find("code").First().Text()
			return "\n\n```\n" + code + "```\n\n"
		},
	}
}

// zhihuMathRule fires on inline math spans carrying the raw formula in a
// data-tex attribute. Trailing backslashes are stripped before the formula
// is classified as block-level or inline.
func zhihuMathRule() htmltomarkdown.Rule {
	return htmltomarkdown.Rule{
		Name:   "zhihuMath",
		Tag:    "span",
		Inline: true,
		Filter: func(node *html.Node) bool {
			return hasClass(node, "ztext-math")
		},
		Render: func(content string, node *html.Node) string {
			tex := dom.GetAttributeOr(node, "data-tex", "")
			if tex == "" {
				return content
			}
			tex = strings.TrimRight(tex, `\`)
			if isBlockMath(tex) {
				return "\n\n$$\n" + tex + "\n$$\n\n"
			}
			return "$" + tex + "$"
		},
	}
}

// isBlockMath classifies a formula as block-level when it is long or
// contains a line continuation or environment marker.
func isBlockMath(tex string) bool {
	return utf8.RuneCountInString(tex) > blockMathThreshold ||
		strings.Contains(tex, `\\`) ||
		strings.Contains(tex, `\begin`) ||
		strings.Contains(tex, `\end`)
}
