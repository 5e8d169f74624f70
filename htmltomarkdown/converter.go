// Package htmltomarkdown provides the rule-based HTML-to-Markdown engine.
// It wraps html-to-markdown with an ordered list of site-specific override
// rules that take precedence over the generic element handling: rules are
// tried in registration order and the first whose filter matches a node
// wins; nodes matching no rule fall through to the standard conversion.
package htmltomarkdown

import (
	"bytes"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
)

// Ensure Engine implements mdminer.Converter at compile time.
var _ mdminer.Converter = (*Engine)(nil)

// Rule is a named override for converting one element kind. Filter decides
// whether the rule fires on a node (nil means always); Render receives the
// node's already-converted child content plus the raw node and returns a
// literal replacement, so a rule may ignore the recursive result entirely
// (code blocks read raw text instead).
type Rule struct {
	Name   string
	Tag    string
	Inline bool
	Filter func(node *html.Node) bool
	Render func(content string, node *html.Node) string
}

// Engine converts HTML to Markdown. An Engine is stateless with respect to
// its input: it parses a fresh tree per call and never mutates caller data.
type Engine struct {
	conv   *converter.Converter
	rules  []Rule
	remove []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules appends override rules. Order is precedence order: the first
// matching rule wins for a node.
func WithRules(rules ...Rule) Option {
	return func(e *Engine) {
		e.rules = append(e.rules, rules...)
	}
}

// WithRemoveTags deletes matched elements and their subtrees from output
// entirely (used to strip style/noscript).
func WithRemoveTags(tags ...string) Option {
	return func(e *Engine) {
		e.remove = append(e.remove, tags...)
	}
}

// NewEngine creates an Engine with the given overrides layered on top of
// the generic commonmark conversion.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	e.conv = converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)

	// One renderer per element name, dispatching to that tag's rules in
	// registration order. Registered at early priority so overrides are
	// consulted before the generic plugin renderers.
	byTag := make(map[string][]Rule)
	var tags []string
	for _, rule := range e.rules {
		if _, ok := byTag[rule.Tag]; !ok {
			tags = append(tags, rule.Tag)
		}
		byTag[rule.Tag] = append(byTag[rule.Tag], rule)
	}
	for _, tag := range tags {
		rules := byTag[tag]
		tagType := converter.TagTypeBlock
		if rules[0].Inline {
			tagType = converter.TagTypeInline
		}
		e.conv.Register.RendererFor(tag, tagType, dispatch(rules), converter.PriorityEarly)
	}

	return e
}

// dispatch returns a renderer that tries rules in order and yields to the
// next registered renderer when none match.
func dispatch(rules []Rule) converter.HandleRenderFunc {
	return func(ctx converter.Context, w converter.Writer, node *html.Node) converter.RenderStatus {
		for _, rule := range rules {
			if rule.Filter != nil && !rule.Filter(node) {
				continue
			}
			var children bytes.Buffer
			ctx.RenderChildNodes(ctx, &children, node)
			_, _ = w.WriteString(rule.Render(children.String(), node))
			return converter.RenderSuccess
		}
		return converter.RenderTryNext
	}
}

// Convert transforms HTML content into Markdown.
func (e *Engine) Convert(htmlInput string) (string, error) {
	if strings.TrimSpace(htmlInput) == "" {
		return "", mdminer.Errorf(mdminer.EINVALID, "empty HTML input")
	}

	if len(e.remove) > 0 {
		stripped, err := stripTags(htmlInput, e.remove)
		if err != nil {
			return "", err
		}
		htmlInput = stripped
	}

	result, err := e.conv.ConvertString(htmlInput)
	if err != nil {
		return "", err
	}

	return result, nil
}

// stripTags removes matched elements and their subtrees before conversion.
// The input string is left untouched; a private tree is parsed and reserialized.
func stripTags(htmlInput string, tags []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlInput))
	if err != nil {
		return "", mdminer.Errorf(mdminer.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(strings.Join(tags, ", ")).Remove()

	stripped, err := doc.Find("body").Html()
	if err != nil {
		return "", mdminer.Errorf(mdminer.EINVALID, "failed to serialize HTML: %v", err)
	}
	return stripped, nil
}
