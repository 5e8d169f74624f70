package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
	"github.com/HaoQiuji-Pavel/juejin-md-miner/htmltomarkdown"
)

// parsePage parses a page snapshot into a queryable document.
func parsePage(page *mdminer.Page) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, mdminer.Errorf(mdminer.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// wrap exposes a raw rule-engine node to goquery selectors.
func wrap(node *html.Node) *goquery.Document {
	return goquery.NewDocumentFromNode(node)
}

// hasClass reports whether an element node carries the given class.
func hasClass(node *html.Node, class string) bool {
	for _, attr := range node.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// pipeTableRule renders th/td cells into a pipe-delimited
// header/separator/body block. Each cell's inner markup is recursively
// converted with the given converter.
func pipeTableRule(cells mdminer.Converter) htmltomarkdown.Rule {
	return htmltomarkdown.Rule{
		Name: "pipeTable",
		Tag:  "table",
		Render: func(_ string, node *html.Node) string {
			doc := wrap(node)

			var headers []string
			doc.Find("th").Each(func(_ int, th *goquery.Selection) {
				headers = append(headers, convertCell(cells, th))
			})

			separators := make([]string, len(headers))
			for i := range separators {
				separators[i] = "---"
			}

			var rows []string
			doc.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
				var row []string
				tr.Find("td").Each(func(_ int, td *goquery.Selection) {
					row = append(row, convertCell(cells, td))
				})
				rows = append(rows, strings.Join(row, " | "))
			})

			return "\n\n" + strings.Join(headers, " | ") + "\n" +
				strings.Join(separators, " | ") + "\n" +
				strings.Join(rows, "\n") + "\n\n"
		},
	}
}

// convertCell converts one table cell's inner markup to Markdown, falling
// back to its plain text when conversion is not possible.
func convertCell(conv mdminer.Converter, cell *goquery.Selection) string {
	inner, err := cell.Html()
	if err != nil || strings.TrimSpace(inner) == "" {
		return strings.TrimSpace(cell.Text())
	}

	md, err := conv.Convert(inner)
	if err != nil {
		return strings.TrimSpace(cell.Text())
	}
	return strings.TrimSpace(md)
}
