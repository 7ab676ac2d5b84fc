// Package htmltomarkdown converts HTML documents to markdown so they can be
// split into sections like any markdown source.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dochub"
)

// Ensure Converter implements dochub.Converter at compile time.
var _ dochub.Converter = (*Converter)(nil)

// chromeSelector matches page furniture that never belongs to a document.
const chromeSelector = "nav, header, footer, aside, script, style, noscript, [role=navigation]"

// Converter wraps html-to-markdown to convert HTML documents to Markdown.
// Full pages are narrowed to their main content first.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", dochub.Errorf(dochub.EINVALID, "empty HTML input")
	}

	body, err := mainContent(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(body)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result) + "\n", nil
}

// mainContent returns the HTML of the page's <main> or <article> element
// when present, otherwise the whole body, with navigation chrome removed.
func mainContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	sel := doc.Find("main").First()
	if sel.Length() == 0 {
		sel = doc.Find("article").First()
	}
	if sel.Length() == 0 {
		sel = doc.Find("body")
	}
	sel.Find(chromeSelector).Remove()

	return sel.Html()
}
