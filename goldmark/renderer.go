// Package goldmark renders documents to HTML with the goldmark library.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/dochub"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Ensure Renderer implements dochub.Renderer at compile time.
var _ dochub.Renderer = (*Renderer)(nil)

// maxAnchoredLevel is the deepest heading level that receives an id.
const maxAnchoredLevel = 4

// Renderer converts markdown to an HTML fragment. Raw HTML in the source is
// omitted from the output.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
			),
		),
	}
}

// Render converts markdown to HTML. Headings of levels 1-4 get the same
// anchors dochub.ParseSections assigns to them.
func (r *Renderer) Render(markdown string) (string, error) {
	src := []byte(markdown)
	doc := r.md.Parser().Parse(text.NewReader(src))

	var slugger dochub.Slugger
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level > maxAnchoredLevel {
			return ast.WalkContinue, nil
		}
		id := slugger.Slug(dochub.CleanHeading(headingSource(heading, src)))
		heading.SetAttributeString("id", []byte(id))
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// headingSource returns the raw markdown of the heading's inline content.
// Slugs are taken from the source so that link targets and code spans count
// the same way they do for the section parser.
func headingSource(heading *ast.Heading, src []byte) string {
	var buf bytes.Buffer
	lines := heading.Lines()
	for i := 0; i < lines.Len(); i++ {
		if i > 0 {
			buf.WriteByte(' ')
		}
		line := lines.At(i)
		buf.Write(bytes.TrimSpace(line.Value(src)))
	}
	return buf.String()
}
