package dochub

// Renderer turns markdown into an HTML fragment. Headings of levels 1-4 carry
// id attributes produced by a Slugger, so they resolve the anchors of the
// sections ParseSections returns for the same markdown.
type Renderer interface {
	Render(markdown string) (string, error)
}
