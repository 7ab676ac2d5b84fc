package mock

import "github.com/fwojciec/dochub"

var _ dochub.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of dochub.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
