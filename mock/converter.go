package mock

import "github.com/fwojciec/dochub"

var _ dochub.Converter = (*Converter)(nil)

// Converter is a mock implementation of dochub.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
