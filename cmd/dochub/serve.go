package main

import (
	"fmt"
	"math"

	dochubhttp "github.com/fwojciec/dochub/http"
	"golang.org/x/time/rate"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := dochubhttp.NewServer()
	s.Addr = c.Addr
	s.Logger = deps.Logger
	s.SearchService = deps.Search
	s.DocumentService = deps.Documents
	s.Fetcher = deps.Fetcher
	s.Converter = deps.Converter
	s.Renderer = deps.Renderer
	if c.SearchRPS > 0 {
		s.Limiter = rate.NewLimiter(rate.Limit(c.SearchRPS), int(math.Ceil(2*c.SearchRPS)))
	}

	if err := s.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", s.URL())

	if c.Warm {
		go func() {
			if err := deps.Search.EnsureIndex(deps.Ctx); err != nil {
				deps.Logger.Warn("warm index", "err", err)
			}
		}()
	}

	<-deps.Ctx.Done()
	fmt.Fprintln(deps.Stdout, "Shutting down")
	return s.Close()
}
