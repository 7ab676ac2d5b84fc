package main

import (
	"fmt"

	"github.com/fwojciec/dochub"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if err := deps.Search.EnsureIndex(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dochub.ErrorMessage(err))
		return err
	}

	results, err := deps.Search.Search(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dochub.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}

	if c.Limit > 0 && len(results) > c.Limit {
		results = results[:c.Limit]
	}

	for _, r := range results {
		s := r.Section
		title := ""
		if s.Document != nil {
			title = s.Document.Title
		}
		fmt.Fprintf(deps.Stdout, "%4d  %s › %s\n", r.Score, title, s.Heading)
		fmt.Fprintf(deps.Stdout, "      %s\n", s.URL())
		if snippet := dochub.Snippet(s.Content, c.Query, dochub.SnippetLength); snippet != "" {
			fmt.Fprintf(deps.Stdout, "      %s\n", snippet)
		}
	}

	return nil
}
