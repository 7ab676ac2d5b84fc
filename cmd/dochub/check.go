package main

import (
	"fmt"

	"github.com/fwojciec/dochub"
)

// Run executes the check command. It fails if any location cannot be read
// or has an unclosed fence.
func (c *CheckCmd) Run(deps *Dependencies) error {
	locations := c.Locations
	if len(locations) == 0 {
		docs, err := deps.Documents.FindDocuments(deps.Ctx, dochub.DocumentFilter{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", dochub.ErrorMessage(err))
			return err
		}
		for _, d := range docs {
			if !d.IsHTML() {
				locations = append(locations, d.MarkdownPath)
			}
		}
	}

	problems := 0
	for _, loc := range locations {
		markdown, err := deps.Fetcher.Fetch(deps.Ctx, loc)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "%s: %v\n", loc, err)
			problems++
			continue
		}
		for _, u := range dochub.CheckFences(markdown) {
			fmt.Fprintf(deps.Stdout, "%s:%d: unclosed fence %s\n", loc, u.Line, u.Text)
			problems++
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d problems in %d documents", problems, len(locations))
	}
	fmt.Fprintf(deps.Stdout, "Checked %d documents: no problems\n", len(locations))
	return nil
}
