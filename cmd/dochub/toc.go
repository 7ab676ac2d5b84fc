package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/dochub"
)

// Run executes the toc command.
func (c *TOCCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'dochub list' to see registered documents.\n", dochub.ErrorMessage(err))
		return err
	}

	if err := deps.Search.EnsureIndex(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dochub.ErrorMessage(err))
		return err
	}

	sections, err := deps.Search.FindSections(deps.Ctx, doc.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dochub.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s (%d min read)\n", doc.Title, dochub.ReadingTime(sections))

	entries := dochub.FilterTOC(dochub.BuildTOC(sections), c.Filter)
	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "  No headings.")
		return nil
	}
	printTOC(deps, entries)

	return nil
}

func printTOC(deps *Dependencies, entries []*dochub.TOCEntry) {
	for _, e := range entries {
		indent := strings.Repeat("  ", e.Level)
		fmt.Fprintf(deps.Stdout, "%s%s  #%s\n", indent, e.Heading, e.Anchor)
		printTOC(deps, e.Children)
	}
}
