package main

import (
	"fmt"

	"github.com/fwojciec/dochub"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	doc := &dochub.Document{
		ID:           c.ID,
		Title:        c.Title,
		MarkdownPath: c.Markdown,
		PagePath:     c.Page,
		Color:        c.Color,
		Format:       c.Format,
	}

	if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dochub.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added document %q (%s)\n", doc.Title, doc.ID)
	return nil
}
