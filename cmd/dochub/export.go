package main

import (
	"fmt"

	"github.com/fwojciec/dochub"
	"github.com/fwojciec/dochub/yaml"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, dochub.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dochub.ErrorMessage(err))
		return err
	}
	return yaml.WriteManifest(deps.Stdout, docs)
}
