package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/dochub"
	"github.com/fwojciec/dochub/yaml"
)

// Run executes the import command. Documents before a failing entry stay
// registered.
func (c *ImportCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()

	docs, err := yaml.ReadManifest(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dochub.ErrorMessage(err))
		return err
	}

	added, skipped := 0, 0
	for _, doc := range docs {
		err := deps.Documents.CreateDocument(deps.Ctx, doc)
		if err != nil && c.SkipExisting && dochub.ErrorCode(err) == dochub.ECONFLICT {
			fmt.Fprintf(deps.Stdout, "  skip %s: already registered\n", doc.ID)
			skipped++
			continue
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", dochub.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "  added %s\n", doc.ID)
		added++
	}

	fmt.Fprintf(deps.Stdout, "Imported %d documents (%d skipped)\n", added, skipped)
	return nil
}
