package main

import (
	"fmt"

	"github.com/fwojciec/dochub"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return dochub.Errorf(dochub.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Documents.DeleteDocument(deps.Ctx, c.ID); err != nil {
		if dochub.ErrorCode(err) == dochub.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'dochub list' to see registered documents.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", dochub.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %q\n", c.ID)
	return nil
}
