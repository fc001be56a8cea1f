package main

import (
	"fmt"

	"github.com/fwojciec/papersum"
)

// Run executes the keywords command.
func (c *KeywordsCmd) Run(deps *Dependencies) error {
	pages, err := deps.Pages.Pages(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papersum.ErrorMessage(err))
		return err
	}

	words := deps.Keywords.Extract(papersum.Normalize(pages), c.Count)
	if len(words) == 0 {
		fmt.Fprintln(deps.Stdout, "No keywords found.")
		return nil
	}
	for _, w := range words {
		fmt.Fprintln(deps.Stdout, w)
	}
	return nil
}
