package main

import (
	"fmt"

	"github.com/fwojciec/papersum"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	papers, err := deps.Searcher.Search(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", papersum.ErrorMessage(err))
		return err
	}

	if len(papers) == 0 {
		fmt.Fprintf(deps.Stdout, "No papers found for %q.\n", c.Query)
		return nil
	}

	for i, p := range papers {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", i+1, p.Title, p.URL)
	}
	return nil
}
