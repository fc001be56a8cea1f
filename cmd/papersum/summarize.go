package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/papersum"
	"golang.org/x/sync/errgroup"
)

// Run executes the summarize command. Files are summarized independently;
// a failing file yields an error record in its slot. Output preserves the
// input order: a single object for one file, an array otherwise.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	results := make([]any, len(c.Files))
	errs := make([]error, len(c.Files))

	var g errgroup.Group
	g.SetLimit(max(c.Concurrency, 1))
	for i, path := range c.Files {
		g.Go(func() error {
			summary, err := deps.Summarizer.Summarize(deps.Ctx, path)
			if err != nil {
				results[i], errs[i] = papersum.ErrorRecord(err), err
				return nil
			}
			results[i] = summary
			return nil
		})
	}
	_ = g.Wait()

	var out any = results
	if len(results) == 1 {
		out = results[0]
	}
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}

	var failed int
	for i, err := range errs {
		if err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.Files[i], papersum.ErrorMessage(err))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be summarized", failed, len(c.Files))
	}
	return nil
}
