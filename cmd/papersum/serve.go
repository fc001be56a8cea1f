package main

import (
	"fmt"

	"github.com/fwojciec/papersum/fs"
	papersumhttp "github.com/fwojciec/papersum/http"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := papersumhttp.NewServer()
	s.Addr = c.Addr
	if deps.Logger != nil {
		s.Logger = deps.Logger
	}
	s.Summarizer = deps.Summarizer
	s.Classifier = deps.Classifier
	s.Searcher = deps.Searcher
	s.Uploads = fs.NewUploadStore(c.UploadDir, deps.Router.Supports)

	if err := s.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", s.URL())

	<-deps.Ctx.Done()
	return s.Close()
}
