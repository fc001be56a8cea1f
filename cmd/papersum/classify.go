package main

import (
	"encoding/json"
)

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	scores := deps.Classifier.Classify(c.Text, c.Topics)
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(scores)
}
