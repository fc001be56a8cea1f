// Package yaml loads papersum configuration from YAML documents: stop-word
// lists and section tables.
package yaml

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/fwojciec/papersum"
	"gopkg.in/yaml.v3"
)

//go:embed english.yaml
var englishStopwords []byte

// stoplist is the on-disk format of a stop-word list.
type stoplist struct {
	Terms []string `yaml:"terms"`
}

// DefaultStopwords returns the built-in English stop-word list. The list is
// parsed on first use and shared afterwards.
var DefaultStopwords = sync.OnceValues(func() (*papersum.Stopwords, error) {
	return ParseStopwords(englishStopwords)
})

// LoadStopwords reads a stop-word list from a YAML file.
func LoadStopwords(path string) (*papersum.Stopwords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stop words: %w", err)
	}
	return ParseStopwords(data)
}

// ParseStopwords decodes a stop-word list of the form "terms: [...]".
func ParseStopwords(data []byte) (*papersum.Stopwords, error) {
	var sl stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, papersum.Errorf(papersum.EINVALID, "invalid stop word list: %v", err)
	}
	return papersum.NewStopwords(sl.Terms), nil
}
