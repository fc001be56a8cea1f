package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/papersum"
	"gopkg.in/yaml.v3"
)

// sectionTable is the on-disk format of a section table.
type sectionTable struct {
	Sections []sectionEntry `yaml:"sections"`
}

type sectionEntry struct {
	Field       string   `yaml:"field"`
	Headers     []string `yaml:"headers"`
	StopHeaders []string `yaml:"stop_headers"`
	MaxLength   int      `yaml:"max_length"`
}

// LoadSections reads a section table from a YAML file.
func LoadSections(path string) ([]papersum.SectionSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sections: %w", err)
	}
	return ParseSections(data)
}

// ParseSections decodes a section table and merges it onto
// papersum.DefaultSections: every entry replaces the default spec of its
// field, fields without an entry keep their defaults. Unknown keys and
// unknown fields are rejected with EINVALID.
func ParseSections(data []byte) ([]papersum.SectionSpec, error) {
	var table sectionTable
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil && !errors.Is(err, io.EOF) {
		return nil, papersum.Errorf(papersum.EINVALID, "invalid section table: %v", err)
	}

	sections := papersum.DefaultSections()
	index := make(map[string]int, len(sections))
	for i, s := range sections {
		index[s.Field] = i
	}

	for _, e := range table.Sections {
		spec := papersum.SectionSpec{
			Field:       e.Field,
			Headers:     e.Headers,
			StopHeaders: e.StopHeaders,
			MaxLength:   e.MaxLength,
		}
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		sections[index[spec.Field]] = spec
	}
	return sections, nil
}
