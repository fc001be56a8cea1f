package papersum_test

import (
	"testing"

	"github.com/fwojciec/papersum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionSpec_StopSet(t *testing.T) {
	t.Parallel()

	t.Run("uses defaults when stop headers are nil", func(t *testing.T) {
		t.Parallel()

		spec := papersum.SectionSpec{Field: papersum.FieldResults, Headers: []string{"Results"}}

		set := spec.StopSet()

		assert.Equal(t, append(append([]string{}, papersum.DefaultStopHeaders...), "Results"), set)
	})

	t.Run("includes own headers after explicit stop headers", func(t *testing.T) {
		t.Parallel()

		spec := papersum.SectionSpec{
			Field:       papersum.FieldDiscussion,
			Headers:     []string{"Discussion", "Analysis"},
			StopHeaders: []string{"Conclusion"},
		}

		assert.Equal(t, []string{"Conclusion", "Discussion", "Analysis"}, spec.StopSet())
	})

	t.Run("empty non-nil stop headers disable defaults", func(t *testing.T) {
		t.Parallel()

		spec := papersum.SectionSpec{
			Field:       papersum.FieldDiscussion,
			Headers:     []string{"Discussion"},
			StopHeaders: []string{},
		}

		assert.Equal(t, []string{"Discussion"}, spec.StopSet())
	})
}

func TestSectionSpec_Limit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, papersum.DefaultMaxSectionLength, (&papersum.SectionSpec{}).Limit())
	assert.Equal(t, 42, (&papersum.SectionSpec{MaxLength: 42}).Limit())
}

func TestSectionSpec_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    papersum.SectionSpec
		wantErr bool
	}{
		{"valid", papersum.SectionSpec{Field: "results", Headers: []string{"Results"}}, false},
		{"unknown field", papersum.SectionSpec{Field: "appendix", Headers: []string{"Appendix"}}, true},
		{"title is not a section", papersum.SectionSpec{Field: "title", Headers: []string{"Title"}}, true},
		{"no headers", papersum.SectionSpec{Field: "results"}, true},
		{"blank header", papersum.SectionSpec{Field: "results", Headers: []string{" "}}, true},
		{"negative max length", papersum.SectionSpec{Field: "results", Headers: []string{"Results"}, MaxLength: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.spec.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, papersum.EINVALID, papersum.ErrorCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDefaultSections(t *testing.T) {
	t.Parallel()

	sections := papersum.DefaultSections()

	require.Len(t, sections, 6)
	fields := make([]string, 0, len(sections))
	for _, s := range sections {
		require.NoError(t, s.Validate())
		fields = append(fields, s.Field)
	}
	assert.Equal(t, []string{"introduction", "methodology", "dataset", "results", "discussion", "conclusion"}, fields)

	// Callers may modify the returned table.
	sections[0].Headers[0] = "Changed"
	assert.Equal(t, "Introduction", papersum.DefaultSections()[0].Headers[0])
}

func TestSectionNotFound(t *testing.T) {
	t.Parallel()

	got := papersum.SectionNotFound([]string{"Results", "Evaluation"})

	assert.Equal(t, "Section not found: Results, Evaluation", got)
}

func TestIsSectionNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, papersum.IsSectionNotFound(papersum.SectionNotFound([]string{"Methods"})))
	assert.False(t, papersum.IsSectionNotFound("We trained a network."))
}
