package papersum_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/papersum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("always has the eleven keys", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(papersum.Summary{})
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Len(t, m, 11)
		for _, key := range []string{
			"title", "authors", "abstract", "keywords", "topic_keywords",
			"introduction", "methodology", "dataset", "results", "discussion", "conclusion",
		} {
			assert.Contains(t, m, key)
		}
	})

	t.Run("nil topic keywords encode as empty array", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&papersum.Summary{Title: "A Title"})
		require.NoError(t, err)

		assert.Contains(t, string(data), `"topic_keywords":[]`)
	})

	t.Run("keeps topic keywords in order", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(papersum.Summary{TopicKeywords: []string{"graph", "neural"}})
		require.NoError(t, err)

		assert.Contains(t, string(data), `"topic_keywords":["graph","neural"]`)
	})
}

func TestSummary_SetSection(t *testing.T) {
	t.Parallel()

	var s papersum.Summary

	assert.True(t, s.SetSection(papersum.FieldIntroduction, "intro"))
	assert.True(t, s.SetSection(papersum.FieldMethodology, "method"))
	assert.True(t, s.SetSection(papersum.FieldDataset, "data"))
	assert.True(t, s.SetSection(papersum.FieldResults, "results"))
	assert.True(t, s.SetSection(papersum.FieldDiscussion, "discussion"))
	assert.True(t, s.SetSection(papersum.FieldConclusion, "conclusion"))
	assert.False(t, s.SetSection(papersum.FieldTitle, "nope"))

	assert.Equal(t, "intro", s.Introduction)
	assert.Equal(t, "method", s.Methodology)
	assert.Equal(t, "data", s.Dataset)
	assert.Equal(t, "results", s.Results)
	assert.Equal(t, "discussion", s.Discussion)
	assert.Equal(t, "conclusion", s.Conclusion)
	assert.Empty(t, s.Title)
}
