package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/papersum"
	"github.com/fwojciec/papersum/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageSource_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ papersum.PageSource = &mock.PageSource{}
}

func TestPageSource_Pages(t *testing.T) {
	t.Parallel()

	t.Run("delegates to PagesFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		s := &mock.PageSource{
			PagesFn: func(_ context.Context, path string) ([]string, error) {
				calledWith = path
				return []string{"page one"}, nil
			},
		}

		pages, err := s.Pages(context.Background(), "paper.pdf")

		require.NoError(t, err)
		assert.Equal(t, []string{"page one"}, pages)
		assert.Equal(t, "paper.pdf", calledWith)
	})
}
