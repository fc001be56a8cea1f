package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/papersum"
	"github.com/fwojciec/papersum/mock"
	pslog "github.com/fwojciec/papersum/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestLoggingPageSource_Pages(t *testing.T) {
	t.Parallel()

	t.Run("logs page count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageSource{
			PagesFn: func(ctx context.Context, path string) ([]string, error) {
				return []string{"one", "two", "three"}, nil
			},
		}

		source := pslog.NewLoggingPageSource(inner, textLogger(&buf))
		pages, err := source.Pages(context.Background(), "paper.pdf")

		require.NoError(t, err)
		assert.Len(t, pages, 3)
		output := buf.String()
		assert.Contains(t, output, "extract pages")
		assert.Contains(t, output, "path=paper.pdf")
		assert.Contains(t, output, "pages=3")
		assert.Contains(t, output, "duration=")
	})
}

func TestLoggingSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("logs title and missing sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, path string) (*papersum.Summary, error) {
				return &papersum.Summary{
					Title:         "Graph Networks",
					Introduction:  "We study graphs.",
					Methodology:   "We trained a model.",
					Dataset:       "ImageNet.",
					Results:       papersum.SectionNotFound([]string{"Results"}),
					Discussion:    papersum.SectionNotFound([]string{"Discussion"}),
					Conclusion:    "It works.",
					TopicKeywords: []string{"graph", "networks"},
				}, nil
			},
		}

		summarizer := pslog.NewLoggingSummarizer(inner, logger)
		summary, err := summarizer.Summarize(context.Background(), "paper.pdf")

		require.NoError(t, err)
		assert.Equal(t, "Graph Networks", summary.Title)
		output := buf.String()
		assert.Contains(t, output, "summarize")
		assert.Contains(t, output, "title=\"Graph Networks\"")
		assert.Contains(t, output, "missing=2")
		assert.Contains(t, output, "topic_keywords=2")
	})

	t.Run("counts only not-found sections as missing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, path string) (*papersum.Summary, error) {
				return &papersum.Summary{
					Introduction: "",
					Methodology:  papersum.SectionNotFound([]string{"Method"}),
					Dataset:      "ImageNet.",
					Results:      "It works.",
					Discussion:   "We discuss.",
					Conclusion:   "We conclude.",
				}, nil
			},
		}

		_, err := pslog.NewLoggingSummarizer(inner, textLogger(&buf)).Summarize(context.Background(), "paper.pdf")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "missing=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, path string) (*papersum.Summary, error) {
				return nil, errors.New("broken xref")
			},
		}

		_, err := pslog.NewLoggingSummarizer(inner, logger).Summarize(context.Background(), "paper.pdf")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "path=paper.pdf")
		assert.Contains(t, output, "err=\"broken xref\"")
		assert.NotContains(t, output, "missing=")
	})
}

func TestLoggingClassifier_Classify(t *testing.T) {
	t.Parallel()

	t.Run("logs best topic", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Classifier{
			ClassifyFn: func(text string, topics []string) []papersum.TopicScore {
				return []papersum.TopicScore{{Topic: "ML", Score: 0.5}, {Topic: "Biology", Score: 0}}
			},
		}

		scores := pslog.NewLoggingClassifier(inner, textLogger(&buf)).Classify("text", []string{"ML", "Biology"})

		assert.Len(t, scores, 2)
		output := buf.String()
		assert.Contains(t, output, "classify")
		assert.Contains(t, output, "topics=2")
		assert.Contains(t, output, "best=ML")
	})

	t.Run("logs none when no topics", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Classifier{
			ClassifyFn: func(text string, topics []string) []papersum.TopicScore { return nil },
		}

		pslog.NewLoggingClassifier(inner, textLogger(&buf)).Classify("text", nil)

		assert.Contains(t, buf.String(), "best=(none)")
	})
}

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PaperSearcher{
			SearchFn: func(ctx context.Context, query string) ([]papersum.Paper, error) {
				return []papersum.Paper{{Title: "A"}}, nil
			},
		}

		papers, err := pslog.NewLoggingSearcher(inner, logger).Search(context.Background(), "transformers")

		require.NoError(t, err)
		assert.Len(t, papers, 1)
		output := buf.String()
		assert.Contains(t, output, "paper search")
		assert.Contains(t, output, "query=transformers")
		assert.Contains(t, output, "count=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PaperSearcher{
			SearchFn: func(ctx context.Context, query string) ([]papersum.Paper, error) {
				return nil, errors.New("HTTP 429")
			},
		}

		_, err := pslog.NewLoggingSearcher(inner, logger).Search(context.Background(), "transformers")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"HTTP 429\"")
	})
}
