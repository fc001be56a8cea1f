package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/papersum"
	main "github.com/fwojciec/papersum/cmd/papersum"
	"github.com/fwojciec/papersum/fs"
	"github.com/fwojciec/papersum/mock"
	"github.com/fwojciec/papersum/tfidf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints results in input order", func(t *testing.T) {
		t.Parallel()

		summarizer := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, path string) (*papersum.Summary, error) {
				// Finish in reverse order of submission.
				if path == "a.pdf" {
					time.Sleep(20 * time.Millisecond)
				}
				return &papersum.Summary{Title: strings.TrimSuffix(path, ".pdf")}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Summarizer: summarizer,
		}

		cmd := &main.SummarizeCmd{Files: []string{"a.pdf", "b.pdf", "c.pdf"}, Concurrency: 3}
		err := cmd.Run(deps)

		require.NoError(t, err)
		var out []map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		require.Len(t, out, 3)
		assert.Equal(t, "a", out[0]["title"])
		assert.Equal(t, "b", out[1]["title"])
		assert.Equal(t, "c", out[2]["title"])
	})

	t.Run("keeps going after a failure", func(t *testing.T) {
		t.Parallel()

		summarizer := &mock.Summarizer{
			SummarizeFn: func(_ context.Context, path string) (*papersum.Summary, error) {
				if path == "bad.pdf" {
					return nil, papersum.Errorf(papersum.EDECODE, "Error processing PDF: malformed")
				}
				return &papersum.Summary{Title: "ok"}, nil
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     stderr,
			Summarizer: summarizer,
		}

		cmd := &main.SummarizeCmd{Files: []string{"bad.pdf", "good.pdf"}, Concurrency: 1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 files")
		var out []map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		assert.Equal(t, map[string]any{"error": "Error processing PDF: malformed"}, out[0])
		assert.Equal(t, "ok", out[1]["title"])
		assert.Contains(t, stderr.String(), "bad.pdf: Error processing PDF: malformed")
	})

	t.Run("bounds concurrency", func(t *testing.T) {
		t.Parallel()

		var running, peak atomic.Int32
		summarizer := &mock.Summarizer{
			SummarizeFn: func(context.Context, string) (*papersum.Summary, error) {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				running.Add(-1)
				return &papersum.Summary{}, nil
			},
		}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     &bytes.Buffer{},
			Summarizer: summarizer,
		}

		cmd := &main.SummarizeCmd{Files: []string{"1", "2", "3", "4", "5", "6"}, Concurrency: 2}
		require.NoError(t, cmd.Run(deps))

		assert.LessOrEqual(t, peak.Load(), int32(2))
	})
}

func TestKeywordsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints keywords of normalized text", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageSource{
			PagesFn: func(context.Context, string) ([]string, error) {
				return []string{"trans-\nformer", "model"}, nil
			},
		}
		keywords := &mock.KeywordExtractor{
			ExtractFn: func(text string, n int) []string {
				assert.Equal(t, "transformer\nmodel\n", text)
				assert.Equal(t, 2, n)
				return []string{"transformer", "model"}
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Pages:    pages,
			Keywords: keywords,
		}

		err := (&main.KeywordsCmd{File: "paper.pdf", Count: 2}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "transformer\nmodel\n", stdout.String())
	})

	t.Run("returns page source error", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageSource{
			PagesFn: func(context.Context, string) ([]string, error) {
				return nil, papersum.Errorf(papersum.EINVALID, "unsupported file type")
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Pages:  pages,
		}

		err := (&main.KeywordsCmd{File: "paper.docx", Count: 2}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "unsupported file type")
	})
}

func TestClassifyCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:        context.Background(),
		Stdout:     stdout,
		Stderr:     &bytes.Buffer{},
		Classifier: tfidf.NewClassifier(),
	}

	err := (&main.ClassifyCmd{Text: "", Topics: []string{"ML"}}).Run(deps)

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, stdout.String())
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("no results", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Searcher: &mock.PaperSearcher{
				SearchFn: func(context.Context, string) ([]papersum.Paper, error) { return []papersum.Paper{}, nil },
			},
		}

		err := (&main.SearchCmd{Query: "zzz"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `No papers found for "zzz"`)
	})

	t.Run("search failure", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Searcher: &mock.PaperSearcher{
				SearchFn: func(context.Context, string) ([]papersum.Paper, error) { return nil, errors.New("HTTP 500") },
			},
		}

		err := (&main.SearchCmd{Query: "q"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Internal error.")
	})
}

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
		Router: fs.NewRouter(),
	}

	err := (&main.ServeCmd{Addr: "127.0.0.1:0", UploadDir: t.TempDir()}).Run(deps)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Listening on http://127.0.0.1:")
}
