package heuristic

import (
	"context"
	"errors"
	"os"

	"github.com/fwojciec/papersum"
)

// Ensure Summarizer implements papersum.Summarizer at compile time.
var _ papersum.Summarizer = (*Summarizer)(nil)

// Summarizer builds a structured summary from the text of a paper file.
// It holds only immutable configuration and is safe for concurrent use.
type Summarizer struct {
	source        papersum.PageSource
	keywords      papersum.KeywordExtractor
	sections      []papersum.SectionSpec
	topicKeywords int
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithSections replaces the section table.
// Defaults to papersum.DefaultSections() if not specified.
func WithSections(sections []papersum.SectionSpec) Option {
	return func(s *Summarizer) {
		s.sections = sections
	}
}

// WithTopicKeywords sets the number of topic keywords in a summary.
// Defaults to papersum.DefaultTopicKeywords if not specified.
func WithTopicKeywords(n int) Option {
	return func(s *Summarizer) {
		s.topicKeywords = n
	}
}

// NewSummarizer creates a Summarizer reading pages from source and ranking
// topic keywords with keywords.
func NewSummarizer(source papersum.PageSource, keywords papersum.KeywordExtractor, opts ...Option) *Summarizer {
	s := &Summarizer{
		source:        source,
		keywords:      keywords,
		sections:      papersum.DefaultSections(),
		topicKeywords: papersum.DefaultTopicKeywords,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize extracts the structured summary of the paper at path.
// A panic while decoding or extracting is reported as EDECODE.
func (s *Summarizer) Summarize(ctx context.Context, path string) (summary *papersum.Summary, err error) {
	if _, err := os.Stat(path); err != nil {
		return nil, papersum.Errorf(papersum.ENOTFOUND, "File not found: %s", path)
	}

	defer func() {
		if r := recover(); r != nil {
			summary, err = nil, papersum.Errorf(papersum.EDECODE, "Error processing PDF: %v", r)
		}
	}()

	pages, err := s.pages(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.SummarizeText(papersum.Normalize(pages)), nil
}

// SummarizeText extracts the structured summary of already normalized text.
// Body sections absent from the section table hold their default not-found
// sentinel.
func (s *Summarizer) SummarizeText(text string) *papersum.Summary {
	summary := &papersum.Summary{
		Title:         Title(text),
		Authors:       Authors(text),
		Abstract:      Abstract(text),
		Keywords:      Keywords(text),
		TopicKeywords: s.keywords.Extract(text, s.topicKeywords),
	}
	for _, spec := range papersum.DefaultSections() {
		summary.SetSection(spec.Field, papersum.SectionNotFound(spec.Headers))
	}
	for _, spec := range s.sections {
		summary.SetSection(spec.Field, Locate(text, spec))
	}
	return summary
}

// pages reads the page texts, reporting every failure of the page source
// as EDECODE.
func (s *Summarizer) pages(ctx context.Context, path string) ([]string, error) {
	pages, err := s.source.Pages(ctx, path)
	if err == nil {
		return pages, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return nil, err
	}
	if papersum.ErrorCode(err) == papersum.EINVALID {
		return nil, err
	}
	return nil, papersum.Errorf(papersum.EDECODE, "Error processing PDF: %s", decodeMessage(err))
}

// decodeMessage prefers the message of an application error over its
// formatted representation.
func decodeMessage(err error) string {
	var e *papersum.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
