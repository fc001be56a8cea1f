package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/papersum"
	"github.com/fwojciec/papersum/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Pages      papersum.PageSource
	Router     *fs.Router
	Summarizer papersum.Summarizer
	Keywords   papersum.KeywordExtractor
	Classifier papersum.Classifier
	Searcher   papersum.PaperSearcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Stopwords    string `name:"stopwords" env:"PAPERSUM_STOPWORDS" type:"path" help:"YAML stop-word list (default: built-in English list)"`
	Sections     string `name:"sections" env:"PAPERSUM_SECTIONS" type:"path" help:"YAML section header table merged onto the defaults"`
	Engine       string `enum:"pdf,pdfcpu" default:"pdf" env:"PAPERSUM_ENGINE" help:"PDF text engine (pdf, pdfcpu)"`
	SearchAPIKey string `name:"search-api-key" env:"PAPERSUM_SEARCH_API_KEY" help:"Semantic Scholar API key"`
	Verbose      bool   `short:"v" help:"Log every extraction, summary, classification and search"`

	Summarize SummarizeCmd `cmd:"" help:"Summarize one or more papers as JSON"`
	Keywords  KeywordsCmd  `cmd:"" help:"Print the most frequent keywords of a paper"`
	Classify  ClassifyCmd  `cmd:"" help:"Score text against candidate topics"`
	Search    SearchCmd    `cmd:"" help:"Search Semantic Scholar for papers"`
	Serve     ServeCmd     `cmd:"" help:"Run the HTTP server"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	Files       []string `arg:"" type:"path" help:"Paper files (.pdf or .txt)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent summary limit"`
}

// KeywordsCmd is the "keywords" subcommand.
type KeywordsCmd struct {
	File  string `arg:"" type:"path" help:"Paper file (.pdf or .txt)"`
	Count int    `short:"n" default:"10" help:"Number of keywords"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	Text   string   `arg:"" help:"Text to classify"`
	Topics []string `short:"t" name:"topic" required:"" help:"Candidate topic (repeatable)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string `default:":8080" env:"PAPERSUM_ADDR" help:"Listen address"`
	UploadDir string `default:"uploads" env:"PAPERSUM_UPLOAD_DIR" type:"path" help:"Directory for uploaded papers"`
}
