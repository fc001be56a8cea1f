package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/papersum"
	"github.com/fwojciec/papersum/frequency"
	"github.com/fwojciec/papersum/fs"
	"github.com/fwojciec/papersum/heuristic"
	papersumhttp "github.com/fwojciec/papersum/http"
	"github.com/fwojciec/papersum/pdf"
	"github.com/fwojciec/papersum/pdfcpu"
	papersumslog "github.com/fwojciec/papersum/slog"
	"github.com/fwojciec/papersum/tfidf"
	"github.com/fwojciec/papersum/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. Nil services are built from flags.
	Searcher papersum.PaperSearcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("papersum"),
		kong.Description("Summarize academic papers and classify text by topic."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'papersum --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := m.wire(cli, deps); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", papersum.ErrorMessage(err))
		return err
	}

	return kongCtx.Run(deps)
}

// wire builds the services selected by the global flags.
func (m *Main) wire(cli *CLI, deps *Dependencies) error {
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	stopwords, err := loadStopwords(cli.Stopwords)
	if err != nil {
		return err
	}

	sections := papersum.DefaultSections()
	if cli.Sections != "" {
		if sections, err = yaml.LoadSections(cli.Sections); err != nil {
			return err
		}
	}

	var pdfSource papersum.PageSource = pdf.NewPageSource()
	if cli.Engine == "pdfcpu" {
		pdfSource = pdfcpu.NewPageSource()
	}
	deps.Router = fs.NewRouter()
	deps.Router.Register(".pdf", pdfSource)
	deps.Router.Register(".txt", fs.NewTextSource())

	deps.Pages = deps.Router
	deps.Keywords = frequency.NewExtractor(stopwords)
	deps.Classifier = tfidf.NewClassifier()
	deps.Searcher = m.Searcher
	if deps.Searcher == nil {
		deps.Searcher = papersumhttp.NewSearchClient(papersumhttp.WithAPIKey(cli.SearchAPIKey))
	}

	if cli.Verbose {
		deps.Pages = papersumslog.NewLoggingPageSource(deps.Pages, deps.Logger)
		deps.Classifier = papersumslog.NewLoggingClassifier(deps.Classifier, deps.Logger)
		deps.Searcher = papersumslog.NewLoggingSearcher(deps.Searcher, deps.Logger)
	}

	deps.Summarizer = heuristic.NewSummarizer(deps.Pages, deps.Keywords, heuristic.WithSections(sections))
	if cli.Verbose {
		deps.Summarizer = papersumslog.NewLoggingSummarizer(deps.Summarizer, deps.Logger)
	}
	return nil
}

func loadStopwords(path string) (*papersum.Stopwords, error) {
	if path == "" {
		return yaml.DefaultStopwords()
	}
	return yaml.LoadStopwords(path)
}
