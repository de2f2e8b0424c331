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
	"github.com/fwojciec/grader"
	"github.com/fwojciec/grader/fs"
	"github.com/fwojciec/grader/goquery"
	"github.com/fwojciec/grader/grade"
	graderhttp "github.com/fwojciec/grader/http"
	"github.com/fwojciec/grader/json"
	"github.com/fwojciec/grader/rod"
	graderslog "github.com/fwojciec/grader/slog"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("grader"),
		kong.Description("Check an HTML document for the presence of CSS selectors"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"checks_file": grader.DefaultChecksFile,
			"retry_delay": grader.DefaultRetryDelay.String(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	src := grader.NewSource(cli.File, cli.URL)
	if src.Kind == grader.SourceUnspecified {
		_, _ = parser.Parse([]string{"--help"})
		return grader.Errorf(grader.EINVALID, "no input source: specify --file or --url")
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("grading", "source", src.String(), "checks", cli.Checks)

	// Wire dependencies
	var fetcher grader.Fetcher
	if src.Kind == grader.SourceURL {
		if cli.Render {
			rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		} else {
			fetcher = graderhttp.NewFetcher(graderhttp.WithTimeout(cli.Timeout))
		}
		defer fetcher.Close()
	}

	var checks grader.CheckLoader = fs.NewCheckLoader()
	var evaluator grader.Evaluator = goquery.NewEvaluator()
	if cli.Verbose {
		checks = graderslog.NewLoggingCheckLoader(checks, logger)
		evaluator = graderslog.NewLoggingEvaluator(evaluator, logger)
		if fetcher != nil {
			fetcher = graderslog.NewLoggingFetcher(fetcher, logger)
		}
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Grader: &grade.Grader{
			Checks: checks,
			Documents: &grade.Loader{
				Files:   fs.NewHTMLReader(),
				Fetcher: fetcher,
				Retry: grader.RetryPolicy{
					Delay:       cli.RetryDelay,
					MaxAttempts: cli.MaxAttempts,
				},
				Logger: logger,
			},
			Evaluator: evaluator,
		},
		Writer: json.NewReportWriter(),
	}

	cmd := &GradeCmd{
		Source: src,
		Checks: cli.Checks,
	}

	return cmd.Run(deps)
}
