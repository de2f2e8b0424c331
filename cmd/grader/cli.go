package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/grader"
	"github.com/fwojciec/grader/grade"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Checks      string        `short:"c" default:"${checks_file}" env:"GRADER_CHECKS" placeholder:"CHECK_FILE" help:"Path to checks.json"`
	File        string        `short:"f" placeholder:"HTML_FILE" help:"Path to index.html"`
	URL         string        `short:"u" name:"url" placeholder:"URL" help:"URL to index.html (takes precedence over --file)"`
	Render      bool          `help:"Render the URL in headless Chrome before checking"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Timeout per fetch attempt"`
	RetryDelay  time.Duration `default:"${retry_delay}" help:"Wait between failed fetch attempts"`
	MaxAttempts int           `default:"0" help:"Maximum fetch attempts (0 retries forever)"`
	Verbose     bool          `short:"v" help:"Log each pipeline stage to stderr"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Grader *grade.Grader
	Writer grader.ReportWriter
}

// GradeCmd grades one document and prints the report.
type GradeCmd struct {
	Source grader.Source
	Checks string
}

// Run executes the grade command. A report in which nothing matched is
// still a success.
func (c *GradeCmd) Run(deps *Dependencies) error {
	report, err := deps.Grader.Grade(deps.Ctx, c.Source, c.Checks)
	if err != nil {
		return err
	}
	return deps.Writer.WriteReport(deps.Stdout, report)
}
