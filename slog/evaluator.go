package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/grader"
)

// Ensure LoggingEvaluator implements grader.Evaluator.
var _ grader.Evaluator = (*LoggingEvaluator)(nil)

// LoggingEvaluator wraps an Evaluator with logging.
type LoggingEvaluator struct {
	next   grader.Evaluator
	logger *slog.Logger
}

// NewLoggingEvaluator creates a new LoggingEvaluator.
func NewLoggingEvaluator(next grader.Evaluator, logger *slog.Logger) *LoggingEvaluator {
	return &LoggingEvaluator{next: next, logger: logger}
}

// Evaluate delegates to the wrapped evaluator and logs how many checks matched.
func (e *LoggingEvaluator) Evaluate(html string, checks grader.Checks) (report *grader.Report, err error) {
	defer func(begin time.Time) {
		matched := 0
		if report != nil {
			for _, res := range report.Results() {
				if res.Present {
					matched++
				}
			}
		}
		e.logger.Debug("evaluate",
			"bytes", len(html),
			"checks", len(checks),
			"matched", matched,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Evaluate(html, checks)
}

// Ensure LoggingCheckLoader implements grader.CheckLoader.
var _ grader.CheckLoader = (*LoggingCheckLoader)(nil)

// LoggingCheckLoader wraps a CheckLoader with logging.
type LoggingCheckLoader struct {
	next   grader.CheckLoader
	logger *slog.Logger
}

// NewLoggingCheckLoader creates a new LoggingCheckLoader.
func NewLoggingCheckLoader(next grader.CheckLoader, logger *slog.Logger) *LoggingCheckLoader {
	return &LoggingCheckLoader{next: next, logger: logger}
}

// LoadChecks delegates to the wrapped loader and logs the number of checks.
func (l *LoggingCheckLoader) LoadChecks(path string) (checks grader.Checks, err error) {
	defer func(begin time.Time) {
		l.logger.Debug("load checks",
			"path", path,
			"count", len(checks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadChecks(path)
}
