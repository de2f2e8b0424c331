package mock

import (
	"io"

	"github.com/fwojciec/grader"
)

var _ grader.CheckLoader = (*CheckLoader)(nil)

// CheckLoader is a mock implementation of grader.CheckLoader.
type CheckLoader struct {
	LoadChecksFn func(path string) (grader.Checks, error)
}

func (l *CheckLoader) LoadChecks(path string) (grader.Checks, error) {
	return l.LoadChecksFn(path)
}

var _ grader.Evaluator = (*Evaluator)(nil)

// Evaluator is a mock implementation of grader.Evaluator.
type Evaluator struct {
	EvaluateFn func(html string, checks grader.Checks) (*grader.Report, error)
}

func (e *Evaluator) Evaluate(html string, checks grader.Checks) (*grader.Report, error) {
	return e.EvaluateFn(html, checks)
}

var _ grader.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of grader.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(w io.Writer, r *grader.Report) error
}

func (rw *ReportWriter) WriteReport(w io.Writer, r *grader.Report) error {
	return rw.WriteReportFn(w, r)
}
