// Package grade runs the grading pipeline: it loads the checks and the
// document, evaluates the checks, and returns the report.
package grade

import (
	"context"

	"github.com/fwojciec/grader"
)

// Grader wires the pipeline stages together.
type Grader struct {
	Checks    grader.CheckLoader
	Documents grader.DocumentLoader
	Evaluator grader.Evaluator
}

// Grade loads the checks at checksPath and the document at src, then
// evaluates the checks against the document exactly once.
// The checks are loaded first so a broken checks file fails before any
// network traffic.
func (g *Grader) Grade(ctx context.Context, src grader.Source, checksPath string) (*grader.Report, error) {
	checks, err := g.Checks.LoadChecks(checksPath)
	if err != nil {
		return nil, err
	}

	html, err := g.Documents.LoadDocument(ctx, src)
	if err != nil {
		return nil, err
	}

	return g.Evaluator.Evaluate(html, checks)
}
