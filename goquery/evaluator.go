// Package goquery implements grader.Evaluator using goquery and cascadia.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/grader"
)

// Ensure Evaluator implements grader.Evaluator at compile time.
var _ grader.Evaluator = (*Evaluator)(nil)

// Evaluator checks HTML for the presence of CSS selectors.
// It holds no state between calls and is safe for concurrent use.
type Evaluator struct{}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate parses html and records whether each selector matches at least
// one element. Selectors are evaluated in sorted order. Every selector is
// compiled before the document is parsed, so a malformed selector fails the
// whole evaluation without producing a report. A blank selector matches
// nothing and is recorded as absent.
func (e *Evaluator) Evaluate(html string, checks grader.Checks) (*grader.Report, error) {
	sorted := checks.Sorted()

	matchers := make([]cascadia.Selector, len(sorted))
	for i, sel := range sorted {
		if isBlank(sel) {
			continue
		}
		m, err := Compile(sel)
		if err != nil {
			return nil, err
		}
		matchers[i] = m
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, grader.WrapError(grader.EINVALID, err, "failed to parse HTML")
	}

	report := grader.NewReport()
	for i, sel := range sorted {
		if matchers[i] == nil {
			report.Set(sel, false)
			continue
		}
		report.Set(sel, doc.FindMatcher(matchers[i]).Length() > 0)
	}
	return report, nil
}

// Compile parses a CSS selector. Returns EINVALID if the selector is blank
// or malformed.
func Compile(selector string) (cascadia.Selector, error) {
	if isBlank(selector) {
		return nil, grader.Errorf(grader.EINVALID, "empty selector")
	}
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, grader.WrapError(grader.EINVALID, err, "invalid selector %q", selector)
	}
	return m, nil
}

func isBlank(selector string) bool {
	return strings.TrimSpace(selector) == ""
}
