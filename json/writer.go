// Package json renders grader reports as JSON.
package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/grader"
)

// DefaultIndent is four spaces, one level per nesting depth.
const DefaultIndent = "    "

// Ensure ReportWriter implements grader.ReportWriter at compile time.
var _ grader.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes a report as an indented JSON object followed by a newline.
// Keys appear in report order and HTML characters are not escaped.
type ReportWriter struct {
	indent string
}

// Option configures a ReportWriter.
type Option func(*ReportWriter)

// WithIndent sets the indentation string. An empty string produces compact output.
func WithIndent(indent string) Option {
	return func(w *ReportWriter) {
		w.indent = indent
	}
}

// NewReportWriter creates a new ReportWriter.
func NewReportWriter(opts ...Option) *ReportWriter {
	w := &ReportWriter{indent: DefaultIndent}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteReport encodes r to out.
func (w *ReportWriter) WriteReport(out io.Writer, r *grader.Report) error {
	if r == nil {
		r = grader.NewReport()
	}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if w.indent != "" {
		enc.SetIndent("", w.indent)
	}
	return enc.Encode(r)
}
