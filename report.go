package grader

import (
	"bytes"
	"encoding/json"
	"io"
)

// Result records whether a single selector matched.
type Result struct {
	Selector string
	Present  bool
}

// Report maps selectors to their presence in a document.
// Results are kept in the order they were evaluated, which is the sorted
// order of the checks.
type Report struct {
	results []Result
	index   map[string]int
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{index: make(map[string]int)}
}

// Set records the presence of a selector. Setting a selector that is
// already present updates its value in place.
func (r *Report) Set(selector string, present bool) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[selector]; ok {
		r.results[i].Present = present
		return
	}
	r.index[selector] = len(r.results)
	r.results = append(r.results, Result{Selector: selector, Present: present})
}

// Get returns the presence of a selector and whether it was checked.
func (r *Report) Get(selector string) (present bool, ok bool) {
	i, ok := r.index[selector]
	if !ok {
		return false, false
	}
	return r.results[i].Present, true
}

// Len returns the number of checked selectors.
func (r *Report) Len() int {
	return len(r.results)
}

// Results returns a copy of the results in report order.
func (r *Report) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Selectors returns the checked selectors in report order.
func (r *Report) Selectors() []string {
	out := make([]string, 0, len(r.results))
	for _, res := range r.results {
		out = append(out, res.Selector)
	}
	return out
}

// Map returns the report as a plain map.
func (r *Report) Map() map[string]bool {
	m := make(map[string]bool, len(r.results))
	for _, res := range r.results {
		m[res.Selector] = res.Present
	}
	return m
}

// MarshalJSON encodes the report as a JSON object with keys in report order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, res := range r.results {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, res.Selector); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if res.Present {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONString writes s as a JSON string without escaping HTML
// characters, so selectors like "div > p" stay readable.
func writeJSONString(w io.Writer, s string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

// Evaluator checks a document for the presence of selectors.
type Evaluator interface {
	// Evaluate parses html once and records, for every selector in checks,
	// whether at least one element matches. Returns EINVALID if a selector
	// cannot be parsed.
	Evaluate(html string, checks Checks) (*Report, error)
}

// ReportWriter renders a report.
type ReportWriter interface {
	WriteReport(w io.Writer, r *Report) error
}
