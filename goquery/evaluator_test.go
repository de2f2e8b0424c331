package goquery_test

import (
	"testing"

	"github.com/fwojciec/grader"
	"github.com/fwojciec/grader/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Evaluator implements grader.Evaluator at compile time.
var _ grader.Evaluator = (*goquery.Evaluator)(nil)

func TestEvaluator_Evaluate(t *testing.T) {
	t.Parallel()

	t.Run("records presence and absence", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Hi</h1></body></html>`

		report, err := goquery.NewEvaluator().Evaluate(html, grader.Checks{"h1", "h2"})

		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"h1": true, "h2": false}, report.Map())
		assert.Equal(t, []string{"h1", "h2"}, report.Selectors())
	})

	t.Run("returns empty report for empty checks", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Hi</h1><p>text</p></body></html>`

		report, err := goquery.NewEvaluator().Evaluate(html, grader.Checks{})

		require.NoError(t, err)
		assert.Equal(t, 0, report.Len())
	})

	t.Run("records true rather than a count for multiple matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>one</p><p>two</p><p>three</p></body></html>`

		report, err := goquery.NewEvaluator().Evaluate(html, grader.Checks{"p"})

		require.NoError(t, err)
		present, ok := report.Get("p")
		require.True(t, ok)
		assert.True(t, present)
	})

	t.Run("orders results by sorted selector regardless of input order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><img src="a.png" alt="a"><a href="/">home</a></body></html>`
		checks := grader.Checks{"img[alt]", "h1", "a[href]"}

		report, err := goquery.NewEvaluator().Evaluate(html, checks)

		require.NoError(t, err)
		assert.Equal(t, []string{"a[href]", "h1", "img[alt]"}, report.Selectors())
		assert.Equal(t, map[string]bool{"a[href]": true, "h1": false, "img[alt]": true}, report.Map())
	})

	t.Run("does not reorder the caller's checks", func(t *testing.T) {
		t.Parallel()

		checks := grader.Checks{"p", "a"}

		_, err := goquery.NewEvaluator().Evaluate(`<p></p>`, checks)

		require.NoError(t, err)
		assert.Equal(t, grader.Checks{"p", "a"}, checks)
	})

	t.Run("collapses duplicate selectors into one key", func(t *testing.T) {
		t.Parallel()

		report, err := goquery.NewEvaluator().Evaluate(`<div class="header"></div>`, grader.Checks{"div.header", "div.header"})

		require.NoError(t, err)
		assert.Equal(t, 1, report.Len())
	})

	t.Run("supports attribute, descendant and group selectors", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title></head><body>
<div class="header"><nav><a href="/docs">Docs</a></nav></div>
<input type="text" name="q">
</body></html>`
		checks := grader.Checks{
			"div.header > nav a",
			"input[type=text]",
			"head title",
			"section, nav",
			"footer",
		}

		report, err := goquery.NewEvaluator().Evaluate(html, checks)

		require.NoError(t, err)
		assert.Equal(t, map[string]bool{
			"div.header > nav a": true,
			"input[type=text]":   true,
			"head title":         true,
			"section, nav":       true,
			"footer":             false,
		}, report.Map())
	})

	t.Run("matches elements implied by the HTML parser", func(t *testing.T) {
		t.Parallel()

		report, err := goquery.NewEvaluator().Evaluate(`<h1>bare</h1>`, grader.Checks{"html", "body", "h1"})

		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"body": true, "h1": true, "html": true}, report.Map())
	})

	t.Run("records blank selectors as absent", func(t *testing.T) {
		t.Parallel()

		report, err := goquery.NewEvaluator().Evaluate(`<h1>Hi</h1>`, grader.Checks{"h1", "", "  "})

		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"": false, "  ": false, "h1": true}, report.Map())
		assert.Equal(t, []string{"", "  ", "h1"}, report.Selectors())
	})

	t.Run("returns EINVALID for malformed selector", func(t *testing.T) {
		t.Parallel()

		report, err := goquery.NewEvaluator().Evaluate(`<p></p>`, grader.Checks{"p", "div[["})

		require.Error(t, err)
		assert.Nil(t, report)
		assert.Equal(t, grader.EINVALID, grader.ErrorCode(err))
		assert.Contains(t, err.Error(), "div[[")
	})
}

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("compiles valid selector", func(t *testing.T) {
		t.Parallel()

		m, err := goquery.Compile("a[href]")

		require.NoError(t, err)
		assert.NotNil(t, m)
	})

	t.Run("rejects empty selector", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.Compile("  ")

		require.Error(t, err)
		assert.Equal(t, grader.EINVALID, grader.ErrorCode(err))
	})
}
