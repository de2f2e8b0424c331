package grader_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/grader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Set(t *testing.T) {
	t.Parallel()

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()

		r := grader.NewReport()
		r.Set("h2", false)
		r.Set("a", true)

		assert.Equal(t, []string{"h2", "a"}, r.Selectors())
		assert.Equal(t, []grader.Result{
			{Selector: "h2", Present: false},
			{Selector: "a", Present: true},
		}, r.Results())
	})

	t.Run("updates existing selector in place", func(t *testing.T) {
		t.Parallel()

		r := grader.NewReport()
		r.Set("h1", false)
		r.Set("p", true)
		r.Set("h1", true)

		assert.Equal(t, 2, r.Len())
		assert.Equal(t, []string{"h1", "p"}, r.Selectors())
		present, ok := r.Get("h1")
		assert.True(t, ok)
		assert.True(t, present)
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()

		var r grader.Report
		r.Set("h1", true)

		assert.Equal(t, 1, r.Len())
	})
}

func TestReport_Get(t *testing.T) {
	t.Parallel()

	r := grader.NewReport()
	r.Set("h1", true)

	present, ok := r.Get("h2")

	assert.False(t, ok)
	assert.False(t, present)
}

func TestReport_Results_ReturnsCopy(t *testing.T) {
	t.Parallel()

	r := grader.NewReport()
	r.Set("h1", true)

	results := r.Results()
	results[0].Present = false

	present, _ := r.Get("h1")
	assert.True(t, present)
}

func TestReport_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes keys in report order", func(t *testing.T) {
		t.Parallel()

		r := grader.NewReport()
		r.Set("h2", false)
		r.Set("h1", true)

		data, err := json.Marshal(r)

		require.NoError(t, err)
		assert.Equal(t, `{"h2":false,"h1":true}`, string(data))
	})

	t.Run("encodes empty report as empty object", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(grader.NewReport())

		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("escapes line and paragraph separators", func(t *testing.T) {
		t.Parallel()

		r := grader.NewReport()
		r.Set("[title=\"a\u2028b\u2029\"]", false)

		data, err := json.Marshal(r)

		require.NoError(t, err)
		assert.Equal(t, `{"[title=\"a\u2028b\u2029\"]":false}`, string(data))
	})

	t.Run("round-trips into a map", func(t *testing.T) {
		t.Parallel()

		r := grader.NewReport()
		r.Set(`a[href="x"]`, true)
		r.Set("div > p", false)

		data, err := json.Marshal(r)
		require.NoError(t, err)

		var got map[string]bool
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, r.Map(), got)
	})
}
