package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/fwojciec/grader"
	"github.com/fwojciec/grader/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLReader_ReadHTML(t *testing.T) {
	t.Parallel()

	t.Run("returns file content", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "index.html", "<html><body><h1>Hi</h1></body></html>")

		html, err := fs.NewHTMLReader().ReadHTML(path)

		require.NoError(t, err)
		assert.Equal(t, "<html><body><h1>Hi</h1></body></html>", html)
	})

	t.Run("converts declared latin1 charset to UTF-8", func(t *testing.T) {
		t.Parallel()

		// 0xE9 is "é" in ISO-8859-1.
		content := "<html><head><meta charset=\"iso-8859-1\"></head><body>caf\xe9</body></html>"
		path := writeFile(t, "latin1.html", content)

		html, err := fs.NewHTMLReader().ReadHTML(path)

		require.NoError(t, err)
		assert.Contains(t, html, "café")
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.html")

		_, err := fs.NewHTMLReader().ReadHTML(path)

		require.Error(t, err)
		assert.Equal(t, grader.ENOTFOUND, grader.ErrorCode(err))
		assert.Equal(t, path+" does not exist", grader.ErrorMessage(err))
	})

	t.Run("returns EINVALID for directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewHTMLReader().ReadHTML(t.TempDir())

		require.Error(t, err)
		assert.Equal(t, grader.EINVALID, grader.ErrorCode(err))
	})
}
