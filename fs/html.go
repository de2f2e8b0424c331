package fs

import (
	"io"
	"os"

	"github.com/fwojciec/grader"
	"golang.org/x/net/html/charset"
)

// Ensure HTMLReader implements grader.HTMLReader at compile time.
var _ grader.HTMLReader = (*HTMLReader)(nil)

// HTMLReader reads HTML documents from the local filesystem.
// Documents declaring a non-UTF-8 charset in a meta tag are converted to UTF-8.
type HTMLReader struct{}

// NewHTMLReader creates a new HTMLReader.
func NewHTMLReader() *HTMLReader {
	return &HTMLReader{}
}

// ReadHTML returns the content of the file at path.
func (r *HTMLReader) ReadHTML(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", grader.Errorf(grader.ENOTFOUND, "%s does not exist", path)
		}
		return "", err
	}
	if info.IsDir() {
		return "", grader.Errorf(grader.EINVALID, "%s is a directory", path)
	}

	f, err := os.Open(path) //nolint:gosec // User-provided HTML path is intentional
	if err != nil {
		return "", err
	}
	defer f.Close()

	utf8, err := charset.NewReader(f, "text/html")
	if err != nil {
		return "", err
	}

	body, err := io.ReadAll(utf8)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
