package mock

import (
	"context"

	"github.com/fwojciec/grader"
)

var _ grader.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of grader.DocumentLoader.
type DocumentLoader struct {
	LoadDocumentFn func(ctx context.Context, src grader.Source) (string, error)
}

func (l *DocumentLoader) LoadDocument(ctx context.Context, src grader.Source) (string, error) {
	return l.LoadDocumentFn(ctx, src)
}

var _ grader.HTMLReader = (*HTMLReader)(nil)

// HTMLReader is a mock implementation of grader.HTMLReader.
type HTMLReader struct {
	ReadHTMLFn func(path string) (string, error)
}

func (r *HTMLReader) ReadHTML(path string) (string, error) {
	return r.ReadHTMLFn(path)
}
