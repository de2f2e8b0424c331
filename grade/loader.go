package grade

import (
	"context"
	"log/slog"

	"github.com/fwojciec/grader"
)

// Ensure Loader implements grader.DocumentLoader at compile time.
var _ grader.DocumentLoader = (*Loader)(nil)

// Loader obtains HTML for a source: file sources are read once through
// Files, URL sources go through Fetcher with Retry applied.
type Loader struct {
	Files   grader.HTMLReader
	Fetcher grader.Fetcher
	Retry   grader.RetryPolicy
	Logger  *slog.Logger
}

// LoadDocument returns the HTML text of src.
func (l *Loader) LoadDocument(ctx context.Context, src grader.Source) (string, error) {
	switch src.Kind {
	case grader.SourceFile:
		return l.Files.ReadHTML(src.Location)
	case grader.SourceURL:
		return FetchWithRetry(ctx, src.Location, l.Fetcher, l.Retry, l.Logger)
	default:
		return "", grader.Errorf(grader.EINVALID, "no input source: specify a file or a url")
	}
}
