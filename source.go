package grader

import "context"

// SourceKind identifies where a document comes from.
type SourceKind int

// Source kinds.
const (
	SourceUnspecified SourceKind = iota
	SourceFile
	SourceURL
)

// String returns the kind's name.
func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "file"
	case SourceURL:
		return "url"
	default:
		return "unspecified"
	}
}

// Source is the location of the HTML document to grade.
// It is decided once at startup and holds either a file path or a URL.
type Source struct {
	Kind     SourceKind
	Location string
}

// FileSource returns a Source for a local file.
func FileSource(path string) Source {
	return Source{Kind: SourceFile, Location: path}
}

// URLSource returns a Source for a remote URL.
func URLSource(url string) Source {
	return Source{Kind: SourceURL, Location: url}
}

// NewSource resolves optional file and URL values into a Source.
// The URL wins when both are set; when neither is set the source is
// unspecified.
func NewSource(file, url string) Source {
	switch {
	case url != "":
		return URLSource(url)
	case file != "":
		return FileSource(file)
	default:
		return Source{}
	}
}

// String returns a human readable form such as "file:index.html".
func (s Source) String() string {
	if s.Kind == SourceUnspecified {
		return s.Kind.String()
	}
	return s.Kind.String() + ":" + s.Location
}

// DocumentLoader obtains raw HTML for a source.
type DocumentLoader interface {
	// LoadDocument returns the HTML text of src.
	// Returns ENOTFOUND if a file source does not exist and EINVALID if
	// the source is unspecified.
	LoadDocument(ctx context.Context, src Source) (string, error)
}

// HTMLReader reads HTML from the local filesystem.
type HTMLReader interface {
	// ReadHTML returns the content of the file at path.
	// Returns ENOTFOUND if the file does not exist.
	ReadHTML(path string) (string, error)
}
