package grader

import (
	"slices"
	"unicode/utf16"
)

// DefaultChecksFile is the checks file used when none is given.
const DefaultChecksFile = "checks.json"

// Checks is the list of CSS selectors to look for in a document.
type Checks []string

// Sorted returns a copy of the checks ordered by UTF-16 code units, the
// order browsers and JavaScript tooling use for strings. It differs from
// byte order only when characters above U+FFFF are involved.
// The receiver is never modified.
func (c Checks) Sorted() Checks {
	sorted := slices.Clone(c)
	slices.SortStableFunc(sorted, compareUTF16)
	return sorted
}

func compareUTF16(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}

// CheckLoader reads a checks configuration.
type CheckLoader interface {
	// LoadChecks reads the checks file at path and returns its selectors
	// sorted. Returns ENOTFOUND if the file does not exist and EINVALID if
	// the content is not a list of strings.
	LoadChecks(path string) (Checks, error)
}
