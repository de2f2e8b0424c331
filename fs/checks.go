// Package fs provides file-based loading of checks and HTML documents.
package fs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/grader"
	"gopkg.in/yaml.v3"
)

// Ensure CheckLoader implements grader.CheckLoader at compile time.
var _ grader.CheckLoader = (*CheckLoader)(nil)

// CheckLoader reads checks files from disk.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
type CheckLoader struct{}

// NewCheckLoader creates a new CheckLoader.
func NewCheckLoader() *CheckLoader {
	return &CheckLoader{}
}

// LoadChecks reads the checks file at path and returns its selectors sorted.
func (l *CheckLoader) LoadChecks(path string) (grader.Checks, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided checks path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, grader.Errorf(grader.ENOTFOUND, "%s does not exist", path)
		}
		return nil, err
	}

	checks, err := ParseChecks(data, filepath.Ext(path))
	if err != nil {
		return nil, grader.WrapError(grader.EINVALID, err, "parsing checks file %s", path)
	}
	return checks.Sorted(), nil
}

// ParseChecks decodes a list of selectors. The ext argument selects the
// decoder: ".yaml" and ".yml" use YAML, everything else JSON.
// The result is in source order. A null or empty document is an error;
// an empty list is not.
func ParseChecks(data []byte, ext string) (grader.Checks, error) {
	var checks *[]string
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &checks); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &checks); err != nil {
			return nil, err
		}
	}
	if checks == nil {
		return nil, errors.New("checks must be a list of selectors, got null")
	}
	if *checks == nil {
		return grader.Checks{}, nil
	}
	return grader.Checks(*checks), nil
}
