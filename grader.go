// Package grader checks HTML documents for the presence of CSS selectors.
// It loads a page from a local file or a URL, evaluates a list of selector
// checks against the parsed document, and reports which ones matched.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package grader
