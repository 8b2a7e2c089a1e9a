// Package filesearch implements the local filesystem search behind the
// file-search skill. A single invocation walks a directory tree once,
// applies a chain of short-circuiting filters to every file it finds, and
// collects matches until the result cap is reached. Nothing is indexed or
// cached; every call starts from a fresh traversal.
package filesearch

import (
	"time"
)

// DefaultMaxResults is the result cap applied when the caller does not
// specify one.
const DefaultMaxResults = 100

// Criteria describes one search invocation. Every filter field is
// independently optional; a nil pointer or zero-length value leaves that
// dimension unconstrained. Criteria is never mutated by Search.
type Criteria struct {
	// Path is the root directory of the traversal. Defaults to the current
	// directory; a leading ~ is expanded to the user's home directory.
	Path string

	// NamePattern is a glob matched against the base name, where *
	// matches any run of characters and ? matches a single character.
	NamePattern string

	// Extensions restricts matches to files whose extension (leading dot
	// included) equals one of the listed values.
	Extensions []string

	// Content restricts matches to text files containing this substring.
	Content string

	// MaxDepth bounds how far below the root the traversal descends.
	// Files at the bound depth are still reported; directories below it
	// are not entered.
	MaxDepth *int

	// ModifiedWithinDays restricts matches to files modified within the
	// last N days, measured against the wall clock at invocation.
	ModifiedWithinDays *int

	// MinSize and MaxSize bound the file size in bytes, both inclusive.
	MinSize *int64
	MaxSize *int64

	// MaxResults caps the number of entries returned. The traversal stops
	// as soon as the cap is reached. Zero returns no entries; callers
	// normally pass DefaultMaxResults.
	MaxResults int

	// CaseSensitive disables the case folding that name, extension, and
	// content comparisons apply by default.
	CaseSensitive bool
}

// FileEntry is one file discovered during traversal. Entries are built
// fresh per traversal step and never mutated afterwards.
type FileEntry struct {
	Path      string
	Name      string
	Directory string
	Size      int64
	ModTime   time.Time
}

// Result is the outcome of a single search invocation: either an error
// description (the root path does not exist, or the name pattern could not
// be compiled) or the collected entries.
type Result struct {
	Err       string
	Entries   []FileEntry
	Truncated bool
}

// IsError reports whether the result carries an invocation-level error.
func (r *Result) IsError() bool {
	return r.Err != ""
}
