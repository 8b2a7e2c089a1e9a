package filesearch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// binarySniffLen bounds how much of a file is inspected for NUL bytes when
// deciding whether it is text.
const binarySniffLen = 8000

// predicate reports whether an entry satisfies one configured filter.
// Predicates must not mutate the entry. A predicate that cannot read the
// entry reports false; per-entry I/O failures are never surfaced.
type predicate func(e *FileEntry) bool

// buildPipeline compiles the configured filters into an ordered predicate
// chain, cheapest first: name pattern, extension, size bounds, modification
// window, content substring. Unset criteria contribute no predicate. The
// modification cutoff and the compiled glob are fixed at build time, so the
// chain is stable for the whole invocation.
func buildPipeline(c *Criteria) ([]predicate, error) {
	var pipeline []predicate

	if c.NamePattern != "" {
		p, err := namePredicate(c.NamePattern, c.CaseSensitive)
		if err != nil {
			return nil, err
		}
		pipeline = append(pipeline, p)
	}

	if len(c.Extensions) > 0 {
		pipeline = append(pipeline, extensionPredicate(c.Extensions, c.CaseSensitive))
	}

	if c.MinSize != nil || c.MaxSize != nil {
		pipeline = append(pipeline, sizePredicate(c.MinSize, c.MaxSize))
	}

	if c.ModifiedWithinDays != nil {
		cutoff := time.Now().Add(-time.Duration(*c.ModifiedWithinDays) * 24 * time.Hour)
		pipeline = append(pipeline, modifiedPredicate(cutoff))
	}

	if c.Content != "" {
		pipeline = append(pipeline, contentPredicate(c.Content, c.CaseSensitive))
	}

	return pipeline, nil
}

// matches evaluates the pipeline as a conjunction, short-circuiting on the
// first predicate that fails.
func matches(pipeline []predicate, e *FileEntry) bool {
	for _, p := range pipeline {
		if !p(e) {
			return false
		}
	}
	return true
}

func namePredicate(pattern string, caseSensitive bool) (predicate, error) {
	if !caseSensitive {
		pattern = strings.ToLower(pattern)
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid name pattern %q", pattern)
	}

	return func(e *FileEntry) bool {
		name := e.Name
		if !caseSensitive {
			name = strings.ToLower(name)
		}
		return g.Match(name)
	}, nil
}

func extensionPredicate(extensions []string, caseSensitive bool) predicate {
	// The extension set is matched verbatim, leading dot included, so
	// "pdf" never matches ".pdf".
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		if !caseSensitive {
			ext = strings.ToLower(ext)
		}
		set[ext] = struct{}{}
	}

	return func(e *FileEntry) bool {
		ext := filepath.Ext(e.Name)
		if !caseSensitive {
			ext = strings.ToLower(ext)
		}
		_, ok := set[ext]
		return ok
	}
}

func sizePredicate(minSize, maxSize *int64) predicate {
	return func(e *FileEntry) bool {
		if minSize != nil && e.Size < *minSize {
			return false
		}
		if maxSize != nil && e.Size > *maxSize {
			return false
		}
		return true
	}
}

func modifiedPredicate(cutoff time.Time) predicate {
	return func(e *FileEntry) bool {
		return !e.ModTime.Before(cutoff)
	}
}

// contentPredicate is the most expensive filter and therefore runs last.
// Files that cannot be read or that look binary are treated as non-matching
// rather than as errors.
func contentPredicate(substring string, caseSensitive bool) predicate {
	needle := []byte(substring)
	if !caseSensitive {
		needle = bytes.ToLower(needle)
	}

	return func(e *FileEntry) bool {
		data, err := os.ReadFile(e.Path)
		if err != nil {
			return false
		}
		if isBinary(data) {
			return false
		}
		if !caseSensitive {
			data = bytes.ToLower(data)
		}
		return bytes.Contains(data, needle)
	}
}

// isBinary sniffs the leading bytes for a NUL, the same heuristic git uses
// to tell text from binary.
func isBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}
	return bytes.IndexByte(data, 0) != -1
}
