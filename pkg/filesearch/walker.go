package filesearch

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/agentkit/skills/pkg/logger"
)

// walkFunc receives one candidate file per call and reports whether the
// traversal should continue.
type walkFunc func(dir, name string, info fs.FileInfo) bool

// walk descends from root and hands every reachable file to fn, restarting
// from scratch on each invocation. maxDepth bounds the descent: a directory
// sitting deeper than maxDepth levels below the root is not entered, while
// files at exactly that depth are still reported. Entries whose metadata
// cannot be read, and subtrees that cannot be listed, are skipped silently.
// Traversal order across directories is whatever the filesystem yields.
func walk(ctx context.Context, root string, maxDepth *int, fn walkFunc) {
	log := logger.G(ctx)

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories and race-deleted entries are not an
			// error for the search as a whole.
			log.WithField("path", path).WithError(err).Debug("skipping unreadable entry")
			return nil
		}

		if d.IsDir() {
			if maxDepth != nil && path != root && depthBelow(root, path) > *maxDepth {
				return fs.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			log.WithField("path", path).WithError(err).Debug("skipping entry without metadata")
			return nil
		}

		if !fn(filepath.Dir(path), d.Name(), info) {
			return fs.SkipAll
		}
		return nil
	})
}

// depthBelow counts how many levels dir sits below root; immediate children
// of the root are at depth 1.
func depthBelow(root, dir string) int {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
