package filesearch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentkit/skills/pkg/logger"
)

// Search runs one traversal of the tree rooted at c.Path and returns every
// file that satisfies all configured filters, up to c.MaxResults entries.
// The traversal stops as soon as the cap is reached. A nonexistent root is
// reported inside the Result, never as a process-level failure, and
// individual unreadable entries are dropped without affecting the rest of
// the search.
func Search(ctx context.Context, c Criteria) Result {
	root := expandHome(c.Path)
	if root == "" {
		root = "."
	}

	if _, err := os.Stat(root); err != nil {
		return Result{Err: fmt.Sprintf("Path does not exist: %s", root)}
	}

	pipeline, err := buildPipeline(&c)
	if err != nil {
		return Result{Err: err.Error()}
	}

	maxDepth := c.MaxDepth
	if maxDepth != nil && *maxDepth < 0 {
		zero := 0
		maxDepth = &zero
	}

	var entries []FileEntry
	walk(ctx, root, maxDepth, func(dir, name string, info fs.FileInfo) bool {
		if len(entries) >= c.MaxResults {
			return false
		}

		entry := FileEntry{
			Path:      filepath.Join(dir, name),
			Name:      name,
			Directory: dir,
			Size:      info.Size(),
			ModTime:   info.ModTime(),
		}
		if matches(pipeline, &entry) {
			entries = append(entries, entry)
		}
		return len(entries) < c.MaxResults
	})

	logger.G(ctx).WithField("root", root).WithField("matches", len(entries)).Debug("search finished")

	return Result{
		Entries:   entries,
		Truncated: len(entries) >= c.MaxResults,
	}
}

// expandHome resolves a leading ~ to the user's home directory, leaving the
// path untouched when the home directory cannot be determined.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
