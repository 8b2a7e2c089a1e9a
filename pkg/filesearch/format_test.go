package filesearch

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() Result {
	now := time.Now()
	return Result{
		Entries: []FileEntry{
			{Path: "/data/b/z.txt", Name: "z.txt", Directory: "/data/b", Size: 2048, ModTime: now},
			{Path: "/data/a/y.txt", Name: "y.txt", Directory: "/data/a", Size: 10, ModTime: now},
			{Path: "/data/a/x.txt", Name: "x.txt", Directory: "/data/a", Size: 10, ModTime: now},
		},
	}
}

func TestFormatJSONError(t *testing.T) {
	res := Result{Err: "Path does not exist: /nope"}
	out, err := FormatJSON(&res)
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "Path does not exist: /nope", payload["error"])
}

func TestFormatJSONEntries(t *testing.T) {
	res := sampleResult()
	out, err := FormatJSON(&res)
	require.NoError(t, err)

	var payload []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload, 3)

	first := payload[0]
	assert.Equal(t, "/data/b/z.txt", first["path"])
	assert.Equal(t, "z.txt", first["name"])
	assert.Equal(t, "/data/b", first["directory"])
	assert.EqualValues(t, 2048, first["size"])
	assert.NotEmpty(t, first["size_human"])
	assert.NotEmpty(t, first["modified_human"])
	assert.EqualValues(t, res.Entries[0].ModTime.Unix(), first["modified"])
}

func TestFormatJSONEmpty(t *testing.T) {
	out, err := FormatJSON(&Result{})
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestFormatTextError(t *testing.T) {
	res := Result{Err: "Path does not exist: /nope"}
	assert.Equal(t, "Path does not exist: /nope", FormatText(&res))
}

func TestFormatTextEmpty(t *testing.T) {
	assert.Equal(t, "No files found matching the search criteria.", FormatText(&Result{}))
}

func TestFormatTextGrouping(t *testing.T) {
	res := sampleResult()
	out := FormatText(&res)

	assert.True(t, strings.HasPrefix(out, "Found 3 files\n"))
	assert.NotContains(t, out, "showing first")

	// Directories sorted lexicographically, entries within by name.
	posA := strings.Index(out, "/data/a/\n")
	posB := strings.Index(out, "/data/b/\n")
	require.NotEqual(t, -1, posA)
	require.NotEqual(t, -1, posB)
	assert.Less(t, posA, posB)
	assert.Less(t, strings.Index(out, "- x.txt"), strings.Index(out, "- y.txt"))

	assert.Contains(t, out, "  - z.txt (")
	assert.Contains(t, out, ", modified ")
}

func TestFormatTextSingularAndTruncation(t *testing.T) {
	res := Result{
		Entries: []FileEntry{
			{Path: "/d/a.txt", Name: "a.txt", Directory: "/d", Size: 1, ModTime: time.Now()},
		},
		Truncated: true,
	}
	out := FormatText(&res)
	assert.Contains(t, out, "Found 1 file\n")
	assert.Contains(t, out, "(showing first 1 results, use --max-results to see more)")
}
