package filesearch

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// entryPayload is the JSON shape of one matched file.
type entryPayload struct {
	Path          string `json:"path"`
	Name          string `json:"name"`
	Size          int64  `json:"size"`
	SizeHuman     string `json:"size_human"`
	Modified      int64  `json:"modified"`
	ModifiedHuman string `json:"modified_human"`
	Directory     string `json:"directory"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// FormatJSON renders a result as indented JSON: an object with a single
// "error" field for invocation-level failures, otherwise an array of entry
// objects.
func FormatJSON(res *Result) (string, error) {
	var payload any
	if res.IsError() {
		payload = errorPayload{Error: res.Err}
	} else {
		entries := make([]entryPayload, 0, len(res.Entries))
		for _, e := range res.Entries {
			entries = append(entries, entryPayload{
				Path:          e.Path,
				Name:          e.Name,
				Size:          e.Size,
				SizeHuman:     humanize.Bytes(uint64(e.Size)),
				Modified:      e.ModTime.Unix(),
				ModifiedHuman: humanize.Time(e.ModTime),
				Directory:     e.Directory,
			})
		}
		payload = entries
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal search result")
	}
	return string(out), nil
}

// FormatText renders a result as human-readable text: a match count, a
// truncation notice when the cap was hit, then the entries grouped by
// directory with directories sorted lexicographically and files by name.
func FormatText(res *Result) string {
	if res.IsError() {
		return res.Err
	}
	if len(res.Entries) == 0 {
		return "No files found matching the search criteria."
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Found %d file%s\n", len(res.Entries), plural(len(res.Entries)))
	if res.Truncated {
		fmt.Fprintf(&out, "(showing first %d results, use --max-results to see more)\n", len(res.Entries))
	}
	out.WriteString("\n")

	byDirectory := make(map[string][]FileEntry)
	for _, e := range res.Entries {
		byDirectory[e.Directory] = append(byDirectory[e.Directory], e)
	}

	directories := make([]string, 0, len(byDirectory))
	for dir := range byDirectory {
		directories = append(directories, dir)
	}
	sort.Strings(directories)

	for _, dir := range directories {
		entries := byDirectory[dir]
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name < entries[j].Name
		})

		fmt.Fprintf(&out, "%s/\n", dir)
		for _, e := range entries {
			fmt.Fprintf(&out, "  - %s (%s, modified %s)\n", e.Name, humanize.Bytes(uint64(e.Size)), humanize.Time(e.ModTime))
		}
		out.WriteString("\n")
	}

	return strings.TrimRight(out.String(), "\n")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
