package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gobwas/glob"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agentkit/skills/pkg/filesearch"
)

// FileSearchTool exposes the file-search skill as an agent tool. The JSON
// input mirrors the skill CLI's flags and the result is the same JSON
// payload the CLI prints with --json.
type FileSearchTool struct{}

// FileSearchInput defines the input parameters for the file_search tool.
// Absent optional fields leave the corresponding filter unconstrained.
type FileSearchInput struct {
	Path          string   `json:"path,omitempty" jsonschema:"description=Directory to search from, defaults to the current directory"`
	Name          string   `json:"name,omitempty" jsonschema:"description=File name glob where * matches any run of characters and ? matches one character"`
	Extensions    []string `json:"extensions,omitempty" jsonschema:"description=File extensions to match, leading dot included, e.g. .txt or .pdf"`
	Content       string   `json:"content,omitempty" jsonschema:"description=Substring that must appear in the file's text content"`
	MaxDepth      *int     `json:"max_depth,omitempty" jsonschema:"description=Maximum directory depth below the root to descend into"`
	ModifiedDays  *int     `json:"modified_days,omitempty" jsonschema:"description=Only match files modified within the last N days"`
	MinSize       *int64   `json:"min_size,omitempty" jsonschema:"description=Minimum file size in bytes, inclusive"`
	MaxSize       *int64   `json:"max_size,omitempty" jsonschema:"description=Maximum file size in bytes, inclusive"`
	MaxResults    int      `json:"max_results,omitempty" jsonschema:"description=Maximum number of results, defaults to 100"`
	CaseSensitive bool     `json:"case_sensitive,omitempty" jsonschema:"description=Disable the default case folding of name, extension, and content matching"`
}

// Name returns the name of the tool.
func (t *FileSearchTool) Name() string {
	return "file_search"
}

// GenerateSchema generates the JSON schema for the tool's input parameters.
func (t *FileSearchTool) GenerateSchema() *jsonschema.Schema {
	return GenerateSchema[FileSearchInput]()
}

// Description returns the description of the tool.
func (t *FileSearchTool) Description() string {
	return `Search the local filesystem for files by name, extension, content, size, and modification time.

## Important Notes
* Every filter is optional and all configured filters must match (logical AND).
* Matching is case-insensitive unless case_sensitive is true.
* At most max_results files are returned (default 100); the traversal stops as soon as the cap is reached.
* Unreadable files and binary files are skipped, never reported as errors.
* A nonexistent search path is reported inside the JSON payload as {"error": "..."}.

## Input
- path: directory to search from, defaults to the current directory.
- name: file name glob, e.g. "*.txt" or "report-??.pdf".
- extensions: exact extension matches including the leading dot, e.g. [".pdf"].
- content: substring that must appear in the file's text content (most expensive filter).
- max_depth: how many directory levels below the root to descend into; 0 searches only the root.
- modified_days: only files modified within the last N days.
- min_size / max_size: inclusive size bounds in bytes.
- max_results: result cap, default 100.
- case_sensitive: disable case folding.
`
}

// ValidateInput validates the tool parameters before execution.
func (t *FileSearchTool) ValidateInput(parameters string) error {
	var input FileSearchInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return errors.Wrap(err, "invalid parameters")
	}

	if input.Name != "" {
		pattern := input.Name
		if !input.CaseSensitive {
			pattern = strings.ToLower(pattern)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return errors.Wrapf(err, "invalid name pattern %q", input.Name)
		}
	}

	if input.MaxResults < 0 {
		return errors.New("max_results must not be negative")
	}
	if input.MaxDepth != nil && *input.MaxDepth < 0 {
		return errors.New("max_depth must not be negative")
	}
	if input.MinSize != nil && *input.MinSize < 0 {
		return errors.New("min_size must not be negative")
	}
	if input.MaxSize != nil && *input.MaxSize < 0 {
		return errors.New("max_size must not be negative")
	}

	return nil
}

// TracingKVs returns tracing key-value pairs for observability.
func (t *FileSearchTool) TracingKVs(parameters string) ([]attribute.KeyValue, error) {
	input := &FileSearchInput{}
	if err := json.Unmarshal([]byte(parameters), input); err != nil {
		return nil, err
	}

	return []attribute.KeyValue{
		attribute.String("path", input.Path),
		attribute.String("name", input.Name),
		attribute.StringSlice("extensions", input.Extensions),
		attribute.Bool("has_content_filter", input.Content != ""),
		attribute.Int("max_results", input.MaxResults),
		attribute.Bool("case_sensitive", input.CaseSensitive),
	}, nil
}

// Execute runs the search and returns the JSON payload. Search-level
// failures such as a nonexistent root are part of the payload, matching the
// skill CLI's contract, so they do not mark the tool run as failed.
func (t *FileSearchTool) Execute(ctx context.Context, parameters string) ToolResult {
	var input FileSearchInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return ToolResult{Error: errors.Wrap(err, "invalid parameters").Error()}
	}

	maxResults := input.MaxResults
	if maxResults <= 0 {
		maxResults = filesearch.DefaultMaxResults
	}

	result := filesearch.Search(ctx, filesearch.Criteria{
		Path:               input.Path,
		NamePattern:        input.Name,
		Extensions:         input.Extensions,
		Content:            input.Content,
		MaxDepth:           input.MaxDepth,
		ModifiedWithinDays: input.ModifiedDays,
		MinSize:            input.MinSize,
		MaxSize:            input.MaxSize,
		MaxResults:         maxResults,
		CaseSensitive:      input.CaseSensitive,
	})

	payload, err := filesearch.FormatJSON(&result)
	if err != nil {
		return ToolResult{Error: err.Error()}
	}
	return ToolResult{Result: payload}
}
