// Package tools exposes the example skills to agent runtimes through a
// small tool framework: JSON-parameterized inputs described by generated
// schemas, validation before execution, and tracing attributes for
// observability.
package tools

import (
	"context"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// Tool is one agent-invocable capability.
type Tool interface {
	Name() string
	Description() string
	GenerateSchema() *jsonschema.Schema
	ValidateInput(parameters string) error
	Execute(ctx context.Context, parameters string) ToolResult
	TracingKVs(parameters string) ([]attribute.KeyValue, error)
}

// ToolResult carries a tool's output or its error message.
type ToolResult struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

// IsError reports whether the execution failed.
func (r *ToolResult) IsError() bool {
	return r.Error != ""
}

func (r *ToolResult) String() string {
	if r.Error != "" {
		return fmt.Sprintf("error: %s", r.Error)
	}
	return r.Result
}

// GenerateSchema reflects a JSON schema from the input struct type.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// toolRegistry holds all available tools mapped by their names.
var toolRegistry = map[string]Tool{
	"file_search": &FileSearchTool{},
	"hello_world": &HelloWorldTool{},
}

// Tools returns every registered tool.
func Tools() []Tool {
	out := make([]Tool, 0, len(toolRegistry))
	for _, t := range toolRegistry {
		out = append(out, t)
	}
	return out
}

// RunTool validates the parameters and executes the named tool.
func RunTool(ctx context.Context, name, parameters string) ToolResult {
	tool, exists := toolRegistry[name]
	if !exists {
		return ToolResult{Error: errors.Errorf("tool %q not found", name).Error()}
	}

	if err := tool.ValidateInput(parameters); err != nil {
		return ToolResult{Error: errors.Wrapf(err, "invalid input for tool %q", name).Error()}
	}

	return tool.Execute(ctx, parameters)
}
