package tools

import (
	"context"
	"encoding/json"

	"github.com/invopop/jsonschema"
	"go.opentelemetry.io/otel/attribute"
)

// HelloWorldTool is the placeholder skill as a tool. It demonstrates the
// minimal shape a skill tool takes and is useful for wiring checks.
type HelloWorldTool struct{}

// HelloWorldInput defines the input parameters for the hello_world tool.
type HelloWorldInput struct {
	Name string `json:"name,omitempty" jsonschema:"description=Optional name to greet"`
}

// Name returns the name of the tool.
func (t *HelloWorldTool) Name() string {
	return "hello_world"
}

// Description returns the description of the tool.
func (t *HelloWorldTool) Description() string {
	return "A placeholder skill that returns a greeting. Useful for verifying that skill execution is wired up."
}

// GenerateSchema generates the JSON schema for the tool's input parameters.
func (t *HelloWorldTool) GenerateSchema() *jsonschema.Schema {
	return GenerateSchema[HelloWorldInput]()
}

// ValidateInput validates the tool parameters.
func (t *HelloWorldTool) ValidateInput(parameters string) error {
	var input HelloWorldInput
	return json.Unmarshal([]byte(parameters), &input)
}

// TracingKVs returns tracing key-value pairs for observability.
func (t *HelloWorldTool) TracingKVs(parameters string) ([]attribute.KeyValue, error) {
	input := &HelloWorldInput{}
	if err := json.Unmarshal([]byte(parameters), input); err != nil {
		return nil, err
	}
	return []attribute.KeyValue{attribute.String("name", input.Name)}, nil
}

// Execute returns the greeting.
func (t *HelloWorldTool) Execute(_ context.Context, parameters string) ToolResult {
	var input HelloWorldInput
	if err := json.Unmarshal([]byte(parameters), &input); err != nil {
		return ToolResult{Error: err.Error()}
	}

	greeting := "Hello from the example skill!"
	if input.Name != "" {
		greeting = "Hello, " + input.Name + ", from the example skill!"
	}
	return ToolResult{Result: greeting}
}
