package generator

import (
	"errors"
	"fmt"
	"strings"

	"contentforge/pkg/domain"
)

// ErrUnknownTool indicates the tool type is not in the registry.
var ErrUnknownTool = errors.New("unknown tool type")

// ValidationError reports a missing required field for a tool.
type ValidationError struct {
	Tool  domain.ToolType
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: required field %q is empty", e.Tool, e.Field)
}

// fields wraps raw input values with fallback-aware access.
type fields map[string]string

// get returns the trimmed value for key, or fallback when absent or blank.
func (f fields) get(key, fallback string) string {
	if v := strings.TrimSpace(f[key]); v != "" {
		return v
	}
	return fallback
}

// raw returns the trimmed value without fallback substitution.
func (f fields) raw(key string) string {
	return strings.TrimSpace(f[key])
}

type tool struct {
	required string
	render   func(f fields) string
}

// registry maps each tool type to its required field and template.
// Template bodies are fixed; same input always yields byte-identical output.
var registry = map[domain.ToolType]tool{
	domain.ToolContent:     {required: "topic", render: renderContent},
	domain.ToolScript:      {required: "title", render: renderScript},
	domain.ToolRap:         {required: "topic", render: renderRap},
	domain.ToolAdCopy:      {required: "product", render: renderAdCopy},
	domain.ToolSocialMedia: {required: "topic", render: renderSocialMedia},
	domain.ToolStory:       {required: "protagonist", render: renderStory},
}

// Generate builds the output text for a tool from its input fields.
// It is a pure function: no I/O, no randomness, no clock access.
func Generate(toolType domain.ToolType, input map[string]string) (string, error) {
	t, ok := registry[toolType]
	if !ok {
		return "", ErrUnknownTool
	}
	f := fields(input)
	if f.raw(t.required) == "" {
		return "", &ValidationError{Tool: toolType, Field: t.required}
	}
	return t.render(f), nil
}

// RequiredField returns the single required field name for a tool.
func RequiredField(toolType domain.ToolType) (string, bool) {
	t, ok := registry[toolType]
	if !ok {
		return "", false
	}
	return t.required, true
}
