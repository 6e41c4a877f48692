// Package tools holds the calculator tool registry and its built-in tools.
package tools

import (
	"sort"

	"github.com/calcbot/calcbot/internal/schema"
)

// ToolName is the canonical name of a built-in tool.
type ToolName string

const (
	ToolMultiply ToolName = "multiply"
	ToolAdd      ToolName = "add"
)

// Registry holds a set of named tools. Built once at startup, read-only
// thereafter.
type Registry struct {
	tools map[string]schema.Tool
}

// Get returns the tool with the given name, or nil.
func (r *Registry) Get(name string) schema.Tool {
	return r.tools[name]
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.tools) }

// All returns every registered tool sorted by name, so prompt rendering is
// deterministic.
func (r *Registry) All() []schema.Tool {
	out := make([]schema.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Names returns the sorted tool names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewCalculatorRegistry builds the fixed registry of calculator tools.
func NewCalculatorRegistry() *Registry {
	return NewRegistryBuilder().
		WithTool(NewMultiplyTool()).
		WithTool(NewAddTool()).
		Build()
}
