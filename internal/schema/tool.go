// Package schema contains the core contracts shared across calcbot packages.
// Concrete implementations live in their respective packages; this package is
// the single canonical source of truth for every interface definition.
package schema

import (
	"context"
	"encoding/json"
)

// Tool is the interface every LLM-selectable calculator tool must satisfy.
// Each tool validates and coerces its own arguments inside Execute; there is
// no reflection-based invocation anywhere.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns the JSON Schema (as raw JSON bytes) for this tool's parameters.
	Parameters() json.RawMessage
	Execute(ctx context.Context, args map[string]any) (string, error)
}
