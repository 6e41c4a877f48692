package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// MultiplyTool multiplies two numbers.
type MultiplyTool struct{}

func NewMultiplyTool() *MultiplyTool { return &MultiplyTool{} }

func (t *MultiplyTool) Name() string { return string(ToolMultiply) }
func (t *MultiplyTool) Description() string {
	return "Multiply two numbers together."
}

func (t *MultiplyTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"x": {"type": "number", "description": "First factor."},
			"y": {"type": "number", "description": "Second factor."}
		},
		"required": ["x", "y"]
	}`)
}

func (t *MultiplyTool) Execute(_ context.Context, args map[string]any) (string, error) {
	x, err := requiredNumber(args, "x")
	if err != nil {
		return "", err
	}
	y, err := requiredNumber(args, "y")
	if err != nil {
		return "", err
	}
	return formatNumber(x * y), nil
}

// AddTool adds two integers.
type AddTool struct{}

func NewAddTool() *AddTool { return &AddTool{} }

func (t *AddTool) Name() string { return string(ToolAdd) }
func (t *AddTool) Description() string {
	return "Add two numbers."
}

func (t *AddTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"x": {"type": "integer", "description": "First addend."},
			"y": {"type": "integer", "description": "Second addend."}
		},
		"required": ["x", "y"]
	}`)
}

func (t *AddTool) Execute(_ context.Context, args map[string]any) (string, error) {
	x, err := requiredInt(args, "x")
	if err != nil {
		return "", err
	}
	y, err := requiredInt(args, "y")
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(x+y, 10), nil
}

// requiredNumber extracts a numeric argument. JSON numbers arrive as float64;
// json.Number is accepted for callers that decode with UseNumber.
func requiredNumber(args map[string]any, key string) (float64, error) {
	v, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing argument %q", key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("argument %q is not a number", key)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("argument %q is not a number", key)
	}
}

// requiredInt extracts an integral argument, rejecting fractional values.
func requiredInt(args map[string]any, key string) (int64, error) {
	f, err := requiredNumber(args, key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("argument %q must be an integer, got %v", key, f)
	}
	return int64(f), nil
}

// formatNumber renders a float without a trailing fractional part when the
// value is integral, so 5*3 prints as "15" rather than "15.000000".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
