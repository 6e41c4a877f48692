package agent

import (
	"encoding/json"
	"fmt"

	"github.com/calcbot/calcbot/internal/schema"
	"github.com/calcbot/calcbot/internal/shared/llmutils"
)

// ParseError reports model output that could not be interpreted as a tool
// call request. It is recovered at the loop boundary, never fatal.
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return "could not parse model output: " + e.Reason
}

// ParseToolCall parses the model's raw text reply into a ToolCallRequest.
// The model is an untrusted boundary: think blocks and code fences are
// stripped, then the object shape is validated strictly. The reply must have
// exactly the keys 'name' and 'arguments', with a string name and an object
// argument map.
func ParseToolCall(raw string) (schema.ToolCallRequest, error) {
	cleaned := llmutils.ExtractJSON(llmutils.StripThink(raw))

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return schema.ToolCallRequest{}, &ParseError{Reason: "reply is not a JSON object", Raw: raw}
	}

	nameRaw, ok := obj["name"]
	if !ok {
		return schema.ToolCallRequest{}, &ParseError{Reason: "missing 'name' key", Raw: raw}
	}
	argsRaw, ok := obj["arguments"]
	if !ok {
		return schema.ToolCallRequest{}, &ParseError{Reason: "missing 'arguments' key", Raw: raw}
	}
	if len(obj) != 2 {
		return schema.ToolCallRequest{}, &ParseError{
			Reason: fmt.Sprintf("expected exactly 'name' and 'arguments' keys, got %d keys", len(obj)),
			Raw:    raw,
		}
	}

	var name string
	if err := json.Unmarshal(nameRaw, &name); err != nil || name == "" {
		return schema.ToolCallRequest{}, &ParseError{Reason: "'name' must be a non-empty string", Raw: raw}
	}

	var args map[string]any
	if err := json.Unmarshal(argsRaw, &args); err != nil || args == nil {
		return schema.ToolCallRequest{}, &ParseError{Reason: "'arguments' must be an object", Raw: raw}
	}

	return schema.ToolCallRequest{Name: name, Arguments: args}, nil
}
