package agent

import (
	"context"
	"fmt"

	"github.com/calcbot/calcbot/internal/schema"
	"github.com/calcbot/calcbot/internal/tools"
)

// DispatchError reports a tool lookup or invocation failure. Like ParseError
// it is recovered at the loop boundary.
type DispatchError struct {
	Tool string
	Err  error
}

func (e *DispatchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unknown tool %q", e.Tool)
	}
	return fmt.Sprintf("tool %q rejected the call: %v", e.Tool, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// Dispatch looks up the requested tool in the registry and invokes it with
// the supplied arguments. The tool itself validates arity and types against
// its declared schema.
func Dispatch(ctx context.Context, reg *tools.Registry, req schema.ToolCallRequest) (string, error) {
	t := reg.Get(req.Name)
	if t == nil {
		return "", &DispatchError{Tool: req.Name}
	}
	result, err := t.Execute(ctx, req.Arguments)
	if err != nil {
		return "", &DispatchError{Tool: req.Name, Err: err}
	}
	return result, nil
}
