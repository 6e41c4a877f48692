package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// exitKeyword terminates the loop; matched case-insensitively after trimming.
const exitKeyword = "exit"

// REPL drives the interactive loop: read a line, run it through the engine,
// print the result, repeat. No state survives between iterations.
type REPL struct {
	engine *Engine
	in     io.Reader
	out    io.Writer
}

func NewREPL(engine *Engine, in io.Reader, out io.Writer) *REPL {
	return &REPL{engine: engine, in: in, out: out}
}

// Run blocks until the user types the exit keyword, input ends, or ctx is
// cancelled. Every per-request failure is reported and the loop resumes;
// only a read error is returned.
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(r.out, "\nEnter calculation: ")

		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}

		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}
		if line == exitKeyword {
			return nil
		}

		result, err := r.engine.Calculate(ctx, line)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			fmt.Fprintln(r.out, "Please try again with a different calculation.")
			continue
		}
		fmt.Fprintf(r.out, "Result: %s\n", result)
	}
}
