package providers

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RetryPolicy bounds the client initialization loop.
// Sleep is injectable so tests run without real delays; nil means time.Sleep.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	Sleep       func(time.Duration)
}

func (p RetryPolicy) sleep(d time.Duration) {
	if p.Sleep != nil {
		p.Sleep(d)
		return
	}
	time.Sleep(d)
}

// InitError is the terminal failure raised when every initialization attempt
// failed. It is distinct from per-request errors: callers must not retry it.
type InitError struct {
	Attempts int
	Last     error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize model client after %d attempts: %v", e.Attempts, e.Last)
}

func (e *InitError) Unwrap() error { return e.Last }

// Connect constructs a Client bound to the given endpoint and model and
// verifies it with a probe, retrying per policy. Exhausting all attempts
// returns an *InitError.
func Connect(ctx context.Context, apiBase, apiKey, model string, policy RetryPolicy) (*Client, error) {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}

	var last error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		client := NewClient(apiBase, apiKey, model)
		err := client.Probe(ctx)
		if err == nil {
			return client, nil
		}
		last = err

		if attempt < policy.MaxAttempts {
			slog.Warn("model client init failed, retrying",
				"attempt", attempt, "delay", policy.Delay, "err", last)
			policy.sleep(policy.Delay)
		}
	}
	return nil, &InitError{Attempts: policy.MaxAttempts, Last: last}
}
