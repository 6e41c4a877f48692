package schema

import "context"

// ChatOptions configures a single LLM chat request.
type ChatOptions struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// ToolCallRequest is the structured request parsed from the model's reply:
// the tool to invoke and its argument mapping. Constructed fresh per user
// input, never persisted.
type ToolCallRequest struct {
	Name      string
	Arguments map[string]any
}

// LLMResponse is the normalised response from the model server.
type LLMResponse struct {
	Content      string
	FinishReason string
	Usage        map[string]int // "prompt_tokens", "completion_tokens", "total_tokens"
}

// LLMProvider is the interface the model backend must satisfy.
type LLMProvider interface {
	Chat(ctx context.Context, messages []Message, opts ChatOptions) (LLMResponse, error)
	// Probe sends one trivial completion to verify the server is reachable.
	Probe(ctx context.Context) error
	DefaultModel() string
}

func NewChatOptions(model string, maxTokens int, temperature float64) ChatOptions {
	return ChatOptions{
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}
