package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/calcbot/calcbot/internal/schema"
	"github.com/calcbot/calcbot/internal/shared/llmutils"
	"github.com/calcbot/calcbot/internal/tools"
)

// Settings carries the per-request model parameters.
type Settings struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// Engine runs one calculation request through the full pipeline:
// prompt -> model -> parse -> dispatch. It holds no state across requests.
type Engine struct {
	provider schema.LLMProvider
	registry *tools.Registry
	system   string
	settings Settings
}

// NewEngine creates an Engine with a pre-rendered system prompt.
func NewEngine(provider schema.LLMProvider, registry *tools.Registry, systemPrompt string, settings Settings) *Engine {
	return &Engine{
		provider: provider,
		registry: registry,
		system:   systemPrompt,
		settings: settings,
	}
}

// Calculate translates one natural-language request into a tool invocation
// and returns the tool's result. Errors are *ParseError, *DispatchError, or
// a wrapped transport error; all are recoverable by the caller.
func (e *Engine) Calculate(ctx context.Context, input string) (string, error) {
	conversation := []schema.Message{
		schema.NewSystemMessage(e.system),
		schema.NewUserMessage(input),
	}

	resp, err := e.provider.Chat(ctx, conversation,
		schema.NewChatOptions(e.settings.Model, e.settings.MaxTokens, e.settings.Temperature))
	if err != nil {
		return "", fmt.Errorf("model request: %w", err)
	}

	req, err := ParseToolCall(resp.Content)
	if err != nil {
		slog.Warn("unparseable model reply", "reply", llmutils.Truncate(resp.Content, 200))
		return "", err
	}

	slog.Info("Tool call", "name", req.Name, "args", req.Arguments)

	return Dispatch(ctx, e.registry, req)
}
