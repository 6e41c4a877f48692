// Package providers implements the model-server client.
package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/calcbot/calcbot/internal/schema"
)

// Client makes direct HTTP calls to an OpenAI-compatible chat completions
// endpoint. The default target is a local Ollama server, which exposes the
// compatible API under /v1.
type Client struct {
	apiKey       string
	apiBase      string
	defaultModel string
	httpClient   *http.Client
}

// NewClient constructs a client bound to the given endpoint and model.
// apiKey may be empty; Ollama ignores it.
func NewClient(apiBase, apiKey, defaultModel string) *Client {
	return &Client{
		apiKey:       apiKey,
		apiBase:      strings.TrimRight(apiBase, "/"),
		defaultModel: defaultModel,
		httpClient:   &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *Client) DefaultModel() string { return c.defaultModel }

// APIBase returns the endpoint base URL the client is bound to.
func (c *Client) APIBase() string { return c.apiBase }

// Chat implements schema.LLMProvider by posting to /chat/completions.
func (c *Client) Chat(
	ctx context.Context,
	messages []schema.Message,
	opts schema.ChatOptions,
) (schema.LLMResponse, error) {
	model := opts.Model
	if model == "" {
		model = c.defaultModel
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 512
	}

	wire := make([]map[string]any, 0, len(messages))
	for _, m := range messages {
		wire = append(wire, map[string]any{"role": m.Role, "content": m.Content})
	}

	body := map[string]any{
		"model":       model,
		"messages":    wire,
		"max_tokens":  maxTokens,
		"temperature": opts.Temperature,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return schema.LLMResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiBase+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return schema.LLMResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return schema.LLMResponse{}, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return schema.LLMResponse{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return schema.LLMResponse{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, friendlyHTTPError(resp.StatusCode, raw))
	}

	return parseChatResponse(raw)
}

// Probe sends one trivial completion to confirm the server is reachable and
// the model can answer. Used for the startup connectivity check.
func (c *Client) Probe(ctx context.Context) error {
	_, err := c.Chat(ctx, []schema.Message{schema.NewUserMessage("test")},
		schema.NewChatOptions(c.defaultModel, 8, 0))
	if err != nil {
		return fmt.Errorf("probe %s: %w", c.apiBase, err)
	}
	return nil
}

// ListModels queries /models and returns the available model identifiers.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, friendlyHTTPError(resp.StatusCode, raw))
	}

	var body struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("parse models response: %w", err)
	}
	ids := make([]string, 0, len(body.Data))
	for _, m := range body.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// chatRespBody is the subset of the chat completion response we care about.
type chatRespBody struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func parseChatResponse(raw []byte) (schema.LLMResponse, error) {
	var body chatRespBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return schema.LLMResponse{}, fmt.Errorf("parse chat response: %w", err)
	}
	if len(body.Choices) == 0 {
		return schema.LLMResponse{}, fmt.Errorf("empty choices in response")
	}

	finish := body.Choices[0].FinishReason
	if finish == "" {
		finish = "stop"
	}

	return schema.LLMResponse{
		Content:      body.Choices[0].Message.Content,
		FinishReason: finish,
		Usage: map[string]int{
			"prompt_tokens":     body.Usage.PromptTokens,
			"completion_tokens": body.Usage.CompletionTokens,
			"total_tokens":      body.Usage.TotalTokens,
		},
	}, nil
}

func friendlyHTTPError(code int, body []byte) string {
	if code == http.StatusNotFound {
		return "endpoint not found (is the apiBase pointing at /v1?)"
	}
	if code == http.StatusTooManyRequests {
		return "rate limit exceeded"
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 300 {
		s = s[:300]
	}
	return s
}
