// Package config defines the configuration schema for calcbot.
//
// Everything lives in a single JSON file at ~/.calcbot/config.json; a missing
// file means all defaults, so the tool works out of the box against a local
// Ollama server.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// ProviderConfig holds the connection settings for the local model server.
// APIBase must point at an OpenAI-compatible endpoint; Ollama exposes one at
// /v1. APIKey is optional (Ollama ignores it).
type ProviderConfig struct {
	APIBase string `json:"apiBase"`
	APIKey  string `json:"apiKey,omitempty"`
}

func defaultProviderConfig() ProviderConfig {
	return ProviderConfig{APIBase: "http://localhost:11434/v1"}
}

// AgentDefaults holds default values for model behaviour.
type AgentDefaults struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"maxTokens"`
	Temperature float64 `json:"temperature"`
}

func defaultAgentDefaults() AgentDefaults {
	return AgentDefaults{
		Model:       "phi",
		MaxTokens:   512,
		Temperature: 0,
	}
}

// AgentsConfig wraps agent defaults.
type AgentsConfig struct {
	Defaults AgentDefaults `json:"defaults"`
}

func defaultAgentsConfig() AgentsConfig {
	return AgentsConfig{Defaults: defaultAgentDefaults()}
}

// RetryConfig bounds the model-client initialization retry loop.
type RetryConfig struct {
	MaxAttempts  int `json:"maxAttempts"`
	DelaySeconds int `json:"delaySeconds"`
}

func defaultRetryConfig() RetryConfig {
	return RetryConfig{MaxAttempts: 3, DelaySeconds: 2}
}

// Delay returns the configured inter-attempt delay as a time.Duration.
func (r RetryConfig) Delay() time.Duration {
	return time.Duration(r.DelaySeconds) * time.Second
}

// PromptConfig configures optional prompt customisation.
type PromptConfig struct {
	// PreamblePath points at a markdown file (optionally with YAML
	// frontmatter) appended to the system instruction. Empty means
	// ~/.calcbot/prompt.md; a missing file is silently skipped.
	PreamblePath string `json:"preamblePath,omitempty"`
}

// Config is the root configuration object, loaded from ~/.calcbot/config.json.
type Config struct {
	Agents   AgentsConfig   `json:"agents"`
	Provider ProviderConfig `json:"provider"`
	Retry    RetryConfig    `json:"retry"`
	Prompt   PromptConfig   `json:"prompt"`
}

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() Config {
	return Config{
		Agents:   defaultAgentsConfig(),
		Provider: defaultProviderConfig(),
		Retry:    defaultRetryConfig(),
	}
}

// PreamblePath returns the expanded path to the prompt preamble file.
func (c *Config) PreamblePath() string {
	p := c.Prompt.PreamblePath
	if p == "" {
		return filepath.Join(DataDir(), "prompt.md")
	}
	if len(p) >= 2 && p[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	return p
}
