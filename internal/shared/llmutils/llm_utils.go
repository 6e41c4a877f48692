// Package llmutils contains small helpers for working with raw model output.
package llmutils

import (
	"regexp"
	"strings"
)

var reThink = regexp.MustCompile(`(?s)<think>.*?</think>`)

// Truncate shortens a string to at most n characters, adding "..." if it was truncated.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// StripThink removes <think>…</think> blocks that some local models embed.
func StripThink(s string) string {
	return reThink.ReplaceAllString(s, "")
}

// ExtractJSON pulls the first JSON object out of a model reply, stripping
// markdown code fences and surrounding prose. Returns the input unchanged
// when no object braces are found.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}
