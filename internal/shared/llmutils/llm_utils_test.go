package llmutils

import "testing"

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("unexpected: %q", got)
	}
	if got := Truncate("hello world", 5); got != "hello..." {
		t.Errorf("unexpected: %q", got)
	}
}

func TestStripThink(t *testing.T) {
	in := "<think>reasoning\nhere</think>{\"name\": \"add\"}"
	if got := StripThink(in); got != `{"name": "add"}` {
		t.Errorf("unexpected: %q", got)
	}
}

func TestExtractJSON_Fenced(t *testing.T) {
	in := "```json\n{\"name\": \"multiply\"}\n```"
	if got := ExtractJSON(in); got != `{"name": "multiply"}` {
		t.Errorf("unexpected: %q", got)
	}
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	in := "Sure! Here is the tool call: {\"name\": \"add\", \"arguments\": {}} Hope that helps."
	if got := ExtractJSON(in); got != `{"name": "add", "arguments": {}}` {
		t.Errorf("unexpected: %q", got)
	}
}

func TestExtractJSON_NoBraces(t *testing.T) {
	if got := ExtractJSON("no json here"); got != "no json here" {
		t.Errorf("unexpected: %q", got)
	}
}
