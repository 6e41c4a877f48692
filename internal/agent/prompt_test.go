package agent

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calcbot/calcbot/internal/tools"
)

func TestBuildSystemPrompt_EnumeratesTools(t *testing.T) {
	prompt := BuildSystemPrompt(tools.NewCalculatorRegistry(), "")

	if !strings.Contains(prompt, "multiply(x: number, y: number) - Multiply two numbers together.") {
		t.Errorf("multiply signature missing from prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "add(x: integer, y: integer) - Add two numbers.") {
		t.Errorf("add signature missing from prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "'name' and 'arguments' keys") {
		t.Errorf("JSON format instruction missing from prompt:\n%s", prompt)
	}
}

func TestBuildSystemPrompt_Deterministic(t *testing.T) {
	reg := tools.NewCalculatorRegistry()
	a := BuildSystemPrompt(reg, "")
	b := BuildSystemPrompt(reg, "")
	if a != b {
		t.Error("prompt rendering is not deterministic")
	}
}

func TestBuildSystemPrompt_Preamble(t *testing.T) {
	prompt := BuildSystemPrompt(tools.NewCalculatorRegistry(), "Answer in French.")
	if !strings.HasSuffix(prompt, "Answer in French.") {
		t.Errorf("preamble not appended:\n%s", prompt)
	}
}

func TestLoadPreamble_Missing(t *testing.T) {
	if got := LoadPreamble(filepath.Join(t.TempDir(), "nope.md")); got != "" {
		t.Errorf("expected empty preamble, got %q", got)
	}
}

func TestLoadPreamble_PlainBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.md")
	os.WriteFile(path, []byte("Always show your working.\n"), 0o644)
	if got := LoadPreamble(path); got != "Always show your working." {
		t.Errorf("unexpected preamble: %q", got)
	}
}

func TestLoadPreamble_Frontmatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.md")
	os.WriteFile(path, []byte("---\ndescription: extra rules\n---\nBe terse.\n"), 0o644)
	if got := LoadPreamble(path); got != "Be terse." {
		t.Errorf("unexpected preamble: %q", got)
	}
}

func TestLoadPreamble_Disabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.md")
	os.WriteFile(path, []byte("---\ndisabled: true\n---\nBe terse.\n"), 0o644)
	if got := LoadPreamble(path); got != "" {
		t.Errorf("expected empty preamble for disabled file, got %q", got)
	}
}

func TestLoadPreamble_DescriptionOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.md")
	os.WriteFile(path, []byte("---\ndescription: use scientific notation\n---\n"), 0o644)
	if got := LoadPreamble(path); got != "use scientific notation" {
		t.Errorf("unexpected preamble: %q", got)
	}
}
