// Package agent implements the calculator pipeline: prompt assembly, model
// invocation, response parsing, and tool dispatch.
package agent

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/calcbot/calcbot/internal/schema"
	"github.com/calcbot/calcbot/internal/tools"
)

// BuildSystemPrompt renders the tool registry into the fixed system
// instruction. The instruction enumerates every tool and mandates a JSON
// reply with exactly the keys 'name' and 'arguments'. preamble may be empty.
func BuildSystemPrompt(reg *tools.Registry, preamble string) string {
	var sb strings.Builder
	sb.WriteString("You are an assistant that has access to the following set of tools.\n")
	sb.WriteString("Here are the names and descriptions for each tool:\n\n")
	for _, t := range reg.All() {
		sb.WriteString(renderTool(t))
		sb.WriteString("\n")
	}
	sb.WriteString("\nGiven the user input, return the name and input of the tool to use.\n")
	sb.WriteString("Return your response as a JSON blob with 'name' and 'arguments' keys.")
	if preamble != "" {
		sb.WriteString("\n\n")
		sb.WriteString(preamble)
	}
	return sb.String()
}

// renderTool produces a one-line signature like
// "multiply(x: number, y: number) - Multiply two numbers together."
// Parameter order follows the schema's required list.
func renderTool(t schema.Tool) string {
	var s struct {
		Properties map[string]struct {
			Type string `json:"type"`
		} `json:"properties"`
		Required []string `json:"required"`
	}
	_ = json.Unmarshal(t.Parameters(), &s)

	params := make([]string, 0, len(s.Required))
	for _, name := range s.Required {
		params = append(params, fmt.Sprintf("%s: %s", name, s.Properties[name].Type))
	}
	return fmt.Sprintf("%s(%s) - %s", t.Name(), strings.Join(params, ", "), t.Description())
}

// preambleMeta is the YAML frontmatter structure of a prompt preamble file.
type preambleMeta struct {
	Description string `yaml:"description"`
	Disabled    bool   `yaml:"disabled"`
}

// LoadPreamble reads an optional markdown preamble file. A missing file or a
// frontmatter `disabled: true` yields "". Frontmatter is stripped from the
// returned body.
func LoadPreamble(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	content := string(data)

	meta, body := splitFrontmatter(content)
	if meta.Disabled {
		return ""
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return strings.TrimSpace(meta.Description)
	}
	return body
}

// splitFrontmatter separates a leading --- ... --- YAML block from markdown.
func splitFrontmatter(content string) (preambleMeta, string) {
	if !strings.HasPrefix(content, "---") {
		return preambleMeta{}, content
	}
	rest := content[3:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return preambleMeta{}, content
	}
	var m preambleMeta
	_ = yaml.Unmarshal([]byte(rest[:end]), &m)
	return m, rest[end+4:]
}
