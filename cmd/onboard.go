package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calcbot/calcbot/internal/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize configuration",
	RunE:  runOnboard,
}

func runOnboard(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	if _, err := os.Stat(cfgPath); err == nil {
		existing, loadErr := config.Load(cfgPath)
		if loadErr != nil {
			def := config.DefaultConfig()
			existing = &def
		}
		if err := config.Save(existing, cfgPath); err != nil {
			return err
		}
		fmt.Printf("✓ Config refreshed at %s\n", cfgPath)
	} else {
		cfg := config.DefaultConfig()
		if err := config.Save(&cfg, cfgPath); err != nil {
			return err
		}
		fmt.Printf("✓ Created config at %s\n", cfgPath)
	}

	createPromptTemplate()

	fmt.Printf("\n%s calcbot is ready!\n\n", logo)
	fmt.Println("Next steps:")
	fmt.Println("  1. Start a local model server: ollama serve")
	fmt.Println("  2. Pull the model: ollama pull phi")
	fmt.Printf("  3. Calculate: calcbot calc -m \"what's 5 times 3\"\n")
	return nil
}

// createPromptTemplate writes a commented-out prompt preamble the user can
// edit; an existing file is left untouched.
func createPromptTemplate() {
	p := filepath.Join(config.DataDir(), "prompt.md")
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		return
	}
	template := `---
description: Extra instructions appended to the calculator system prompt.
disabled: true
---

Remove "disabled: true" above and put extra model instructions here.
`
	if os.WriteFile(p, []byte(template), 0o644) == nil {
		fmt.Println("  Created prompt.md")
	}
}
