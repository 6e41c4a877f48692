// Package cmd implements the calcbot CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"
const logo = "🧮"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "calcbot",
	Short: logo + " calcbot — LLM-powered calculator",
	Long:  logo + " calcbot — a natural-language calculator backed by a local language model",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(onboardCmd)
}
