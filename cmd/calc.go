package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/calcbot/calcbot/internal/agent"
	"github.com/calcbot/calcbot/internal/config"
	"github.com/calcbot/calcbot/internal/dependency"
	"github.com/calcbot/calcbot/internal/providers"
)

var calcMessage string

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run the interactive calculator",
	RunE:  runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&calcMessage, "message", "m", "", "Run a single calculation and exit")
}

func runCalc(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Startup connectivity check: one trivial completion before anything else.
	if !checkConnection(ctx, cfg) {
		os.Exit(1)
	}

	fmt.Println("Initializing calculator...")
	container, err := dependency.New(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Println("Calculator ready!")

	if calcMessage != "" {
		return runSingleCalculation(ctx, container.Engine())
	}

	fmt.Println("\nEnter calculations (e.g., 'what's 5 times 3' or 'what's 10 plus 20')")
	fmt.Println("Type 'exit' to quit")

	listenForSignals(cancel)

	repl := agent.NewREPL(container.Engine(), os.Stdin, os.Stdout)
	if err := repl.Run(ctx); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	fmt.Println("Goodbye!")
	return nil
}

// checkConnection probes the model endpoint once. On failure it prints the
// remediation steps and returns false; the caller must exit non-zero.
func checkConnection(ctx context.Context, cfg *config.Config) bool {
	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	client := providers.NewClient(cfg.Provider.APIBase, cfg.Provider.APIKey, cfg.Agents.Defaults.Model)
	err := client.Probe(probeCtx)
	if err == nil {
		return true
	}

	fmt.Println("\nError connecting to the model server. Please ensure:")
	fmt.Println("1. Ollama is installed (https://ollama.com)")
	fmt.Println("2. The Ollama server is running ('ollama serve')")
	fmt.Printf("3. The model is pulled ('ollama pull %s')\n", cfg.Agents.Defaults.Model)
	fmt.Printf("4. apiBase in %s points at the server (current: %s)\n", config.ConfigPath(), cfg.Provider.APIBase)
	fmt.Printf("\nError details: %v\n", err)
	return false
}

// runSingleCalculation sends one request through the engine and prints the result.
func runSingleCalculation(ctx context.Context, engine *agent.Engine) error {
	reqCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	result, err := engine.Calculate(reqCtx, calcMessage)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println("Please try again with a different calculation.")
		return nil
	}
	fmt.Printf("Result: %s\n", result)
	return nil
}

// listenForSignals exits gracefully on SIGINT or SIGTERM.
func listenForSignals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nExiting calculator...")
		cancel()
		os.Exit(0)
	}()
}
