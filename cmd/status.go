package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/calcbot/calcbot/internal/config"
	"github.com/calcbot/calcbot/internal/providers"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show calcbot status",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	fmt.Printf("%s calcbot Status\n\n", logo)

	_, statErr := os.Stat(cfgPath)
	cfgMark := "✗"
	if statErr == nil {
		cfgMark = "✓"
	}
	fmt.Printf("Config:    %s %s\n", cfgPath, cfgMark)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("  (could not load config: %v)\n", err)
		return nil
	}

	fmt.Printf("Endpoint:  %s\n", cfg.Provider.APIBase)
	fmt.Printf("Model:     %s\n\n", cfg.Agents.Defaults.Model)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := providers.NewClient(cfg.Provider.APIBase, cfg.Provider.APIKey, cfg.Agents.Defaults.Model)

	// Probe the server and list models concurrently.
	var probeErr error
	var models []string
	var modelsErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		probeErr = client.Probe(gctx)
		return nil
	})
	g.Go(func() error {
		models, modelsErr = client.ListModels(gctx)
		return nil
	})
	_ = g.Wait()

	if probeErr != nil {
		fmt.Printf("Server:    ✗ %v\n", probeErr)
	} else {
		fmt.Println("Server:    ✓ reachable")
	}

	switch {
	case modelsErr != nil:
		fmt.Printf("Models:    ✗ %v\n", modelsErr)
	case len(models) == 0:
		fmt.Println("Models:    (none pulled)")
	default:
		pulled := false
		for _, id := range models {
			if id == cfg.Agents.Defaults.Model {
				pulled = true
				break
			}
		}
		mark := "✗ not pulled"
		if pulled {
			mark = "✓ pulled"
		}
		fmt.Printf("Models:    %d available, %s %s\n", len(models), cfg.Agents.Defaults.Model, mark)
	}

	return nil
}
