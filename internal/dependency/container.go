// Package dependency wires core calcbot services using go.uber.org/dig.
package dependency

import (
	"context"

	"go.uber.org/dig"

	"github.com/calcbot/calcbot/internal/agent"
	"github.com/calcbot/calcbot/internal/config"
	"github.com/calcbot/calcbot/internal/providers"
	"github.com/calcbot/calcbot/internal/schema"
	"github.com/calcbot/calcbot/internal/tools"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	provider schema.LLMProvider
	registry *tools.Registry
	engine   *agent.Engine
}

func (c *Container) Provider() schema.LLMProvider { return c.provider }
func (c *Container) Registry() *tools.Registry    { return c.registry }
func (c *Container) Engine() *agent.Engine        { return c.engine }

// New builds and wires all core services from cfg. Constructing the provider
// performs the bounded-retry client initialization; an exhausted retry loop
// surfaces here as a *providers.InitError.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(func() context.Context { return ctx }); err != nil {
		return nil, err
	}
	if err := d.Provide(newProvider); err != nil {
		return nil, err
	}
	if err := d.Provide(tools.NewCalculatorRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(newEngine); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		provider schema.LLMProvider,
		registry *tools.Registry,
		engine *agent.Engine,
	) {
		result = &Container{
			provider: provider,
			registry: registry,
			engine:   engine,
		}
	})
	return result, err
}

func newProvider(ctx context.Context, cfg *config.Config) (schema.LLMProvider, error) {
	return providers.Connect(ctx,
		cfg.Provider.APIBase,
		cfg.Provider.APIKey,
		cfg.Agents.Defaults.Model,
		providers.RetryPolicy{
			MaxAttempts: cfg.Retry.MaxAttempts,
			Delay:       cfg.Retry.Delay(),
		})
}

func newEngine(provider schema.LLMProvider, registry *tools.Registry, cfg *config.Config) *agent.Engine {
	system := agent.BuildSystemPrompt(registry, agent.LoadPreamble(cfg.PreamblePath()))
	return agent.NewEngine(provider, registry, system, agent.Settings{
		Model:       cfg.Agents.Defaults.Model,
		MaxTokens:   cfg.Agents.Defaults.MaxTokens,
		Temperature: cfg.Agents.Defaults.Temperature,
	})
}
