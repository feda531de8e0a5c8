package commands

import (
	"log/slog"

	"github.com/clarkmcc/surrealdb/internal/cli/config"
	"github.com/clarkmcc/surrealdb/internal/render"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Service *render.Service
}

// NewCommandContext builds the dependencies of a command from the loaded
// configuration and the logger stored in the command context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Service: render.New(render.Config{
			Compat:  cfg.Compat,
			Workers: cfg.Workers,
		}, logger),
	}
}

// getConfig returns the current configuration, or the defaults when no
// configuration was loaded (commands executed without the root command).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}
