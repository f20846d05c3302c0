package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bizreg/pkg/buildinfo"
	"github.com/matzehuels/bizreg/pkg/config"
	"github.com/matzehuels/bizreg/pkg/integrations"
	"github.com/matzehuels/bizreg/pkg/integrations/nydos"
	"github.com/matzehuels/bizreg/pkg/lookup"
	"github.com/matzehuels/bizreg/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "bizreg"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose    bool
	configPath string
	overrides  config.Overrides
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "bizreg searches the New York business entity registry",
		Long:         `bizreg searches the New York Department of State business entity registry by name and fetches normalized detail records, from the command line or over a small HTTP API.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				observability.NewLogHooks(c.Logger).Install()
			}
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/bizreg/config.toml)")
	flags.StringVar(&c.overrides.State, "state", "", "jurisdiction label stamped on results (overrides STATE)")
	flags.StringVar(&c.overrides.StoreDriver, "store", "", "result store: none, file, redis, mongo, sqlite")

	root.AddCommand(c.searchCommand())
	root.AddCommand(c.entityCommand())
	root.AddCommand(c.storedCommand())
	root.AddCommand(c.agentRowsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())

	return root
}

// =============================================================================
// Service Factory
// =============================================================================

// loadConfig loads the configuration once per process and applies flag overrides.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(c.overrides); err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

// newService wires the registry client and result store from configuration.
// The caller must call the returned close function.
func (c *CLI) newService(ctx context.Context) (*lookup.Service, func(), error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("store opened", "driver", cfg.Store.Driver)

	registry := nydos.NewClient(
		nydos.Config{
			State:     cfg.State,
			BaseURL:   cfg.Registry.BaseURL,
			UserAgent: cfg.Registry.UserAgent,
		},
		integrations.WithTimeout(cfg.Registry.Timeout.Std()),
		integrations.WithLogger(c.Logger),
	)

	closeFn := func() {
		if err := st.Close(); err != nil {
			c.Logger.Warn("close store", "err", err)
		}
	}
	return lookup.New(registry, st, c.Logger), closeFn, nil
}
