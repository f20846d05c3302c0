package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/bizreg/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lookup API over HTTP",
		Long: `Serve the lookup API:

  GET /healthz
  GET /v1/search?q=<name>
  GET /v1/entities/{id}
  GET /v1/records/{id}

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			svc, closeStore, err := c.newService(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			return server.New(svc, c.Logger).ListenAndServe(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&c.overrides.ServerAddr, "addr", "", "listen address (default from config, \":8080\")")
	return cmd
}
