package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/autoframe/internal/server"
	"github.com/matzehuels/autoframe/pkg/buildinfo"
	"github.com/matzehuels/autoframe/pkg/session"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion API over HTTP",
		Long: `Serve the conversion API over HTTP for plugin UIs running outside the process.

Endpoints:
  GET    /healthz
  GET    /v1/version
  POST   /v1/analyze
  POST   /v1/convert
  POST   /v1/sessions
  GET    /v1/sessions/{id}
  DELETE /v1/sessions/{id}
  GET    /v1/sessions/{id}/document
  POST   /v1/sessions/{id}/messages

The listen address comes from --addr, AUTOFRAME_ADDR or [server] addr in the
config file, in that order. Sessions are kept in memory unless
AUTOFRAME_REDIS_URL or [server] redis_url names a Redis server, which lets
several instances share them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") && c.Config.Server.Addr != "" {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")

	return cmd
}

// runServe blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)
	ttl, err := c.Config.Server.TTL()
	if err != nil {
		return err
	}

	cfg := server.Config{
		Addr:       addr,
		Defaults:   c.Config.Defaults.Overrides(),
		SessionTTL: ttl,
	}
	sessions := "memory"
	if url := c.Config.Server.RedisURL; url != "" {
		store, err := session.NewRedisStore(ctx, session.RedisConfig{
			URL:    url,
			Runner: c.newRunner(logger),
			Logger: logger,
		})
		if err != nil {
			return err
		}
		defer store.Close()
		cfg.Store = store
		sessions = "redis"
	}
	srv := server.New(cfg, logger)

	printSuccess("Autoframe API")
	printKeyValue("Version", buildinfo.Version)
	printKeyValue("Address", "http://"+srv.Addr())
	printKeyValue("Sessions", sessions)
	if ttl > 0 {
		printKeyValue("Session TTL", ttl.String())
	}
	printNewline()

	return srv.ListenAndServe(ctx)
}
