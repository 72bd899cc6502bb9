package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lifebridge/lifebridge/internal/server"
	"github.com/lifebridge/lifebridge/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd(a *app) *cobra.Command {
	var (
		addr   string
		dbPath string
		memory bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation API over HTTP",
		Long: `Serve the simulation API.

Endpoints:
  GET    /healthz
  GET    /benefits
  POST   /simulate
  POST   /compare
  GET    /profiles
  POST   /profiles
  GET    /profiles/{id}
  DELETE /profiles/{id}
  GET    /profiles/{id}/simulation
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.config.Addr
			}
			if dbPath == "" {
				dbPath = a.config.DBPath
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			profiles, err := openStore(ctx, dbPath, memory)
			if err != nil {
				return err
			}
			defer profiles.Close()

			a.logger.Info("starting server", zap.String("addr", addr), zap.String("db", dbPath), zap.Bool("memory", memory))
			return server.New(a.newEngine(false), profiles, a.logger).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $LIFEBRIDGE_ADDR or :8080)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default $LIFEBRIDGE_DB or lifebridge.db)")
	cmd.Flags().BoolVar(&memory, "memory", false, "Keep profiles in memory instead of SQLite")
	return cmd
}

func openStore(ctx context.Context, dbPath string, memory bool) (store.ProfileStore, error) {
	if memory {
		return store.NewMemoryStore(), nil
	}
	return store.OpenSQLite(ctx, dbPath)
}
