package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/drillbook-dev/drillbook/internal/config"
	"github.com/drillbook-dev/drillbook/internal/server"
	"github.com/drillbook-dev/drillbook/internal/store/sqlite"
)

func newServeCommand() *cobra.Command {
	var (
		configPath string
		listen     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API over a local sqlite store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			addr := cfg.Server.Listen
			if listen != "" {
				addr = listen
			}

			store, err := sqlite.New(cfg.Server.DBPath)
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer store.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Listening on %s (db: %s)\n", addr, cfg.Server.DBPath)
			handler := server.NewHandler(store).WithAttemptLog(cfg.Server.AttemptLog)
			router := server.NewRouter(handler)
			return server.Serve(ctx, addr, router)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the config file")
	cmd.Flags().StringVar(&listen, "listen", "", "Override the configured listen address")

	return cmd
}
