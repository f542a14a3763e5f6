package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/stmtgen/internal/config"
	"github.com/cleared-dev/stmtgen/internal/logging"
	"github.com/cleared-dev/stmtgen/internal/report"
	"github.com/cleared-dev/stmtgen/internal/server"
	"github.com/cleared-dev/stmtgen/internal/store/pgstore"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the statement API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "stmtgen.yaml", "path to config file")

	return cmd
}

func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logging.New(cfg.Logging.Level)

	st, err := pgstore.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	gen := report.NewGenerator(report.Stores{
		Transactions: st,
		Chart:        st,
		Mappings:     st,
		Bank:         st,
		Entities:     st,
	}, log, cfg.Currency.Default)

	srv := server.New(gen, log)
	return srv.Listen(cfg.Server.Address)
}
