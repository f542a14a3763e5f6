package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/stmtgen/internal/config"
	"github.com/cleared-dev/stmtgen/internal/logging"
	"github.com/cleared-dev/stmtgen/internal/report"
	"github.com/cleared-dev/stmtgen/internal/store/csvstore"
)

const dateFormat = "2006-01-02"

func newReportCommand() *cobra.Command {
	var dataDir, entityID, startStr, endStr, asOfStr string

	cmd := &cobra.Command{
		Use:       "report <pnl|balance-sheet|cash-flow|trial-balance>",
		Short:     "Generate a financial statement from a books directory",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"pnl", "balance-sheet", "cash-flow", "trial-balance"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], dataDir, entityID, startStr, endStr, asOfStr)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "books directory")
	cmd.Flags().StringVar(&entityID, "entity", "", "entity ID (required)")
	_ = cmd.MarkFlagRequired("entity")
	cmd.Flags().StringVar(&startStr, "start", "", "period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "period end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&asOfStr, "as-of", "", "balance sheet date (YYYY-MM-DD)")

	return cmd
}

func runReport(cmd *cobra.Command, kind, dataDir, entityID, startStr, endStr, asOfStr string) error {
	st := csvstore.New(dataDir)
	log := logging.New("warn")
	gen := report.NewGenerator(report.Stores{
		Transactions: st,
		Chart:        st,
		Mappings:     st,
		Bank:         st,
		Entities:     st,
	}, log, config.Default().Currency.Default)

	ctx := cmd.Context()

	var stmt any
	switch kind {
	case "balance-sheet":
		asOf, err := parseFlagDate("as-of", asOfStr)
		if err != nil {
			return err
		}
		stmt = gen.BalanceSheet(ctx, entityID, asOf)
	case "pnl", "cash-flow", "trial-balance":
		start, err := parseFlagDate("start", startStr)
		if err != nil {
			return err
		}
		end, err := parseFlagDate("end", endStr)
		if err != nil {
			return err
		}
		switch kind {
		case "pnl":
			stmt = gen.ProfitAndLoss(ctx, entityID, start, end)
		case "cash-flow":
			stmt = gen.CashFlow(ctx, entityID, start, end)
		default:
			stmt = gen.TrialBalance(ctx, entityID, start, end)
		}
	default:
		return fmt.Errorf("unknown report %q", kind)
	}

	out, err := json.MarshalIndent(stmt, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding statement: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func parseFlagDate(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("--%s is required", name)
	}
	t, err := time.Parse(dateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --%s %q: %w", name, value, err)
	}
	return t, nil
}
