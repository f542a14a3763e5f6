package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/stmtgen/internal/config"
	"github.com/cleared-dev/stmtgen/internal/model"
	"github.com/cleared-dev/stmtgen/internal/store/csvstore"
)

func newInitCommand() *cobra.Command {
	var entityID string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a books directory with a default chart of accounts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, entityID)
		},
	}

	cmd.Flags().StringVar(&entityID, "entity", "", "entity ID (required)")
	_ = cmd.MarkFlagRequired("entity")

	return cmd
}

func runInit(dir, entityID string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	// Write stmtgen.yaml.
	if err := config.Save(filepath.Join(dir, "stmtgen.yaml"), config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the default chart of accounts.
	chartFile, err := os.Create(filepath.Join(dir, csvstore.AccountsFile))
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer chartFile.Close()
	if err := csvstore.WriteAccounts(chartFile, DefaultChart(entityID)); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	// Write empty data files so the layout is visible.
	empty := map[string]string{
		csvstore.TransactionsFile: csvstore.TransactionsHeader,
		csvstore.MappingsFile:     csvstore.MappingsHeader,
		csvstore.BankAccountsFile: csvstore.BankAccountsHeader,
		csvstore.PeriodsFile:      csvstore.PeriodsHeader,
	}
	for name, header := range empty {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(header+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}

	// Register the entity with the default currency.
	entities := csvstore.EntitiesHeader + "\n" + entityID + "," + config.Default().Currency.Default + "\n"
	if err := os.WriteFile(filepath.Join(dir, csvstore.EntitiesFile), []byte(entities), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", csvstore.EntitiesFile, err)
	}

	fmt.Printf("Initialized books for %s at %s\n", entityID, dir)
	return nil
}

// DefaultChart returns the starter chart of accounts for a new entity.
func DefaultChart(entityID string) []model.Account {
	return []model.Account{
		{EntityID: entityID, Code: "1010", Name: "Business Checking", Type: model.AccountTypeAsset},
		{EntityID: entityID, Code: "1020", Name: "Business Savings", Type: model.AccountTypeAsset},
		{EntityID: entityID, Code: "2010", Name: "Credit Card", Type: model.AccountTypeLiability},
		{EntityID: entityID, Code: "3010", Name: "Owner's Equity", Type: model.AccountTypeEquity},
		{EntityID: entityID, Code: "4010", Name: "Service Revenue", Type: model.AccountTypeIncome},
		{EntityID: entityID, Code: "4020", Name: "Product Revenue", Type: model.AccountTypeIncome},
		{EntityID: entityID, Code: "5010", Name: "Advertising & Marketing", Type: model.AccountTypeExpense},
		{EntityID: entityID, Code: "5030", Name: "Office Supplies", Type: model.AccountTypeExpense},
		{EntityID: entityID, Code: "5040", Name: "Travel", Type: model.AccountTypeExpense},
		{EntityID: entityID, Code: "5999", Name: "Uncategorized Expense", Type: model.AccountTypeExpense},
	}
}
