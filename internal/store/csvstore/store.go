// Package csvstore implements the repository interfaces over a directory
// of CSV files, for local books worked on without a database.
package csvstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cleared-dev/stmtgen/internal/model"
	"github.com/cleared-dev/stmtgen/internal/store"
)

// File names inside a books directory.
const (
	AccountsFile     = "chart-of-accounts.csv"
	TransactionsFile = "transactions.csv"
	MappingsFile     = "account-mappings.csv"
	BankAccountsFile = "bank-accounts.csv"
	PeriodsFile      = "statement-periods.csv"
	EntitiesFile     = "entities.csv"
)

// Store reads a books directory. A missing file is an empty result, not
// an error; malformed data is an error.
type Store struct {
	dir string
}

// New creates a Store over a books directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// open opens a file in the books directory. A nil ReadCloser with nil
// error means the file does not exist.
func (s *Store) open(name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	return f, nil
}

// Transactions implements store.TransactionStore.
func (s *Store) Transactions(_ context.Context, entityID string, start, end time.Time) ([]model.Transaction, error) {
	f, err := s.open(TransactionsFile)
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()

	all, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", TransactionsFile, err)
	}

	var txns []model.Transaction
	for _, t := range all {
		if t.EntityID != entityID {
			continue
		}
		if !start.IsZero() && t.Date.Before(start) {
			continue
		}
		if !end.IsZero() && t.Date.After(end) {
			continue
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// Accounts implements store.ChartStore.
func (s *Store) Accounts(_ context.Context, entityID string) ([]model.Account, error) {
	f, err := s.open(AccountsFile)
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()

	all, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", AccountsFile, err)
	}

	var accounts []model.Account
	for _, a := range all {
		if a.EntityID == entityID {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

// Mappings implements store.MappingStore. File order is preserved.
func (s *Store) Mappings(_ context.Context, entityID string) ([]model.AccountMapping, error) {
	f, err := s.open(MappingsFile)
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()

	all, err := ReadMappings(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", MappingsFile, err)
	}

	var mappings []model.AccountMapping
	for _, m := range all {
		if m.EntityID == entityID {
			mappings = append(mappings, m)
		}
	}
	return mappings, nil
}

// BankAccounts implements store.BankStore.
func (s *Store) BankAccounts(_ context.Context, entityID string) ([]model.BankAccount, error) {
	f, err := s.open(BankAccountsFile)
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()

	all, err := ReadBankAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", BankAccountsFile, err)
	}

	var accounts []model.BankAccount
	for _, a := range all {
		if a.EntityID == entityID {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

// LatestPeriod implements store.BankStore.
func (s *Store) LatestPeriod(_ context.Context, bankAccountID string, onOrBefore time.Time, anchor store.PeriodAnchor) (*model.BankStatementPeriod, error) {
	f, err := s.open(PeriodsFile)
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()

	all, err := ReadPeriods(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", PeriodsFile, err)
	}

	var best *model.BankStatementPeriod
	for _, p := range all {
		if p.BankAccountID != bankAccountID {
			continue
		}
		boundary := p.PeriodEnd
		if anchor == store.AnchorStart {
			boundary = p.PeriodStart
		}
		if boundary.After(onOrBefore) {
			continue
		}
		if best == nil || p.PeriodEnd.After(best.PeriodEnd) {
			candidate := p
			best = &candidate
		}
	}
	return best, nil
}

// Currency implements store.EntityStore.
func (s *Store) Currency(_ context.Context, entityID string) (string, error) {
	f, err := s.open(EntitiesFile)
	if err != nil || f == nil {
		return "", err
	}
	defer f.Close()

	entities, err := readEntities(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", EntitiesFile, err)
	}
	for _, e := range entities {
		if e.EntityID == entityID {
			return e.Currency, nil
		}
	}
	return "", nil
}
