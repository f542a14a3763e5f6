// Package store defines the repository interfaces the statement generator
// reads from. Implementations live in csvstore (file-backed books) and
// pgstore (Postgres). Stores return honest errors; the generator decides
// what to do with them.
package store

import (
	"context"
	"time"

	"github.com/cleared-dev/stmtgen/internal/model"
)

// PeriodAnchor selects which boundary of a bank statement period a
// point-in-time lookup compares against.
type PeriodAnchor string

const (
	// AnchorStart compares against period_start.
	AnchorStart PeriodAnchor = "start"
	// AnchorEnd compares against period_end.
	AnchorEnd PeriodAnchor = "end"
)

// TransactionStore reads categorized transactions for an entity. A zero
// start or end leaves that side of the range unbounded.
type TransactionStore interface {
	Transactions(ctx context.Context, entityID string, start, end time.Time) ([]model.Transaction, error)
}

// ChartStore reads an entity's chart of accounts.
type ChartStore interface {
	Accounts(ctx context.Context, entityID string) ([]model.Account, error)
}

// MappingStore reads an entity's category-to-account mappings in source
// order. Resolution takes the first match, so order matters.
type MappingStore interface {
	Mappings(ctx context.Context, entityID string) ([]model.AccountMapping, error)
}

// BankStore reads bank accounts and their statement periods.
type BankStore interface {
	BankAccounts(ctx context.Context, entityID string) ([]model.BankAccount, error)

	// LatestPeriod returns the statement period whose anchored boundary is
	// the latest one on or before the given date, ties broken by the latest
	// period end. A nil period with nil error means no period is on record.
	LatestPeriod(ctx context.Context, bankAccountID string, onOrBefore time.Time, anchor PeriodAnchor) (*model.BankStatementPeriod, error)
}

// EntityStore reads entity-level settings.
type EntityStore interface {
	// Currency returns the entity's currency code, or an empty string when
	// the entity has none configured.
	Currency(ctx context.Context, entityID string) (string, error)
}
