// Package bank resolves point-in-time cash balances from periodic bank
// statement records. This is independent of ledger aggregation: the
// numbers come straight from statements, not from transactions.
package bank

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/stmtgen/internal/model"
	"github.com/cleared-dev/stmtgen/internal/store"
)

// lookupConcurrency caps the per-account statement lookups in flight.
const lookupConcurrency = 4

// Tracker resolves entity-level cash positions from bank statement
// periods. A bank account with no qualifying period contributes zero.
type Tracker struct {
	store store.BankStore
	log   logrus.FieldLogger
}

// NewTracker creates a Tracker.
func NewTracker(bankStore store.BankStore, log logrus.FieldLogger) *Tracker {
	return &Tracker{store: bankStore, log: log}
}

// CashAt returns the summed closing balances of each bank account's most
// recent statement period ending on or before asOf.
func (t *Tracker) CashAt(ctx context.Context, entityID string, asOf time.Time) decimal.Decimal {
	accounts := t.bankAccounts(ctx, entityID)
	return t.sumBalances(ctx, accounts, asOf, store.AnchorEnd, func(p *model.BankStatementPeriod) decimal.Decimal {
		return p.ClosingBalance
	})
}

// CashRange returns beginning cash (opening balances of the most recent
// periods starting on or before start) and ending cash (closing balances
// of the most recent periods ending on or before end).
func (t *Tracker) CashRange(ctx context.Context, entityID string, start, end time.Time) (beginning, ending decimal.Decimal) {
	accounts := t.bankAccounts(ctx, entityID)
	beginning = t.sumBalances(ctx, accounts, start, store.AnchorStart, func(p *model.BankStatementPeriod) decimal.Decimal {
		return p.OpeningBalance
	})
	ending = t.sumBalances(ctx, accounts, end, store.AnchorEnd, func(p *model.BankStatementPeriod) decimal.Decimal {
		return p.ClosingBalance
	})
	return beginning, ending
}

func (t *Tracker) bankAccounts(ctx context.Context, entityID string) []model.BankAccount {
	accounts, err := t.store.BankAccounts(ctx, entityID)
	if err != nil {
		t.log.WithError(err).WithField("entity_id", entityID).Warn("bank accounts read failed, treating as none")
		return nil
	}
	return accounts
}

// sumBalances fans out one statement lookup per bank account, bounded by
// lookupConcurrency, and sums the picked balance. Lookup failures and
// missing periods contribute zero.
func (t *Tracker) sumBalances(ctx context.Context, accounts []model.BankAccount, onOrBefore time.Time, anchor store.PeriodAnchor, pick func(*model.BankStatementPeriod) decimal.Decimal) decimal.Decimal {
	results := make([]decimal.Decimal, len(accounts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for i, account := range accounts {
		i, account := i, account
		g.Go(func() error {
			period, err := t.store.LatestPeriod(ctx, account.ID, onOrBefore, anchor)
			if err != nil {
				t.log.WithError(err).WithField("bank_account_id", account.ID).Debug("statement period lookup failed, treating as missing")
				return nil
			}
			if period != nil {
				results[i] = pick(period)
			}
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors

	total := decimal.Zero
	for _, r := range results {
		total = total.Add(r)
	}
	return total
}
