package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/stmtgen/internal/bank"
	"github.com/cleared-dev/stmtgen/internal/ledger"
	"github.com/cleared-dev/stmtgen/internal/model"
	"github.com/cleared-dev/stmtgen/internal/resolver"
	"github.com/cleared-dev/stmtgen/internal/store"
)

// Stores bundles the repositories the generator reads from.
type Stores struct {
	Transactions store.TransactionStore
	Chart        store.ChartStore
	Mappings     store.MappingStore
	Bank         store.BankStore
	Entities     store.EntityStore
}

// Generator produces the four financial statements for an entity over a
// requested period. It is stateless: every call reads fresh data, builds
// a statement, and holds nothing between calls. Read failures are
// swallowed into empty result sets, so a statement is always produced,
// possibly under-reported.
type Generator struct {
	stores          Stores
	tracker         *bank.Tracker
	log             logrus.FieldLogger
	defaultCurrency string
}

// NewGenerator creates a Generator.
func NewGenerator(stores Stores, log logrus.FieldLogger, defaultCurrency string) *Generator {
	return &Generator{
		stores:          stores,
		tracker:         bank.NewTracker(stores.Bank, log),
		log:             log,
		defaultCurrency: defaultCurrency,
	}
}

// ledgerInputs holds the independent reads every statement needs.
type ledgerInputs struct {
	txns     []model.Transaction
	accounts []model.Account
	mappings []model.AccountMapping
	currency string
}

// load issues the four independent reads concurrently. Each read failure
// is logged and degraded to an empty result.
func (g *Generator) load(ctx context.Context, entityID string, start, end time.Time) ledgerInputs {
	var in ledgerInputs

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		txns, err := g.stores.Transactions.Transactions(ctx, entityID, start, end)
		if err != nil {
			g.warn(err, entityID, "transactions")
			return nil
		}
		in.txns = txns
		return nil
	})
	eg.Go(func() error {
		accounts, err := g.stores.Chart.Accounts(ctx, entityID)
		if err != nil {
			g.warn(err, entityID, "chart of accounts")
			return nil
		}
		in.accounts = accounts
		return nil
	})
	eg.Go(func() error {
		mappings, err := g.stores.Mappings.Mappings(ctx, entityID)
		if err != nil {
			g.warn(err, entityID, "account mappings")
			return nil
		}
		in.mappings = mappings
		return nil
	})
	eg.Go(func() error {
		currency, err := g.stores.Entities.Currency(ctx, entityID)
		if err != nil || currency == "" {
			if err != nil {
				g.warn(err, entityID, "currency")
			}
			currency = g.defaultCurrency
		}
		in.currency = currency
		return nil
	})
	_ = eg.Wait() // goroutines never return errors

	return in
}

func (g *Generator) warn(err error, entityID, what string) {
	g.log.WithError(err).WithField("entity_id", entityID).Warnf("%s read failed, treating as empty", what)
}

// ProfitAndLoss builds the P&L statement for [start, end].
func (g *Generator) ProfitAndLoss(ctx context.Context, entityID string, start, end time.Time) ProfitAndLossStatement {
	in := g.load(ctx, entityID, start, end)
	balances := g.aggregate(in, decimal.Zero)
	return BuildProfitAndLoss(entityID, Period{Start: start, End: end}, in.currency, balances)
}

// BalanceSheet builds the point-in-time balance sheet as of asOf. Ledger
// balances accumulate from the beginning of the books; bank cash comes
// from the most recent statement periods ending on or before asOf.
func (g *Generator) BalanceSheet(ctx context.Context, entityID string, asOf time.Time) BalanceSheet {
	in := g.load(ctx, entityID, time.Time{}, asOf)
	cash := g.tracker.CashAt(ctx, entityID, asOf)
	balances := g.aggregate(in, cash)
	return BuildBalanceSheet(entityID, asOf, in.currency, balances)
}

// CashFlow builds the cash flow statement for [start, end], reusing the
// P&L net income for the same period.
func (g *Generator) CashFlow(ctx context.Context, entityID string, start, end time.Time) CashFlowStatement {
	in := g.load(ctx, entityID, start, end)
	balances := g.aggregate(in, decimal.Zero)
	period := Period{Start: start, End: end}
	pnl := BuildProfitAndLoss(entityID, period, in.currency, balances)
	beginning, ending := g.tracker.CashRange(ctx, entityID, start, end)
	return BuildCashFlow(entityID, period, in.currency, pnl.NetIncome, in.txns, beginning, ending)
}

// TrialBalance builds the trial balance for [start, end] from raw debit
// and credit amounts.
func (g *Generator) TrialBalance(ctx context.Context, entityID string, start, end time.Time) TrialBalance {
	in := g.load(ctx, entityID, start, end)
	chart := ledger.NewChart(in.accounts)
	res := resolver.New(in.mappings, in.accounts)
	totals := ledger.DebitCreditTotals(in.txns, chart, res)
	return BuildTrialBalance(entityID, Period{Start: start, End: end}, in.currency, totals)
}

func (g *Generator) aggregate(in ledgerInputs, bankCash decimal.Decimal) map[string]ledger.Balance {
	chart := ledger.NewChart(in.accounts)
	res := resolver.New(in.mappings, in.accounts)
	return ledger.Aggregate(in.txns, chart, res, bankCash)
}
