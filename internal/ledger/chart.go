// Package ledger aggregates signed account balances from transactions
// under double-entry conventions. Two views coexist deliberately: the
// type-aware signed aggregation (Aggregate) feeds P&L, Balance Sheet, and
// Cash Flow, while the raw debit/credit split (DebitCreditTotals) is the
// trial-balance view, a plain column listing of unsigned amounts.
package ledger

import (
	"github.com/cleared-dev/stmtgen/internal/model"
)

// Reserved account codes. These are always resolvable even when absent
// from an entity's chart.
const (
	// CodeUncategorizedExpense is the resolver fallback for transactions
	// that cannot be routed to any chart account.
	CodeUncategorizedExpense = "5999"

	// CodeBankCash is the synthetic bucket holding aggregated bank-account
	// cash merged in from statement balances.
	CodeBankCash = "1000"
)

// Chart is a code-indexed registry over an entity's chart of accounts.
type Chart struct {
	accounts []model.Account
	byCode   map[string]model.Account
}

// NewChart builds a Chart from a slice of accounts.
func NewChart(accounts []model.Account) *Chart {
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return &Chart{accounts: accounts, byCode: byCode}
}

// All returns all accounts.
func (c *Chart) All() []model.Account {
	return c.accounts
}

// Get returns an account by code.
func (c *Chart) Get(code string) (model.Account, bool) {
	a, ok := c.byCode[code]
	return a, ok
}

// Exists reports whether an account code exists.
func (c *Chart) Exists(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// ByType returns all accounts of the given type.
func (c *Chart) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range c.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}
