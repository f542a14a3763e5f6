package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/stmtgen/internal/model"
)

// DebitCredit holds the raw debit and credit columns for one account.
type DebitCredit struct {
	Code   string            `json:"code"`
	Name   string            `json:"name"`
	Type   model.AccountType `json:"type"`
	Debit  decimal.Decimal   `json:"debit"`
	Credit decimal.Decimal   `json:"credit"`
}

// DebitCreditTotals accumulates raw transaction amounts into debit and
// credit columns per account, with no type-aware sign convention. Every
// chart account is seeded at zero.
func DebitCreditTotals(txns []model.Transaction, chart *Chart, resolver CodeResolver) map[string]DebitCredit {
	totals := make(map[string]DebitCredit, len(chart.All()))
	for _, a := range chart.All() {
		totals[a.Code] = DebitCredit{Code: a.Code, Name: a.Name, Type: a.Type}
	}

	for _, txn := range txns {
		code := resolver.Resolve(txn.Category, txn.Subcategory)
		dc, ok := totals[code]
		if !ok {
			dc = DebitCredit{Code: code, Name: code, Type: model.AccountTypeExpense}
		}
		if txn.IsDebit {
			dc.Debit = dc.Debit.Add(txn.Amount)
		} else {
			dc.Credit = dc.Credit.Add(txn.Amount)
		}
		totals[code] = dc
	}
	return totals
}
