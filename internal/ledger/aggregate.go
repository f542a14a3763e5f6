package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/stmtgen/internal/model"
)

// CodeResolver maps a transaction's category/subcategory to an account
// code. It always returns a code, falling back when nothing matches.
type CodeResolver interface {
	Resolve(category, subcategory string) string
}

// Balance is the signed running total for one account.
type Balance struct {
	Code   string            `json:"code"`
	Name   string            `json:"name"`
	Type   model.AccountType `json:"type"`
	Amount decimal.Decimal   `json:"amount"`
}

// Aggregate accumulates type-aware signed balances per account code.
// Every chart account is seeded at zero, plus the synthetic CodeBankCash
// asset bucket seeded with bankCash. Debits increase asset and expense
// accounts and decrease the rest; credits do the opposite.
func Aggregate(txns []model.Transaction, chart *Chart, resolver CodeResolver, bankCash decimal.Decimal) map[string]Balance {
	balances := make(map[string]Balance, len(chart.All())+1)
	for _, a := range chart.All() {
		balances[a.Code] = Balance{Code: a.Code, Name: a.Name, Type: a.Type}
	}
	balances[CodeBankCash] = Balance{
		Code:   CodeBankCash,
		Name:   "Bank Accounts",
		Type:   model.AccountTypeAsset,
		Amount: bankCash,
	}

	for _, txn := range txns {
		code := resolver.Resolve(txn.Category, txn.Subcategory)
		b, ok := balances[code]
		if !ok {
			// Codes outside the chart (the uncategorized fallback on a
			// chart that lacks it, or a stale mapping) become expense
			// buckets so the amount is never dropped.
			b = Balance{Code: code, Name: code, Type: model.AccountTypeExpense}
		}
		b.Amount = b.Amount.Add(signedAmount(b.Type, txn))
		balances[code] = b
	}
	return balances
}

// signedAmount applies the debit/credit convention for an account type.
func signedAmount(accountType model.AccountType, txn model.Transaction) decimal.Decimal {
	switch accountType {
	case model.AccountTypeAsset, model.AccountTypeExpense:
		if txn.IsDebit {
			return txn.Amount
		}
		return txn.Amount.Neg()
	default: // liability, equity, income
		if txn.IsDebit {
			return txn.Amount.Neg()
		}
		return txn.Amount
	}
}
