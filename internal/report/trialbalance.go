package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/stmtgen/internal/ledger"
)

// BuildTrialBalance lists every account's raw debit and credit columns,
// sums them, and checks the columns agree within the default epsilon.
func BuildTrialBalance(entityID string, period Period, currency string, totals map[string]ledger.DebitCredit) TrialBalance {
	rows := make([]TrialBalanceRow, 0, len(totals))
	var totalDebits, totalCredits decimal.Decimal
	for _, dc := range totals {
		rows = append(rows, TrialBalanceRow{
			Code:   dc.Code,
			Name:   dc.Name,
			Debit:  dc.Debit,
			Credit: dc.Credit,
		})
		totalDebits = totalDebits.Add(dc.Debit)
		totalCredits = totalCredits.Add(dc.Credit)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Code < rows[j].Code })

	return TrialBalance{
		EntityID:     entityID,
		Period:       period,
		Currency:     currency,
		GeneratedAt:  time.Now().UTC(),
		Rows:         rows,
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		IsBalanced:   ledger.CheckBalance(totalDebits, totalCredits, ledger.DefaultEpsilon),
	}
}
