package ledger

import "github.com/shopspring/decimal"

// DefaultEpsilon is the tolerance for debit/credit equality.
var DefaultEpsilon = decimal.RequireFromString("0.01")

// CheckBalance reports whether total debits and credits agree within
// epsilon.
func CheckBalance(totalDebits, totalCredits, epsilon decimal.Decimal) bool {
	return totalDebits.Sub(totalCredits).Abs().LessThan(epsilon)
}
