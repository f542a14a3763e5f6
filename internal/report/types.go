// Package report assembles the four financial statements from aggregated
// balances, raw transactions, and bank statement cash positions. Builders
// are pure transforms; the Generator wires them to stores.
package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is the reporting window a statement covers.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Item is one account line in a statement section.
type Item struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Section groups account lines under a total.
type Section struct {
	Items []Item          `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// ProfitAndLossStatement is revenue minus expenses over a period.
// Item amounts are absolute values (display convention); section totals
// sum the signed balances, so contra entries such as refunds reduce the
// total of their section.
type ProfitAndLossStatement struct {
	EntityID    string          `json:"entity_id"`
	Period      Period          `json:"period"`
	Currency    string          `json:"currency"`
	GeneratedAt time.Time       `json:"generated_at"`
	Revenue     Section         `json:"revenue"`
	Expenses    Section         `json:"expenses"`
	NetIncome   decimal.Decimal `json:"net_income"`
}

// AssetsSide partitions assets into current and fixed.
type AssetsSide struct {
	Current Section         `json:"current"`
	Fixed   Section         `json:"fixed"`
	Total   decimal.Decimal `json:"total"`
}

// LiabilitiesSide partitions liabilities into current and long-term.
type LiabilitiesSide struct {
	Current  Section         `json:"current"`
	LongTerm Section         `json:"long_term"`
	Total    decimal.Decimal `json:"total"`
}

// BalanceSheet is the point-in-time statement of assets, liabilities, and
// equity. OutOfBalance is assets.total - (liabilities.total +
// equity.total); zero when the books are consistent. The builder never
// refuses to produce a statement over inconsistent books.
type BalanceSheet struct {
	EntityID                  string          `json:"entity_id"`
	AsOf                      time.Time       `json:"as_of"`
	Currency                  string          `json:"currency"`
	GeneratedAt               time.Time       `json:"generated_at"`
	Assets                    AssetsSide      `json:"assets"`
	Liabilities               LiabilitiesSide `json:"liabilities"`
	Equity                    Section         `json:"equity"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"total_liabilities_and_equity"`
	OutOfBalance              decimal.Decimal `json:"out_of_balance"`
}

// OperatingActivities is the operating bucket of the cash flow statement.
// ChangesInWorkingCapital is a derived plug (operating total minus net
// income), not an independently sourced figure.
type OperatingActivities struct {
	ChangesInWorkingCapital decimal.Decimal `json:"changes_in_working_capital"`
	Total                   decimal.Decimal `json:"total"`
}

// Activities is a non-operating cash flow bucket.
type Activities struct {
	Total decimal.Decimal `json:"total"`
}

// CashFlowStatement splits cash movement into operating, investing, and
// financing activities. BeginningCash and EndingCash come from bank
// statements, an independent source, and are deliberately not reconciled
// against NetChangeInCash; consumers can compare the two themselves.
type CashFlowStatement struct {
	EntityID            string              `json:"entity_id"`
	Period              Period              `json:"period"`
	Currency            string              `json:"currency"`
	GeneratedAt         time.Time           `json:"generated_at"`
	NetIncome           decimal.Decimal     `json:"net_income"`
	OperatingActivities OperatingActivities `json:"operating_activities"`
	InvestingActivities Activities          `json:"investing_activities"`
	FinancingActivities Activities          `json:"financing_activities"`
	NetChangeInCash     decimal.Decimal     `json:"net_change_in_cash"`
	BeginningCash       decimal.Decimal     `json:"beginning_cash"`
	EndingCash          decimal.Decimal     `json:"ending_cash"`
}

// TrialBalanceRow is one account's raw debit and credit columns.
type TrialBalanceRow struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// TrialBalance lists every account's debit and credit balances and checks
// that the columns agree.
type TrialBalance struct {
	EntityID     string            `json:"entity_id"`
	Period       Period            `json:"period"`
	Currency     string            `json:"currency"`
	GeneratedAt  time.Time         `json:"generated_at"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"total_debits"`
	TotalCredits decimal.Decimal   `json:"total_credits"`
	IsBalanced   bool              `json:"is_balanced"`
}
