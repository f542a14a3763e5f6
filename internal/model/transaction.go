package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a categorized bank/card transaction as delivered by the
// categorization subsystem. Amount is always positive; IsDebit carries the
// direction. Category is empty when the transaction was never categorized.
type Transaction struct {
	ID          string          `json:"id"`
	EntityID    string          `json:"entity_id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	IsDebit     bool            `json:"is_debit"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Type        string          `json:"type"` // bank transaction type (transfer, deposit, ...)
}
