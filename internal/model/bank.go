package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a real-world bank or card account belonging to an entity.
type BankAccount struct {
	ID       string `json:"id"`
	EntityID string `json:"entity_id"`
	Name     string `json:"name"`
	LastFour string `json:"last_four"`
}

// BankStatementPeriod is a closed reconciliation window from a bank
// statement. Multiple periods exist per bank account over time.
type BankStatementPeriod struct {
	BankAccountID  string          `json:"bank_account_id"`
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}
