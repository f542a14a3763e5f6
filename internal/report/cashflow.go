package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/stmtgen/internal/model"
)

// BuildCashFlow classifies raw transactions into operating, investing,
// and financing buckets and derives the working-capital plug from the
// P&L's net income. Beginning and ending cash come from bank statements
// and are not reconciled against net_change_in_cash.
func BuildCashFlow(entityID string, period Period, currency string, netIncome decimal.Decimal, txns []model.Transaction, beginningCash, endingCash decimal.Decimal) CashFlowStatement {
	var operating, investing, financing decimal.Decimal
	for _, txn := range txns {
		flow := txn.Amount
		if txn.IsDebit {
			flow = flow.Neg()
		}
		switch classifyActivity(txn) {
		case activityInvesting:
			investing = investing.Add(flow)
		case activityFinancing:
			financing = financing.Add(flow)
		default:
			operating = operating.Add(flow)
		}
	}

	return CashFlowStatement{
		EntityID:    entityID,
		Period:      period,
		Currency:    currency,
		GeneratedAt: time.Now().UTC(),
		NetIncome:   netIncome,
		OperatingActivities: OperatingActivities{
			ChangesInWorkingCapital: operating.Sub(netIncome),
			Total:                   operating,
		},
		InvestingActivities: Activities{Total: investing},
		FinancingActivities: Activities{Total: financing},
		NetChangeInCash:     operating.Add(investing).Add(financing),
		BeginningCash:       beginningCash,
		EndingCash:          endingCash,
	}
}

type activity int

const (
	activityOperating activity = iota
	activityInvesting
	activityFinancing
)

// classifyActivity buckets a transaction by its bank transaction type and
// an "Investment" category substring check.
func classifyActivity(txn model.Transaction) activity {
	if txn.Type == "transfer" || strings.Contains(txn.Category, "Investment") {
		return activityInvesting
	}
	if txn.Type == "deposit" || txn.Type == "withdrawal" {
		return activityFinancing
	}
	return activityOperating
}
