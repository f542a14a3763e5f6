package report

import (
	"sort"
	"time"

	"github.com/cleared-dev/stmtgen/internal/ledger"
	"github.com/cleared-dev/stmtgen/internal/model"
)

// BuildProfitAndLoss partitions aggregated balances into revenue (income
// accounts) and expenses. Item amounts are absolute values; section
// totals sum signed balances. net_income = revenue.total - expenses.total
// exactly.
func BuildProfitAndLoss(entityID string, period Period, currency string, balances map[string]ledger.Balance) ProfitAndLossStatement {
	var revenue, expenses Section
	for _, b := range balances {
		item := Item{Code: b.Code, Name: b.Name, Amount: b.Amount.Abs()}
		switch b.Type {
		case model.AccountTypeIncome:
			revenue.Items = append(revenue.Items, item)
			revenue.Total = revenue.Total.Add(b.Amount)
		case model.AccountTypeExpense:
			expenses.Items = append(expenses.Items, item)
			expenses.Total = expenses.Total.Add(b.Amount)
		}
	}
	sortItems(revenue.Items)
	sortItems(expenses.Items)

	return ProfitAndLossStatement{
		EntityID:    entityID,
		Period:      period,
		Currency:    currency,
		GeneratedAt: time.Now().UTC(),
		Revenue:     revenue,
		Expenses:    expenses,
		NetIncome:   revenue.Total.Sub(expenses.Total),
	}
}

func sortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
}
