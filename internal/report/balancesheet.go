package report

import (
	"strings"
	"time"

	"github.com/cleared-dev/stmtgen/internal/ledger"
	"github.com/cleared-dev/stmtgen/internal/model"
)

// BuildBalanceSheet partitions aggregated balances into asset, liability,
// and equity sections. Assets with a "1" code prefix are current, the
// rest fixed; liabilities with a "2" prefix are current, the rest
// long-term. Totals are computed bottom-up from the sub-sections.
func BuildBalanceSheet(entityID string, asOf time.Time, currency string, balances map[string]ledger.Balance) BalanceSheet {
	var assets AssetsSide
	var liabilities LiabilitiesSide
	var equity Section

	for _, b := range balances {
		item := Item{Code: b.Code, Name: b.Name, Amount: b.Amount}
		switch b.Type {
		case model.AccountTypeAsset:
			if strings.HasPrefix(b.Code, "1") {
				assets.Current = addToSection(assets.Current, item)
			} else {
				assets.Fixed = addToSection(assets.Fixed, item)
			}
		case model.AccountTypeLiability:
			if strings.HasPrefix(b.Code, "2") {
				liabilities.Current = addToSection(liabilities.Current, item)
			} else {
				liabilities.LongTerm = addToSection(liabilities.LongTerm, item)
			}
		case model.AccountTypeEquity:
			equity = addToSection(equity, item)
		}
	}

	sortItems(assets.Current.Items)
	sortItems(assets.Fixed.Items)
	sortItems(liabilities.Current.Items)
	sortItems(liabilities.LongTerm.Items)
	sortItems(equity.Items)

	assets.Total = assets.Current.Total.Add(assets.Fixed.Total)
	liabilities.Total = liabilities.Current.Total.Add(liabilities.LongTerm.Total)
	liabilitiesAndEquity := liabilities.Total.Add(equity.Total)

	return BalanceSheet{
		EntityID:                  entityID,
		AsOf:                      asOf,
		Currency:                  currency,
		GeneratedAt:               time.Now().UTC(),
		Assets:                    assets,
		Liabilities:               liabilities,
		Equity:                    equity,
		TotalLiabilitiesAndEquity: liabilitiesAndEquity,
		OutOfBalance:              assets.Total.Sub(liabilitiesAndEquity),
	}
}

func addToSection(s Section, item Item) Section {
	s.Items = append(s.Items, item)
	s.Total = s.Total.Add(item.Amount)
	return s
}
