// Package resolver routes a transaction's category and subcategory to a
// ledger account code. Resolution walks an ordered list of strategies:
// explicit mappings, then name similarity against the chart of accounts,
// then a keyword table, then the uncategorized-expense fallback. It never
// fails; every transaction lands somewhere.
package resolver

import (
	"strings"

	"github.com/cleared-dev/stmtgen/internal/ledger"
	"github.com/cleared-dev/stmtgen/internal/model"
)

// Strategy is one resolution step. It reports a code and whether it
// matched.
type Strategy interface {
	Resolve(category, subcategory string) (string, bool)
}

// Resolver walks strategies in order and falls back to the
// uncategorized-expense code.
type Resolver struct {
	strategies []Strategy
}

// New builds a Resolver over an entity's mappings and chart of accounts.
func New(mappings []model.AccountMapping, accounts []model.Account) *Resolver {
	return &Resolver{
		strategies: []Strategy{
			mappingStrategy{mappings: mappings},
			nameStrategy{accounts: accounts},
			keywordStrategy{},
		},
	}
}

// Resolve returns the account code for a category/subcategory pair. An
// empty category short-circuits straight to the fallback.
func (r *Resolver) Resolve(category, subcategory string) string {
	if category == "" {
		return ledger.CodeUncategorizedExpense
	}
	for _, s := range r.strategies {
		if code, ok := s.Resolve(category, subcategory); ok {
			return code
		}
	}
	return ledger.CodeUncategorizedExpense
}

// mappingStrategy matches explicit account mappings. Category and
// subcategory must both match exactly, an empty subcategory on both sides
// counting as a match. First mapping in source order wins.
type mappingStrategy struct {
	mappings []model.AccountMapping
}

func (s mappingStrategy) Resolve(category, subcategory string) (string, bool) {
	for _, m := range s.mappings {
		if m.Category == category && m.Subcategory == subcategory {
			return m.AccountCode, true
		}
	}
	return "", false
}

// nameStrategy matches the category against chart account names,
// case-insensitively, with either string containing the other. First
// chart account wins.
type nameStrategy struct {
	accounts []model.Account
}

func (s nameStrategy) Resolve(category, _ string) (string, bool) {
	cat := strings.ToLower(category)
	for _, a := range s.accounts {
		name := strings.ToLower(a.Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, cat) || strings.Contains(cat, name) {
			return a.Code, true
		}
	}
	return "", false
}

// keywordRule maps category keywords to a fixed account code.
type keywordRule struct {
	keywords []string
	code     string
}

// keywordRules is evaluated in order; the first rule with any keyword
// present in the lowercased category wins.
var keywordRules = []keywordRule{
	{keywords: []string{"revenue", "income", "sales"}, code: "4010"},
	{keywords: []string{"office", "supplies"}, code: "5030"},
	{keywords: []string{"travel"}, code: "5040"},
	{keywords: []string{"software", "subscription"}, code: "5030"},
}

// keywordStrategy applies the ordered keyword table.
type keywordStrategy struct{}

func (keywordStrategy) Resolve(category, _ string) (string, bool) {
	cat := strings.ToLower(category)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(cat, kw) {
				return rule.code, true
			}
		}
	}
	return "", false
}
