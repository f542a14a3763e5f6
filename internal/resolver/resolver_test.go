package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/stmtgen/internal/ledger"
	"github.com/cleared-dev/stmtgen/internal/model"
)

func testAccounts() []model.Account {
	return []model.Account{
		{Code: "1010", Name: "Business Checking", Type: model.AccountTypeAsset},
		{Code: "4010", Name: "Service Revenue", Type: model.AccountTypeIncome},
		{Code: "5010", Name: "Advertising & Marketing", Type: model.AccountTypeExpense},
		{Code: "5030", Name: "Office Supplies", Type: model.AccountTypeExpense},
	}
}

func TestResolve_EmptyCategoryShortCircuits(t *testing.T) {
	mappings := []model.AccountMapping{
		{Category: "", Subcategory: "", AccountCode: "4010"},
	}
	r := New(mappings, testAccounts())

	// Even an explicit mapping for the empty category is skipped.
	assert.Equal(t, ledger.CodeUncategorizedExpense, r.Resolve("", ""))
}

func TestResolve_MappingWins(t *testing.T) {
	mappings := []model.AccountMapping{
		{Category: "Consulting", Subcategory: "", AccountCode: "4010"},
		{Category: "Consulting", Subcategory: "Retainer", AccountCode: "4020"},
	}
	r := New(mappings, testAccounts())

	assert.Equal(t, "4010", r.Resolve("Consulting", ""))
	assert.Equal(t, "4020", r.Resolve("Consulting", "Retainer"))
}

func TestResolve_MappingFirstMatchWins(t *testing.T) {
	mappings := []model.AccountMapping{
		{Category: "Consulting", Subcategory: "", AccountCode: "4010"},
		{Category: "Consulting", Subcategory: "", AccountCode: "4020"},
	}
	r := New(mappings, testAccounts())

	assert.Equal(t, "4010", r.Resolve("Consulting", ""))
}

func TestResolve_NameMatch(t *testing.T) {
	r := New(nil, testAccounts())

	tests := []struct {
		category string
		want     string
	}{
		{"office supplies", "5030"}, // exact name, case-insensitive
		{"Supplies", "5030"},        // account name contains the category
		{"Advertising & Marketing expenses for Q1", "5010"}, // category contains the account name
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Resolve(tt.category, ""), "category %q", tt.category)
	}
}

func TestResolve_KeywordTable(t *testing.T) {
	// No mappings, no name matches: only the keyword table applies.
	r := New(nil, nil)

	tests := []struct {
		category string
		want     string
	}{
		{"Sales commissions", "4010"},
		{"Product income", "4010"},
		{"Paper supplies", "5030"},
		{"Air travel", "5040"},
		{"SaaS subscription", "5030"},
		{"Quantum flux capacitors", ledger.CodeUncategorizedExpense},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Resolve(tt.category, ""), "category %q", tt.category)
	}
}

func TestResolve_KeywordOrder(t *testing.T) {
	r := New(nil, nil)

	// "office software" hits the office/supplies rule before the
	// software/subscription rule; both route to the same code.
	assert.Equal(t, "5030", r.Resolve("office software", ""))

	// "travel income" hits the revenue rule first: the table is ordered.
	assert.Equal(t, "4010", r.Resolve("travel income", ""))
}

func TestResolve_StrategyPrecedence(t *testing.T) {
	// A mapping beats a perfect name match, which beats keywords.
	mappings := []model.AccountMapping{
		{Category: "Office Supplies", Subcategory: "", AccountCode: "5010"},
	}
	r := New(mappings, testAccounts())

	assert.Equal(t, "5010", r.Resolve("Office Supplies", ""))
	// Unmapped categories fall through to the name strategy.
	assert.Equal(t, "4010", r.Resolve("service revenue", ""))
}

func TestResolve_NeverFails(t *testing.T) {
	r := New(nil, nil)

	for _, category := range []string{"", "x", "entirely unmapped", "   "} {
		code := r.Resolve(category, "whatever")
		assert.NotEmpty(t, code)
	}
}
