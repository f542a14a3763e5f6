package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

// Account is one entry in an entity's chart of accounts. Codes are unique
// per entity and each code carries exactly one type.
type Account struct {
	Code     string      `json:"code"`
	EntityID string      `json:"entity_id"`
	Name     string      `json:"name"`
	Type     AccountType `json:"type"`
}

// AccountMapping routes a transaction category (and optional subcategory)
// to a ledger account code. Subcategory is empty when the mapping applies
// to the bare category.
type AccountMapping struct {
	EntityID    string `json:"entity_id"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	AccountCode string `json:"account_code"`
}
