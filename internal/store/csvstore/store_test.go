package csvstore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/stmtgen/internal/model"
	"github.com/cleared-dev/stmtgen/internal/store"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTransactionsRoundTrip(t *testing.T) {
	txns := []model.Transaction{
		{ID: "t1", EntityID: "e1", Date: date(2025, 3, 1), Amount: dec("1000.50"), IsDebit: false, Category: "Consulting", Subcategory: "Retainer", Type: "ach_credit"},
		{ID: "t2", EntityID: "e1", Date: date(2025, 3, 2), Amount: dec("400"), IsDebit: true, Category: "Supplies"},
	}

	var buf bytes.Buffer
	err := WriteTransactions(&buf, txns)
	require.NoError(t, err)

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, txns[0].ID, got[0].ID)
	assert.True(t, got[0].Amount.Equal(dec("1000.50")))
	assert.False(t, got[0].IsDebit)
	assert.Equal(t, "Retainer", got[0].Subcategory)
	assert.True(t, got[1].IsDebit)
	assert.Empty(t, got[1].Type)
}

func TestPeriodsRoundTrip(t *testing.T) {
	periods := []model.BankStatementPeriod{
		{BankAccountID: "ba-1", PeriodStart: date(2025, 1, 1), PeriodEnd: date(2025, 1, 31), OpeningBalance: dec("100.00"), ClosingBalance: dec("450.25")},
	}

	var buf bytes.Buffer
	err := WritePeriods(&buf, periods)
	require.NoError(t, err)

	got, err := ReadPeriods(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].OpeningBalance.Equal(dec("100")))
	assert.True(t, got[0].ClosingBalance.Equal(dec("450.25")))
	assert.Equal(t, date(2025, 1, 31), got[0].PeriodEnd)
}

func writeBooksFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	accounts := []model.Account{
		{EntityID: "e1", Code: "4010", Name: "Service Revenue", Type: model.AccountTypeIncome},
		{EntityID: "e2", Code: "4010", Name: "Other Revenue", Type: model.AccountTypeIncome},
	}
	txns := []model.Transaction{
		{ID: "t1", EntityID: "e1", Date: date(2025, 1, 15), Amount: dec("100"), IsDebit: false, Category: "Consulting"},
		{ID: "t2", EntityID: "e1", Date: date(2025, 6, 15), Amount: dec("200"), IsDebit: false, Category: "Consulting"},
		{ID: "t3", EntityID: "e2", Date: date(2025, 1, 15), Amount: dec("300"), IsDebit: false, Category: "Consulting"},
	}
	mappings := []model.AccountMapping{
		{EntityID: "e1", Category: "Consulting", AccountCode: "4010"},
	}
	banks := []model.BankAccount{
		{ID: "ba-1", EntityID: "e1", Name: "Checking", LastFour: "1234"},
	}
	periods := []model.BankStatementPeriod{
		{BankAccountID: "ba-1", PeriodStart: date(2025, 1, 1), PeriodEnd: date(2025, 1, 31), OpeningBalance: dec("50"), ClosingBalance: dec("150")},
		{BankAccountID: "ba-1", PeriodStart: date(2025, 2, 1), PeriodEnd: date(2025, 2, 28), OpeningBalance: dec("150"), ClosingBalance: dec("250")},
	}

	files := map[string]func(*os.File) error{
		AccountsFile:     func(f *os.File) error { return WriteAccounts(f, accounts) },
		TransactionsFile: func(f *os.File) error { return WriteTransactions(f, txns) },
		MappingsFile:     func(f *os.File) error { return WriteMappings(f, mappings) },
		BankAccountsFile: func(f *os.File) error { return WriteBankAccounts(f, banks) },
		PeriodsFile:      func(f *os.File) error { return WritePeriods(f, periods) },
	}
	for name, write := range files {
		f, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NoError(t, write(f))
		require.NoError(t, f.Close())
	}

	entities := EntitiesHeader + "\ne1,EUR\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, EntitiesFile), []byte(entities), 0o644))

	return dir
}

func TestStore_FiltersByEntityAndRange(t *testing.T) {
	st := New(writeBooksFixture(t))
	ctx := context.Background()

	txns, err := st.Transactions(ctx, "e1", date(2025, 1, 1), date(2025, 3, 31))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "t1", txns[0].ID)

	accounts, err := st.Accounts(ctx, "e2")
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Other Revenue", accounts[0].Name)

	mappings, err := st.Mappings(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, mappings, 1)

	banks, err := st.BankAccounts(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, banks, 1)
	assert.Equal(t, "1234", banks[0].LastFour)
}

func TestStore_LatestPeriod(t *testing.T) {
	st := New(writeBooksFixture(t))
	ctx := context.Background()

	p, err := st.LatestPeriod(ctx, "ba-1", date(2025, 2, 10), store.AnchorEnd)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, date(2025, 1, 31), p.PeriodEnd)

	p, err = st.LatestPeriod(ctx, "ba-1", date(2025, 2, 10), store.AnchorStart)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, date(2025, 2, 1), p.PeriodStart)

	p, err = st.LatestPeriod(ctx, "ba-1", date(2024, 12, 31), store.AnchorEnd)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestStore_Currency(t *testing.T) {
	st := New(writeBooksFixture(t))

	currency, err := st.Currency(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "EUR", currency)

	currency, err = st.Currency(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, currency)
}

func TestStore_MissingFilesAreEmpty(t *testing.T) {
	st := New(t.TempDir())
	ctx := context.Background()

	txns, err := st.Transactions(ctx, "e1", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, txns)

	accounts, err := st.Accounts(ctx, "e1")
	require.NoError(t, err)
	assert.Empty(t, accounts)

	p, err := st.LatestPeriod(ctx, "ba-1", date(2025, 1, 1), store.AnchorEnd)
	require.NoError(t, err)
	assert.Nil(t, p)

	currency, err := st.Currency(ctx, "e1")
	require.NoError(t, err)
	assert.Empty(t, currency)
}
