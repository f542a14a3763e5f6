package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/stmtgen/internal/model"
	"github.com/cleared-dev/stmtgen/internal/report"
	"github.com/cleared-dev/stmtgen/internal/store"
)

// fixtureStore serves a small fixed books set for one entity.
type fixtureStore struct{}

func (fixtureStore) Transactions(_ context.Context, entityID string, _, _ time.Time) ([]model.Transaction, error) {
	if entityID != "e1" {
		return nil, nil
	}
	return []model.Transaction{
		{ID: "t1", EntityID: "e1", Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("1000"), IsDebit: false, Category: "Consulting"},
		{ID: "t2", EntityID: "e1", Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("400"), IsDebit: true, Category: "Supplies"},
	}, nil
}

func (fixtureStore) Accounts(_ context.Context, entityID string) ([]model.Account, error) {
	if entityID != "e1" {
		return nil, nil
	}
	return []model.Account{
		{EntityID: "e1", Code: "4010", Name: "Service Revenue", Type: model.AccountTypeIncome},
		{EntityID: "e1", Code: "5030", Name: "Office Supplies", Type: model.AccountTypeExpense},
	}, nil
}

func (fixtureStore) Mappings(_ context.Context, entityID string) ([]model.AccountMapping, error) {
	return []model.AccountMapping{
		{EntityID: "e1", Category: "Consulting", AccountCode: "4010"},
		{EntityID: "e1", Category: "Supplies", AccountCode: "5030"},
	}, nil
}

func (fixtureStore) BankAccounts(context.Context, string) ([]model.BankAccount, error) {
	return nil, nil
}

func (fixtureStore) LatestPeriod(context.Context, string, time.Time, store.PeriodAnchor) (*model.BankStatementPeriod, error) {
	return nil, nil
}

func (fixtureStore) Currency(context.Context, string) (string, error) {
	return "USD", nil
}

func newTestServer() *Server {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	st := fixtureStore{}
	gen := report.NewGenerator(report.Stores{
		Transactions: st,
		Chart:        st,
		Mappings:     st,
		Bank:         st,
		Entities:     st,
	}, log, "USD")
	return New(gen, log)
}

func TestGetProfitAndLoss(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/api/v1/entities/e1/reports/profit-and-loss?start=2025-01-01&end=2025-12-31", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var stmt report.ProfitAndLossStatement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stmt))
	assert.Equal(t, "e1", stmt.EntityID)
	assert.True(t, stmt.NetIncome.Equal(decimal.RequireFromString("600")))
}

func TestGetProfitAndLoss_MissingDates(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/api/v1/entities/e1/reports/profit-and-loss", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 400, resp.StatusCode)

	var payload Errors
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Contains(t, payload.Errors, "reports.period.missing_start")
	assert.Contains(t, payload.Errors, "reports.period.missing_end")
}

func TestGetProfitAndLoss_EndBeforeStart(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/api/v1/entities/e1/reports/profit-and-loss?start=2025-12-31&end=2025-01-01", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 400, resp.StatusCode)
}

func TestGetBalanceSheet(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/api/v1/entities/e1/reports/balance-sheet?as_of=2025-12-31", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var stmt report.BalanceSheet
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stmt))
	assert.Equal(t, "e1", stmt.EntityID)
}

func TestGetBalanceSheet_InvalidDate(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/api/v1/entities/e1/reports/balance-sheet?as_of=yesterday", nil)
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 400, resp.StatusCode)
}

func TestGetCashFlowAndTrialBalance(t *testing.T) {
	srv := newTestServer()

	for _, path := range []string{
		"/api/v1/entities/e1/reports/cash-flow?start=2025-01-01&end=2025-12-31",
		"/api/v1/entities/e1/reports/trial-balance?start=2025-01-01&end=2025-12-31",
	} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := srv.App().Test(req)
		require.NoError(t, err, path)
		resp.Body.Close()
		assert.Equal(t, 200, resp.StatusCode, path)
	}
}
