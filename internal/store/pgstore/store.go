// Package pgstore implements the repository interfaces over Postgres via
// gorm. Row types are declared here so the database schema stays at the
// boundary; everything past the store operates on model types only.
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cleared-dev/stmtgen/internal/model"
	"github.com/cleared-dev/stmtgen/internal/store"
)

// Store reads books from Postgres.
type Store struct {
	db *gorm.DB
}

// Open connects to Postgres and returns a Store.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an existing gorm handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

type transactionRow struct {
	ID          string          `gorm:"column:id;primaryKey"`
	EntityID    string          `gorm:"column:entity_id"`
	Date        time.Time       `gorm:"column:date"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric"`
	IsDebit     bool            `gorm:"column:is_debit"`
	Category    string          `gorm:"column:category"`
	Subcategory string          `gorm:"column:subcategory"`
	Type        string          `gorm:"column:type"`
}

func (transactionRow) TableName() string { return "transactions" }

type accountRow struct {
	EntityID string `gorm:"column:entity_id;primaryKey"`
	Code     string `gorm:"column:code;primaryKey"`
	Name     string `gorm:"column:name"`
	Type     string `gorm:"column:type"`
}

func (accountRow) TableName() string { return "accounts" }

type mappingRow struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	EntityID    string `gorm:"column:entity_id"`
	Category    string `gorm:"column:category"`
	Subcategory string `gorm:"column:subcategory"`
	AccountCode string `gorm:"column:account_code"`
}

func (mappingRow) TableName() string { return "account_mappings" }

type bankAccountRow struct {
	ID       string `gorm:"column:id;primaryKey"`
	EntityID string `gorm:"column:entity_id"`
	Name     string `gorm:"column:name"`
	LastFour string `gorm:"column:last_four"`
}

func (bankAccountRow) TableName() string { return "bank_accounts" }

type statementPeriodRow struct {
	BankAccountID  string          `gorm:"column:bank_account_id"`
	PeriodStart    time.Time       `gorm:"column:period_start"`
	PeriodEnd      time.Time       `gorm:"column:period_end"`
	OpeningBalance decimal.Decimal `gorm:"column:opening_balance;type:numeric"`
	ClosingBalance decimal.Decimal `gorm:"column:closing_balance;type:numeric"`
}

func (statementPeriodRow) TableName() string { return "bank_statement_periods" }

type entityRow struct {
	ID       string `gorm:"column:id;primaryKey"`
	Currency string `gorm:"column:currency"`
}

func (entityRow) TableName() string { return "entities" }

// Transactions implements store.TransactionStore.
func (s *Store) Transactions(ctx context.Context, entityID string, start, end time.Time) ([]model.Transaction, error) {
	q := s.db.WithContext(ctx).Where("entity_id = ?", entityID)
	if !start.IsZero() {
		q = q.Where("date >= ?", start)
	}
	if !end.IsZero() {
		q = q.Where("date <= ?", end)
	}

	var rows []transactionRow
	if err := q.Order("date, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}

	txns := make([]model.Transaction, len(rows))
	for i, r := range rows {
		txns[i] = model.Transaction{
			ID:          r.ID,
			EntityID:    r.EntityID,
			Date:        r.Date,
			Amount:      r.Amount,
			IsDebit:     r.IsDebit,
			Category:    r.Category,
			Subcategory: r.Subcategory,
			Type:        r.Type,
		}
	}
	return txns, nil
}

// Accounts implements store.ChartStore.
func (s *Store) Accounts(ctx context.Context, entityID string) ([]model.Account, error) {
	var rows []accountRow
	err := s.db.WithContext(ctx).Where("entity_id = ?", entityID).Order("code").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying chart of accounts: %w", err)
	}

	accounts := make([]model.Account, len(rows))
	for i, r := range rows {
		accounts[i] = model.Account{
			EntityID: r.EntityID,
			Code:     r.Code,
			Name:     r.Name,
			Type:     model.AccountType(r.Type),
		}
	}
	return accounts, nil
}

// Mappings implements store.MappingStore. Rows come back in primary-key
// order so first-match resolution is deterministic.
func (s *Store) Mappings(ctx context.Context, entityID string) ([]model.AccountMapping, error) {
	var rows []mappingRow
	err := s.db.WithContext(ctx).Where("entity_id = ?", entityID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying account mappings: %w", err)
	}

	mappings := make([]model.AccountMapping, len(rows))
	for i, r := range rows {
		mappings[i] = model.AccountMapping{
			EntityID:    r.EntityID,
			Category:    r.Category,
			Subcategory: r.Subcategory,
			AccountCode: r.AccountCode,
		}
	}
	return mappings, nil
}

// BankAccounts implements store.BankStore.
func (s *Store) BankAccounts(ctx context.Context, entityID string) ([]model.BankAccount, error) {
	var rows []bankAccountRow
	err := s.db.WithContext(ctx).Where("entity_id = ?", entityID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying bank accounts: %w", err)
	}

	accounts := make([]model.BankAccount, len(rows))
	for i, r := range rows {
		accounts[i] = model.BankAccount{
			ID:       r.ID,
			EntityID: r.EntityID,
			Name:     r.Name,
			LastFour: r.LastFour,
		}
	}
	return accounts, nil
}

// LatestPeriod implements store.BankStore.
func (s *Store) LatestPeriod(ctx context.Context, bankAccountID string, onOrBefore time.Time, anchor store.PeriodAnchor) (*model.BankStatementPeriod, error) {
	boundary := "period_end"
	if anchor == store.AnchorStart {
		boundary = "period_start"
	}

	var rows []statementPeriodRow
	err := s.db.WithContext(ctx).
		Where("bank_account_id = ?", bankAccountID).
		Where(boundary+" <= ?", onOrBefore).
		Order("period_end DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying statement period: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]

	return &model.BankStatementPeriod{
		BankAccountID:  row.BankAccountID,
		PeriodStart:    row.PeriodStart,
		PeriodEnd:      row.PeriodEnd,
		OpeningBalance: row.OpeningBalance,
		ClosingBalance: row.ClosingBalance,
	}, nil
}

// Currency implements store.EntityStore.
func (s *Store) Currency(ctx context.Context, entityID string) (string, error) {
	var row entityRow
	err := s.db.WithContext(ctx).Where("id = ?", entityID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying entity: %w", err)
	}
	return row.Currency, nil
}
