package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/stmtgen/internal/model"
)

const dateFormat = "2006-01-02"

// CSV headers for each file in a books directory.
const (
	AccountsHeader     = "entity_id,code,name,type"
	TransactionsHeader = "id,entity_id,date,amount,is_debit,category,subcategory,type"
	MappingsHeader     = "entity_id,category,subcategory,account_code"
	BankAccountsHeader = "id,entity_id,name,last_four"
	PeriodsHeader      = "bank_account_id,period_start,period_end,opening_balance,closing_balance"
	EntitiesHeader     = "entity_id,currency"
)

const (
	acctNumFields = 4
	acctColEntity = 0
	acctColCode   = 1
	acctColName   = 2
	acctColType   = 3
)

const (
	txnNumFields  = 8
	txnColID      = 0
	txnColEntity  = 1
	txnColDate    = 2
	txnColAmount  = 3
	txnColIsDebit = 4
	txnColCat     = 5
	txnColSubcat  = 6
	txnColType    = 7
)

const (
	mapNumFields = 4
	mapColEntity = 0
	mapColCat    = 1
	mapColSubcat = 2
	mapColCode   = 3
)

const (
	bankNumFields   = 4
	bankColID       = 0
	bankColEntity   = 1
	bankColName     = 2
	bankColLastFour = 3
)

const (
	periodNumFields  = 5
	periodColAccount = 0
	periodColStart   = 1
	periodColEnd     = 2
	periodColOpening = 3
	periodColClosing = 4
)

const (
	entityNumFields   = 2
	entityColID       = 0
	entityColCurrency = 1
)

// readRows reads a CSV body, returning data rows without the header.
func readRows(r io.Reader, numFields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// writeRows writes a header plus data rows.
func writeRows(w io.Writer, header string, rows [][]string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	rows, err := readRows(r, acctNumFields)
	if err != nil {
		return nil, err
	}
	var accounts []model.Account
	for _, rec := range rows {
		accounts = append(accounts, model.Account{
			EntityID: rec[acctColEntity],
			Code:     rec[acctColCode],
			Name:     rec[acctColName],
			Type:     model.AccountType(rec[acctColType]),
		})
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	rows := make([][]string, len(accounts))
	for i, a := range accounts {
		row := make([]string, acctNumFields)
		row[acctColEntity] = a.EntityID
		row[acctColCode] = a.Code
		row[acctColName] = a.Name
		row[acctColType] = string(a.Type)
		rows[i] = row
	}
	return writeRows(w, AccountsHeader, rows)
}

// ReadTransactions reads transactions.csv.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	rows, err := readRows(r, txnNumFields)
	if err != nil {
		return nil, err
	}
	var txns []model.Transaction
	for i, rec := range rows {
		txn, err := unmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes transactions.csv.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	rows := make([][]string, len(txns))
	for i, t := range txns {
		row := make([]string, txnNumFields)
		row[txnColID] = t.ID
		row[txnColEntity] = t.EntityID
		row[txnColDate] = t.Date.Format(dateFormat)
		row[txnColAmount] = t.Amount.String()
		row[txnColIsDebit] = strconv.FormatBool(t.IsDebit)
		row[txnColCat] = t.Category
		row[txnColSubcat] = t.Subcategory
		row[txnColType] = t.Type
		rows[i] = row
	}
	return writeRows(w, TransactionsHeader, rows)
}

func unmarshalTransaction(rec []string) (model.Transaction, error) {
	date, err := time.Parse(dateFormat, rec[txnColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[txnColDate], err)
	}
	amount, err := decimal.NewFromString(rec[txnColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[txnColAmount], err)
	}
	isDebit, err := strconv.ParseBool(rec[txnColIsDebit])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing is_debit %q: %w", rec[txnColIsDebit], err)
	}
	return model.Transaction{
		ID:          rec[txnColID],
		EntityID:    rec[txnColEntity],
		Date:        date,
		Amount:      amount,
		IsDebit:     isDebit,
		Category:    rec[txnColCat],
		Subcategory: rec[txnColSubcat],
		Type:        rec[txnColType],
	}, nil
}

// ReadMappings reads account-mappings.csv. Row order is preserved; the
// resolver takes the first match.
func ReadMappings(r io.Reader) ([]model.AccountMapping, error) {
	rows, err := readRows(r, mapNumFields)
	if err != nil {
		return nil, err
	}
	var mappings []model.AccountMapping
	for _, rec := range rows {
		mappings = append(mappings, model.AccountMapping{
			EntityID:    rec[mapColEntity],
			Category:    rec[mapColCat],
			Subcategory: rec[mapColSubcat],
			AccountCode: rec[mapColCode],
		})
	}
	return mappings, nil
}

// WriteMappings writes account-mappings.csv.
func WriteMappings(w io.Writer, mappings []model.AccountMapping) error {
	rows := make([][]string, len(mappings))
	for i, m := range mappings {
		row := make([]string, mapNumFields)
		row[mapColEntity] = m.EntityID
		row[mapColCat] = m.Category
		row[mapColSubcat] = m.Subcategory
		row[mapColCode] = m.AccountCode
		rows[i] = row
	}
	return writeRows(w, MappingsHeader, rows)
}

// ReadBankAccounts reads bank-accounts.csv.
func ReadBankAccounts(r io.Reader) ([]model.BankAccount, error) {
	rows, err := readRows(r, bankNumFields)
	if err != nil {
		return nil, err
	}
	var accounts []model.BankAccount
	for _, rec := range rows {
		accounts = append(accounts, model.BankAccount{
			ID:       rec[bankColID],
			EntityID: rec[bankColEntity],
			Name:     rec[bankColName],
			LastFour: rec[bankColLastFour],
		})
	}
	return accounts, nil
}

// WriteBankAccounts writes bank-accounts.csv.
func WriteBankAccounts(w io.Writer, accounts []model.BankAccount) error {
	rows := make([][]string, len(accounts))
	for i, a := range accounts {
		row := make([]string, bankNumFields)
		row[bankColID] = a.ID
		row[bankColEntity] = a.EntityID
		row[bankColName] = a.Name
		row[bankColLastFour] = a.LastFour
		rows[i] = row
	}
	return writeRows(w, BankAccountsHeader, rows)
}

// ReadPeriods reads statement-periods.csv.
func ReadPeriods(r io.Reader) ([]model.BankStatementPeriod, error) {
	rows, err := readRows(r, periodNumFields)
	if err != nil {
		return nil, err
	}
	var periods []model.BankStatementPeriod
	for i, rec := range rows {
		p, err := unmarshalPeriod(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		periods = append(periods, p)
	}
	return periods, nil
}

// WritePeriods writes statement-periods.csv.
func WritePeriods(w io.Writer, periods []model.BankStatementPeriod) error {
	rows := make([][]string, len(periods))
	for i, p := range periods {
		row := make([]string, periodNumFields)
		row[periodColAccount] = p.BankAccountID
		row[periodColStart] = p.PeriodStart.Format(dateFormat)
		row[periodColEnd] = p.PeriodEnd.Format(dateFormat)
		row[periodColOpening] = p.OpeningBalance.StringFixed(2)
		row[periodColClosing] = p.ClosingBalance.StringFixed(2)
		rows[i] = row
	}
	return writeRows(w, PeriodsHeader, rows)
}

func unmarshalPeriod(rec []string) (model.BankStatementPeriod, error) {
	start, err := time.Parse(dateFormat, rec[periodColStart])
	if err != nil {
		return model.BankStatementPeriod{}, fmt.Errorf("parsing period_start %q: %w", rec[periodColStart], err)
	}
	end, err := time.Parse(dateFormat, rec[periodColEnd])
	if err != nil {
		return model.BankStatementPeriod{}, fmt.Errorf("parsing period_end %q: %w", rec[periodColEnd], err)
	}
	opening, err := decimal.NewFromString(rec[periodColOpening])
	if err != nil {
		return model.BankStatementPeriod{}, fmt.Errorf("parsing opening_balance %q: %w", rec[periodColOpening], err)
	}
	closing, err := decimal.NewFromString(rec[periodColClosing])
	if err != nil {
		return model.BankStatementPeriod{}, fmt.Errorf("parsing closing_balance %q: %w", rec[periodColClosing], err)
	}
	return model.BankStatementPeriod{
		BankAccountID:  rec[periodColAccount],
		PeriodStart:    start,
		PeriodEnd:      end,
		OpeningBalance: opening,
		ClosingBalance: closing,
	}, nil
}

// entityRow is one row of entities.csv.
type entityRow struct {
	EntityID string
	Currency string
}

func readEntities(r io.Reader) ([]entityRow, error) {
	rows, err := readRows(r, entityNumFields)
	if err != nil {
		return nil, err
	}
	var entities []entityRow
	for _, rec := range rows {
		entities = append(entities, entityRow{
			EntityID: rec[entityColID],
			Currency: rec[entityColCurrency],
		})
	}
	return entities, nil
}
