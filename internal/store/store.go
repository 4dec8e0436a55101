// Package store provides the SQLite-backed ledger holding transactions and
// budgets.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fburn/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Ledger is the SQLite-backed transaction and budget store.
type Ledger struct {
	db *sql.DB
}

// DataDir returns the platform-appropriate data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "fburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "fburn")
}

// DefaultPath returns the full path to the ledger database.
func DefaultPath() string {
	return filepath.Join(DataDir(), "ledger.db")
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Ledger, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the ledger database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// SaveTransaction inserts or replaces one transaction.
func (l *Ledger) SaveTransaction(tx model.Transaction) error {
	return l.execSaveTransaction(l.db, tx)
}

// SaveTransactions inserts or replaces a batch of transactions in one
// database transaction.
func (l *Ledger) SaveTransactions(txs []model.Transaction) error {
	dbTx, err := l.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = dbTx.Rollback() }()

	for _, tx := range txs {
		if err := l.execSaveTransaction(dbTx, tx); err != nil {
			return err
		}
	}
	return dbTx.Commit()
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (l *Ledger) execSaveTransaction(e execer, tx model.Transaction) error {
	enabled := 0
	var frequency, start sql.NullString
	var interval sql.NullInt64
	if tx.Schedule != nil {
		if tx.Schedule.Enabled {
			enabled = 1
		}
		frequency = sql.NullString{String: string(tx.Schedule.Frequency), Valid: true}
		interval = sql.NullInt64{Int64: int64(tx.Schedule.Interval), Valid: true}
		start = sql.NullString{String: tx.Schedule.StartDate, Valid: true}
	}

	_, err := e.Exec(`INSERT OR REPLACE INTO transactions
		(id, type, name, category, amount, date, created_at,
		 schedule_enabled, schedule_frequency, schedule_interval, schedule_start,
		 source_template_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, string(tx.Type), tx.Name, tx.Category, tx.Amount, tx.Date,
		tx.CreatedAt.UTC().Format(time.RFC3339),
		enabled, frequency, interval, start,
		nullable(tx.SourceTemplateID),
	)
	return err
}

// DeleteTransaction removes a transaction by id.
func (l *Ledger) DeleteTransaction(id string) error {
	_, err := l.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	return err
}

// ListTransactions reads all transactions, oldest date first.
func (l *Ledger) ListTransactions() ([]model.Transaction, error) {
	rows, err := l.db.Query(`SELECT
		id, type, name, category, amount, date, created_at,
		schedule_enabled, schedule_frequency, schedule_interval, schedule_start,
		source_template_id
		FROM transactions ORDER BY date, created_at`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		var createdAt string
		var enabled int
		var frequency, start, sourceID sql.NullString
		var interval sql.NullInt64

		err := rows.Scan(
			&tx.ID, &tx.Type, &tx.Name, &tx.Category, &tx.Amount, &tx.Date, &createdAt,
			&enabled, &frequency, &interval, &start, &sourceID,
		)
		if err != nil {
			return nil, err
		}

		tx.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if frequency.Valid {
			tx.Schedule = &model.Schedule{
				Enabled:   enabled != 0,
				Frequency: model.Frequency(frequency.String),
				Interval:  int(interval.Int64),
				StartDate: start.String,
			}
		}
		if sourceID.Valid {
			tx.SourceTemplateID = sourceID.String
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// HasOccurrence reports whether an occurrence of the given template on the
// given date is already materialized. The daemon uses this to keep
// recurring materialization idempotent across polls.
func (l *Ledger) HasOccurrence(templateID, date string) (bool, error) {
	var n int
	err := l.db.QueryRow(
		"SELECT COUNT(*) FROM transactions WHERE source_template_id = ? AND date = ?",
		templateID, date,
	).Scan(&n)
	return n > 0, err
}

// SaveBudget inserts or replaces one budget.
func (l *Ledger) SaveBudget(b model.Budget) error {
	_, err := l.db.Exec(`INSERT OR REPLACE INTO budgets
		(id, category_id, amount, type, period_type, period_start, period_end,
		 is_recurring, status, account_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.CategoryID, b.Amount, string(b.Type),
		string(b.Period.Type), b.Period.StartDate, b.Period.EndDate,
		boolToInt(b.IsRecurring), string(b.Status), nullable(b.AccountID),
		b.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListBudgets reads all budgets, oldest created first.
func (l *Ledger) ListBudgets() ([]model.Budget, error) {
	rows, err := l.db.Query(`SELECT
		id, category_id, amount, type, period_type, period_start, period_end,
		is_recurring, status, account_id, created_at
		FROM budgets ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		var createdAt string
		var recurring int
		var accountID sql.NullString

		err := rows.Scan(
			&b.ID, &b.CategoryID, &b.Amount, &b.Type,
			&b.Period.Type, &b.Period.StartDate, &b.Period.EndDate,
			&recurring, &b.Status, &accountID, &createdAt,
		)
		if err != nil {
			return nil, err
		}

		b.IsRecurring = recurring != 0
		if accountID.Valid {
			b.AccountID = accountID.String
		}
		b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// SetBudgetStatus updates one budget's lifecycle status.
func (l *Ledger) SetBudgetStatus(id string, status model.BudgetStatus) error {
	_, err := l.db.Exec("UPDATE budgets SET status = ? WHERE id = ?", string(status), id)
	return err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
