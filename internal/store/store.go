// Package store persists the budget state in a local SQLite file.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/qawamdev/qawam/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store holds the expense ledger and settings in a SQLite database.
// Missing or corrupt values load as defaults so a damaged file never
// prevents startup.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// State is everything the app persists, loaded in one call.
type State struct {
	Salary   float64
	Rule     model.BudgetRule
	Expenses []model.Expense
	Visitors int64
}

// Load reads the complete persisted state. Each field falls back to its
// default independently.
func (s *Store) Load() (*State, error) {
	expenses, err := s.LoadExpenses()
	if err != nil {
		return nil, err
	}
	st := &State{
		Salary:   s.LoadSalary(),
		Rule:     s.LoadRule(),
		Expenses: expenses,
		Visitors: s.VisitorCount(),
	}
	return st, nil
}

// SaveExpenses replaces the whole ledger, preserving its ordering.
func (s *Store) SaveExpenses(expenses []model.Expense) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM expenses"); err != nil {
		return err
	}
	for i, e := range expenses {
		_, err := tx.Exec(`INSERT INTO expenses (id, name, amount, category, note, position)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, e.Name, e.Amount, string(e.Category), e.Note, i)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadExpenses returns the ledger in stored order. Unknown category values
// fall back to the default category instead of failing the load.
func (s *Store) LoadExpenses() ([]model.Expense, error) {
	rows, err := s.db.Query(`SELECT id, name, amount, category, note
		FROM expenses ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		var category string
		if err := rows.Scan(&e.ID, &e.Name, &e.Amount, &category, &e.Note); err != nil {
			return nil, err
		}
		e.Category = model.ParseCategory(category)
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// SaveSalary stores the monthly salary.
func (s *Store) SaveSalary(salary float64) error {
	return s.setSetting(keySalary, strconv.FormatFloat(salary, 'f', -1, 64))
}

// LoadSalary returns the stored salary, or 0 when unset or corrupt.
func (s *Store) LoadSalary() float64 {
	raw, ok := s.getSetting(keySalary)
	if !ok {
		return 0
	}
	salary, err := strconv.ParseFloat(raw, 64)
	if err != nil || salary < 0 {
		return 0
	}
	return salary
}

// SaveRule stores the active budget rule.
func (s *Store) SaveRule(rule model.BudgetRule) error {
	raw, err := json.Marshal(rule)
	if err != nil {
		return err
	}
	return s.setSetting(keyRule, string(raw))
}

// LoadRule returns the stored rule, or the 50/30/20 default when unset
// or corrupt.
func (s *Store) LoadRule() model.BudgetRule {
	raw, ok := s.getSetting(keyRule)
	if !ok {
		return model.DefaultRule()
	}
	var rule model.BudgetRule
	if err := json.Unmarshal([]byte(raw), &rule); err != nil {
		return model.DefaultRule()
	}
	return rule
}

// VisitorCount returns the launch counter.
func (s *Store) VisitorCount() int64 {
	raw, ok := s.getSetting(keyVisitors)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// BumpVisitors increments the launch counter and returns the new value.
func (s *Store) BumpVisitors() (int64, error) {
	n := s.VisitorCount() + 1
	if err := s.setSetting(keyVisitors, strconv.FormatInt(n, 10)); err != nil {
		return 0, err
	}
	return n, nil
}

// Reset wipes the ledger, salary and rule. The visitor counter survives.
func (s *Store) Reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM expenses"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM settings WHERE key IN (?, ?)", keySalary, keyRule); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) setSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

func (s *Store) getSetting(key string) (string, bool) {
	var value string
	if err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value); err != nil {
		return "", false
	}
	return value, true
}
