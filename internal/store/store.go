// Package store provides the SQLite-backed system of record for
// accounts, bills, debts, goals, and settings. Reads are wholesale: the
// calculation engine always receives a full Dataset snapshot and never
// touches the database itself.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/BGirlGlowHub/steward/internal/model"
)

const dateFormat = "2006-01-02"

// Store wraps the budgeting database.
type Store struct {
	db *sql.DB
}

// execer is satisfied by both *sql.DB and *sql.Tx, so the insert
// statements below serve single saves and transactional bulk writes.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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

// LoadSnapshot reads the entire dataset in one call.
func (s *Store) LoadSnapshot() (model.Dataset, error) {
	var ds model.Dataset
	var err error

	if ds.Accounts, err = s.ListAccounts(); err != nil {
		return ds, err
	}
	if ds.Bills, err = s.ListBills(); err != nil {
		return ds, err
	}
	if ds.Debts, err = s.ListDebts(); err != nil {
		return ds, err
	}
	if ds.Goals, err = s.ListGoals(); err != nil {
		return ds, err
	}
	if ds.Settings, err = s.GetSettings(); err != nil {
		return ds, err
	}
	return ds, nil
}

// ReplaceAll writes a whole dataset, dropping existing rows first. The
// clears and inserts share one transaction, so a failed import leaves
// the previous data untouched. Used by snapshot import.
func (s *Store) ReplaceAll(ds model.Dataset) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"accounts", "bills", "debts", "goals"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, a := range ds.Accounts {
		if _, err := insertAccount(tx, a); err != nil {
			return err
		}
	}
	for _, b := range ds.Bills {
		if _, err := insertBill(tx, b); err != nil {
			return err
		}
	}
	for _, d := range ds.Debts {
		if _, err := insertDebt(tx, d); err != nil {
			return err
		}
	}
	for _, g := range ds.Goals {
		if _, err := insertGoal(tx, g); err != nil {
			return err
		}
	}
	if err := writeSettings(tx, ds.Settings); err != nil {
		return err
	}

	return tx.Commit()
}

// SaveAccount inserts or updates an account, minting an ID when empty.
func (s *Store) SaveAccount(a model.Account) (model.Account, error) {
	return insertAccount(s.db, a)
}

func insertAccount(e execer, a model.Account) (model.Account, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := e.Exec(`INSERT OR REPLACE INTO accounts
		(id, name, category, percentage, balance, active, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, string(a.Category), a.Percentage, a.Balance, boolToInt(a.Active), nowRFC3339(),
	)
	if err != nil {
		return a, fmt.Errorf("saving account %q: %w", a.Name, err)
	}
	return a, nil
}

// ListAccounts returns all accounts ordered by name.
func (s *Store) ListAccounts() ([]model.Account, error) {
	rows, err := s.db.Query(`SELECT id, name, category, percentage, balance, active
		FROM accounts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Account
	for rows.Next() {
		var a model.Account
		var category string
		var active int
		if err := rows.Scan(&a.ID, &a.Name, &category, &a.Percentage, &a.Balance, &active); err != nil {
			return nil, err
		}
		if a.Category, err = model.ParseAccountCategory(category); err != nil {
			return nil, fmt.Errorf("account %q: %w", a.Name, err)
		}
		a.Active = active != 0
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteAccount removes an account by ID.
func (s *Store) DeleteAccount(id string) error {
	return s.deleteByID("accounts", id)
}

// SaveBill inserts or updates a bill, minting an ID when empty.
func (s *Store) SaveBill(b model.Bill) (model.Bill, error) {
	return insertBill(s.db, b)
}

func insertBill(e execer, b model.Bill) (model.Bill, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = model.BillCurrent
	}
	_, err := e.Exec(`INSERT OR REPLACE INTO bills
		(id, name, amount, frequency, due_date, account_id, active, status, category, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Name, b.Amount, string(b.Frequency), b.DueDate.Format(dateFormat),
		b.AccountID, boolToInt(b.Active), string(b.Status), b.Category, nowRFC3339(),
	)
	if err != nil {
		return b, fmt.Errorf("saving bill %q: %w", b.Name, err)
	}
	return b, nil
}

// ListBills returns all bills ordered by due date.
func (s *Store) ListBills() ([]model.Bill, error) {
	rows, err := s.db.Query(`SELECT id, name, amount, frequency, due_date, account_id, active, status, category
		FROM bills ORDER BY due_date, name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Bill
	for rows.Next() {
		var b model.Bill
		var freq, due, status string
		var accountID, category sql.NullString
		var active int
		if err := rows.Scan(&b.ID, &b.Name, &b.Amount, &freq, &due, &accountID, &active, &status, &category); err != nil {
			return nil, err
		}
		if b.Frequency, err = model.ParseFrequency(freq); err != nil {
			return nil, fmt.Errorf("bill %q: %w", b.Name, err)
		}
		if b.Status, err = model.ParseBillStatus(status); err != nil {
			return nil, fmt.Errorf("bill %q: %w", b.Name, err)
		}
		if b.DueDate, err = time.Parse(dateFormat, due); err != nil {
			return nil, fmt.Errorf("bill %q due date: %w", b.Name, err)
		}
		b.AccountID = accountID.String
		b.Category = category.String
		b.Active = active != 0
		out = append(out, b)
	}
	return out, rows.Err()
}

// DeleteBill removes a bill by ID.
func (s *Store) DeleteBill(id string) error {
	return s.deleteByID("bills", id)
}

// SaveDebt inserts or updates a debt, minting an ID when empty.
func (s *Store) SaveDebt(d model.Debt) (model.Debt, error) {
	return insertDebt(s.db, d)
}

func insertDebt(e execer, d model.Debt) (model.Debt, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	_, err := e.Exec(`INSERT OR REPLACE INTO debts
		(id, name, balance, minimum_payment, interest_rate, account_id, due_date, active, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, d.Balance, d.MinimumPayment, d.InterestRate,
		d.AccountID, d.DueDate.Format(dateFormat), boolToInt(d.Active), nowRFC3339(),
	)
	if err != nil {
		return d, fmt.Errorf("saving debt %q: %w", d.Name, err)
	}
	return d, nil
}

// ListDebts returns all debts ordered by balance descending.
func (s *Store) ListDebts() ([]model.Debt, error) {
	rows, err := s.db.Query(`SELECT id, name, balance, minimum_payment, interest_rate, account_id, due_date, active
		FROM debts ORDER BY balance DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Debt
	for rows.Next() {
		var d model.Debt
		var due string
		var accountID sql.NullString
		var active int
		if err := rows.Scan(&d.ID, &d.Name, &d.Balance, &d.MinimumPayment, &d.InterestRate, &accountID, &due, &active); err != nil {
			return nil, err
		}
		if d.DueDate, err = time.Parse(dateFormat, due); err != nil {
			return nil, fmt.Errorf("debt %q due date: %w", d.Name, err)
		}
		d.AccountID = accountID.String
		d.Active = active != 0
		out = append(out, d)
	}
	return out, rows.Err()
}

// DeleteDebt removes a debt by ID.
func (s *Store) DeleteDebt(id string) error {
	return s.deleteByID("debts", id)
}

// SaveGoal inserts or updates a savings goal, minting an ID when empty.
func (s *Store) SaveGoal(g model.SavingsGoal) (model.SavingsGoal, error) {
	return insertGoal(s.db, g)
}

func insertGoal(e execer, g model.SavingsGoal) (model.SavingsGoal, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Priority == 0 {
		g.Priority = 3
	}
	_, err := e.Exec(`INSERT OR REPLACE INTO goals
		(id, name, target_amount, current_amount, target_date, monthly_contribution, priority, account_id, active, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Name, g.TargetAmount, g.CurrentAmount, g.TargetDate.Format(dateFormat),
		g.MonthlyContribution, g.Priority, g.AccountID, boolToInt(g.Active), nowRFC3339(),
	)
	if err != nil {
		return g, fmt.Errorf("saving goal %q: %w", g.Name, err)
	}
	return g, nil
}

// ListGoals returns all goals ordered by priority then target date.
func (s *Store) ListGoals() ([]model.SavingsGoal, error) {
	rows, err := s.db.Query(`SELECT id, name, target_amount, current_amount, target_date, monthly_contribution, priority, account_id, active
		FROM goals ORDER BY priority, target_date`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.SavingsGoal
	for rows.Next() {
		var g model.SavingsGoal
		var target string
		var accountID sql.NullString
		var active int
		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &target, &g.MonthlyContribution, &g.Priority, &accountID, &active); err != nil {
			return nil, err
		}
		if g.TargetDate, err = time.Parse(dateFormat, target); err != nil {
			return nil, fmt.Errorf("goal %q target date: %w", g.Name, err)
		}
		g.AccountID = accountID.String
		g.Active = active != 0
		out = append(out, g)
	}
	return out, rows.Err()
}

// DeleteGoal removes a goal by ID.
func (s *Store) DeleteGoal(id string) error {
	return s.deleteByID("goals", id)
}

// SaveSettings writes the single settings row and its pay dates.
func (s *Store) SaveSettings(cfg model.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := writeSettings(tx, cfg); err != nil {
		return err
	}
	return tx.Commit()
}

func writeSettings(e execer, cfg model.Settings) error {
	_, err := e.Exec(`INSERT OR REPLACE INTO settings
		(id, paycheck_amount, pay_frequency, tithing_enabled, tithing_percent, emergency_percent, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		cfg.PaycheckAmount, string(cfg.PayFrequency), boolToInt(cfg.TithingEnabled),
		cfg.TithingPercent, cfg.EmergencyPercent, nowRFC3339(),
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	if _, err := e.Exec("DELETE FROM pay_dates"); err != nil {
		return err
	}
	for _, d := range cfg.PayDates {
		if _, err := e.Exec("INSERT OR IGNORE INTO pay_dates (pay_date) VALUES (?)", d.Format(dateFormat)); err != nil {
			return err
		}
	}
	return nil
}

// GetSettings reads the settings row, returning defaults when none has
// been saved yet.
func (s *Store) GetSettings() (model.Settings, error) {
	cfg := model.Settings{PayFrequency: model.FreqBiWeekly, TithingPercent: 10}

	var freq string
	var tithing int
	err := s.db.QueryRow(`SELECT paycheck_amount, pay_frequency, tithing_enabled, tithing_percent, emergency_percent
		FROM settings WHERE id = 1`).
		Scan(&cfg.PaycheckAmount, &freq, &tithing, &cfg.TithingPercent, &cfg.EmergencyPercent)
	if err == sql.ErrNoRows {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading settings: %w", err)
	}
	if cfg.PayFrequency, err = model.ParseFrequency(freq); err != nil {
		return cfg, fmt.Errorf("settings: %w", err)
	}
	cfg.TithingEnabled = tithing != 0

	rows, err := s.db.Query("SELECT pay_date FROM pay_dates ORDER BY pay_date")
	if err != nil {
		return cfg, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return cfg, err
		}
		parsed, err := time.Parse(dateFormat, d)
		if err != nil {
			return cfg, fmt.Errorf("pay date %q: %w", d, err)
		}
		cfg.PayDates = append(cfg.PayDates, parsed)
	}
	return cfg, rows.Err()
}

func (s *Store) deleteByID(table, id string) error {
	res, err := s.db.Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no row with id %q in %s", id, table)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
