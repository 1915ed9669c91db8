package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"expensetracker/internal/core"
	"expensetracker/internal/store"

	_ "modernc.org/sqlite"
)

// Dates are stored as RFC3339 UTC text so that lexicographic comparison and
// strftime-based grouping both work on the raw column.
const timeLayout = time.RFC3339

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateExpense implements store.ExpenseWriter.
func (r *SQLiteRepository) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, fmt.Errorf("validate expense: %w", err)
	}

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO expenses (amount_cents, category, notes, date, payment_mode, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id, amount_cents, category, notes, date, payment_mode, created_at, updated_at`,
		e.Amount.Cents,
		string(e.Category),
		e.Notes,
		e.Date.UTC().Format(timeLayout),
		string(e.PaymentMode),
		now.Format(timeLayout),
		now.Format(timeLayout),
	)

	created, err := scanExpense(row)
	if err != nil {
		return core.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved to SQLite",
		"id", created.ID,
		"amount_cents", created.Amount.Cents,
		"category", created.Category,
		"payment_mode", created.PaymentMode)

	return created, nil
}

// ListExpenses implements store.ExpenseLister. The filter is translated into
// WHERE clauses; results are sorted by date descending with no secondary key.
func (r *SQLiteRepository) ListExpenses(ctx context.Context, f core.Filter) ([]core.Expense, error) {
	query := `SELECT id, amount_cents, category, notes, date, payment_mode, created_at, updated_at FROM expenses`

	var conds []string
	var args []any
	if !f.From.IsZero() {
		conds = append(conds, "date >= ?")
		args = append(args, f.From.UTC().Format(timeLayout))
	}
	if !f.To.IsZero() {
		conds = append(conds, "date < ?")
		args = append(args, f.To.UTC().Format(timeLayout))
	}
	if len(f.Categories) > 0 {
		conds = append(conds, "category IN ("+placeholders(len(f.Categories))+")")
		for _, c := range f.Categories {
			args = append(args, c)
		}
	}
	if len(f.PaymentModes) > 0 {
		conds = append(conds, "payment_mode IN ("+placeholders(len(f.PaymentModes))+")")
		for _, m := range f.PaymentModes {
			args = append(args, m)
		}
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]core.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}

// MonthlyTotals implements store.ExpenseAggregator with a single GROUP BY
// over the full table. No filter applies here.
func (r *SQLiteRepository) MonthlyTotals(ctx context.Context) ([]core.MonthlyCategoryTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT CAST(strftime('%Y', date) AS INTEGER) AS year,
		       CAST(strftime('%m', date) AS INTEGER) AS month,
		       category,
		       SUM(amount_cents) AS total_cents
		FROM expenses
		GROUP BY year, month, category
		ORDER BY year DESC, month DESC`)
	if err != nil {
		return nil, fmt.Errorf("aggregate monthly totals: %w", err)
	}
	defer rows.Close()

	totals := make([]core.MonthlyCategoryTotal, 0)
	for rows.Next() {
		var t core.MonthlyCategoryTotal
		var category string
		if err := rows.Scan(&t.Year, &t.Month, &category, &t.Total.Cents); err != nil {
			return nil, fmt.Errorf("scan monthly total: %w", err)
		}
		t.Category = core.Category(category)
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate monthly totals: %w", err)
	}

	return totals, nil
}

// DeleteExpense implements store.ExpenseDeleter. The deleted record's prior
// state is returned via DELETE ... RETURNING, keeping the operation a single
// store round trip.
func (r *SQLiteRepository) DeleteExpense(ctx context.Context, id int64) (core.Expense, error) {
	row := r.db.QueryRowContext(ctx, `
		DELETE FROM expenses
		WHERE id = ?
		RETURNING id, amount_cents, category, notes, date, payment_mode, created_at, updated_at`,
		id,
	)

	deleted, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, store.ErrNotFound
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("delete expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense deleted from SQLite", "id", deleted.ID)
	return deleted, nil
}

// RecordEvent appends an expense lifecycle event to the audit table.
func (r *SQLiteRepository) RecordEvent(ctx context.Context, ev ExpenseEventRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO expense_events (event_type, expense_id, amount_cents, category, payment_mode, expense_date, occurred_at, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Type,
		ev.ExpenseID,
		ev.AmountCents,
		ev.Category,
		ev.PaymentMode,
		ev.ExpenseDate.UTC().Format(timeLayout),
		ev.OccurredAt.UTC().Format(timeLayout),
		time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("record expense event: %w", err)
	}
	return nil
}

// CountEvents returns the number of recorded audit events for an expense id.
func (r *SQLiteRepository) CountEvents(ctx context.Context, expenseID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM expense_events WHERE expense_id = ?`, expenseID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count expense events: %w", err)
	}
	return n, nil
}

// ExpenseEventRecord is the audit-table row written by the worker.
type ExpenseEventRecord struct {
	Type        string
	ExpenseID   int64
	AmountCents int64
	Category    string
	PaymentMode string
	ExpenseDate time.Time
	OccurredAt  time.Time
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (core.Expense, error) {
	var (
		e           core.Expense
		category    string
		paymentMode string
		date        string
		createdAt   string
		updatedAt   string
	)
	if err := row.Scan(&e.ID, &e.Amount.Cents, &category, &e.Notes, &date, &paymentMode, &createdAt, &updatedAt); err != nil {
		return core.Expense{}, err
	}
	e.Category = core.Category(category)
	e.PaymentMode = core.PaymentMode(paymentMode)

	var err error
	if e.Date, err = time.Parse(timeLayout, date); err != nil {
		return core.Expense{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	if e.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return core.Expense{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	if e.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return core.Expense{}, fmt.Errorf("parse updated_at %q: %w", updatedAt, err)
	}
	return e, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
