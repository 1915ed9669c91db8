// Package store defines the ports the HTTP layer consumes. Implementations
// live in store/memory (in-process, used by tests and the default dev
// backend) and storage (SQLite).
package store

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"expensetracker/internal/core"
)

var (
	// ErrNotFound is returned when a well-formed id matches no record.
	ErrNotFound = errors.New("expense not found")

	// ErrInvalidID is returned for identifiers that are not syntactically
	// valid store ids. The store is never consulted for these.
	ErrInvalidID = errors.New("invalid expense id")
)

// Ports for the expense store.
type (
	ExpenseWriter interface {
		// CreateExpense validates and persists the record, assigning id and
		// timestamps. The operation is atomic: any violation rejects the
		// whole record.
		CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error)
	}

	ExpenseLister interface {
		// ListExpenses returns records matching the filter, sorted by date
		// descending. Ties in date have unspecified relative order.
		ListExpenses(ctx context.Context, f core.Filter) ([]core.Expense, error)
	}

	ExpenseAggregator interface {
		// MonthlyTotals scans all records (no filter) and returns one row per
		// observed (year, month, category), sorted by year desc then month
		// desc. Category order within a month is store-dependent.
		MonthlyTotals(ctx context.Context) ([]core.MonthlyCategoryTotal, error)
	}

	ExpenseDeleter interface {
		// DeleteExpense removes the record and returns its prior state, or
		// ErrNotFound.
		DeleteExpense(ctx context.Context, id int64) (core.Expense, error)
	}
)

// ParseID validates the syntactic form of a store identifier: a positive
// base-10 integer. Anything else yields ErrInvalidID.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
