// Package memory provides an in-process expense store. It backs the HTTP
// handler tests and the "memory" backend for local development.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"expensetracker/internal/core"
	"expensetracker/internal/store"
)

type Store struct {
	mu     sync.Mutex
	nextID int64
	items  []core.Expense
}

func New() *Store {
	return &Store{nextID: 1}
}

// CreateExpense implements store.ExpenseWriter.
func (s *Store) CreateExpense(_ context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	e.ID = s.nextID
	e.CreatedAt = now
	e.UpdatedAt = now
	s.nextID++
	s.items = append(s.items, e)
	return e, nil
}

// ListExpenses implements store.ExpenseLister.
func (s *Store) ListExpenses(_ context.Context, f core.Filter) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Expense, 0, len(s.items))
	for _, e := range s.items {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// MonthlyTotals implements store.ExpenseAggregator.
func (s *Store) MonthlyTotals(_ context.Context) ([]core.MonthlyCategoryTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type key struct {
		year, month int
		category    core.Category
	}
	sums := make(map[key]int64)
	for _, e := range s.items {
		d := e.Date.UTC()
		k := key{year: d.Year(), month: int(d.Month()), category: e.Category}
		sums[k] += e.Amount.Cents
	}

	rows := make([]core.MonthlyCategoryTotal, 0, len(sums))
	for k, cents := range sums {
		rows = append(rows, core.MonthlyCategoryTotal{
			Year:     k.year,
			Month:    k.month,
			Category: k.category,
			Total:    core.Money{Cents: cents},
		})
	}
	// Year desc, month desc. Category order within a month is not part of the
	// contract; sort it here only to keep output stable.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year > rows[j].Year
		}
		if rows[i].Month != rows[j].Month {
			return rows[i].Month > rows[j].Month
		}
		return rows[i].Category < rows[j].Category
	})
	return rows, nil
}

// DeleteExpense implements store.ExpenseDeleter.
func (s *Store) DeleteExpense(_ context.Context, id int64) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.items {
		if e.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return e, nil
		}
	}
	return core.Expense{}, store.ErrNotFound
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
