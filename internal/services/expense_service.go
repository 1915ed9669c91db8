package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"expensetracker/internal/core"
	"expensetracker/internal/store"
)

// Store is the full set of expense store ports the service composes over.
type Store interface {
	store.ExpenseWriter
	store.ExpenseLister
	store.ExpenseAggregator
	store.ExpenseDeleter
}

// EventPublisher publishes expense lifecycle events. May be absent (nil) in
// store-only deployments.
type EventPublisher interface {
	PublishExpenseCreated(ctx context.Context, e core.Expense) error
	PublishExpenseDeleted(ctx context.Context, e core.Expense) error
}

// ExpenseService orchestrates expense operations across the store and the
// event bus. Publish failures never fail the request: the store write is the
// source of truth and the audit stream is best effort.
type ExpenseService struct {
	store     Store
	publisher EventPublisher
}

func NewExpenseService(st Store, publisher EventPublisher) *ExpenseService {
	return &ExpenseService{
		store:     st,
		publisher: publisher,
	}
}

// CreateExpense persists the record and publishes a creation event.
func (s *ExpenseService) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	created, err := s.store.CreateExpense(ctx, e)
	if err != nil {
		return core.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishExpenseCreated(ctx, created); err != nil {
			slog.ErrorContext(ctx, "Failed to publish created event",
				"expense_id", created.ID, "error", err)
		}
	}

	return created, nil
}

// ListExpenses delegates to the store.
func (s *ExpenseService) ListExpenses(ctx context.Context, f core.Filter) ([]core.Expense, error) {
	return s.store.ListExpenses(ctx, f)
}

// MonthlyTotals delegates to the store.
func (s *ExpenseService) MonthlyTotals(ctx context.Context) ([]core.MonthlyCategoryTotal, error) {
	return s.store.MonthlyTotals(ctx)
}

// DeleteExpense removes the record and publishes a deletion event carrying
// the prior state.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) (core.Expense, error) {
	deleted, err := s.store.DeleteExpense(ctx, id)
	if err != nil {
		return core.Expense{}, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishExpenseDeleted(ctx, deleted); err != nil {
			slog.ErrorContext(ctx, "Failed to publish deleted event",
				"expense_id", deleted.ID, "error", err)
		}
	}

	return deleted, nil
}

// Close releases the store and publisher when they hold resources.
func (s *ExpenseService) Close() error {
	var errs []error

	if c, ok := s.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("store: %w", err))
		}
	}
	if c, ok := s.publisher.(io.Closer); ok && c != nil {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("publisher: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close expense service: %v", errs)
	}
	return nil
}
