// Package backend is the composition root: it builds a complete expense
// backend (store plus optional event publishing) from configuration, so both
// entry points share one wiring path instead of duplicating it.
package backend

import (
	"fmt"
	"log/slog"

	"expensetracker/internal/amqp"
	"expensetracker/internal/config"
	"expensetracker/internal/services"
	"expensetracker/internal/store"
	"expensetracker/internal/store/memory"
	"expensetracker/internal/storage"
)

// Backend is the unified set of store ports the HTTP layer consumes.
type Backend interface {
	store.ExpenseWriter
	store.ExpenseLister
	store.ExpenseAggregator
	store.ExpenseDeleter
}

// CleanupFunc releases the backend's resources.
type CleanupFunc func() error

// Result contains the backend instance and its cleanup function.
type Result struct {
	Backend Backend
	Cleanup CleanupFunc
}

// New creates a backend from the application config.
//
// The sqlite backend wires an AMQP publisher when AMQP_URL is configured; a
// broker connection failure downgrades to store-only mode rather than
// preventing startup.
func New(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.DataBackend {
	case "memory":
		logger.Info("Initialized memory backend")
		return &Result{
			Backend: memory.New(),
			Cleanup: func() error { return nil },
		}, nil

	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}

		var publisher services.EventPublisher
		if cfg.AMQPURL != "" {
			client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
			if err != nil {
				logger.Warn("Failed to initialize AMQP client, continuing in store-only mode", "error", err)
			} else {
				publisher = client
				logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
			}
		}

		service := services.NewExpenseService(repo, publisher)
		logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath, "amqp", publisher != nil)
		return &Result{
			Backend: service,
			Cleanup: service.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.DataBackend)
	}
}
