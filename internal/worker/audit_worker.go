package worker

import (
	"context"
	"fmt"
	"log/slog"

	"expensetracker/internal/amqp"
	"expensetracker/internal/storage"
)

// EventRecorder persists audit rows. Implemented by storage.SQLiteRepository.
type EventRecorder interface {
	RecordEvent(ctx context.Context, ev storage.ExpenseEventRecord) error
}

// AuditWorker consumes expense lifecycle events from the queue and records
// them in the audit table.
type AuditWorker struct {
	recorder EventRecorder
}

func NewAuditWorker(recorder EventRecorder) *AuditWorker {
	return &AuditWorker{recorder: recorder}
}

// HandleEvent processes a single lifecycle event. Returning an error requeues
// the message.
func (w *AuditWorker) HandleEvent(ctx context.Context, msg *amqp.ExpenseEvent) error {
	slog.InfoContext(ctx, "Processing expense event",
		"type", msg.Type,
		"expense_id", msg.ExpenseID)

	switch msg.Type {
	case amqp.EventExpenseCreated, amqp.EventExpenseDeleted:
	default:
		// Unknown event types are dropped, not requeued: a newer producer may
		// emit types this worker predates.
		slog.WarnContext(ctx, "Ignoring unknown event type",
			"type", msg.Type,
			"expense_id", msg.ExpenseID)
		return nil
	}

	err := w.recorder.RecordEvent(ctx, storage.ExpenseEventRecord{
		Type:        string(msg.Type),
		ExpenseID:   msg.ExpenseID,
		AmountCents: msg.AmountCents,
		Category:    msg.Category,
		PaymentMode: msg.PaymentMode,
		ExpenseDate: msg.Date,
		OccurredAt:  msg.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("record event: %w", err)
	}

	return nil
}
