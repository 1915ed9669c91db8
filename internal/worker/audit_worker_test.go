package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"expensetracker/internal/amqp"
	"expensetracker/internal/storage"
)

type fakeRecorder struct {
	events []storage.ExpenseEventRecord
	err    error
}

func (r *fakeRecorder) RecordEvent(ctx context.Context, ev storage.ExpenseEventRecord) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, ev)
	return nil
}

func sampleEvent(t amqp.EventType) *amqp.ExpenseEvent {
	return &amqp.ExpenseEvent{
		Type:        t,
		ExpenseID:   7,
		AmountCents: 1234,
		Category:    "Travel",
		PaymentMode: "UPI",
		Date:        time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Timestamp:   time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestHandleEventRecordsKnownTypes(t *testing.T) {
	rec := &fakeRecorder{}
	w := NewAuditWorker(rec)

	for _, typ := range []amqp.EventType{amqp.EventExpenseCreated, amqp.EventExpenseDeleted} {
		if err := w.HandleEvent(context.Background(), sampleEvent(typ)); err != nil {
			t.Fatalf("HandleEvent(%s): %v", typ, err)
		}
	}

	if len(rec.events) != 2 {
		t.Fatalf("recorded = %d, want 2", len(rec.events))
	}
	got := rec.events[0]
	if got.Type != "expense.created" || got.ExpenseID != 7 || got.AmountCents != 1234 {
		t.Fatalf("record mismatch: %+v", got)
	}
	if got.Category != "Travel" || got.PaymentMode != "UPI" {
		t.Fatalf("enum mismatch: %+v", got)
	}
}

func TestHandleEventDropsUnknownType(t *testing.T) {
	rec := &fakeRecorder{}
	w := NewAuditWorker(rec)

	// nil error keeps the message from being requeued.
	if err := w.HandleEvent(context.Background(), sampleEvent("expense.updated")); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if len(rec.events) != 0 {
		t.Fatal("unknown event types must not be recorded")
	}
}

func TestHandleEventPropagatesRecorderError(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	w := NewAuditWorker(rec)

	err := w.HandleEvent(context.Background(), sampleEvent(amqp.EventExpenseCreated))
	if err == nil {
		t.Fatal("expected error so the message gets requeued")
	}
	if !errors.Is(err, rec.err) {
		t.Fatalf("err = %v, want wrapped recorder error", err)
	}
}
