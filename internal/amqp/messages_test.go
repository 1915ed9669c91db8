package amqp

import (
	"testing"
	"time"

	"expensetracker/internal/core"
)

func TestNewExpenseEvent(t *testing.T) {
	e := core.Expense{
		ID:          7,
		Amount:      core.Money{Cents: 12050},
		Category:    core.CategoryTravel,
		Date:        time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		PaymentMode: core.PaymentUPI,
	}

	ev := NewExpenseEvent(EventExpenseCreated, e)
	if ev.Type != EventExpenseCreated {
		t.Errorf("Type = %q, want %q", ev.Type, EventExpenseCreated)
	}
	if ev.ExpenseID != 7 || ev.AmountCents != 12050 {
		t.Errorf("snapshot mismatch: %+v", ev)
	}
	if ev.Category != "Travel" || ev.PaymentMode != "UPI" {
		t.Errorf("enum snapshot mismatch: %+v", ev)
	}
	if ev.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestExpenseEventJSONRoundTrip(t *testing.T) {
	ev := &ExpenseEvent{
		Type:        EventExpenseDeleted,
		ExpenseID:   3,
		AmountCents: 999,
		Category:    "Groceries",
		PaymentMode: "Cash",
		Date:        time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Timestamp:   time.Date(2024, 5, 11, 9, 0, 0, 0, time.UTC),
	}

	data, err := ev.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	got, err := ExpenseEventFromJSON(data)
	if err != nil {
		t.Fatalf("ExpenseEventFromJSON: %v", err)
	}
	if got.Type != ev.Type || got.ExpenseID != ev.ExpenseID || got.AmountCents != ev.AmountCents {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.Date.Equal(ev.Date) || !got.Timestamp.Equal(ev.Timestamp) {
		t.Fatalf("time round trip mismatch: %+v", got)
	}
}

func TestExpenseEventFromJSONInvalid(t *testing.T) {
	if _, err := ExpenseEventFromJSON([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
