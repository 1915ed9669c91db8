package amqp

import (
	"encoding/json"
	"time"

	"expensetracker/internal/core"
)

type EventType string

const (
	EventExpenseCreated EventType = "expense.created"
	EventExpenseDeleted EventType = "expense.deleted"
)

// ExpenseEvent is the lifecycle message published on create and delete.
// It carries the full record snapshot so consumers never have to read the
// store back.
type ExpenseEvent struct {
	Type        EventType `json:"type"`
	ExpenseID   int64     `json:"expense_id"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	PaymentMode string    `json:"payment_mode"`
	Date        time.Time `json:"date"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewExpenseEvent builds an event from a stored expense.
func NewExpenseEvent(t EventType, e core.Expense) *ExpenseEvent {
	return &ExpenseEvent{
		Type:        t,
		ExpenseID:   e.ID,
		AmountCents: e.Amount.Cents,
		Category:    string(e.Category),
		PaymentMode: string(e.PaymentMode),
		Date:        e.Date,
		Timestamp:   time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes.
func (m *ExpenseEvent) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseEventFromJSON creates an event from JSON bytes.
func ExpenseEventFromJSON(data []byte) (*ExpenseEvent, error) {
	var msg ExpenseEvent
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
