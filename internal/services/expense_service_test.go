package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"expensetracker/internal/core"
	"expensetracker/internal/store"
	"expensetracker/internal/store/memory"
)

type fakePublisher struct {
	created []core.Expense
	deleted []core.Expense
	err     error
}

func (p *fakePublisher) PublishExpenseCreated(ctx context.Context, e core.Expense) error {
	p.created = append(p.created, e)
	return p.err
}

func (p *fakePublisher) PublishExpenseDeleted(ctx context.Context, e core.Expense) error {
	p.deleted = append(p.deleted, e)
	return p.err
}

func newExpense() core.Expense {
	return core.Expense{
		Amount:      core.Money{Cents: 1500},
		Category:    core.CategoryTravel,
		Date:        time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		PaymentMode: core.PaymentCash,
	}
}

func TestCreateExpensePublishesEvent(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewExpenseService(memory.New(), pub)

	created, err := svc.CreateExpense(context.Background(), newExpense())
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if len(pub.created) != 1 || pub.created[0].ID != created.ID {
		t.Fatalf("published events = %+v, want the created expense", pub.created)
	}
}

func TestCreateExpensePublishFailureDoesNotFailRequest(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	st := memory.New()
	svc := NewExpenseService(st, pub)

	created, err := svc.CreateExpense(context.Background(), newExpense())
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id despite publish failure")
	}
	if st.Len() != 1 {
		t.Fatal("record should be persisted despite publish failure")
	}
}

func TestCreateExpenseStoreErrorSkipsPublish(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewExpenseService(memory.New(), pub)

	invalid := newExpense()
	invalid.Category = "Food"
	if _, err := svc.CreateExpense(context.Background(), invalid); !errors.Is(err, core.ErrInvalidCategory) {
		t.Fatalf("err = %v, want ErrInvalidCategory", err)
	}
	if len(pub.created) != 0 {
		t.Fatal("no event should be published on store failure")
	}
}

func TestDeleteExpensePublishesPriorState(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewExpenseService(memory.New(), pub)

	created, err := svc.CreateExpense(context.Background(), newExpense())
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	deleted, err := svc.DeleteExpense(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("deleted.ID = %d, want %d", deleted.ID, created.ID)
	}
	if len(pub.deleted) != 1 || pub.deleted[0].Amount != created.Amount {
		t.Fatalf("deleted events = %+v, want prior state", pub.deleted)
	}
}

func TestDeleteExpenseNotFoundPassesThrough(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewExpenseService(memory.New(), pub)

	if _, err := svc.DeleteExpense(context.Background(), 42); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(pub.deleted) != 0 {
		t.Fatal("no event should be published when nothing was deleted")
	}
}

func TestNilPublisherIsStoreOnly(t *testing.T) {
	svc := NewExpenseService(memory.New(), nil)

	created, err := svc.CreateExpense(context.Background(), newExpense())
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}
	if _, err := svc.DeleteExpense(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}
}
