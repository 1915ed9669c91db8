package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validExpense() Expense {
	return Expense{
		Amount:      Money{Cents: 1234},
		Category:    CategoryGroceries,
		Notes:       "weekly shop",
		Date:        time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		PaymentMode: PaymentUPI,
	}
}

func TestExpenseValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Expense)
		wantErr error
	}{
		{
			name:   "valid expense",
			mutate: func(e *Expense) {},
		},
		{
			name:   "zero amount is allowed",
			mutate: func(e *Expense) { e.Amount = Money{Cents: 0} },
		},
		{
			name:    "negative amount",
			mutate:  func(e *Expense) { e.Amount = Money{Cents: -1} },
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "unknown category",
			mutate:  func(e *Expense) { e.Category = "Food" },
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "empty category",
			mutate:  func(e *Expense) { e.Category = "" },
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "unknown payment mode",
			mutate:  func(e *Expense) { e.PaymentMode = "Cheque" },
			wantErr: ErrInvalidPaymentMode,
		},
		{
			name:    "lowercase payment mode is rejected",
			mutate:  func(e *Expense) { e.PaymentMode = "upi" },
			wantErr: ErrInvalidPaymentMode,
		},
		{
			name:   "notes at limit",
			mutate: func(e *Expense) { e.Notes = strings.Repeat("x", 500) },
		},
		{
			name:    "notes over limit",
			mutate:  func(e *Expense) { e.Notes = strings.Repeat("x", 501) },
			wantErr: ErrNotesTooLong,
		},
		{
			name:   "empty notes",
			mutate: func(e *Expense) { e.Notes = "" },
		},
		{
			name:    "missing date",
			mutate:  func(e *Expense) { e.Date = time.Time{} },
			wantErr: ErrMissingDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExpense()
			tt.mutate(&e)

			err := e.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnumSets(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("category %q should be valid", c)
		}
	}
	for _, p := range PaymentModes() {
		if !p.Valid() {
			t.Errorf("payment mode %q should be valid", p)
		}
	}

	if Category("Misc").Valid() {
		t.Error("unexpected category accepted")
	}
	if PaymentMode("Wire").Valid() {
		t.Error("unexpected payment mode accepted")
	}
}
