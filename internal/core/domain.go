package core

import (
	"errors"
	"time"
)

const (
	CategoryRental        Category = "Rental"
	CategoryGroceries     Category = "Groceries"
	CategoryEntertainment Category = "Entertainment"
	CategoryTravel        Category = "Travel"
	CategoryOthers        Category = "Others"
)

const (
	PaymentUPI        PaymentMode = "UPI"
	PaymentCreditCard PaymentMode = "Credit Card"
	PaymentNetBanking PaymentMode = "Net Banking"
	PaymentCash       PaymentMode = "Cash"
)

const maxNotesLength = 500

type (
	Category    string
	PaymentMode string

	Money struct {
		Cents int64
	}

	Expense struct {
		ID          int64
		Amount      Money
		Category    Category
		Notes       string
		Date        time.Time
		PaymentMode PaymentMode
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
	ErrNotesTooLong       = errors.New("notes cannot exceed 500 characters")
	ErrMissingDate        = errors.New("date is required")
)

// Categories returns the closed set of accepted expense categories.
func Categories() []Category {
	return []Category{
		CategoryRental,
		CategoryGroceries,
		CategoryEntertainment,
		CategoryTravel,
		CategoryOthers,
	}
}

// PaymentModes returns the closed set of accepted payment modes.
func PaymentModes() []PaymentMode {
	return []PaymentMode{
		PaymentUPI,
		PaymentCreditCard,
		PaymentNetBanking,
		PaymentCash,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryRental, CategoryGroceries, CategoryEntertainment, CategoryTravel, CategoryOthers:
		return true
	}
	return false
}

func (p PaymentMode) Valid() bool {
	switch p {
	case PaymentUPI, PaymentCreditCard, PaymentNetBanking, PaymentCash:
		return true
	}
	return false
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Validate checks the schema invariants enforced on creation. Records are
// never mutated after creation, so a record that passes here stays valid for
// its whole lifetime.
func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if !e.Category.Valid() {
		return ErrInvalidCategory
	}
	if !e.PaymentMode.Valid() {
		return ErrInvalidPaymentMode
	}
	if len(e.Notes) > maxNotesLength {
		return ErrNotesTooLong
	}
	if e.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}
