package http

import (
	"strconv"
	"time"

	"expensetracker/internal/core"
)

// expenseResponse is the wire form of a stored expense. The id is exposed as
// an opaque string.
type expenseResponse struct {
	ID          string     `json:"id"`
	Amount      core.Money `json:"amount"`
	Category    string     `json:"category"`
	Notes       string     `json:"notes,omitempty"`
	Date        time.Time  `json:"date"`
	PaymentMode string     `json:"paymentMode"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toExpenseResponse(e core.Expense) expenseResponse {
	return expenseResponse{
		ID:          strconv.FormatInt(e.ID, 10),
		Amount:      e.Amount,
		Category:    string(e.Category),
		Notes:       e.Notes,
		Date:        e.Date,
		PaymentMode: string(e.PaymentMode),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toExpenseResponses(expenses []core.Expense) []expenseResponse {
	out := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = toExpenseResponse(e)
	}
	return out
}

// analyticsRow is one aggregate row of the analytics endpoint.
type analyticsRow struct {
	Year        int        `json:"year"`
	Month       int        `json:"month"`
	Category    string     `json:"category"`
	TotalAmount core.Money `json:"totalAmount"`
}

func toAnalyticsRows(totals []core.MonthlyCategoryTotal) []analyticsRow {
	out := make([]analyticsRow, len(totals))
	for i, t := range totals {
		out[i] = analyticsRow{
			Year:        t.Year,
			Month:       t.Month,
			Category:    string(t.Category),
			TotalAmount: t.Total,
		}
	}
	return out
}
