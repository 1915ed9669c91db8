package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"expensetracker/internal/core"
	"expensetracker/internal/store"
)

type createExpenseRequest struct {
	Amount      *core.Money `json:"amount"`
	Category    string      `json:"category"`
	Notes       string      `json:"notes"`
	Date        string      `json:"date"`
	PaymentMode string      `json:"paymentMode"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "Failed to decode create request", "error", err)
		writeError(w, http.StatusInternalServerError, "Error creating expense", err)
		return
	}

	if req.Amount == nil {
		writeError(w, http.StatusInternalServerError, "Error creating expense", core.ErrInvalidAmount)
		return
	}

	// Date defaults to creation time when absent.
	date := time.Now()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			slog.ErrorContext(r.Context(), "Failed to parse expense date", "date", req.Date, "error", err)
			writeError(w, http.StatusInternalServerError, "Error creating expense", err)
			return
		}
		date = parsed
	}

	expense := core.Expense{
		Amount:      *req.Amount,
		Category:    core.Category(req.Category),
		Notes:       strings.TrimSpace(req.Notes),
		Date:        date,
		PaymentMode: core.PaymentMode(req.PaymentMode),
	}

	created, err := s.expWriter.CreateExpense(r.Context(), expense)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to create expense",
			"error", err,
			"category", req.Category,
			"payment_mode", req.PaymentMode)
		writeError(w, http.StatusInternalServerError, "Error creating expense", err)
		return
	}

	slog.InfoContext(r.Context(), "Expense created",
		"id", created.ID,
		"amount_cents", created.Amount.Cents,
		"category", created.Category)

	writeJSON(w, http.StatusCreated, toExpenseResponse(created))
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := core.BuildFilter(q.Get("dateRange"), q.Get("categories"), q.Get("paymentModes"), time.Now())

	expenses, err := s.expLister.ListExpenses(r.Context(), filter)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list expenses", "error", err)
		writeError(w, http.StatusInternalServerError, "Error fetching expenses", err)
		return
	}

	writeJSON(w, http.StatusOK, toExpenseResponses(expenses))
}

func (s *Server) handleExpenseAnalytics(w http.ResponseWriter, r *http.Request) {
	// Analytics always scans the full store; query parameters are ignored.
	totals, err := s.expAggregator.MonthlyTotals(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to aggregate expenses", "error", err)
		writeError(w, http.StatusInternalServerError, "Error fetching expense analytics", err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalyticsRows(totals))
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := store.ParseID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid expense ID", nil)
		return
	}

	deleted, err := s.expDeleter.DeleteExpense(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Expense not found", nil)
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete expense", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Error deleting expense", err)
		return
	}

	slog.InfoContext(r.Context(), "Expense deleted", "id", id)

	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "Expense deleted successfully",
		"deletedExpense": toExpenseResponse(deleted),
	})
}
