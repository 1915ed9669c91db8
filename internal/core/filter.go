package core

import (
	"strings"
	"time"
)

// Recognized dateRange keywords. Anything else applies no date constraint.
const (
	RangeThisMonth  = "This Month"
	RangeLast30Days = "Last 30 Days"
	RangeLast90Days = "Last 90 Days"
)

// Filter is the store-level predicate built from request filter parameters.
// Zero time bounds mean "unbounded" on that side; From is inclusive, To is
// exclusive. Nil/empty membership lists mean "no constraint from that
// dimension". All populated dimensions combine with AND.
type Filter struct {
	From time.Time
	To   time.Time

	Categories   []string
	PaymentModes []string
}

// BuildFilter translates the request-level filter parameters into a Filter.
//
// The date windows are computed relative to now at request time:
//
//	"This Month"   -> [first of current month 00:00, first of next month)
//	"Last 30 Days" -> [now - 30*24h, unbounded)
//	"Last 90 Days" -> [now - 90*24h, unbounded)
//
// Category and payment-mode lists are comma-split verbatim, with no trimming
// and no validation against the enumerated sets: an unrecognized or empty
// token simply matches nothing. A parameter consisting only of separators
// (e.g. ",") therefore yields zero matches for that dimension, which mirrors
// the long-standing behavior of the API.
func BuildFilter(dateRange, categories, paymentModes string, now time.Time) Filter {
	var f Filter

	switch dateRange {
	case RangeThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		f.From = first
		f.To = first.AddDate(0, 1, 0)
	case RangeLast30Days:
		f.From = now.Add(-30 * 24 * time.Hour)
	case RangeLast90Days:
		f.From = now.Add(-90 * 24 * time.Hour)
	}

	if categories != "" {
		f.Categories = strings.Split(categories, ",")
	}
	if paymentModes != "" {
		f.PaymentModes = strings.Split(paymentModes, ",")
	}

	return f
}

// Matches reports whether the expense satisfies the predicate. The SQLite
// store translates the same Filter into WHERE clauses; the two evaluations
// must agree.
func (f Filter) Matches(e Expense) bool {
	if !f.From.IsZero() && e.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !e.Date.Before(f.To) {
		return false
	}
	if len(f.Categories) > 0 && !contains(f.Categories, string(e.Category)) {
		return false
	}
	if len(f.PaymentModes) > 0 && !contains(f.PaymentModes, string(e.PaymentMode)) {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
