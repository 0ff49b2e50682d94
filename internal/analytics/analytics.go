// Package analytics derives spend summaries from shopping lists. Everything
// here is a pure function over normalized in-memory data; totals are
// recomputed from scratch on every call because datasets are tens of items,
// and a stale cached percentage costs more than the recomputation.
package analytics

import (
	"sort"
	"time"

	"github.com/calebmartin/larder/internal/catalog"
	"github.com/calebmartin/larder/internal/model"
)

// Period is an analytics time-window filter.
type Period string

const (
	PeriodThisMonth  Period = "this_month"
	PeriodLastMonth  Period = "last_month"
	PeriodLast90Days Period = "last_90_days"
	PeriodAllTime    Period = "all_time"
)

// ListAll selects every list regardless of id.
const ListAll = "all"

// ParsePeriod maps a query-string period onto the known set, defaulting to
// all_time.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodThisMonth, PeriodLastMonth, PeriodLast90Days:
		return Period(s)
	default:
		return PeriodAllTime
	}
}

// Filter selects which lists participate in an aggregation.
type Filter struct {
	Period Period
	ListID string
}

// Bounds resolves the period to an inclusive [start, end] window relative to
// now. The third result is false for all_time, which is unbounded.
func (p Period) Bounds(now time.Time) (time.Time, time.Time, bool) {
	switch p {
	case PeriodThisMonth:
		start := startOfMonth(now)
		return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond), true
	case PeriodLastMonth:
		thisMonth := startOfMonth(now)
		return thisMonth.AddDate(0, -1, 0), thisMonth.Add(-time.Nanosecond), true
	case PeriodLast90Days:
		return now.Add(-90 * 24 * time.Hour), now, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Included reports whether a list passes the filter. Lists whose createdAt
// failed to parse only qualify under all_time.
func (f Filter) Included(list model.ShoppingList, now time.Time) bool {
	if f.ListID != "" && f.ListID != ListAll && f.ListID != list.ID {
		return false
	}
	start, end, bounded := f.Period.Bounds(now)
	if !bounded {
		return true
	}
	created := list.CreatedAt.Time
	if created.IsZero() {
		return false
	}
	return !created.Before(start) && !created.After(end)
}

// TotalSpend sums item prices across every included list. Price carries the
// line total, so quantity does not multiply. Empty input yields 0.
func TotalSpend(lists []model.ShoppingList, filter Filter, now time.Time) float64 {
	var total float64
	for _, list := range lists {
		if !filter.Included(list, now) {
			continue
		}
		for _, item := range list.Items {
			total += item.Price
		}
	}
	return total
}

// CategorySpend is one row of a category breakdown.
type CategorySpend struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdown groups every item across the included lists by sanitized
// category. Percentage is of the grand total, zero when the grand total is
// zero. Sorted descending by amount; ties keep first-encounter order.
func CategoryBreakdown(lists []model.ShoppingList, filter Filter, now time.Time) []CategorySpend {
	totals := make(map[string]float64)
	var order []string
	var grandTotal float64

	for _, list := range lists {
		if !filter.Included(list, now) {
			continue
		}
		for _, item := range list.Items {
			category := catalog.SanitizeCategory(item.Category)
			if _, seen := totals[category]; !seen {
				order = append(order, category)
			}
			totals[category] += item.Price
			grandTotal += item.Price
		}
	}

	breakdown := make([]CategorySpend, 0, len(order))
	for _, category := range order {
		amount := totals[category]
		var pct float64
		if grandTotal > 0 {
			pct = amount / grandTotal * 100
		}
		breakdown = append(breakdown, CategorySpend{
			Category:   category,
			Amount:     amount,
			Percentage: pct,
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount > breakdown[j].Amount
	})
	return breakdown
}

// TopCategories returns the first n rows of a breakdown.
func TopCategories(breakdown []CategorySpend, n int) []CategorySpend {
	if n > len(breakdown) {
		n = len(breakdown)
	}
	return breakdown[:n]
}

// MonthlySpending is the unfiltered total behind the home-screen summary
// card. It must stay consistent with TotalSpend under an all_time/all filter.
func MonthlySpending(lists []model.ShoppingList) float64 {
	return TotalSpend(lists, Filter{Period: PeriodAllTime, ListID: ListAll}, time.Time{})
}
