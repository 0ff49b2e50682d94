package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/calebmartin/larder/internal/model"
)

func list(id string, createdAt time.Time, items ...model.ShoppingListItem) model.ShoppingList {
	return model.ShoppingList{
		ID:        id,
		Name:      "list " + id,
		CreatedAt: model.NewTime(createdAt),
		Items:     items,
	}
}

func item(price float64, category string) model.ShoppingListItem {
	return model.ShoppingListItem{Name: "item", Quantity: 1, Unit: model.UnitPieces, Price: price, Category: category}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestTotalSpendThisMonth(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	lists := []model.ShoppingList{
		list("a", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			item(10, "Produce"), item(5, "Dairy")),
		list("b", time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
			item(20, "Produce")),
	}

	got := TotalSpend(lists, Filter{Period: PeriodThisMonth, ListID: ListAll}, now)
	if !approx(got, 15) {
		t.Errorf("TotalSpend = %v, want 15", got)
	}
}

func TestTotalSpendLastMonth(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	lists := []model.ShoppingList{
		list("a", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), item(10, "Produce")),
		list("b", time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), item(20, "Produce")),
	}

	got := TotalSpend(lists, Filter{Period: PeriodLastMonth, ListID: ListAll}, now)
	if !approx(got, 20) {
		t.Errorf("TotalSpend = %v, want 20", got)
	}
}

func TestTotalSpendLast90Days(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	lists := []model.ShoppingList{
		list("recent", now.Add(-30*24*time.Hour), item(7, "Dairy")),
		list("old", now.Add(-120*24*time.Hour), item(100, "Dairy")),
	}

	got := TotalSpend(lists, Filter{Period: PeriodLast90Days, ListID: ListAll}, now)
	if !approx(got, 7) {
		t.Errorf("TotalSpend = %v, want 7", got)
	}
}

func TestTotalSpendAllTimeEqualsFullSum(t *testing.T) {
	now := time.Now()
	lists := []model.ShoppingList{
		list("a", now.Add(-400*24*time.Hour), item(1.5, "Produce"), item(2.25, "Other")),
		list("b", now, item(3.75, "Dairy")),
	}

	got := TotalSpend(lists, Filter{Period: PeriodAllTime, ListID: ListAll}, now)
	if !approx(got, 7.5) {
		t.Errorf("TotalSpend = %v, want 7.5", got)
	}

	// The legacy home-card sum must agree.
	if legacy := MonthlySpending(lists); !approx(legacy, got) {
		t.Errorf("MonthlySpending = %v, want %v", legacy, got)
	}
}

func TestTotalSpendListFilter(t *testing.T) {
	now := time.Now()
	lists := []model.ShoppingList{
		list("a", now, item(10, "Produce")),
		list("b", now, item(20, "Produce")),
	}

	got := TotalSpend(lists, Filter{Period: PeriodAllTime, ListID: "b"}, now)
	if !approx(got, 20) {
		t.Errorf("TotalSpend = %v, want 20", got)
	}
}

func TestTotalSpendEmpty(t *testing.T) {
	got := TotalSpend(nil, Filter{Period: PeriodAllTime, ListID: ListAll}, time.Now())
	if got != 0 {
		t.Errorf("TotalSpend = %v, want 0", got)
	}
}

func TestUnparseableCreatedAtOnlyAllTime(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	// Zero CreatedAt models a stored date that failed to parse.
	broken := model.ShoppingList{ID: "x", Items: []model.ShoppingListItem{item(9, "Other")}}

	if got := TotalSpend([]model.ShoppingList{broken}, Filter{Period: PeriodThisMonth, ListID: ListAll}, now); got != 0 {
		t.Errorf("this_month should exclude unparseable createdAt, got %v", got)
	}
	if got := TotalSpend([]model.ShoppingList{broken}, Filter{Period: PeriodAllTime, ListID: ListAll}, now); !approx(got, 9) {
		t.Errorf("all_time should include unparseable createdAt, got %v", got)
	}
}

func TestCategoryBreakdownScenario(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	lists := []model.ShoppingList{
		list("a", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			item(10, "Produce"), item(5, "Dairy")),
		list("b", time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
			item(20, "Produce")),
	}

	breakdown := CategoryBreakdown(lists, Filter{Period: PeriodThisMonth, ListID: ListAll}, now)
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(breakdown))
	}
	if breakdown[0].Category != "Produce" || !approx(breakdown[0].Amount, 10) || !approx(breakdown[0].Percentage, 66.67) {
		t.Errorf("breakdown[0] = %+v, want Produce/10/66.67", breakdown[0])
	}
	if breakdown[1].Category != "Dairy" || !approx(breakdown[1].Amount, 5) || !approx(breakdown[1].Percentage, 33.33) {
		t.Errorf("breakdown[1] = %+v, want Dairy/5/33.33", breakdown[1])
	}
}

func TestCategoryBreakdownPercentagesSumTo100(t *testing.T) {
	now := time.Now()
	lists := []model.ShoppingList{
		list("a", now, item(3, "Produce"), item(7, "Dairy"), item(11, "Meat"), item(0.5, "Snacks")),
	}

	breakdown := CategoryBreakdown(lists, Filter{Period: PeriodAllTime, ListID: ListAll}, now)
	var sum float64
	for _, row := range breakdown {
		sum += row.Percentage
	}
	if !approx(sum, 100) {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	breakdown := CategoryBreakdown(nil, Filter{Period: PeriodAllTime, ListID: ListAll}, time.Now())
	if len(breakdown) != 0 {
		t.Errorf("expected empty breakdown, got %d rows", len(breakdown))
	}
}

func TestCategoryBreakdownZeroTotal(t *testing.T) {
	now := time.Now()
	lists := []model.ShoppingList{list("a", now, item(0, "Produce"), item(0, "Dairy"))}

	breakdown := CategoryBreakdown(lists, Filter{Period: PeriodAllTime, ListID: ListAll}, now)
	for _, row := range breakdown {
		if row.Percentage != 0 {
			t.Errorf("percentage for %s = %v, want 0 when grand total is 0", row.Category, row.Percentage)
		}
	}
}

func TestCategoryBreakdownSanitizesCategories(t *testing.T) {
	now := time.Now()
	lists := []model.ShoppingList{
		list("a", now, item(5, "produce"), item(5, "PRODUCE"), item(2, "General")),
	}

	breakdown := CategoryBreakdown(lists, Filter{Period: PeriodAllTime, ListID: ListAll}, now)
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 categories after sanitization, got %d", len(breakdown))
	}
	if breakdown[0].Category != "Produce" || !approx(breakdown[0].Amount, 10) {
		t.Errorf("breakdown[0] = %+v, want Produce/10", breakdown[0])
	}
	if breakdown[1].Category != "Other" || !approx(breakdown[1].Amount, 2) {
		t.Errorf("breakdown[1] = %+v, want Other/2", breakdown[1])
	}
}

func TestCategoryBreakdownStableTies(t *testing.T) {
	now := time.Now()
	lists := []model.ShoppingList{
		list("a", now, item(5, "Dairy"), item(5, "Produce"), item(5, "Meat")),
	}

	breakdown := CategoryBreakdown(lists, Filter{Period: PeriodAllTime, ListID: ListAll}, now)
	want := []string{"Dairy", "Produce", "Meat"}
	for i, w := range want {
		if breakdown[i].Category != w {
			t.Errorf("breakdown[%d] = %q, want %q (encounter order on ties)", i, breakdown[i].Category, w)
		}
	}
}

func TestTopCategories(t *testing.T) {
	now := time.Now()
	lists := []model.ShoppingList{
		list("a", now, item(1, "Dairy"), item(2, "Produce"), item(3, "Meat"), item(4, "Snacks")),
	}

	breakdown := CategoryBreakdown(lists, Filter{Period: PeriodAllTime, ListID: ListAll}, now)
	top := TopCategories(breakdown, 3)
	if len(top) != 3 {
		t.Fatalf("expected 3 top categories, got %d", len(top))
	}
	if top[0].Category != "Snacks" || top[2].Category != "Produce" {
		t.Errorf("top = [%s %s %s], want [Snacks Meat Produce]", top[0].Category, top[1].Category, top[2].Category)
	}

	if short := TopCategories(breakdown[:2], 3); len(short) != 2 {
		t.Errorf("TopCategories on 2 rows = %d rows, want 2", len(short))
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		input string
		want  Period
	}{
		{"this_month", PeriodThisMonth},
		{"last_month", PeriodLastMonth},
		{"last_90_days", PeriodLast90Days},
		{"all_time", PeriodAllTime},
		{"", PeriodAllTime},
		{"bogus", PeriodAllTime},
	}
	for _, tt := range tests {
		if got := ParsePeriod(tt.input); got != tt.want {
			t.Errorf("ParsePeriod(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPeriodBoundsMonthEdges(t *testing.T) {
	// Jan 31 — month arithmetic must not skip February.
	now := time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC)

	start, end, ok := PeriodThisMonth.Bounds(now)
	if !ok {
		t.Fatal("this_month should be bounded")
	}
	if start.Month() != time.January || start.Day() != 1 {
		t.Errorf("start = %v, want Jan 1", start)
	}
	if !end.After(now) {
		t.Errorf("end = %v, should cover the rest of January", end)
	}

	lastStart, lastEnd, _ := PeriodLastMonth.Bounds(now)
	if lastStart.Month() != time.December || lastStart.Year() != 2023 {
		t.Errorf("last month start = %v, want Dec 1 2023", lastStart)
	}
	if !lastEnd.Before(start) {
		t.Errorf("last month end %v should precede this month start %v", lastEnd, start)
	}
}
