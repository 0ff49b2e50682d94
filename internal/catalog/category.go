package catalog

import "strings"

// DefaultCategory is the bucket for anything we can't classify.
const DefaultCategory = "Other"

// Categories is the closed set of spend-classification buckets, in display
// order. Aggregation only ever sees these values.
var Categories = []string{
	"Produce",
	"Dairy",
	"Meat",
	"Bakery",
	"Pantry",
	"Snacks",
	"Frozen",
	"Beverages",
	"Household",
	"Party",
	DefaultCategory,
}

var colorClasses = map[string]string{
	"Produce":       "bg-primary-500",
	"Dairy":         "bg-secondary-400",
	"Meat":          "bg-danger",
	"Bakery":        "bg-accent-400",
	"Pantry":        "bg-secondary-600",
	"Snacks":        "bg-warning",
	"Frozen":        "bg-info",
	"Beverages":     "bg-primary-400",
	"Household":     "bg-neutral-500",
	"Party":         "bg-accent-500",
	DefaultCategory: "bg-neutral-400",
}

// SanitizeCategory coerces free-text category input onto the closed set.
// Matching is case-insensitive after trimming; empty or unrecognized input
// maps to the default category. Idempotent.
func SanitizeCategory(category string) string {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return DefaultCategory
	}
	for _, c := range Categories {
		if strings.EqualFold(c, trimmed) {
			return c
		}
	}
	return DefaultCategory
}

// CategoryColorClass returns the display color class for a category,
// sanitizing first so raw stored values are safe to pass in.
func CategoryColorClass(category string) string {
	return colorClasses[SanitizeCategory(category)]
}
