package catalog

import "testing"

func TestSanitizeCategoryClosedSet(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Produce", "Produce"},
		{"produce", "Produce"},
		{"PRODUCE", "Produce"},
		{"  Dairy  ", "Dairy"},
		{"meat", "Meat"},
		{"party", "Party"},
		{"General", "Other"},
		{"not-a-category", "Other"},
		{"", "Other"},
		{"   ", "Other"},
	}
	for _, tt := range tests {
		got := SanitizeCategory(tt.input)
		if got != tt.want {
			t.Errorf("SanitizeCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitizeCategoryIdempotent(t *testing.T) {
	inputs := []string{"produce", "PRODUCE", "General", "", "Snacks", "  frozen "}
	for _, input := range inputs {
		once := SanitizeCategory(input)
		twice := SanitizeCategory(once)
		if once != twice {
			t.Errorf("SanitizeCategory not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestSanitizeCategoryCaseInsensitive(t *testing.T) {
	if SanitizeCategory("produce") != SanitizeCategory("PRODUCE") {
		t.Error("expected case-insensitive match for produce/PRODUCE")
	}
}

func TestCategoryCount(t *testing.T) {
	if len(Categories) != 11 {
		t.Fatalf("expected 11 categories, got %d", len(Categories))
	}
	if Categories[len(Categories)-1] != DefaultCategory {
		t.Errorf("last category = %q, want %q", Categories[len(Categories)-1], DefaultCategory)
	}
}

func TestCategoryColorClass(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Produce", "bg-primary-500"},
		{"produce", "bg-primary-500"},
		{"Other", "bg-neutral-400"},
		{"anything unknown", "bg-neutral-400"},
	}
	for _, tt := range tests {
		got := CategoryColorClass(tt.input)
		if got != tt.want {
			t.Errorf("CategoryColorClass(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEveryCategoryHasColor(t *testing.T) {
	for _, c := range Categories {
		if colorClasses[c] == "" {
			t.Errorf("category %q has no color class", c)
		}
	}
}
