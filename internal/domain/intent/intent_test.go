package intent

import (
	"strings"
	"testing"

	"github.com/partdex/partdex/internal/domain/sortpref"
)

func TestNewIsStructurallyComplete(t *testing.T) {
	it := New()
	if it.SearchKeywords == nil || it.PartNumbers == nil || it.PartsBrands == nil ||
		it.Categories == nil || it.ExcludeBrands == nil || it.ExcludeOrigins == nil {
		t.Error("New() returned nil slices")
	}
	if !it.Confidence.IsValid() {
		t.Errorf("Confidence = %q, want valid default", it.Confidence)
	}
	if !it.Language.IsValid() {
		t.Errorf("Language = %q, want valid default", it.Language)
	}
	if !it.PriceCurrency.IsValid() {
		t.Errorf("PriceCurrency = %q, want valid default", it.PriceCurrency)
	}
}

func TestSignalCount(t *testing.T) {
	it := New()
	if got := it.SignalCount(); got != 0 {
		t.Errorf("empty intent SignalCount = %d, want 0", got)
	}

	it.PartNumbers = []string{"RC0009"}
	it.RequireInStock = true
	max := 100.0
	it.MaxPrice = &max
	if got := it.SignalCount(); got != 3 {
		t.Errorf("SignalCount = %d, want 3", got)
	}
}

func TestBuildSummaryEmptyIntent(t *testing.T) {
	it := New()
	if got := BuildSummary(&it); got != "all parts" {
		t.Errorf("BuildSummary = %q, want %q", got, "all parts")
	}
}

func TestBuildSummaryOrderedClauses(t *testing.T) {
	it := New()
	it.Categories = []string{"brake"}
	it.VehicleBrand = "TOYOTA"
	max := 500.0
	it.MaxPrice = &max
	it.RequireInStock = true
	topN := 5
	it.TopN = &topN
	it.SortPreference = sortpref.PriceAsc

	got := BuildSummary(&it)
	want := "brake parts, for TOYOTA, under 500 USD, in stock, top 5 results, sorted by price (lowest first)"
	if got != want {
		t.Errorf("BuildSummary = %q, want %q", got, want)
	}
}

func TestBuildSummaryPartNumberWins(t *testing.T) {
	it := New()
	it.PartNumbers = []string{"06A115561B"}
	it.Categories = []string{"filter"}

	got := BuildSummary(&it)
	if !strings.HasPrefix(got, "part 06A115561B") {
		t.Errorf("BuildSummary = %q, want part-number lead clause", got)
	}
	if strings.Contains(got, "filter parts") {
		t.Errorf("BuildSummary = %q: category clause must yield to part number", got)
	}
}
