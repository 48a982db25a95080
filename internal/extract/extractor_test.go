package extract

import (
	"reflect"
	"testing"

	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/lang"
	"github.com/partdex/partdex/internal/domain/sortpref"
)

func extractEN(t *testing.T, q string) intent.Intent {
	t.Helper()
	return Extract(q, q, lang.English)
}

func TestExtractPartNumberLookup(t *testing.T) {
	it := extractEN(t, "find best 3 for rc0009")

	if !reflect.DeepEqual(it.PartNumbers, []string{"RC0009"}) {
		t.Errorf("PartNumbers = %v, want [RC0009]", it.PartNumbers)
	}
	if it.TopN == nil || *it.TopN != 3 {
		t.Errorf("TopN = %v, want 3", it.TopN)
	}
	if len(it.SearchKeywords) != 0 {
		t.Errorf("SearchKeywords = %v, want empty", it.SearchKeywords)
	}
	if it.RequestedQuantity != nil {
		t.Errorf("RequestedQuantity = %v, want nil", *it.RequestedQuantity)
	}
	if it.Confidence != intent.High {
		t.Errorf("Confidence = %s, want HIGH", it.Confidence)
	}
}

func TestExtractBrandCategorySort(t *testing.T) {
	it := extractEN(t, "cheapest bosch brake pads in stock")

	if !reflect.DeepEqual(it.PartsBrands, []string{"BOSCH"}) {
		t.Errorf("PartsBrands = %v, want [BOSCH]", it.PartsBrands)
	}
	if it.VehicleBrand != "" {
		t.Errorf("VehicleBrand = %q, want empty", it.VehicleBrand)
	}
	if !reflect.DeepEqual(it.Categories, []string{"brake"}) {
		t.Errorf("Categories = %v, want [brake]", it.Categories)
	}
	if it.SortPreference != sortpref.PriceAsc {
		t.Errorf("SortPreference = %s, want price_asc", it.SortPreference)
	}
	if !it.RequireInStock {
		t.Error("RequireInStock = false, want true")
	}
	if it.MaxPrice != nil {
		t.Errorf("MaxPrice = %v, want nil: cheapest is a sort word", *it.MaxPrice)
	}
}

func TestExtractQuantityPriceDelivery(t *testing.T) {
	it := extractEN(t, "need 50 units of 06a115561b under $10 fast delivery")

	if !reflect.DeepEqual(it.PartNumbers, []string{"06A115561B"}) {
		t.Errorf("PartNumbers = %v, want [06A115561B]", it.PartNumbers)
	}
	if it.RequestedQuantity == nil || *it.RequestedQuantity != 50 {
		t.Errorf("RequestedQuantity = %v, want 50", it.RequestedQuantity)
	}
	if it.TopN != nil {
		t.Errorf("TopN = %v, want nil", *it.TopN)
	}
	if it.MaxPrice == nil || *it.MaxPrice != 10 {
		t.Errorf("MaxPrice = %v, want 10", it.MaxPrice)
	}
	if !it.FastDelivery {
		t.Error("FastDelivery = false, want true")
	}
}

func TestExtractVehicleBrandTopN(t *testing.T) {
	it := extractEN(t, "top 5 toyota filters")

	if it.VehicleBrand != "TOYOTA" {
		t.Errorf("VehicleBrand = %q, want TOYOTA", it.VehicleBrand)
	}
	if len(it.PartsBrands) != 0 {
		t.Errorf("PartsBrands = %v, want empty: toyota is a vehicle make", it.PartsBrands)
	}
	if !reflect.DeepEqual(it.Categories, []string{"filter"}) {
		t.Errorf("Categories = %v, want [filter]", it.Categories)
	}
	if it.TopN == nil || *it.TopN != 5 {
		t.Errorf("TopN = %v, want 5", it.TopN)
	}
}

func TestExtractQualitativeCheap(t *testing.T) {
	it := extractEN(t, "cheap in stock brake pads")

	if !reflect.DeepEqual(it.Categories, []string{"brake"}) {
		t.Errorf("Categories = %v, want [brake]", it.Categories)
	}
	if it.MaxPrice == nil || *it.MaxPrice != 100 {
		t.Errorf("MaxPrice = %v, want 100", it.MaxPrice)
	}
	if !it.RequireInStock {
		t.Error("RequireInStock = false, want true")
	}
	if it.SortPreference != sortpref.PriceAsc {
		t.Errorf("SortPreference = %s, want price_asc", it.SortPreference)
	}
}

func TestExtractStructurallyComplete(t *testing.T) {
	for _, q := range []string{"", "   ", "zzzz qqqq", "the of and"} {
		it := Extract(q, q, lang.English)
		if it.SearchKeywords == nil || it.PartNumbers == nil || it.PartsBrands == nil ||
			it.Categories == nil || it.ExcludeBrands == nil || it.ExcludeOrigins == nil {
			t.Errorf("Extract(%q): nil slice in intent", q)
		}
		if !it.Confidence.IsValid() {
			t.Errorf("Extract(%q): invalid confidence %q", q, it.Confidence)
		}
		if !it.Language.IsValid() {
			t.Errorf("Extract(%q): invalid language %q", q, it.Language)
		}
	}
}

func TestExtractLowConfidenceOnNoise(t *testing.T) {
	it := extractEN(t, "the of and for")
	if it.Confidence != intent.Low {
		t.Errorf("Confidence = %s, want LOW", it.Confidence)
	}
}

func TestExtractDeterministic(t *testing.T) {
	const q = "urgent need 3 japanese oil filter and brake pads under 200 aed exclude chinese parts"
	first := extractEN(t, q)
	for i := 0; i < 5; i++ {
		if got := extractEN(t, q); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs:\n got %+v\nwant %+v", i, got, first)
		}
	}
}

func TestExtractSummaryConsistent(t *testing.T) {
	it := extractEN(t, "top 5 toyota filters under $300 in stock")
	want := intent.BuildSummary(&it)
	if it.Summary != want {
		t.Errorf("Summary = %q, want %q", it.Summary, want)
	}
	if it.Summary == "" {
		t.Error("Summary empty for a populated intent")
	}
}
