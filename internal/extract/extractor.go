// Package extract turns a normalized query into a structured intent using
// deterministic rule families. Every family writes its own disjoint set of
// fields, so family order only matters where a later family defers to an
// earlier one (qualitative price defers to an explicit sort).
package extract

import (
	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/lang"
)

// Confidence thresholds. A direct part-number lookup is always HIGH; a
// query the rules understood nothing about is LOW.
const highSignalCount = 3

// Extract runs all rule families over the canonical query and returns a
// structurally complete intent. The original (pre-normalization) text is
// scanned for part numbers too, because translation can mangle codes.
// Extract never fails: at worst the intent carries only keywords and
// defaults.
func Extract(canonical, original string, language lang.Code) intent.Intent {
	it := intent.New()
	it.Language = language

	q := canonical

	// Sort before price: "cheap" sets price_asc only when no explicit
	// sort phrase already claimed the field.
	extractSort(q, &it)
	extractPrice(q, &it)

	it.VehicleBrand = findVehicleBrand(q)
	it.PartsBrands = findPartsBrands(q)

	tags, related := findCategories(q)
	it.Categories = append(it.Categories, tags...)

	extractCounts(q, &it)
	extractStock(q, &it)
	extractDelivery(q, &it)
	extractQuality(q, &it)
	extractExclusions(q, &it)
	extractOrigin(q, &it)
	extractCondition(q, &it)
	extractVehicleYear(q, &it)
	extractFuelType(q, &it)
	extractModes(q, &it)

	it.PartNumbers = append(it.PartNumbers, findPartNumbers(canonical, original)...)

	// An exact code beats free text: keywords would only add noise next
	// to a part-number match.
	if len(it.PartNumbers) == 0 {
		it.SearchKeywords = append(it.SearchKeywords, findKeywords(q)...)
		it.SearchKeywords = mergeKeywords(it.SearchKeywords, related)
	}

	it.Confidence = gradeConfidence(&it)
	it.Summary = intent.BuildSummary(&it)
	return it
}

// mergeKeywords appends category-related terms not already present,
// keeping the explicit query words first.
func mergeKeywords(kw, related []string) []string {
	seen := map[string]bool{}
	for _, w := range kw {
		seen[w] = true
	}
	for _, w := range related {
		if seen[w] {
			continue
		}
		seen[w] = true
		kw = append(kw, w)
	}
	return kw
}

func gradeConfidence(it *intent.Intent) intent.Confidence {
	if len(it.PartNumbers) > 0 {
		return intent.High
	}
	signals := it.SignalCount()
	switch {
	case signals >= highSignalCount:
		return intent.High
	case signals == 0 && len(it.SearchKeywords) == 0:
		return intent.Low
	default:
		return intent.Medium
	}
}
