package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/partdex/partdex/internal/domain/intent"
)

// Exclusion, origin, condition, vehicle-year, fuel-type and
// compare/alternative rule families. Each writes a disjoint field.

var (
	excludeRe = regexp.MustCompile(
		`\b(?:exclude|excluding|without|except|avoid|not from|no)\s+([a-z][a-z -]*?[a-z])(?:\s+(?:parts?|brands?|products?|suppliers?)\b|\s*$|[,.;])`)

	originFromRe = regexp.MustCompile(
		`\b(?:from|made in|origin|shipped from)\s+([a-z]+)\b`)

	newRe  = regexp.MustCompile(`\b(?:new|brand new|unused)\b`)
	usedRe = regexp.MustCompile(`\b(?:used|second[- ]hand|pre[- ]owned|refurbished)\b`)

	yearRangeRe = regexp.MustCompile(`\b((?:19|20)\d{2})\s*(?:-|–|to)\s*((?:19|20)\d{2})\b`)
	yearRe      = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)

	fuelRe = regexp.MustCompile(`\b(diesel|petrol|gasoline|electric|hybrid|lpg|cng)\b`)

	compareRe = regexp.MustCompile(`\b(?:compare|comparison|versus|vs)\b`)
	altRe     = regexp.MustCompile(`\b(?:alternatives?|substitutes?|equivalents?|similar to|replacement for)\b`)
)

// originWords maps country adjectives and names to region codes. Ordered
// so that detection is deterministic when a query names several regions.
var originWords = []struct {
	word string
	code string
}{
	{"japanese", "JP"}, {"japan", "JP"},
	{"german", "DE"}, {"germany", "DE"},
	{"chinese", "CN"}, {"china", "CN"},
	{"korean", "KR"}, {"korea", "KR"},
	{"american", "US"}, {"usa", "US"}, {"america", "US"},
	{"indian", "IN"}, {"india", "IN"},
	{"taiwanese", "TW"}, {"taiwan", "TW"},
	{"turkish", "TR"}, {"turkey", "TR"},
	{"european", "EU"}, {"europe", "EU"},
	{"emirati", "AE"}, {"uae", "AE"},
	{"thai", "TH"}, {"thailand", "TH"},
}

func originCode(word string) (string, bool) {
	for _, ow := range originWords {
		if ow.word == word {
			return ow.code, true
		}
	}
	return "", false
}

func extractExclusions(q string, it *intent.Intent) {
	for _, m := range excludeRe.FindAllStringSubmatch(q, -1) {
		noun := strings.TrimSpace(m[1])
		if code, ok := originCode(noun); ok {
			it.ExcludeOrigins = appendUnique(it.ExcludeOrigins, code)
			continue
		}
		// Multi-word capture: try the whole phrase, then each word.
		if brand := resolveBrand(noun); brand != "" {
			it.ExcludeBrands = appendUnique(it.ExcludeBrands, brand)
			continue
		}
		for _, w := range strings.Fields(noun) {
			if code, ok := originCode(w); ok {
				it.ExcludeOrigins = appendUnique(it.ExcludeOrigins, code)
			} else if brand := resolveBrand(w); brand != "" {
				it.ExcludeBrands = appendUnique(it.ExcludeBrands, brand)
			}
		}
	}
}

func extractOrigin(q string, it *intent.Intent) {
	// Bare origin adjectives ("japanese brake pads") set the supplier
	// origin unless the same word was claimed by an exclusion.
	for _, ow := range originWords {
		if !containsWord(q, ow.word) {
			continue
		}
		if excluded(it.ExcludeOrigins, ow.code) {
			continue
		}
		it.SupplierOrigin = ow.code
		return
	}
	if m := originFromRe.FindStringSubmatch(q); m != nil {
		if code, ok := originCode(m[1]); ok && !excluded(it.ExcludeOrigins, code) {
			it.SupplierOrigin = code
		}
	}
}

func extractCondition(q string, it *intent.Intent) {
	switch {
	case usedRe.MatchString(q):
		it.Condition = intent.ConditionUsed
	case newRe.MatchString(q):
		it.Condition = intent.ConditionNew
	}
}

func extractVehicleYear(q string, it *intent.Intent) {
	if m := yearRangeRe.FindStringSubmatch(q); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo > hi {
			lo, hi = hi, lo
		}
		it.VehicleYearMin, it.VehicleYearMax = &lo, &hi
		return
	}
	for _, idx := range yearRe.FindAllStringSubmatchIndex(q, -1) {
		// A 4-digit number after a price word or a currency sign is an
		// amount, not a model year ("under 2000").
		if precededByAmountContext(q, idx[2]) {
			continue
		}
		y, _ := strconv.Atoi(q[idx[2]:idx[3]])
		it.VehicleYear = &y
		return
	}
}

var amountContextWords = map[string]bool{
	"under": true, "over": true, "below": true, "above": true, "than": true,
	"least": true, "max": true, "maximum": true, "min": true, "minimum": true,
	"budget": true, "within": true, "to": true, "around": true, "about": true,
	"need": true, "qty": true,
}

func precededByAmountContext(q string, start int) bool {
	before := strings.TrimRight(q[:start], " ")
	if strings.HasSuffix(before, "$") || strings.HasSuffix(before, "€") ||
		strings.HasSuffix(before, "£") || strings.HasSuffix(before, "¥") {
		return true
	}
	fields := strings.Fields(before)
	if len(fields) == 0 {
		return false
	}
	return amountContextWords[fields[len(fields)-1]]
}

func extractFuelType(q string, it *intent.Intent) {
	if m := fuelRe.FindStringSubmatch(q); m != nil {
		fuel := m[1]
		if fuel == "gasoline" {
			fuel = "petrol"
		}
		it.FuelType = fuel
	}
}

func extractModes(q string, it *intent.Intent) {
	it.CompareMode = compareRe.MatchString(q)
	it.FindAlternatives = altRe.MatchString(q)
}

func appendUnique(s []string, v string) []string {
	for _, e := range s {
		if e == v {
			return s
		}
	}
	return append(s, v)
}

func excluded(origins []string, code string) bool {
	for _, o := range origins {
		if o == code {
			return true
		}
	}
	return false
}
