package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/partdex/partdex/internal/domain/currency"
	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/sortpref"
)

// Qualitative price defaults, applied only when no explicit number was
// found in the query.
const (
	cheapMaxPrice      = 100
	expensiveMinPrice  = 500
	approxBandFraction = 0.30
)

const num = `(\d+(?:[.,]\d+)?)`

var (
	maxPriceRe = regexp.MustCompile(
		`(?:under|below|less than|cheaper than|max(?:imum)?|up to|within|budget(?: of)?|no more than|not more than)\s*(?:[$€£¥₹]\s*)?` + num)
	minPriceRe = regexp.MustCompile(
		`(?:over|above|more than|min(?:imum)?|at least|starting (?:at|from))\s*(?:[$€£¥₹]\s*)?` + num)
	betweenRe = regexp.MustCompile(
		`between\s*(?:[$€£¥₹]\s*)?` + num + `\s*and\s*(?:[$€£¥₹]\s*)?` + num)
	dashRangeRe = regexp.MustCompile(
		`[$€£¥₹]\s*` + num + `\s*[-–]\s*(?:[$€£¥₹]\s*)?` + num)
	approxRe = regexp.MustCompile(
		`(?:around|about|approx(?:imately)?|roughly|~)\s*(?:[$€£¥₹]\s*)?` + num)
	// Bare "cheap" is a price band; "cheapest" is a sort superlative and
	// is claimed by the sort family instead.
	cheapRe     = regexp.MustCompile(`\b(?:cheap|budget|affordable|inexpensive|low[- ]cost)\b`)
	expensiveRe = regexp.MustCompile(`\b(?:expensive|premium|high[- ]end)\b`)
)

// currencyTokens maps symbols, ISO codes and regional names to a currency
// code. Scanned in declaration order; symbols first because they are
// unambiguous.
var currencyTokens = []struct {
	token string
	code  currency.Code
}{
	{"$", currency.USD}, {"€", currency.EUR}, {"£", currency.GBP},
	{"₹", currency.INR}, {"₽", currency.RUB}, {"₩", currency.KRW}, {"¥", currency.CNY},
	{"usd", currency.USD}, {"eur", currency.EUR}, {"gbp", currency.GBP},
	{"aed", currency.AED}, {"sar", currency.SAR}, {"cny", currency.CNY},
	{"rmb", currency.CNY}, {"jpy", currency.JPY}, {"inr", currency.INR},
	{"rub", currency.RUB}, {"try", currency.TRY}, {"krw", currency.KRW},
	{"dollars", currency.USD}, {"dollar", currency.USD},
	{"euros", currency.EUR}, {"euro", currency.EUR},
	{"pounds", currency.GBP}, {"pound", currency.GBP},
	{"dirhams", currency.AED}, {"dirham", currency.AED},
	{"riyals", currency.SAR}, {"riyal", currency.SAR},
	{"yuan", currency.CNY}, {"yen", currency.JPY},
	{"rupees", currency.INR}, {"rupee", currency.INR},
	{"rubles", currency.RUB}, {"roubles", currency.RUB},
	{"lira", currency.TRY}, {"won", currency.KRW},
}

// extractPrice fills the price fields. First match wins within the
// family: an explicit range beats a one-sided bound, and qualitative words
// apply only when no number was found at all.
func extractPrice(q string, it *intent.Intent) {
	it.PriceCurrency = detectCurrency(q)

	if m := betweenRe.FindStringSubmatch(q); m != nil {
		lo, hi := parseAmount(m[1]), parseAmount(m[2])
		if lo > hi {
			lo, hi = hi, lo
		}
		it.MinPrice, it.MaxPrice = &lo, &hi
		return
	}
	if m := dashRangeRe.FindStringSubmatch(q); m != nil {
		lo, hi := parseAmount(m[1]), parseAmount(m[2])
		if lo > hi {
			lo, hi = hi, lo
		}
		it.MinPrice, it.MaxPrice = &lo, &hi
		return
	}

	if v, ok := findBound(maxPriceRe, q); ok {
		it.MaxPrice = &v
	}
	if v, ok := findBound(minPriceRe, q); ok {
		it.MinPrice = &v
	}
	if it.HasPriceFilter() {
		return
	}

	if m := approxRe.FindStringSubmatch(q); m != nil {
		v := parseAmount(m[1])
		lo := v * (1 - approxBandFraction)
		hi := v * (1 + approxBandFraction)
		it.MinPrice, it.MaxPrice = &lo, &hi
		return
	}

	// Qualitative fallbacks.
	if cheapRe.MatchString(q) {
		v := float64(cheapMaxPrice)
		it.MaxPrice = &v
		if it.SortPreference == sortpref.None {
			it.SortPreference = sortpref.PriceAsc
		}
	} else if expensiveRe.MatchString(q) {
		v := float64(expensiveMinPrice)
		it.MinPrice = &v
	}
}

// findBound returns the first bound amount whose number is not part of a
// delivery phrase ("within 3 days" is a delivery constraint, not a
// three-dollar budget).
func findBound(re *regexp.Regexp, q string) (float64, bool) {
	for _, idx := range re.FindAllStringSubmatchIndex(q, -1) {
		rest := strings.TrimLeft(q[idx[3]:], " ")
		if strings.HasPrefix(rest, "day") || strings.HasPrefix(rest, "unit") ||
			strings.HasPrefix(rest, "pcs") || strings.HasPrefix(rest, "piece") {
			continue
		}
		return parseAmount(q[idx[2]:idx[3]]), true
	}
	return 0, false
}

func detectCurrency(q string) currency.Code {
	for _, ct := range currencyTokens {
		if len(ct.token) == 1 || !isASCIILetterToken(ct.token) {
			if strings.Contains(q, ct.token) {
				return ct.code
			}
			continue
		}
		if containsWord(q, ct.token) {
			return ct.code
		}
	}
	return currency.USD
}

func isASCIILetterToken(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// containsWord is whole-word containment over space-split tokens.
func containsWord(q, w string) bool {
	return strings.Contains(" "+q+" ", " "+w+" ")
}

func parseAmount(s string) float64 {
	s = strings.ReplaceAll(s, ",", ".")
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
