package extract

import (
	"regexp"

	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/sortpref"
)

// Typo-tolerant criterion stems. "delivery" and "price" get misspelled
// constantly in commerce queries, so the sort patterns accept the common
// variants directly.
const (
	priceWord    = `(?:price|pric|prise|cost)`
	deliveryWord = `(?:delivery|deliveri|delivry|delviery|shipping)`
	qtyWord      = `(?:qty|quantity|amount)`
	stockWord    = `(?:stock|availability)`
	weightWord   = `(?:weight)`
	qualityWord  = `(?:quality)`
)

type sortRule struct {
	re   *regexp.Regexp
	pref sortpref.Preference
}

// sortRules is ordered: composites first so "price and delivery" is not
// claimed by the single-criterion "by price" pattern, then superlatives,
// then "by <criterion>" phrasings. First match wins.
var sortRules = []sortRule{
	// Two-criterion conjunctions.
	{regexp.MustCompile(priceWord + `\s+and\s+` + deliveryWord), sortpref.PriceAndDelivery},
	{regexp.MustCompile(deliveryWord + `\s+and\s+` + priceWord), sortpref.PriceAndDelivery},
	{regexp.MustCompile(priceWord + `\s+and\s+` + qtyWord), sortpref.PriceAndQty},
	{regexp.MustCompile(qtyWord + `\s+and\s+` + priceWord), sortpref.PriceAndQty},
	{regexp.MustCompile(deliveryWord + `\s+and\s+` + qtyWord), sortpref.DeliveryAndQty},
	{regexp.MustCompile(qtyWord + `\s+and\s+` + deliveryWord), sortpref.DeliveryAndQty},
	{regexp.MustCompile(priceWord + `\s+and\s+` + stockWord), sortpref.PriceAndStock},
	{regexp.MustCompile(stockWord + `\s+and\s+` + priceWord), sortpref.PriceAndStock},

	// Superlatives.
	{regexp.MustCompile(`\bcheapest\b|\blowest ` + priceWord + `\b`), sortpref.PriceAsc},
	{regexp.MustCompile(`\bmost expensive\b|\bhighest ` + priceWord + `\b`), sortpref.PriceDesc},
	{regexp.MustCompile(`\b(?:fastest|quickest|soonest)(?: ` + deliveryWord + `)?\b`), sortpref.DeliveryAsc},
	{regexp.MustCompile(`\b(?:most|highest|largest) (?:stock|` + qtyWord + `)\b`), sortpref.QuantityDesc},
	{regexp.MustCompile(`\b(?:least|lowest|smallest) (?:stock|` + qtyWord + `)\b`), sortpref.QuantityAsc},
	{regexp.MustCompile(`\blightest\b`), sortpref.WeightAsc},
	{regexp.MustCompile(`\bbest quality\b|\bhighest quality\b`), sortpref.QualityDesc},
	{regexp.MustCompile(`\bstock priority\b|\bprioritize stock\b|\bprioritise stock\b`), sortpref.StockPriority},

	// "based on X" / "sort by X" / "by X" phrasings.
	{byCriterion(priceWord), sortpref.PriceAsc},
	{byCriterion(deliveryWord), sortpref.DeliveryAsc},
	{byCriterion(qtyWord), sortpref.QuantityDesc},
	{byCriterion(stockWord), sortpref.StockPriority},
	{byCriterion(weightWord), sortpref.WeightAsc},
	{byCriterion(qualityWord), sortpref.QualityDesc},
}

func byCriterion(word string) *regexp.Regexp {
	return regexp.MustCompile(`\b(?:based on|sort(?:ed)? by|order(?:ed)? by|by)\s+` + word + `\b`)
}

// extractSort sets SortPreference from the first matching rule. The
// qualitative price family may have set price_asc already ("cheap"); an
// explicit sort phrase overrides that, so this family runs first in the
// extractor.
func extractSort(q string, it *intent.Intent) {
	for _, r := range sortRules {
		if r.re.MatchString(q) {
			it.SortPreference = r.pref
			return
		}
	}
}
