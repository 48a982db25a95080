package openai

import (
	"encoding/json"
	"strings"

	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/learning"
)

// The system prompt teaches the model the same rule taxonomy the local
// parser uses, so the two interpretations agree wherever the rules are
// unambiguous and the model only adds recall on top.
const promptHeader = `You are a parts-search query analyst. Read the buyer query and return ONE JSON object describing the purchase intent. Return only JSON, no prose, no code fences.

Fields (omit what the query does not state):
- searchKeywords: free-text matching words, lowercase, no filler
- partNumbers: alphanumeric part codes, uppercase
- vehicleBrand: the vehicle make the part fits (uppercase), never a parts manufacturer
- partsBrands: parts manufacturer names (uppercase), never vehicle makes
- categories: part type tags (brake, filter, ignition, suspension, belt, cooling, fuel, engine, bearing, clutch, lighting, body, wiper, ac, steering, exhaust, battery, tire, electrical, transmission)
- maxPrice, minPrice: numeric bounds; "cheap" means maxPrice 100, "expensive" means minPrice 500, "around X" means a band of X plus or minus 30 percent
- priceCurrency: ISO code, default USD
- requireInStock, requireHighStock, fastDelivery, oem, aftermarket, premiumQuality, requireWarranty, certifiedSupplier: booleans
- maxDeliveryDays: integer day count if stated
- topN: how many result rows to show, integer 2..50, only for phrases like "top 5" or "best 3 options"
- requestedQuantity: how many units the buyer needs, only for phrases like "need 50 units" or "qty: 20"; never copy topN here and never copy requestedQuantity into topN
- excludeBrands, excludeOrigins: what the buyer rules out; origins are ISO country codes
- supplierOrigin: preferred origin country code
- condition: "new" or "used"
- vehicleYear, vehicleYearMin, vehicleYearMax: model year constraints
- fuelType: diesel, petrol, electric, hybrid, lpg or cng
- sortPreference: one of price_asc, price_desc, quantity_asc, quantity_desc, stock_priority, delivery_asc, weight_asc, quality_desc, price_and_delivery, price_and_qty, delivery_and_qty, price_and_stock
- confidence: HIGH, MEDIUM or LOW
- summary: one short sentence restating the intent`

// systemPrompt appends learned-context hints when the collaborator has
// prior knowledge about similar queries.
func systemPrompt(learned learning.Context) string {
	if learned.Empty() {
		return promptHeader
	}
	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString("\n\nPrior knowledge from earlier queries like this one:")
	for _, h := range learned.Hints {
		b.WriteString("\n- ")
		b.WriteString(h)
	}
	return b.String()
}

// userPrompt carries the raw query and the local parse so the model can
// correct or extend it rather than start from nothing.
func userPrompt(rawQuery string, local intent.Intent) string {
	var b strings.Builder
	b.WriteString("Query: ")
	b.WriteString(rawQuery)
	if localJSON, err := json.Marshal(local); err == nil {
		b.WriteString("\n\nDeterministic parse of the same query (extend or correct it):\n")
		b.Write(localJSON)
	}
	return b.String()
}
