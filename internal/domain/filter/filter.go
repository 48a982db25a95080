// Package filter narrows a candidate part set to the records matching a
// parsed intent. The pipeline is synchronous, deterministic and total: it
// never mutates the input slice and never fails, whatever the records
// carry. Each stage appends a trace entry with before/after counts.
//
// Missing record fields resolve optimistically for price and delivery
// (benefit of the doubt) and conservatively where the filter actively
// requires a field the record lacks (stock, brand match).
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/partdex/partdex/internal/domain"
	"github.com/partdex/partdex/internal/domain/currency"
	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/trace"
)

// highStockThreshold is the unit count that counts as "high stock"; the
// plain in-stock threshold is any positive quantity.
const highStockThreshold = 10

// defaultFastDeliveryDays caps delivery when the query says "fast" without
// naming a day count.
const defaultFastDeliveryDays = 5

// Filter returns the matching subset and the explainability trace. The
// result slice is freshly allocated; candidates are never mutated.
func Filter(candidates []domain.Part, it *intent.Intent) ([]domain.Part, trace.Trace) {
	start := time.Now()

	tr := trace.New(len(candidates))
	matching := make([]domain.Part, len(candidates))
	copy(matching, candidates)

	matching = filterText(matching, it, &tr)
	matching = filterVehicleBrand(matching, it, &tr)
	matching = filterPartsBrands(matching, it, &tr)
	matching = filterPrice(matching, it, &tr)
	matching = filterStock(matching, it, &tr)
	matching = filterDelivery(matching, it, &tr)
	matching = filterExclusions(matching, it, &tr)
	matching = filterQuantity(matching, it, &tr)
	noteTopN(it, &tr)

	tr.Finish(time.Since(start))
	return matching, tr
}

// narrow applies keep to every candidate and records the stage.
func narrow(parts []domain.Part, tr *trace.Trace, name, effect string, keep func(domain.Part) bool) []domain.Part {
	before := len(parts)
	out := parts[:0]
	for _, p := range parts {
		if keep(p) {
			out = append(out, p)
		}
	}
	tr.Record(name, effect, before, len(out))
	return out
}

// filterText is the keyword/category stage. When the intent carries part
// numbers it becomes an exact-code match instead: a code lookup must not
// be narrowed by fuzzy text overlap.
func filterText(parts []domain.Part, it *intent.Intent, tr *trace.Trace) []domain.Part {
	if len(it.PartNumbers) > 0 {
		wanted := make([]string, len(it.PartNumbers))
		for i, pn := range it.PartNumbers {
			wanted[i] = canonicalCode(pn)
		}
		effect := "code in {" + strings.Join(it.PartNumbers, ", ") + "}"
		return narrow(parts, tr, "partNumber", effect, func(p domain.Part) bool {
			code := canonicalCode(p.PartNumber)
			for _, w := range wanted {
				if code == w {
					return true
				}
			}
			return false
		})
	}

	terms := append(append([]string{}, it.SearchKeywords...), it.Categories...)
	if len(terms) == 0 {
		return parts
	}
	effect := "any of {" + strings.Join(terms, ", ") + "}"
	return narrow(parts, tr, "keywords", effect, func(p domain.Part) bool {
		haystack := searchText(p)
		for _, term := range terms {
			if strings.Contains(haystack, strings.ToLower(term)) {
				return true
			}
		}
		return false
	})
}

func filterVehicleBrand(parts []domain.Part, it *intent.Intent, tr *trace.Trace) []domain.Part {
	if it.VehicleBrand == "" {
		return parts
	}
	brand := strings.ToLower(it.VehicleBrand)
	return narrow(parts, tr, "vehicleBrand", "fits "+it.VehicleBrand, func(p domain.Part) bool {
		return strings.Contains(strings.ToLower(p.Brand), brand) ||
			strings.Contains(strings.ToLower(p.Description), brand) ||
			strings.Contains(strings.ToLower(p.Supplier), brand)
	})
}

// filterPartsBrands matches bidirectionally: the record brand may be an
// abbreviation of the query brand or the other way round.
func filterPartsBrands(parts []domain.Part, it *intent.Intent, tr *trace.Trace) []domain.Part {
	if len(it.PartsBrands) == 0 {
		return parts
	}
	effect := "made by {" + strings.Join(it.PartsBrands, ", ") + "}"
	return narrow(parts, tr, "partsBrand", effect, func(p domain.Part) bool {
		recBrand := strings.ToLower(p.Brand)
		if recBrand == "" {
			return false
		}
		for _, b := range it.PartsBrands {
			want := strings.ToLower(b)
			if strings.Contains(recBrand, want) || strings.Contains(want, recBrand) {
				return true
			}
		}
		return false
	})
}

// filterPrice converts the query bounds into the storage currency before
// comparing. Unpriced records pass a max-price filter and fail a min-price
// filter.
func filterPrice(parts []domain.Part, it *intent.Intent, tr *trace.Trace) []domain.Part {
	if it.MaxPrice != nil {
		limit := it.PriceCurrency.ToStorage(*it.MaxPrice)
		effect := fmt.Sprintf("≤ %s (%.0f %s)", amount(*it.MaxPrice, it.PriceCurrency), limit, currency.Storage)
		parts = narrow(parts, tr, "maxPrice", effect, func(p domain.Part) bool {
			return p.Price == 0 || p.Price <= limit
		})
	}
	if it.MinPrice != nil {
		limit := it.PriceCurrency.ToStorage(*it.MinPrice)
		effect := fmt.Sprintf("≥ %s (%.0f %s)", amount(*it.MinPrice, it.PriceCurrency), limit, currency.Storage)
		parts = narrow(parts, tr, "minPrice", effect, func(p domain.Part) bool {
			return p.Price > 0 && p.Price >= limit
		})
	}
	return parts
}

// filterStock applies at most one stock threshold: high stock supersedes
// plain in-stock.
func filterStock(parts []domain.Part, it *intent.Intent, tr *trace.Trace) []domain.Part {
	switch {
	case it.RequireHighStock:
		effect := fmt.Sprintf("quantity ≥ %d", highStockThreshold)
		return narrow(parts, tr, "highStock", effect, func(p domain.Part) bool {
			return p.Quantity >= highStockThreshold
		})
	case it.RequireInStock:
		return narrow(parts, tr, "inStock", "quantity > 0", func(p domain.Part) bool {
			return p.Quantity > 0
		})
	}
	return parts
}

// filterDelivery lets records with no delivery estimate pass through.
func filterDelivery(parts []domain.Part, it *intent.Intent, tr *trace.Trace) []domain.Part {
	maxDays := 0
	switch {
	case it.MaxDeliveryDays != nil:
		maxDays = *it.MaxDeliveryDays
	case it.FastDelivery:
		maxDays = defaultFastDeliveryDays
	default:
		return parts
	}
	effect := fmt.Sprintf("delivery ≤ %d days", maxDays)
	return narrow(parts, tr, "delivery", effect, func(p domain.Part) bool {
		return p.DeliveryDays == 0 || p.DeliveryDays <= int64(maxDays)
	})
}

// filterExclusions removes records whose brand matches an excluded brand.
// Records with no brand pass through.
func filterExclusions(parts []domain.Part, it *intent.Intent, tr *trace.Trace) []domain.Part {
	if len(it.ExcludeBrands) == 0 {
		return parts
	}
	effect := "not made by {" + strings.Join(it.ExcludeBrands, ", ") + "}"
	return narrow(parts, tr, "exclusions", effect, func(p domain.Part) bool {
		recBrand := strings.ToLower(p.Brand)
		if recBrand == "" {
			return true
		}
		for _, b := range it.ExcludeBrands {
			want := strings.ToLower(b)
			if strings.Contains(recBrand, want) || strings.Contains(want, recBrand) {
				return false
			}
		}
		return true
	})
}

// filterQuantity applies the stock minimum only when the buyer named a
// real quantity and no result-count limit is set: a quantity filter and a
// row limit answer different questions and must never interact.
func filterQuantity(parts []domain.Part, it *intent.Intent, tr *trace.Trace) []domain.Part {
	if it.RequestedQuantity == nil || *it.RequestedQuantity <= 1 || it.TopN != nil {
		return parts
	}
	need := int64(*it.RequestedQuantity)
	effect := fmt.Sprintf("quantity ≥ %d", need)
	return narrow(parts, tr, "requestedQuantity", effect, func(p domain.Part) bool {
		return p.Quantity >= need
	})
}

// noteTopN records the row limit without applying it: truncation happens
// after the external ranking step, outside this pipeline.
func noteTopN(it *intent.Intent, tr *trace.Trace) {
	if it.TopN == nil {
		return
	}
	tr.Note("topN", fmt.Sprintf("limit %d rows after ranking", *it.TopN))
}

// searchText concatenates the free-text searchable fields of a record.
func searchText(p domain.Part) string {
	parts := []string{p.Description, p.Category, p.Subcategory, p.PartNumber}
	parts = append(parts, p.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// canonicalCode strips separators for exact part-number comparison, so
// "06A 115 561 B" and "06a-115-561b" compare equal.
func canonicalCode(code string) string {
	var b strings.Builder
	for _, r := range code {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func amount(v float64, code currency.Code) string {
	switch code {
	case currency.USD:
		return fmt.Sprintf("$%.0f USD", v)
	case currency.EUR:
		return fmt.Sprintf("€%.0f EUR", v)
	case currency.GBP:
		return fmt.Sprintf("£%.0f GBP", v)
	default:
		return fmt.Sprintf("%.0f %s", v, code)
	}
}
