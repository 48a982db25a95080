package query

import (
	"strings"

	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/sortpref"
)

// mergeIntents folds an enhancer result into the local parse. The policy
// is deterministic and local-first: the local parser is cheap, instant and
// exhaustively tested, so the enhancer only adds recall and never
// overrides a field the local parser populated.
func mergeIntents(local intent.Intent, enhanced *intent.Intent) intent.Intent {
	out := local
	if enhanced == nil {
		clearQuantityClash(&out)
		return out
	}

	out.SearchKeywords = unionFold(out.SearchKeywords, enhanced.SearchKeywords, strings.ToLower)
	out.PartNumbers = unionFold(out.PartNumbers, enhanced.PartNumbers, strings.ToUpper)
	out.PartsBrands = unionFold(out.PartsBrands, enhanced.PartsBrands, strings.ToUpper)
	out.Categories = unionFold(out.Categories, enhanced.Categories, strings.ToLower)
	out.ExcludeBrands = unionFold(out.ExcludeBrands, enhanced.ExcludeBrands, strings.ToUpper)
	out.ExcludeOrigins = unionFold(out.ExcludeOrigins, enhanced.ExcludeOrigins, strings.ToUpper)

	if out.VehicleBrand == "" && enhanced.VehicleBrand != "" {
		out.VehicleBrand = strings.ToUpper(enhanced.VehicleBrand)
	}

	// Price bounds fill only when the local parse found no price at all,
	// so the enhancer cannot move a bound the user stated explicitly.
	if !local.HasPriceFilter() && enhanced.HasPriceFilter() {
		out.MinPrice = enhanced.MinPrice
		out.MaxPrice = enhanced.MaxPrice
		if enhanced.PriceCurrency.IsValid() {
			out.PriceCurrency = enhanced.PriceCurrency
		}
	}

	out.RequireInStock = out.RequireInStock || enhanced.RequireInStock
	out.RequireHighStock = out.RequireHighStock || enhanced.RequireHighStock
	out.FastDelivery = out.FastDelivery || enhanced.FastDelivery
	out.OEM = out.OEM || enhanced.OEM
	out.Aftermarket = out.Aftermarket || enhanced.Aftermarket
	out.PremiumQuality = out.PremiumQuality || enhanced.PremiumQuality
	out.RequireWarranty = out.RequireWarranty || enhanced.RequireWarranty
	out.CertifiedSupplier = out.CertifiedSupplier || enhanced.CertifiedSupplier
	out.CompareMode = out.CompareMode || enhanced.CompareMode
	out.FindAlternatives = out.FindAlternatives || enhanced.FindAlternatives

	if out.MaxDeliveryDays == nil {
		out.MaxDeliveryDays = enhanced.MaxDeliveryDays
	}
	if out.RequestedQuantity == nil {
		out.RequestedQuantity = enhanced.RequestedQuantity
	}
	if out.TopN == nil && enhanced.TopN != nil && *enhanced.TopN >= 2 {
		out.TopN = enhanced.TopN
	}

	if out.SupplierOrigin == "" {
		out.SupplierOrigin = strings.ToUpper(enhanced.SupplierOrigin)
	}
	if out.Condition == intent.ConditionAny && enhanced.Condition.IsValid() {
		out.Condition = enhanced.Condition
	}
	if out.FuelType == "" {
		out.FuelType = enhanced.FuelType
	}
	if out.VehicleYear == nil {
		out.VehicleYear = enhanced.VehicleYear
	}
	if out.VehicleYearMin == nil {
		out.VehicleYearMin = enhanced.VehicleYearMin
		out.VehicleYearMax = enhanced.VehicleYearMax
	}
	if out.SortPreference == sortpref.None && enhanced.SortPreference.IsValid() {
		out.SortPreference = enhanced.SortPreference
	}

	if len(enhanced.Summary) > len(out.Summary) {
		out.Summary = enhanced.Summary
	}
	if enhanced.Confidence.IsValid() {
		out.Confidence = enhanced.Confidence
	}

	clearQuantityClash(&out)
	return out
}

// clearQuantityClash enforces topN/requestedQuantity disjointness: equal
// values mean one of them echoed the other, and the result-count reading
// wins.
func clearQuantityClash(it *intent.Intent) {
	if it.TopN != nil && it.RequestedQuantity != nil && *it.TopN == *it.RequestedQuantity {
		it.RequestedQuantity = nil
	}
}

// unionFold unions b into a under the fold function, preserving the order
// of first appearance.
func unionFold(a, b []string, fold func(string) string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, lst := range [][]string{a, b} {
		for _, v := range lst {
			v = fold(strings.TrimSpace(v))
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
