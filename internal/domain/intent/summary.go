package intent

import (
	"fmt"
	"strings"

	"github.com/partdex/partdex/internal/domain/sortpref"
)

// BuildSummary assembles a human-readable restatement of the intent from
// its populated fields. It never re-parses the query, so the summary is
// always consistent with the structured record. Clause order is fixed to
// keep the output deterministic.
func BuildSummary(it *Intent) string {
	var clauses []string

	switch {
	case len(it.PartNumbers) == 1:
		clauses = append(clauses, fmt.Sprintf("part %s", it.PartNumbers[0]))
	case len(it.PartNumbers) > 1:
		clauses = append(clauses, fmt.Sprintf("parts %s", strings.Join(it.PartNumbers, ", ")))
	case len(it.Categories) > 0:
		clauses = append(clauses, strings.Join(it.Categories, "/")+" parts")
	case len(it.SearchKeywords) > 0:
		clauses = append(clauses, fmt.Sprintf("parts matching %q", strings.Join(it.SearchKeywords, " ")))
	default:
		clauses = append(clauses, "all parts")
	}

	if it.VehicleBrand != "" {
		clauses = append(clauses, "for "+it.VehicleBrand)
	}
	if len(it.PartsBrands) > 0 {
		clauses = append(clauses, "made by "+strings.Join(it.PartsBrands, ", "))
	}
	if it.VehicleYear != nil {
		clauses = append(clauses, fmt.Sprintf("year %d", *it.VehicleYear))
	} else if it.VehicleYearMin != nil && it.VehicleYearMax != nil {
		clauses = append(clauses, fmt.Sprintf("years %d-%d", *it.VehicleYearMin, *it.VehicleYearMax))
	}
	if it.FuelType != "" {
		clauses = append(clauses, it.FuelType)
	}

	if it.MinPrice != nil && it.MaxPrice != nil {
		clauses = append(clauses, fmt.Sprintf("priced %.0f-%.0f %s", *it.MinPrice, *it.MaxPrice, it.PriceCurrency))
	} else if it.MaxPrice != nil {
		clauses = append(clauses, fmt.Sprintf("under %.0f %s", *it.MaxPrice, it.PriceCurrency))
	} else if it.MinPrice != nil {
		clauses = append(clauses, fmt.Sprintf("over %.0f %s", *it.MinPrice, it.PriceCurrency))
	}

	if it.RequireHighStock {
		clauses = append(clauses, "with high stock")
	} else if it.RequireInStock {
		clauses = append(clauses, "in stock")
	}

	if it.MaxDeliveryDays != nil {
		clauses = append(clauses, fmt.Sprintf("delivered within %d days", *it.MaxDeliveryDays))
	} else if it.FastDelivery {
		clauses = append(clauses, "with fast delivery")
	}

	if it.OEM {
		clauses = append(clauses, "OEM")
	}
	if it.Aftermarket {
		clauses = append(clauses, "aftermarket")
	}
	if it.PremiumQuality {
		clauses = append(clauses, "premium quality")
	}
	if it.RequireWarranty {
		clauses = append(clauses, "with warranty")
	}
	if it.CertifiedSupplier {
		clauses = append(clauses, "from certified suppliers")
	}
	if it.Condition == ConditionNew {
		clauses = append(clauses, "new condition")
	} else if it.Condition == ConditionUsed {
		clauses = append(clauses, "used condition")
	}

	if it.SupplierOrigin != "" {
		clauses = append(clauses, "origin "+it.SupplierOrigin)
	}
	if len(it.ExcludeBrands) > 0 {
		clauses = append(clauses, "excluding "+strings.Join(it.ExcludeBrands, ", "))
	}
	if len(it.ExcludeOrigins) > 0 {
		clauses = append(clauses, "excluding origin "+strings.Join(it.ExcludeOrigins, ", "))
	}

	if it.RequestedQuantity != nil {
		clauses = append(clauses, fmt.Sprintf("need %d units", *it.RequestedQuantity))
	}
	if it.TopN != nil {
		clauses = append(clauses, fmt.Sprintf("top %d results", *it.TopN))
	}
	if it.SortPreference != sortpref.None {
		clauses = append(clauses, "sorted by "+it.SortPreference.Describe())
	}
	if it.CompareMode {
		clauses = append(clauses, "compare mode")
	}
	if it.FindAlternatives {
		clauses = append(clauses, "including alternatives")
	}

	return strings.Join(clauses, ", ")
}
