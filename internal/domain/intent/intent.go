package intent

import (
	"github.com/partdex/partdex/internal/domain/currency"
	"github.com/partdex/partdex/internal/domain/lang"
	"github.com/partdex/partdex/internal/domain/sortpref"
)

// Confidence is the parser's confidence in the extracted intent.
type Confidence string

// Confidence levels.
const (
	High   Confidence = "HIGH"
	Medium Confidence = "MEDIUM"
	Low    Confidence = "LOW"
)

// IsValid checks if the confidence is one of the supported values.
func (c Confidence) IsValid() bool {
	return c == High || c == Medium || c == Low
}

// Condition is the requested part condition. Empty means no preference.
type Condition string

// Condition constants.
const (
	ConditionAny  Condition = ""
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

// IsValid checks if the condition is one of the supported values.
func (c Condition) IsValid() bool {
	return c == ConditionAny || c == ConditionNew || c == ConditionUsed
}

// Intent is the structured interpretation of a free-text parts query.
// It is always structurally complete: every slice is non-nil and every
// enum carries a valid value, no matter how malformed the input was.
// Callers must treat a returned Intent as immutable.
//
// RequestedQuantity and TopN answer different questions and are never
// derived from each other: RequestedQuantity is the minimum stock the
// buyer needs per part, TopN is how many distinct result rows to show.
type Intent struct {
	SearchKeywords []string `json:"searchKeywords"`
	PartNumbers    []string `json:"partNumbers"`

	// VehicleBrand is what the part fits; PartsBrands is who made it.
	// A single token never populates both.
	VehicleBrand string   `json:"vehicleBrand,omitempty"`
	PartsBrands  []string `json:"partsBrands"`
	Categories   []string `json:"categories"`

	MaxPrice      *float64      `json:"maxPrice,omitempty"`
	MinPrice      *float64      `json:"minPrice,omitempty"`
	PriceCurrency currency.Code `json:"priceCurrency"`

	RequireInStock   bool `json:"requireInStock"`
	RequireHighStock bool `json:"requireHighStock"`

	FastDelivery    bool `json:"fastDelivery"`
	MaxDeliveryDays *int `json:"maxDeliveryDays,omitempty"`

	OEM               bool `json:"oem"`
	Aftermarket       bool `json:"aftermarket"`
	PremiumQuality    bool `json:"premiumQuality"`
	RequireWarranty   bool `json:"requireWarranty"`
	CertifiedSupplier bool `json:"certifiedSupplier"`

	RequestedQuantity *int `json:"requestedQuantity,omitempty"`
	TopN              *int `json:"topN,omitempty"`

	ExcludeBrands  []string `json:"excludeBrands"`
	ExcludeOrigins []string `json:"excludeOrigins"`
	SupplierOrigin string   `json:"supplierOrigin,omitempty"`

	CompareMode      bool `json:"compareMode"`
	FindAlternatives bool `json:"findAlternatives"`

	VehicleYear    *int `json:"vehicleYear,omitempty"`
	VehicleYearMin *int `json:"vehicleYearMin,omitempty"`
	VehicleYearMax *int `json:"vehicleYearMax,omitempty"`

	Condition Condition `json:"condition,omitempty"`
	FuelType  string    `json:"fuelType,omitempty"`

	SortPreference sortpref.Preference `json:"sortPreference,omitempty"`

	Language   lang.Code  `json:"language"`
	Confidence Confidence `json:"confidence"`
	Summary    string     `json:"summary"`
}

// New returns a structurally complete Intent with defaults applied.
func New() Intent {
	return Intent{
		SearchKeywords: []string{},
		PartNumbers:    []string{},
		PartsBrands:    []string{},
		Categories:     []string{},
		ExcludeBrands:  []string{},
		ExcludeOrigins: []string{},
		PriceCurrency:  currency.USD,
		Language:       lang.English,
		Confidence:     Medium,
	}
}

// HasPriceFilter reports whether any price boundary is set.
func (it *Intent) HasPriceFilter() bool {
	return it.MaxPrice != nil || it.MinPrice != nil
}

// SignalCount counts populated non-keyword fields. Used for confidence
// grading: many independent signals mean the query was understood well.
func (it *Intent) SignalCount() int {
	n := 0
	if len(it.PartNumbers) > 0 {
		n++
	}
	if it.VehicleBrand != "" {
		n++
	}
	if len(it.PartsBrands) > 0 {
		n++
	}
	if len(it.Categories) > 0 {
		n++
	}
	if it.HasPriceFilter() {
		n++
	}
	if it.RequireInStock || it.RequireHighStock {
		n++
	}
	if it.FastDelivery || it.MaxDeliveryDays != nil {
		n++
	}
	if it.OEM || it.Aftermarket || it.PremiumQuality || it.RequireWarranty || it.CertifiedSupplier {
		n++
	}
	if it.RequestedQuantity != nil {
		n++
	}
	if it.TopN != nil {
		n++
	}
	if len(it.ExcludeBrands) > 0 || len(it.ExcludeOrigins) > 0 {
		n++
	}
	if it.SortPreference != sortpref.None {
		n++
	}
	if it.Condition != ConditionAny {
		n++
	}
	if it.VehicleYear != nil || it.VehicleYearMin != nil {
		n++
	}
	return n
}
