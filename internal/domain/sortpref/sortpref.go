package sortpref

// Preference is the requested result ordering. The zero value means the
// caller has no explicit preference and composite scoring decides.
type Preference string

// Sort preference constants. The two-factor values come from queries that
// name a pair of criteria ("price and delivery").
const (
	None             Preference = ""
	PriceAsc         Preference = "price_asc"
	PriceDesc        Preference = "price_desc"
	QuantityAsc      Preference = "quantity_asc"
	QuantityDesc     Preference = "quantity_desc"
	StockPriority    Preference = "stock_priority"
	DeliveryAsc      Preference = "delivery_asc"
	WeightAsc        Preference = "weight_asc"
	QualityDesc      Preference = "quality_desc"
	PriceAndDelivery Preference = "price_and_delivery"
	PriceAndQty      Preference = "price_and_qty"
	DeliveryAndQty   Preference = "delivery_and_qty"
	PriceAndStock    Preference = "price_and_stock"
)

// IsValid checks if the preference is one of the supported values.
// None is valid: it defers ordering to composite scoring.
func (p Preference) IsValid() bool {
	switch p {
	case None, PriceAsc, PriceDesc, QuantityAsc, QuantityDesc, StockPriority,
		DeliveryAsc, WeightAsc, QualityDesc,
		PriceAndDelivery, PriceAndQty, DeliveryAndQty, PriceAndStock:
		return true
	}
	return false
}

// Describe returns a human-readable form for intent summaries.
func (p Preference) Describe() string {
	switch p {
	case PriceAsc:
		return "price (lowest first)"
	case PriceDesc:
		return "price (highest first)"
	case QuantityAsc:
		return "quantity (lowest first)"
	case QuantityDesc:
		return "quantity (highest first)"
	case StockPriority:
		return "stock availability"
	case DeliveryAsc:
		return "fastest delivery"
	case WeightAsc:
		return "lightest first"
	case QualityDesc:
		return "quality"
	case PriceAndDelivery:
		return "price and delivery"
	case PriceAndQty:
		return "price and quantity"
	case DeliveryAndQty:
		return "delivery and quantity"
	case PriceAndStock:
		return "price and stock"
	default:
		return "composite score"
	}
}
