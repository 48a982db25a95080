package domain

// Part is a single inventory record as produced by supplier price-list
// ingestion. Prices are stored in the storage currency (AED). A zero Price
// means the supplier published no price; a zero DeliveryDays means no
// delivery estimate is known.
type Part struct {
	PartNumber   string   `json:"partNumber"`
	Description  string   `json:"description"`
	Brand        string   `json:"brand"`
	Supplier     string   `json:"supplier"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	Quantity     int64    `json:"quantity"`
	MinOrderQty  int64    `json:"minOrderQty"`
	Stock        string   `json:"stock"`
	StockCode    string   `json:"stockCode"`
	Weight       float64  `json:"weight"`
	WeightUnit   string   `json:"weightUnit"`
	Volume       float64  `json:"volume"`
	DeliveryDays int64    `json:"deliveryDays"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory"`
	Tags         []string `json:"tags,omitempty"`
}
