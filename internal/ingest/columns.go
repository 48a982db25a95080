package ingest

import "strings"

// columnMap holds the resolved column index for each known field, or -1
// when the price list does not carry that column. Headers vary wildly
// between suppliers, so matching is fuzzy and resolved once per file.
type columnMap struct {
	partNumber   int
	description  int
	brand        int
	supplier     int
	price        int
	currency     int
	quantity     int
	minOrderQty  int
	stock        int
	stockCode    int
	weight       int
	weightUnit   int
	volume       int
	deliveryDays int
	category     int
	subcategory  int
}

func newColumnMap() columnMap {
	return columnMap{
		partNumber: -1, description: -1, brand: -1, supplier: -1,
		price: -1, currency: -1, quantity: -1, minOrderQty: -1,
		stock: -1, stockCode: -1, weight: -1, weightUnit: -1,
		volume: -1, deliveryDays: -1, category: -1, subcategory: -1,
	}
}

// mapColumns resolves header names to field indexes. First match wins per
// field; a header claimed by one field is not offered to the next.
func mapColumns(headers []string) columnMap {
	m := newColumnMap()

	for i, h := range headers {
		h = strings.ToLower(strings.Trim(strings.TrimSpace(h), `"'`))

		switch {
		case m.partNumber < 0 && isPartNumberHeader(h):
			m.partNumber = i
		case m.description < 0 && (strings.Contains(h, "title") || strings.Contains(h, "desc") ||
			h == "name" || h == "product name"):
			m.description = i
		case m.brand < 0 && (strings.Contains(h, "brand") || h == "manufacturer" ||
			h == "make" || h == "mfr"):
			m.brand = i
		case m.supplier < 0 && strings.Contains(h, "supplier"):
			m.supplier = i
		case m.price < 0 && (strings.Contains(h, "price") || strings.Contains(h, "cost")):
			m.price = i
		case m.currency < 0 && (strings.Contains(h, "currency") || strings.Contains(h, "curr") ||
			h == "aed" || h == "usd"):
			m.currency = i
		case m.quantity < 0 && (h == "quantity" || h == "qty"):
			m.quantity = i
		case m.minOrderQty < 0 && isMinOrderHeader(h):
			m.minOrderQty = i
		case m.stock < 0 && h == "stock":
			m.stock = i
		case m.stockCode < 0 && (strings.Contains(h, "stock code") || strings.Contains(h, "stock_code") ||
			strings.Contains(h, "stockcode") || h == "warehouse"):
			m.stockCode = i
		case m.weight < 0 && h == "weight":
			m.weight = i
		case m.weightUnit < 0 && (strings.Contains(h, "weight_unit") || strings.Contains(h, "weightunit")):
			m.weightUnit = i
		case m.volume < 0 && (strings.Contains(h, "volume") || h == "vol"):
			m.volume = i
		case m.deliveryDays < 0 && (strings.Contains(h, "delivery") || strings.Contains(h, "lead_time") ||
			strings.Contains(h, "leadtime")):
			m.deliveryDays = i
		case m.category < 0 && (h == "category" || h == "cat"):
			m.category = i
		case m.subcategory < 0 && (strings.Contains(h, "subcategory") || strings.Contains(h, "subcat") ||
			strings.Contains(h, "sub_category")):
			m.subcategory = i
		}
	}

	return m
}

func isPartNumberHeader(h string) bool {
	if strings.Contains(h, "vendor code") || strings.Contains(h, "vendor_code") {
		return true
	}
	switch h {
	case "partnumber", "part number", "part_number", "sku", "code",
		"item number", "item #", "product code", "part #":
		return true
	}
	return false
}

func isMinOrderHeader(h string) bool {
	if strings.Contains(h, "min_lot") || strings.Contains(h, "min lot") ||
		strings.Contains(h, "minorder") || strings.Contains(h, "min_order") {
		return true
	}
	return h == "moq" || h == "minimum order"
}

// field returns the trimmed value at idx, or "" when the column is absent
// or the row is too short.
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.Trim(strings.TrimSpace(row[idx]), `"'`)
}
