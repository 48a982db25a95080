package parts

import (
	"strconv"
	"strings"

	"github.com/partdex/partdex/internal/domain"
)

// toFields converts a domain Part into a flat map[string]string for HSET.
// Zero-valued optionals (price, delivery estimate, weight) are stored as
// empty-field omissions.
func toFields(p *domain.Part) map[string]string {
	m := map[string]string{
		"partNumber":  p.PartNumber,
		"description": p.Description,
		"quantity":    strconv.FormatInt(p.Quantity, 10),
	}
	setIf(m, "brand", p.Brand)
	setIf(m, "supplier", p.Supplier)
	setIf(m, "currency", p.Currency)
	setIf(m, "stock", p.Stock)
	setIf(m, "stockCode", p.StockCode)
	setIf(m, "weightUnit", p.WeightUnit)
	setIf(m, "category", p.Category)
	setIf(m, "subcategory", p.Subcategory)
	if p.Price > 0 {
		m["price"] = strconv.FormatFloat(p.Price, 'f', -1, 64)
	}
	if p.MinOrderQty > 0 {
		m["minOrderQty"] = strconv.FormatInt(p.MinOrderQty, 10)
	}
	if p.Weight > 0 {
		m["weight"] = strconv.FormatFloat(p.Weight, 'f', -1, 64)
	}
	if p.Volume > 0 {
		m["volume"] = strconv.FormatFloat(p.Volume, 'f', -1, 64)
	}
	if p.DeliveryDays > 0 {
		m["deliveryDays"] = strconv.FormatInt(p.DeliveryDays, 10)
	}
	if len(p.Tags) > 0 {
		m["tags"] = strings.Join(p.Tags, ",")
	}
	return m
}

// fromFields converts a flat hash map back into a domain Part. Malformed
// numeric fields resolve to zero, the "unknown" value for the pipeline.
func fromFields(m map[string]string) domain.Part {
	p := domain.Part{
		PartNumber:   m["partNumber"],
		Description:  m["description"],
		Brand:        m["brand"],
		Supplier:     m["supplier"],
		Currency:     m["currency"],
		Stock:        m["stock"],
		StockCode:    m["stockCode"],
		WeightUnit:   m["weightUnit"],
		Category:     m["category"],
		Subcategory:  m["subcategory"],
		Price:        parseFloat(m["price"]),
		Weight:       parseFloat(m["weight"]),
		Volume:       parseFloat(m["volume"]),
		Quantity:     parseInt(m["quantity"]),
		MinOrderQty:  parseInt(m["minOrderQty"]),
		DeliveryDays: parseInt(m["deliveryDays"]),
	}
	if tags := m["tags"]; tags != "" {
		p.Tags = strings.Split(tags, ",")
	}
	return p
}

func setIf(m map[string]string, key, val string) {
	if val != "" {
		m[key] = val
	}
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
