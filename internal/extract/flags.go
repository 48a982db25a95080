package extract

import (
	"regexp"
	"strconv"

	"github.com/partdex/partdex/internal/domain/intent"
)

// Stock, delivery and quality boolean families. Each writes its own field;
// high-stock implies in-stock.
var (
	inStockRe = regexp.MustCompile(
		`\b(?:in[- ]stock|in stock|available(?: now)?|availability|ready stock|on hand)\b`)
	highStockRe = regexp.MustCompile(
		`\b(?:high stock|plenty(?: of stock| in stock)?|good stock|large stock|well[- ]stocked|lots of stock)\b`)

	fastDeliveryRe = regexp.MustCompile(
		`\b(?:fast|quick|express|urgent|speedy|rapid)(?:[- ](?:delivery|shipping))?\b|\basap\b|\bimmediately\b`)
	deliveryDaysRe = regexp.MustCompile(
		`\b(?:within|in|deliver(?:y|ed)?(?: in| within)?)\s+(\d{1,2})\s*days?\b`)
	daysDeliveryRe = regexp.MustCompile(
		`\b(\d{1,2})[- ]day (?:delivery|shipping)\b`)

	oemRe = regexp.MustCompile(
		`\b(?:oem|original|genuine|factory)\b`)
	aftermarketRe = regexp.MustCompile(
		`\b(?:aftermarket|non[- ]oem|compatible|copy)\b`)
	premiumRe = regexp.MustCompile(
		`\b(?:premium|high quality|top quality|best quality)\b`)
	warrantyRe = regexp.MustCompile(
		`\b(?:warranty|warrantied|guaranteed?|with guarantee)\b`)
	certifiedRe = regexp.MustCompile(
		`\b(?:certified|verified|trusted|authorized|authorised)(?: suppliers?| dealers?| sellers?)?\b`)
)

func extractStock(q string, it *intent.Intent) {
	if highStockRe.MatchString(q) {
		it.RequireHighStock = true
		it.RequireInStock = true
		return
	}
	if inStockRe.MatchString(q) {
		it.RequireInStock = true
	}
}

func extractDelivery(q string, it *intent.Intent) {
	for _, re := range []*regexp.Regexp{deliveryDaysRe, daysDeliveryRe} {
		if m := re.FindStringSubmatch(q); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 0 {
				it.MaxDeliveryDays = &n
				it.FastDelivery = true
				return
			}
		}
	}
	if fastDeliveryRe.MatchString(q) {
		it.FastDelivery = true
	}
}

func extractQuality(q string, it *intent.Intent) {
	it.OEM = oemRe.MatchString(q)
	it.Aftermarket = aftermarketRe.MatchString(q)
	it.PremiumQuality = premiumRe.MatchString(q)
	it.RequireWarranty = warrantyRe.MatchString(q)
	it.CertifiedSupplier = certifiedRe.MatchString(q)
}
