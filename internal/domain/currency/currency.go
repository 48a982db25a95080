package currency

// Code is an ISO-like currency code.
type Code string

// Supported currency codes. AED is the storage currency: every inventory
// record carries an AED price, so price filters are converted to AED before
// comparison.
const (
	AED Code = "AED"
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	SAR Code = "SAR"
	CNY Code = "CNY"
	JPY Code = "JPY"
	INR Code = "INR"
	RUB Code = "RUB"
	TRY Code = "TRY"
	KRW Code = "KRW"
)

// Storage is the currency inventory prices are stored in.
const Storage = AED

// toAED is the fixed conversion table: 1 unit of the code in AED.
var toAED = map[Code]float64{
	AED: 1,
	USD: 3.67,
	EUR: 4.00,
	GBP: 4.65,
	SAR: 0.98,
	CNY: 0.51,
	JPY: 0.025,
	INR: 0.044,
	RUB: 0.041,
	TRY: 0.11,
	KRW: 0.0027,
}

// IsValid checks if the code is in the conversion table.
func (c Code) IsValid() bool {
	_, ok := toAED[c]
	return ok
}

// ToStorage converts an amount in this currency to the storage currency.
// Unknown codes are treated as already being in the storage currency.
func (c Code) ToStorage(amount float64) float64 {
	rate, ok := toAED[c]
	if !ok {
		return amount
	}
	return amount * rate
}

// FromStorage converts a storage-currency amount into this currency.
func (c Code) FromStorage(amount float64) float64 {
	rate, ok := toAED[c]
	if !ok || rate == 0 {
		return amount
	}
	return amount / rate
}
