package models

// CurrencyType is the closed set of currencies a cart can be paid in
type CurrencyType string

const (
	CurrencyUSD CurrencyType = "USD"
	CurrencyEUR CurrencyType = "EUR"
	CurrencyGBP CurrencyType = "GBP"
)

// Valid reports whether the currency is one of the supported set
func (c CurrencyType) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	}
	return false
}

// PaymentType is the closed set of payment channels for a cart
type PaymentType string

const (
	PaymentTypeOnline  PaymentType = "ONLINE"
	PaymentTypeOffline PaymentType = "OFFLINE"
)

// Valid reports whether the payment type is one of the supported set
func (p PaymentType) Valid() bool {
	switch p {
	case PaymentTypeOnline, PaymentTypeOffline:
		return true
	}
	return false
}
