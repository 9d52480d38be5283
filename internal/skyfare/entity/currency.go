package entity

import "strings"

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyMDL Currency = "MDL"
)

// Currencies lists the supported display currencies, base first.
func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR, CurrencyMDL}
}

// ParseCurrency normalizes s to a supported currency. The second value
// reports whether s named one; callers fall back to USD when it did not.
func ParseCurrency(s string) (Currency, bool) {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case CurrencyUSD:
		return CurrencyUSD, true
	case CurrencyEUR:
		return CurrencyEUR, true
	case CurrencyMDL:
		return CurrencyMDL, true
	default:
		return CurrencyUSD, false
	}
}
