// Package currency renders fixed-price amounts in the selected display
// currency. Rates are constants relative to USD; there is no live
// fetching.
package currency

import (
	"math"
	"strconv"

	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
)

type Converter struct {
	rates   map[entity.Currency]float64
	symbols map[entity.Currency]string
}

func NewConverter() *Converter {
	return &Converter{
		rates: map[entity.Currency]float64{
			entity.CurrencyUSD: 1,
			entity.CurrencyEUR: 0.93,
			entity.CurrencyMDL: 17.8,
		},
		symbols: map[entity.Currency]string{
			entity.CurrencyUSD: "$",
			entity.CurrencyEUR: "€",
			entity.CurrencyMDL: "L",
		},
	}
}

// Convert formats amount (base currency units) as a display string in
// the target currency: symbol plus the grouped, rounded value. Unknown
// codes render as USD.
func (c *Converter) Convert(amount int, target entity.Currency) string {
	rate, ok := c.rates[target]
	if !ok {
		target = entity.CurrencyUSD
		rate = c.rates[target]
	}
	converted := int(math.Round(float64(amount) * rate))
	return c.symbols[target] + groupThousands(converted)
}

func (c *Converter) Rate(target entity.Currency) float64 {
	if rate, ok := c.rates[target]; ok {
		return rate
	}
	return c.rates[entity.CurrencyUSD]
}

func (c *Converter) Symbol(target entity.Currency) string {
	if symbol, ok := c.symbols[target]; ok {
		return symbol
	}
	return c.symbols[entity.CurrencyUSD]
}

func groupThousands(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	value := strconv.Itoa(amount)
	for i := len(value) - 3; i > 0; i -= 3 {
		value = value[:i] + "," + value[i:]
	}
	if negative {
		return "-" + value
	}
	return value
}
