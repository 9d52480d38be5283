package usecase

import (
	"context"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgerror"
	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
)

type CurrencyRate struct {
	Code   entity.Currency
	Symbol string
	Rate   float64
}

type CurrencyOutput struct {
	Selected entity.Currency
	Rates    []CurrencyRate
}

// Currency reports the selected display currency and the full rate
// table.
func (u *Usecase) Currency(_ context.Context) *CurrencyOutput {
	return u.currencyOutput()
}

// SetCurrency switches the display currency. The choice persists
// across restarts.
func (u *Usecase) SetCurrency(_ context.Context, code string) (*CurrencyOutput, error) {
	currency, ok := entity.ParseCurrency(code)
	if !ok {
		return nil, pkgerror.NewBusiness("unsupported currency code", pkgerror.CodeInvalidInput)
	}

	u.store.SetCurrency(currency)
	return u.currencyOutput(), nil
}

func (u *Usecase) currencyOutput() *CurrencyOutput {
	codes := entity.Currencies()
	rates := make([]CurrencyRate, 0, len(codes))
	for _, code := range codes {
		rates = append(rates, CurrencyRate{
			Code:   code,
			Symbol: u.converter.Symbol(code),
			Rate:   u.converter.Rate(code),
		})
	}
	return &CurrencyOutput{Selected: u.store.Currency(), Rates: rates}
}
