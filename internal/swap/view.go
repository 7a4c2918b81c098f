package swap

import (
	"fxswap/internal/adapters"
	"fxswap/internal/domain"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

type QuoteView struct {
	From             domain.Code
	To               domain.Code
	Rate             float64
	AmountIn         decimal.Decimal
	AmountOut        decimal.Decimal
	AmountInDisplay  string
	AmountOutDisplay string
}

type RateView struct {
	From  domain.Code
	To    domain.Code
	Value float64
}

type CurrencyView struct {
	Code    domain.Code
	IconURL string
}

// Formatter renders amounts as grouped two-decimal money strings, memoized
// per (code, minor units) in the format cache.
type Formatter struct {
	cache adapters.FormatCache
	money accounting.Accounting
}

func NewFormatter(cache adapters.FormatCache) *Formatter {
	return &Formatter{
		cache: cache,
		money: accounting.Accounting{Symbol: "", Precision: 2},
	}
}

func (f *Formatter) Format(code domain.Code, amount decimal.Decimal) string {
	minor := amount.Round(2).Shift(2).IntPart()
	if s, ok := f.cache.Get(code, minor); ok {
		return s
	}
	formatted := f.money.FormatMoney(amount.InexactFloat64())
	f.cache.Set(code, minor, formatted)
	return formatted
}
