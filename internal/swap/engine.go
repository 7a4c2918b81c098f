package swap

import (
	"fxswap/internal/domain"
	"fxswap/internal/rates"

	"github.com/shopspring/decimal"
)

// Quote is the outcome of one conversion through a fixed rate table.
type Quote struct {
	Pair      domain.Pair
	Rate      float64
	AmountIn  decimal.Decimal
	AmountOut decimal.Decimal
}

// Convert converts amount units of from into to using the given table.
// Pure given a fixed table: same inputs always produce the same quote.
//
// The amount is validated first (finite, non-negative, within MaxAmount).
// from == to is an identity short-circuit: rate exactly 1, amount returned
// unchanged, no table lookup and no rounding. Otherwise the amount is rounded
// to integer minor units (half away from zero, 2 decimal places), multiplied
// by the rate, rounded to minor units again and converted back to decimal.
// A pair absent from the table fails with domain.ErrRateUnavailable.
func Convert(table *rates.Table, amount float64, from, to domain.Code) (Quote, error) {
	if err := ValidateAmount(amount); err != nil {
		return Quote{}, err
	}

	pair := domain.Pair{From: from, To: to}
	in := decimal.NewFromFloat(amount)

	if from == to {
		return Quote{Pair: pair, Rate: 1, AmountIn: in, AmountOut: in}, nil
	}

	rate, err := table.Rate(pair)
	if err != nil {
		return Quote{}, err
	}

	inCents := in.Round(2).Shift(2)
	outCents := inCents.Mul(decimal.NewFromFloat(rate)).Round(0)
	return Quote{
		Pair:      pair,
		Rate:      rate,
		AmountIn:  in.Round(2),
		AmountOut: outCents.Shift(-2),
	}, nil
}
