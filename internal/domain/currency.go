package domain

// Code is a currency or token symbol, upper-case ("USD", "ETH", "SWTH").
type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	JPY Code = "JPY"
	SGD Code = "SGD"
)

// Pair is an ordered currency pair. A rate for a Pair means
// "1 unit of From equals Rate units of To".
type Pair struct {
	From Code
	To   Code
}

func (p Pair) Reversed() Pair {
	return Pair{
		From: p.To,
		To:   p.From,
	}
}

func (p Pair) String() string {
	return string(p.From) + "_" + string(p.To)
}

// PriceSnapshot maps a token symbol to its USD price. A nil price means the
// source quoted the token without a usable value; such tokens are excluded
// from rate table construction. The snapshot is fetched at most once per
// process lifetime.
type PriceSnapshot map[Code]*float64
