package rates

import "fxswap/internal/domain"

// Build derives a full pairwise rate table from a price snapshot:
//   - every token with a usable price gets both direct USD pairs
//     (TOKEN_USD = price, USD_TOKEN = 1/price);
//   - every ordered pair of distinct such tokens gets a cross rate
//     price[from] / price[to];
//   - the static fiat rates are merged in last and win on key conflicts.
//
// A nil price or a price of zero excludes the token. An empty snapshot yields
// exactly the static table.
func Build(snapshot domain.PriceSnapshot) *Table {
	prices := make(map[domain.Code]float64, len(snapshot))
	for sym, price := range snapshot {
		if price == nil || *price == 0 {
			continue
		}
		prices[sym] = *price
	}

	merged := make(map[domain.Pair]float64, len(prices)*(len(prices)+1)+len(staticRates))
	for sym, price := range prices {
		if sym == domain.USD {
			continue
		}
		merged[domain.Pair{From: sym, To: domain.USD}] = price
		merged[domain.Pair{From: domain.USD, To: sym}] = 1 / price
	}
	for from, fromPrice := range prices {
		for to, toPrice := range prices {
			if from == to {
				continue
			}
			merged[domain.Pair{From: from, To: to}] = fromPrice / toPrice
		}
	}
	for pair, value := range staticRates {
		merged[pair] = value
	}

	if len(merged) == 0 {
		return StaticTable()
	}
	return NewTable(merged)
}
