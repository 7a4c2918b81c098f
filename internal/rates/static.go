package rates

import "fxswap/internal/domain"

// staticRates is the fallback table used until (or instead of) the live price
// snapshot. Both directions of each pair are quoted independently; entries are
// not required to satisfy A_B = 1/B_A. Static entries always win over values
// derived from the snapshot.
var staticRates = map[domain.Pair]float64{
	{From: domain.USD, To: domain.EUR}: 0.92,
	{From: domain.EUR, To: domain.USD}: 1.09,
	{From: domain.USD, To: domain.GBP}: 0.79,
	{From: domain.GBP, To: domain.USD}: 1.27,
	{From: domain.USD, To: domain.JPY}: 149.50,
	{From: domain.JPY, To: domain.USD}: 0.0067,
	{From: domain.USD, To: domain.SGD}: 1.35,
	{From: domain.SGD, To: domain.USD}: 0.74,
	{From: domain.EUR, To: domain.GBP}: 0.86,
	{From: domain.GBP, To: domain.EUR}: 1.16,
}

// StaticTable returns a fresh table holding only the static fallback rates.
func StaticTable() *Table {
	return NewTable(staticRates)
}
