package rates

import (
	"fmt"
	"maps"
	"slices"

	"fxswap/internal/domain"
)

// Table is an immutable pair-keyed rate table. A missing pair is an explicit
// error, never a default value.
type Table struct {
	rates map[domain.Pair]float64
}

func NewTable(rates map[domain.Pair]float64) *Table {
	return &Table{rates: maps.Clone(rates)}
}

// Rate resolves the conversion factor for the pair. The returned error wraps
// domain.ErrRateUnavailable and names the pair.
func (t *Table) Rate(p domain.Pair) (float64, error) {
	v, ok := t.rates[p]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrRateUnavailable, p)
	}
	return v, nil
}

func (t *Table) Len() int {
	return len(t.rates)
}

// Codes returns every currency code appearing in the table, sorted.
func (t *Table) Codes() []domain.Code {
	set := make(map[domain.Code]struct{})
	for p := range t.rates {
		set[p.From] = struct{}{}
		set[p.To] = struct{}{}
	}
	codes := slices.Collect(maps.Keys(set))
	slices.Sort(codes)
	return codes
}
