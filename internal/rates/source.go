package rates

import (
	"context"
	"sync/atomic"

	"fxswap/internal/adapters"

	"github.com/sirupsen/logrus"
)

// Source owns the rate table for the lifetime of the process. It starts out
// serving the static table and publishes a derived table after a single
// background price fetch. Conversions never wait for the fetch: callers that
// arrive before it resolves get the static table. A failed fetch is logged
// and leaves the static table in place for the rest of the session.
type Source struct {
	client  adapters.PriceClient
	table   atomic.Pointer[Table]
	started atomic.Bool
}

func NewSource(client adapters.PriceClient) *Source {
	s := &Source{client: client}
	s.table.Store(StaticTable())
	return s
}

// Current returns the table to convert with right now.
func (s *Source) Current() *Table {
	return s.table.Load()
}

// Start launches the one-shot price fetch in the background. Subsequent calls
// are no-ops; the table is written at most once per process lifetime.
func (s *Source) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		snapshot, err := s.client.GetPrices(ctx)
		if err != nil {
			logrus.WithError(err).Warn("Price fetch failed, keeping static rate table")
			return
		}
		table := Build(snapshot)
		s.table.Store(table)
		logrus.Infof("Live rate table published: %d pairs across %d currencies", table.Len(), len(table.Codes()))
	}()
}
