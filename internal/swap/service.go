package swap

import (
	"fmt"
	"time"

	"fxswap/internal/adapters"
	"fxswap/internal/domain"
	"fxswap/internal/rates"

	"github.com/google/uuid"
)

// TableProvider yields the rate table to convert with right now.
type TableProvider interface {
	Current() *rates.Table
}

type Service struct {
	tables      TableProvider
	store       adapters.SwapStore
	formatter   *Formatter
	settleDelay time.Duration
	iconBaseURL string
}

func NewService(tables TableProvider, store adapters.SwapStore, formatter *Formatter, settleDelay time.Duration, iconBaseURL string) *Service {
	return &Service{
		tables:      tables,
		store:       store,
		formatter:   formatter,
		settleDelay: settleDelay,
		iconBaseURL: iconBaseURL,
	}
}

// Quote converts without creating a swap. This backs every recomputation of
// the output amount as the user edits the form.
func (s *Service) Quote(amount float64, from, to domain.Code) (QuoteView, error) {
	q, err := Convert(s.tables.Current(), amount, from, to)
	if err != nil {
		return QuoteView{}, err
	}
	return QuoteView{
		From:             from,
		To:               to,
		Rate:             q.Rate,
		AmountIn:         q.AmountIn,
		AmountOut:        q.AmountOut,
		AmountInDisplay:  s.formatter.Format(from, q.AmountIn),
		AmountOutDisplay: s.formatter.Format(to, q.AmountOut),
	}, nil
}

// Submit quotes against the current table and records a pending swap that the
// settler confirms once the settle delay has elapsed. Only one swap may be
// pending at a time.
func (s *Service) Submit(amount float64, from, to domain.Code) (domain.Swap, error) {
	q, err := Convert(s.tables.Current(), amount, from, to)
	if err != nil {
		return domain.Swap{}, err
	}

	now := time.Now()
	sw := domain.Swap{
		ID:        uuid.New(),
		Pair:      q.Pair,
		AmountIn:  q.AmountIn,
		AmountOut: q.AmountOut,
		Rate:      q.Rate,
		Status:    domain.StatusPending,
		CreatedAt: now,
		SettleAt:  now.Add(s.settleDelay),
	}
	if err := s.store.Add(sw); err != nil {
		return domain.Swap{}, err
	}
	return sw, nil
}

func (s *Service) Get(id uuid.UUID) (domain.Swap, error) {
	return s.store.Get(id)
}

// Rate looks the pair up directly, identity included.
func (s *Service) Rate(from, to domain.Code) (RateView, error) {
	if from == to {
		return RateView{From: from, To: to, Value: 1}, nil
	}
	value, err := s.tables.Current().Rate(domain.Pair{From: from, To: to})
	if err != nil {
		return RateView{}, err
	}
	return RateView{From: from, To: to, Value: value}, nil
}

// Currencies lists every code in the current table with its icon URL. Icons
// are presentational only.
func (s *Service) Currencies() []CurrencyView {
	codes := s.tables.Current().Codes()
	views := make([]CurrencyView, 0, len(codes))
	for _, code := range codes {
		views = append(views, CurrencyView{
			Code:    code,
			IconURL: fmt.Sprintf("%s/%s.svg", s.iconBaseURL, code),
		})
	}
	return views
}
