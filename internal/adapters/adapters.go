package adapters

import (
	"context"
	"time"

	"fxswap/internal/domain"

	"github.com/google/uuid"
)

type PriceClient interface {
	GetPrices(ctx context.Context) (domain.PriceSnapshot, error)
}

type FormatCache interface {
	Get(code domain.Code, minorUnits int64) (string, bool)
	Set(code domain.Code, minorUnits int64, formatted string)
	Close()
}

type SwapStore interface {
	Add(swap domain.Swap) error
	Get(id uuid.UUID) (domain.Swap, error)
	ConfirmDue(now time.Time) []domain.Swap
}
