package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SwapStatus string

const (
	StatusPending   SwapStatus = "pending"
	StatusConfirmed SwapStatus = "confirmed"
)

// Swap is a submitted currency swap awaiting (or past) its simulated
// settlement. Amounts are fixed at submission time from the rate table that
// was current then; settlement only flips the status.
type Swap struct {
	ID        uuid.UUID
	Pair      Pair
	AmountIn  decimal.Decimal
	AmountOut decimal.Decimal
	Rate      float64
	Status    SwapStatus
	CreatedAt time.Time
	SettleAt  time.Time
}
