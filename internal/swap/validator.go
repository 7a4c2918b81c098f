package swap

import (
	"errors"
	"math"

	"fxswap/internal/domain"
)

// MaxAmount is the inclusive upper bound on a swap amount.
const MaxAmount = 1_000_000

var (
	ErrFromRequired    = errors.New("from currency is required")
	ErrToRequired      = errors.New("to currency is required")
	ErrAmountNotFinite = errors.New("amount must be a finite number")
	ErrAmountNegative  = errors.New("amount must not be negative")
	ErrAmountTooLarge  = errors.New("amount exceeds the maximum of 1000000")
)

// ValidateAmount accepts any finite amount in [0, MaxAmount], both bounds
// inclusive.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrAmountNotFinite
	}
	if amount < 0 {
		return ErrAmountNegative
	}
	if amount > MaxAmount {
		return ErrAmountTooLarge
	}
	return nil
}

// Validator checks swap request fields. Unlike a fiat-only form it allows
// from == to; the engine short-circuits that case to the identity rate.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCodes(from, to domain.Code) error {
	if from == "" {
		return ErrFromRequired
	}
	if to == "" {
		return ErrToRequired
	}
	return nil
}

func (v *Validator) ValidateRequest(amount float64, from, to domain.Code) error {
	if err := v.ValidateCodes(from, to); err != nil {
		return err
	}
	return ValidateAmount(amount)
}
