package domain

import "errors"

var (
	ErrRateUnavailable = errors.New("rate unavailable")
	ErrSwapNotFound    = errors.New("swap not found")
	ErrSwapPending     = errors.New("another swap is still pending")
)
