package handler

import (
	"encoding/json"
	"net/http"

	"fxswap/internal/domain"
	"fxswap/internal/swap"

	"github.com/google/uuid"
)

type Validator interface {
	ValidateCodes(from, to domain.Code) error
	ValidateRequest(amount float64, from, to domain.Code) error
}

type Service interface {
	Quote(amount float64, from, to domain.Code) (swap.QuoteView, error)
	Submit(amount float64, from, to domain.Code) (domain.Swap, error)
	Get(id uuid.UUID) (domain.Swap, error)
	Rate(from, to domain.Code) (swap.RateView, error)
	Currencies() []swap.CurrencyView
}

type Handler struct {
	validator Validator
	service   Service
}

func NewSwapHandler(validator Validator, service Service) *Handler {
	return &Handler{validator: validator, service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
