package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"fxswap/internal/domain"

	"github.com/sirupsen/logrus"
)

type CreateSwapRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

type CreateSwapResponse struct {
	SwapID    string    `json:"swap_id"`
	Status    string    `json:"status"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Rate      float64   `json:"rate"`
	AmountIn  string    `json:"amount_in"`
	AmountOut string    `json:"amount_out"`
	SettleAt  time.Time `json:"settle_at"`
}

// CreateSwap godoc
// @Summary Submit a swap
// @Description Record a pending swap that settles after a fixed simulated delay
// @Tags Swaps
// @Accept json
// @Produce json
// @Param request body CreateSwapRequest true "amount and currency pair"
// @Success 202 {object} CreateSwapResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /swaps [post]
func (h *Handler) CreateSwap(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 256)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req CreateSwapRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	from := domain.Code(strings.ToUpper(strings.TrimSpace(req.From)))
	to := domain.Code(strings.ToUpper(strings.TrimSpace(req.To)))

	if err := h.validator.ValidateRequest(req.Amount, from, to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sw, err := h.service.Submit(req.Amount, from, to)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRateUnavailable):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrSwapPending):
			writeError(w, http.StatusConflict, err.Error())
		default:
			msg := "ups, couldn't submit the swap this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateSwap", "from": from, "to": to}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusAccepted, CreateSwapResponse{
		SwapID:    sw.ID.String(),
		Status:    string(sw.Status),
		From:      string(sw.Pair.From),
		To:        string(sw.Pair.To),
		Rate:      sw.Rate,
		AmountIn:  sw.AmountIn.StringFixed(2),
		AmountOut: sw.AmountOut.StringFixed(2),
		SettleAt:  sw.SettleAt,
	})
}
