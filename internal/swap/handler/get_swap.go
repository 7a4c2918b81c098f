package handler

import (
	"errors"
	"net/http"
	"time"

	"fxswap/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type GetSwapResponse struct {
	SwapID    string    `json:"swap_id"`
	Status    string    `json:"status"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Rate      float64   `json:"rate"`
	AmountIn  string    `json:"amount_in"`
	AmountOut string    `json:"amount_out"`
	CreatedAt time.Time `json:"created_at"`
	SettleAt  time.Time `json:"settle_at"`
}

// GetSwap godoc
// @Summary Get swap status
// @Description Poll a submitted swap until it is confirmed
// @Tags Swaps
// @Produce json
// @Param id path string true "swap ID"
// @Success 200 {object} GetSwapResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /swaps/{id} [get]
func (h *Handler) GetSwap(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid swap ID format")
		return
	}

	sw, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrSwapNotFound) {
			writeError(w, http.StatusNotFound, "swap not found")
			return
		}
		msg := "ups, couldn't get the swap this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetSwap", "id": id.String()}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, GetSwapResponse{
		SwapID:    sw.ID.String(),
		Status:    string(sw.Status),
		From:      string(sw.Pair.From),
		To:        string(sw.Pair.To),
		Rate:      sw.Rate,
		AmountIn:  sw.AmountIn.StringFixed(2),
		AmountOut: sw.AmountOut.StringFixed(2),
		CreatedAt: sw.CreatedAt,
		SettleAt:  sw.SettleAt,
	})
}
