package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"fxswap/internal/domain"

	"github.com/sirupsen/logrus"
)

type CreateQuoteRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

type CreateQuoteResponse struct {
	From             string  `json:"from"`
	To               string  `json:"to"`
	Rate             float64 `json:"rate"`
	AmountIn         string  `json:"amount_in"`
	AmountOut        string  `json:"amount_out"`
	AmountInDisplay  string  `json:"amount_in_display"`
	AmountOutDisplay string  `json:"amount_out_display"`
}

// CreateQuote godoc
// @Summary Quote a conversion
// @Description Convert an amount between two currencies using the current rate table
// @Tags Swaps
// @Accept json
// @Produce json
// @Param request body CreateQuoteRequest true "amount and currency pair"
// @Success 200 {object} CreateQuoteResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /quotes [post]
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 256)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req CreateQuoteRequest
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

	view, err := h.service.Quote(req.Amount, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrRateUnavailable) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		msg := "ups, couldn't build a quote this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateQuote", "from": from, "to": to}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, CreateQuoteResponse{
		From:             string(view.From),
		To:               string(view.To),
		Rate:             view.Rate,
		AmountIn:         view.AmountIn.StringFixed(2),
		AmountOut:        view.AmountOut.StringFixed(2),
		AmountInDisplay:  view.AmountInDisplay,
		AmountOutDisplay: view.AmountOutDisplay,
	})
}
