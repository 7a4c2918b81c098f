package handler

import (
	"errors"
	"net/http"
	"strings"

	"fxswap/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type GetRateResponse struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Value float64 `json:"value"`
}

// GetRate godoc
// @Summary Get a conversion rate
// @Description Look up the current rate for an ordered currency pair
// @Tags Rates
// @Produce json
// @Param from path string true "source currency code"
// @Param to path string true "target currency code"
// @Success 200 {object} GetRateResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /rates/{from}/{to} [get]
func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	from := domain.Code(strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "from"))))
	to := domain.Code(strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "to"))))

	if err := h.validator.ValidateCodes(from, to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.service.Rate(from, to)
	if err != nil {
		if errors.Is(err, domain.ErrRateUnavailable) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		msg := "ups, couldn't get the rate this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetRate", "from": from, "to": to}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, GetRateResponse{
		From:  string(view.From),
		To:    string(view.To),
		Value: view.Value,
	})
}
