package handler

import "net/http"

type CurrencyItem struct {
	Code    string `json:"code"`
	IconURL string `json:"icon_url"`
}

type GetCurrenciesResponse struct {
	Currencies []CurrencyItem `json:"currencies"`
}

// GetCurrencies godoc
// @Summary List supported currencies
// @Description Retrieve every currency in the current rate table with its icon URL
// @Tags Rates
// @Produce json
// @Success 200 {object} GetCurrenciesResponse
// @Router /currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, _ *http.Request) {
	views := h.service.Currencies()
	items := make([]CurrencyItem, 0, len(views))
	for _, v := range views {
		items = append(items, CurrencyItem{Code: string(v.Code), IconURL: v.IconURL})
	}
	writeJSON(w, http.StatusOK, GetCurrenciesResponse{Currencies: items})
}
