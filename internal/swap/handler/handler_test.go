package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fxswap/internal/domain"
	"fxswap/internal/swap"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockValidator struct{ mock.Mock }

func (m *MockValidator) ValidateCodes(from, to domain.Code) error {
	args := m.Called(from, to)
	return args.Error(0)
}

func (m *MockValidator) ValidateRequest(amount float64, from, to domain.Code) error {
	args := m.Called(amount, from, to)
	return args.Error(0)
}

type MockService struct{ mock.Mock }

func (m *MockService) Quote(amount float64, from, to domain.Code) (swap.QuoteView, error) {
	args := m.Called(amount, from, to)
	v, _ := args.Get(0).(swap.QuoteView)
	return v, args.Error(1)
}

func (m *MockService) Submit(amount float64, from, to domain.Code) (domain.Swap, error) {
	args := m.Called(amount, from, to)
	sw, _ := args.Get(0).(domain.Swap)
	return sw, args.Error(1)
}

func (m *MockService) Get(id uuid.UUID) (domain.Swap, error) {
	args := m.Called(id)
	sw, _ := args.Get(0).(domain.Swap)
	return sw, args.Error(1)
}

func (m *MockService) Rate(from, to domain.Code) (swap.RateView, error) {
	args := m.Called(from, to)
	v, _ := args.Get(0).(swap.RateView)
	return v, args.Error(1)
}

func (m *MockService) Currencies() []swap.CurrencyView {
	args := m.Called()
	views, _ := args.Get(0).([]swap.CurrencyView)
	return views
}

type errorJSON struct {
	Error string `json:"error"`
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

// --- CreateQuote ---

func TestHandler_CreateQuote_InvalidBody(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewSwapHandler(mockValidator, mockService)

	rr := postJSON(t, h.CreateQuote, `{"amount": 100, "unknown": true}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, "invalid request body", ej.Error)
	mockService.AssertNotCalled(t, "Quote", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_CreateQuote_ValidationErrors(t *testing.T) {
	cases := []struct {
		name         string
		validatorErr error
	}{
		{name: "from required", validatorErr: swap.ErrFromRequired},
		{name: "negative amount", validatorErr: swap.ErrAmountNegative},
		{name: "amount too large", validatorErr: swap.ErrAmountTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockValidator := new(MockValidator)
			mockService := new(MockService)
			h := NewSwapHandler(mockValidator, mockService)

			mockValidator.On("ValidateRequest", 100.0, domain.Code("USD"), domain.Code("EUR")).
				Return(tc.validatorErr).Once()

			rr := postJSON(t, h.CreateQuote, `{"amount": 100, "from": " usd ", "to": "eur"}`)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var ej errorJSON
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
			require.Equal(t, tc.validatorErr.Error(), ej.Error)

			mockService.AssertNotCalled(t, "Quote", mock.Anything, mock.Anything, mock.Anything)
			mockValidator.AssertExpectations(t)
		})
	}
}

func TestHandler_CreateQuote_RateUnavailable(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewSwapHandler(mockValidator, mockService)

	mockValidator.On("ValidateRequest", 100.0, domain.Code("USD"), domain.Code("ETH")).Return(nil).Once()
	mockService.On("Quote", 100.0, domain.Code("USD"), domain.Code("ETH")).
		Return(swap.QuoteView{}, fmt.Errorf("%w: USD_ETH", domain.ErrRateUnavailable)).Once()

	rr := postJSON(t, h.CreateQuote, `{"amount": 100, "from": "USD", "to": "ETH"}`)

	require.Equal(t, http.StatusNotFound, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Contains(t, ej.Error, "USD_ETH")
	mockValidator.AssertExpectations(t)
	mockService.AssertExpectations(t)
}

func TestHandler_CreateQuote_InternalError(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewSwapHandler(mockValidator, mockService)

	mockValidator.On("ValidateRequest", 100.0, domain.Code("USD"), domain.Code("EUR")).Return(nil).Once()
	mockService.On("Quote", 100.0, domain.Code("USD"), domain.Code("EUR")).
		Return(swap.QuoteView{}, errors.New("boom")).Once()

	rr := postJSON(t, h.CreateQuote, `{"amount": 100, "from": "USD", "to": "EUR"}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, "ups, couldn't build a quote this time", ej.Error)
}

func TestHandler_CreateQuote_Success(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewSwapHandler(mockValidator, mockService)

	view := swap.QuoteView{
		From:             domain.USD,
		To:               domain.EUR,
		Rate:             0.92,
		AmountIn:         decimal.NewFromFloat(100),
		AmountOut:        decimal.NewFromFloat(92),
		AmountInDisplay:  "100.00",
		AmountOutDisplay: "92.00",
	}
	mockValidator.On("ValidateRequest", 100.0, domain.Code("USD"), domain.Code("EUR")).Return(nil).Once()
	mockService.On("Quote", 100.0, domain.Code("USD"), domain.Code("EUR")).Return(view, nil).Once()

	rr := postJSON(t, h.CreateQuote, `{"amount": 100, "from": " usd ", "to": " eur "}`)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var res CreateQuoteResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "USD", res.From)
	require.Equal(t, "EUR", res.To)
	require.InDelta(t, 0.92, res.Rate, 1e-9)
	require.Equal(t, "100.00", res.AmountIn)
	require.Equal(t, "92.00", res.AmountOut)
	require.Equal(t, "92.00", res.AmountOutDisplay)
	mockValidator.AssertExpectations(t)
	mockService.AssertExpectations(t)
}

// --- CreateSwap ---

func TestHandler_CreateSwap_Accepted(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewSwapHandler(mockValidator, mockService)

	now := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	sw := domain.Swap{
		ID:        uuid.New(),
		Pair:      domain.Pair{From: domain.USD, To: domain.EUR},
		AmountIn:  decimal.NewFromFloat(100),
		AmountOut: decimal.NewFromFloat(92),
		Rate:      0.92,
		Status:    domain.StatusPending,
		CreatedAt: now,
		SettleAt:  now.Add(2 * time.Second),
	}
	mockValidator.On("ValidateRequest", 100.0, domain.Code("USD"), domain.Code("EUR")).Return(nil).Once()
	mockService.On("Submit", 100.0, domain.Code("USD"), domain.Code("EUR")).Return(sw, nil).Once()

	rr := postJSON(t, h.CreateSwap, `{"amount": 100, "from": "USD", "to": "EUR"}`)

	require.Equal(t, http.StatusAccepted, rr.Code)
	var res CreateSwapResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, sw.ID.String(), res.SwapID)
	require.Equal(t, "pending", res.Status)
	require.Equal(t, "92.00", res.AmountOut)
	require.True(t, res.SettleAt.Equal(sw.SettleAt))
	mockValidator.AssertExpectations(t)
	mockService.AssertExpectations(t)
}

func TestHandler_CreateSwap_Conflict(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewSwapHandler(mockValidator, mockService)

	mockValidator.On("ValidateRequest", 100.0, domain.Code("USD"), domain.Code("EUR")).Return(nil).Once()
	mockService.On("Submit", 100.0, domain.Code("USD"), domain.Code("EUR")).
		Return(domain.Swap{}, domain.ErrSwapPending).Once()

	rr := postJSON(t, h.CreateSwap, `{"amount": 100, "from": "USD", "to": "EUR"}`)

	require.Equal(t, http.StatusConflict, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, domain.ErrSwapPending.Error(), ej.Error)
}

func TestHandler_CreateSwap_RateUnavailable(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewSwapHandler(mockValidator, mockService)

	mockValidator.On("ValidateRequest", 100.0, domain.Code("USD"), domain.Code("ETH")).Return(nil).Once()
	mockService.On("Submit", 100.0, domain.Code("USD"), domain.Code("ETH")).
		Return(domain.Swap{}, fmt.Errorf("%w: USD_ETH", domain.ErrRateUnavailable)).Once()

	rr := postJSON(t, h.CreateSwap, `{"amount": 100, "from": "USD", "to": "ETH"}`)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

// --- GetSwap ---

func getWithID(t *testing.T, h http.HandlerFunc, id string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/swaps/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestHandler_GetSwap_InvalidID(t *testing.T) {
	mockService := new(MockService)
	h := NewSwapHandler(new(MockValidator), mockService)

	rr := getWithID(t, h.GetSwap, "not-a-uuid")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, "invalid swap ID format", ej.Error)
	mockService.AssertNotCalled(t, "Get", mock.Anything)
}

func TestHandler_GetSwap_NotFound(t *testing.T) {
	mockService := new(MockService)
	h := NewSwapHandler(new(MockValidator), mockService)

	id := uuid.New()
	mockService.On("Get", id).Return(domain.Swap{}, domain.ErrSwapNotFound).Once()

	rr := getWithID(t, h.GetSwap, id.String())

	require.Equal(t, http.StatusNotFound, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, "swap not found", ej.Error)
	mockService.AssertExpectations(t)
}

func TestHandler_GetSwap_Success(t *testing.T) {
	mockService := new(MockService)
	h := NewSwapHandler(new(MockValidator), mockService)

	now := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	sw := domain.Swap{
		ID:        uuid.New(),
		Pair:      domain.Pair{From: domain.USD, To: domain.EUR},
		AmountIn:  decimal.NewFromFloat(100),
		AmountOut: decimal.NewFromFloat(92),
		Rate:      0.92,
		Status:    domain.StatusConfirmed,
		CreatedAt: now,
		SettleAt:  now.Add(2 * time.Second),
	}
	mockService.On("Get", sw.ID).Return(sw, nil).Once()

	rr := getWithID(t, h.GetSwap, sw.ID.String())

	require.Equal(t, http.StatusOK, rr.Code)
	var res GetSwapResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "confirmed", res.Status)
	require.Equal(t, "100.00", res.AmountIn)
	require.Equal(t, "92.00", res.AmountOut)
	mockService.AssertExpectations(t)
}

// --- GetRate ---

func TestHandler_GetRate_Success(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewSwapHandler(mockValidator, mockService)

	req := httptest.NewRequest(http.MethodGet, "/rates/usd/eur", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("from", " usd ")
	rctx.URLParams.Add("to", " eur ")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()

	mockValidator.On("ValidateCodes", domain.Code("USD"), domain.Code("EUR")).Return(nil).Once()
	mockService.On("Rate", domain.Code("USD"), domain.Code("EUR")).
		Return(swap.RateView{From: domain.USD, To: domain.EUR, Value: 0.92}, nil).Once()

	h.GetRate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res GetRateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "USD", res.From)
	require.InDelta(t, 0.92, res.Value, 1e-9)
	mockValidator.AssertExpectations(t)
	mockService.AssertExpectations(t)
}

func TestHandler_GetRate_NotFound(t *testing.T) {
	mockValidator := new(MockValidator)
	mockService := new(MockService)
	h := NewSwapHandler(mockValidator, mockService)

	req := httptest.NewRequest(http.MethodGet, "/rates/usd/eth", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("from", "usd")
	rctx.URLParams.Add("to", "eth")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()

	mockValidator.On("ValidateCodes", domain.Code("USD"), domain.Code("ETH")).Return(nil).Once()
	mockService.On("Rate", domain.Code("USD"), domain.Code("ETH")).
		Return(swap.RateView{}, fmt.Errorf("%w: USD_ETH", domain.ErrRateUnavailable)).Once()

	h.GetRate(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Contains(t, ej.Error, "USD_ETH")
}

// --- GetCurrencies ---

func TestHandler_GetCurrencies(t *testing.T) {
	mockService := new(MockService)
	h := NewSwapHandler(new(MockValidator), mockService)

	mockService.On("Currencies").Return([]swap.CurrencyView{
		{Code: domain.EUR, IconURL: "https://icons.example.com/tokens/EUR.svg"},
		{Code: domain.USD, IconURL: "https://icons.example.com/tokens/USD.svg"},
	}).Once()

	req := httptest.NewRequest(http.MethodGet, "/currencies", nil)
	rr := httptest.NewRecorder()

	h.GetCurrencies(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res GetCurrenciesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res.Currencies, 2)
	require.Equal(t, "EUR", res.Currencies[0].Code)
	require.Equal(t, "https://icons.example.com/tokens/EUR.svg", res.Currencies[0].IconURL)
	mockService.AssertExpectations(t)
}
