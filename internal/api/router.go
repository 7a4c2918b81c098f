package api

import (
	_ "fxswap/docs"
	"fxswap/internal/swap/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(swapHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Post("/api/v1/quotes", swapHandler.CreateQuote)
	router.Post("/api/v1/swaps", swapHandler.CreateSwap)
	router.Get("/api/v1/swaps/{id}", swapHandler.GetSwap)
	router.Get("/api/v1/currencies", swapHandler.GetCurrencies)
	router.Get("/api/v1/rates/{from:[A-Za-z]{2,10}}/{to:[A-Za-z]{2,10}}", swapHandler.GetRate)
	return router
}
