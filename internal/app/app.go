package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpserver "fxswap/internal/platform/http"

	"fxswap/internal/adapters/cache"
	"fxswap/internal/adapters/httpclient"
	"fxswap/internal/api"
	"fxswap/internal/config"
	"fxswap/internal/rates"
	"fxswap/internal/swap"
	"fxswap/internal/swap/handler"

	"github.com/sirupsen/logrus"
)

const formatCacheSize = 4096

// Run wires the application components, starts HTTP server and swap settler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// Price source
	if appCfg.PriceAPI.URL == "" {
		return fmt.Errorf("price api url is required")
	}
	priceClient := httpclient.NewPriceClient(baseHTTPClient, appCfg.PriceAPI.URL)

	// Rate table source: serves the static table immediately, overlays the
	// live snapshot once the one-shot fetch resolves
	tableSource := rates.NewSource(priceClient)
	tableSource.Start(ctx)
	logrus.Info("✅ Rate table source started")

	// Format cache
	formatCache, err := cache.NewFormatCache(formatCacheSize)
	if err != nil {
		logrus.WithError(err).Error("Failed to create format cache")
		return err
	}
	defer formatCache.Close()

	// Services
	store := swap.NewMemoryStore()
	formatter := swap.NewFormatter(formatCache)
	settleDelay := time.Duration(appCfg.Swap.SettleDelaySeconds) * time.Second
	iconBaseURL := strings.TrimSuffix(appCfg.Icons.BaseURL, "/")
	swapService := swap.NewService(tableSource, store, formatter, settleDelay, iconBaseURL)
	swapValidator := swap.NewValidator()

	// Settler confirms pending swaps once their simulated delay elapses
	settlePoll := time.Duration(appCfg.Swap.SettlePollSeconds) * time.Second
	if settlePoll <= 0 {
		settlePoll = time.Second
	}
	settler := swap.NewSettler(store, settlePoll)
	// Ensure settler stops before the process exits
	defer func() {
		if shutDownErr := settler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Settler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := settler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start settler")
		return startErr
	}
	logrus.Info("✅ Settler activation successful")

	// Handlers and router
	swapHandler := handler.NewSwapHandler(swapValidator, swapService)
	router := api.NewRouter(swapHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop the settler and in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
