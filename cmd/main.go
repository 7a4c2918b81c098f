package main

import (
	"os"

	"fxswap/internal/app"

	"github.com/sirupsen/logrus"
)

// @title FXSwap API
// @version 1.0
// @description Currency swap service with live token prices and a static fiat fallback
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application exited with error")
		os.Exit(1)
	}
}
