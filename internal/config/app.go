package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type PriceAPI struct {
	URL string `mapstructure:"url"`
}

type Icons struct {
	BaseURL string `mapstructure:"base_url"`
}

type Swap struct {
	SettleDelaySeconds int `mapstructure:"settle_delay_seconds"`
	SettlePollSeconds  int `mapstructure:"settle_poll_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	PriceAPI   PriceAPI   `mapstructure:"price_api"`
	Icons      Icons      `mapstructure:"icons"`
	Swap       Swap       `mapstructure:"swap"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional; config.yaml carries the defaults
	_ = godotenv.Load()

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("swap.settle_delay_seconds", 2)
	viper.SetDefault("swap.settle_poll_seconds", 1)
	viper.SetDefault("logging.level", "info")

	// http server env vars
	_ = viper.BindEnv("http_server.port", "HTTP_SERVER_PORT")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// price source env vars
	_ = viper.BindEnv("price_api.url", "PRICE_API_URL")
	_ = viper.BindEnv("icons.base_url", "ICONS_BASE_URL")

	// swap settlement env vars
	_ = viper.BindEnv("swap.settle_delay_seconds", "SWAP_SETTLE_DELAY_SECONDS")
	_ = viper.BindEnv("swap.settle_poll_seconds", "SWAP_SETTLE_POLL_SECONDS")

	// logging env vars
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
