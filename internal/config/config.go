// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/web3wallet/wallet-mcp/internal/validate"
)

const (
	defaultPriceAPIURL = "https://api.g.alchemy.com/prices/v1"
	defaultListenAddr  = ":3000"
	defaultLogLevel    = "info"
	defaultToolTimeout = 30 * time.Second
)

// Config holds everything the server needs at startup. Credentials come
// only from the environment; nothing is ever written back.
type Config struct {
	RPCURL      string
	PrivateKey  string
	PriceAPIURL string
	PriceAPIKey string
	ListenAddr  string
	LogLevel    string
	ToolTimeout time.Duration
}

// Load reads the environment, applying defaults for optional settings, and
// validates the endpoint and key formats. A .env file in the working
// directory is honored but not required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		RPCURL:      os.Getenv("ETH_RPC_URL"),
		PrivateKey:  os.Getenv("PRIVATE_KEY"),
		PriceAPIURL: envOr("PRICE_API_URL", defaultPriceAPIURL),
		PriceAPIKey: os.Getenv("PRICE_API_KEY"),
		ListenAddr:  envOr("LISTEN_ADDR", defaultListenAddr),
		LogLevel:    envOr("LOG_LEVEL", defaultLogLevel),
		ToolTimeout: defaultToolTimeout,
	}

	if err := validate.Config(cfg.RPCURL, cfg.PrivateKey); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
