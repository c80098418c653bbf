package config

import (
	"strings"
	"testing"
	"time"
)

const testKey = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ETH_RPC_URL", "https://eth-mainnet.example.com/v2/key")
	t.Setenv("PRIVATE_KEY", testKey)
	t.Setenv("PRICE_API_URL", "")
	t.Setenv("PRICE_API_KEY", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PriceAPIURL != defaultPriceAPIURL {
		t.Errorf("PriceAPIURL = %s", cfg.PriceAPIURL)
	}
	if cfg.ListenAddr != ":3000" {
		t.Errorf("ListenAddr = %s", cfg.ListenAddr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}
	if cfg.ToolTimeout != 30*time.Second {
		t.Errorf("ToolTimeout = %v", cfg.ToolTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ETH_RPC_URL", "http://localhost:8545")
	t.Setenv("PRIVATE_KEY", strings.TrimPrefix(testKey, "0x"))
	t.Setenv("PRICE_API_URL", "http://localhost:9000")
	t.Setenv("PRICE_API_KEY", "secret")
	t.Setenv("LISTEN_ADDR", ":8080")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PriceAPIURL != "http://localhost:9000" {
		t.Errorf("PriceAPIURL = %s", cfg.PriceAPIURL)
	}
	if cfg.PriceAPIKey != "secret" {
		t.Errorf("PriceAPIKey = %s", cfg.PriceAPIKey)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %s", cfg.ListenAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	t.Setenv("ETH_RPC_URL", "ws://localhost:8545")
	t.Setenv("PRIVATE_KEY", testKey)
	if _, err := Load(); err == nil {
		t.Error("bad RPC URL accepted")
	}

	t.Setenv("ETH_RPC_URL", "https://localhost:8545")
	t.Setenv("PRIVATE_KEY", "short")
	if _, err := Load(); err == nil {
		t.Error("bad private key accepted")
	}
}
