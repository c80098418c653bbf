package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/web3wallet/wallet-mcp/internal/config"
	"github.com/web3wallet/wallet-mcp/internal/ethereum"
	"github.com/web3wallet/wallet-mcp/internal/mcp"
	"github.com/web3wallet/wallet-mcp/internal/tools"
)

const version = "1.0.0"

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("wallet-mcp version %s\n", version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	pricing := ethereum.NewPriceClient(cfg.PriceAPIURL, cfg.PriceAPIKey, logger)
	chain, err := ethereum.NewClient(cfg.RPCURL, cfg.PrivateKey, pricing, logger)
	if err != nil {
		logger.Error("Failed to connect to Ethereum node", "error", err)
		os.Exit(1)
	}

	handler := tools.NewHandler(chain, cfg.ToolTimeout, logger)
	server := mcp.NewStdioServer("wallet-mcp", version, handler, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Received shutdown signal, exiting")
		os.Exit(0)
	}()

	logger.Info("Starting wallet MCP server", "version", version)
	if err := server.ServeStdio(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
