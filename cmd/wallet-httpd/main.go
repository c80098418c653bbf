package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"

	"github.com/web3wallet/wallet-mcp/internal/config"
	"github.com/web3wallet/wallet-mcp/internal/ethereum"
	"github.com/web3wallet/wallet-mcp/internal/mcp"
	"github.com/web3wallet/wallet-mcp/internal/tools"
)

const version = "1.0.0"

const shutdownTimeout = 10 * time.Second

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	logger := slog.New(zapslog.NewHandler(zapLogger.Core()))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Configuration error", "error", err)
		os.Exit(1)
	}

	pricing := ethereum.NewPriceClient(cfg.PriceAPIURL, cfg.PriceAPIKey, logger)
	chain, err := ethereum.NewClient(cfg.RPCURL, cfg.PrivateKey, pricing, logger)
	if err != nil {
		logger.Error("Failed to connect to Ethereum node", "error", err)
		os.Exit(1)
	}

	handler := tools.NewHandler(chain, cfg.ToolTimeout, logger)
	router := mcp.NewRouter(handler, logger)
	engine := mcp.NewHTTPRouter(router, version)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: engine,
	}

	go func() {
		logger.Info("Starting wallet HTTP server",
			"version", version,
			"addr", cfg.ListenAddr,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Received shutdown signal, draining connections")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
