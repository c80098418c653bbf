// Package tools dispatches wallet tool calls to the chain client. It owns
// argument validation, per-call timeouts, and the tool-level metrics.
package tools

import (
	"context"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/web3wallet/wallet-mcp/internal/ethereum"
	"github.com/web3wallet/wallet-mcp/internal/mcperr"
	"github.com/web3wallet/wallet-mcp/internal/validate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultSlippage = "0.5"

// Chain is the slice of the Ethereum client the tool handlers need.
type Chain interface {
	GetBalance(ctx context.Context, address, tokenAddress string) (*ethereum.BalanceInfo, error)
	GetTokenPrice(ctx context.Context, tokenAddress string) (*ethereum.PriceInfo, error)
	SimulateSwap(ctx context.Context, fromToken, toToken string, amount, slippage decimal.Decimal) (*ethereum.SwapSimulation, error)
}

// Call is a tool invocation as received on the wire.
type Call struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Handler validates and executes tool calls against a Chain.
type Handler struct {
	chain   Chain
	timeout time.Duration
	logger  *slog.Logger
}

func NewHandler(chain Chain, timeout time.Duration, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{chain: chain, timeout: timeout, logger: logger}
}

// Handle validates the call's arguments and runs the tool under the
// per-call timeout, returning the tool's value object. Transports wrap the
// value into their own result envelope.
func (h *Handler) Handle(ctx context.Context, call Call) (any, error) {
	start := time.Now()
	payload, err := h.dispatch(ctx, call)
	elapsed := time.Since(start)
	toolDuration.WithLabelValues(call.Name).Observe(elapsed.Seconds())

	if err != nil {
		toolCalls.WithLabelValues(call.Name, "error").Inc()
		h.logError(call.Name, elapsed, err)
		return nil, err
	}
	toolCalls.WithLabelValues(call.Name, "ok").Inc()
	h.logger.Info("Tool call completed",
		"tool", call.Name,
		"duration_ms", elapsed.Milliseconds(),
	)
	return payload, nil
}

// MarshalText renders a tool value as compact JSON for text-content
// transports.
func MarshalText(payload any) (string, error) {
	text, err := json.MarshalToString(payload)
	if err != nil {
		return "", mcperr.Wrap(mcperr.KindSerialization, err)
	}
	return text, nil
}

func (h *Handler) dispatch(ctx context.Context, call Call) (any, error) {
	if err := validate.ToolArgs(call.Name, call.Arguments); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	switch call.Name {
	case "get_balance":
		return h.chain.GetBalance(ctx, stringArg(call.Arguments, "address"), stringArg(call.Arguments, "token_address"))
	case "get_token_price":
		return h.chain.GetTokenPrice(ctx, stringArg(call.Arguments, "token_address"))
	case "swap_tokens":
		amount, err := validate.Amount(stringArg(call.Arguments, "amount"))
		if err != nil {
			return nil, err
		}
		raw := stringArg(call.Arguments, "slippage_tolerance")
		if raw == "" {
			raw = defaultSlippage
		}
		slippage, err := validate.Slippage(raw)
		if err != nil {
			return nil, err
		}
		return h.chain.SimulateSwap(ctx,
			stringArg(call.Arguments, "from_token"),
			stringArg(call.Arguments, "to_token"),
			amount, slippage)
	default:
		return nil, mcperr.Errorf(mcperr.KindValidation, "Unknown tool: %s", call.Name)
	}
}

func (h *Handler) logError(tool string, elapsed time.Duration, err error) {
	classified := mcperr.Classify(err)
	attrs := []any{
		"tool", tool,
		"duration_ms", elapsed.Milliseconds(),
		"error_type", classified.Context()["error_type"],
		"error", err,
	}
	switch classified.Severity() {
	case mcperr.SeverityCritical, mcperr.SeverityHigh:
		h.logger.Error("Tool call failed", attrs...)
	case mcperr.SeverityMedium:
		h.logger.Warn("Tool call failed", attrs...)
	default:
		h.logger.Info("Tool call failed", attrs...)
	}
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
