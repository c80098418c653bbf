package validate

import (
	"errors"
	"testing"

	"github.com/web3wallet/wallet-mcp/internal/mcperr"
)

const (
	usdc = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	weth = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
)

func TestToolArgsGetBalance(t *testing.T) {
	if err := ToolArgs("get_balance", map[string]any{"address": usdc}); err != nil {
		t.Errorf("valid args rejected: %v", err)
	}
	if err := ToolArgs("get_balance", map[string]any{"address": usdc, "token_address": weth}); err != nil {
		t.Errorf("valid args with token rejected: %v", err)
	}

	err := ToolArgs("get_balance", map[string]any{})
	assertKind(t, err, mcperr.KindMissingParameter)

	err = ToolArgs("get_balance", map[string]any{"address": 42})
	assertKind(t, err, mcperr.KindMissingParameter)

	err = ToolArgs("get_balance", map[string]any{"address": "not-an-address"})
	assertKind(t, err, mcperr.KindInvalidAddress)

	err = ToolArgs("get_balance", map[string]any{"address": usdc, "token_address": "0x12"})
	assertKind(t, err, mcperr.KindInvalidAddress)
}

func TestToolArgsGetTokenPrice(t *testing.T) {
	if err := ToolArgs("get_token_price", map[string]any{"token_address": usdc}); err != nil {
		t.Errorf("valid args rejected: %v", err)
	}
	assertKind(t, ToolArgs("get_token_price", map[string]any{}), mcperr.KindMissingParameter)
	assertKind(t, ToolArgs("get_token_price", map[string]any{"token_address": "x"}), mcperr.KindInvalidAddress)
}

func TestToolArgsSwapTokens(t *testing.T) {
	good := map[string]any{"from_token": usdc, "to_token": weth, "amount": "1.5"}
	if err := ToolArgs("swap_tokens", good); err != nil {
		t.Errorf("valid args rejected: %v", err)
	}

	withSlippage := map[string]any{"from_token": usdc, "to_token": weth, "amount": "1.5", "slippage_tolerance": "2"}
	if err := ToolArgs("swap_tokens", withSlippage); err != nil {
		t.Errorf("valid args with slippage rejected: %v", err)
	}

	assertKind(t, ToolArgs("swap_tokens", map[string]any{"from_token": usdc, "to_token": weth}), mcperr.KindMissingParameter)
	assertKind(t, ToolArgs("swap_tokens", map[string]any{"from_token": usdc, "to_token": weth, "amount": "0"}), mcperr.KindInvalidAmount)
	assertKind(t, ToolArgs("swap_tokens", map[string]any{"from_token": usdc, "to_token": weth, "amount": "1", "slippage_tolerance": "51"}), mcperr.KindInvalidSlippage)
}

func TestToolArgsUnknownTool(t *testing.T) {
	assertKind(t, ToolArgs("send_transaction", map[string]any{}), mcperr.KindValidation)
}

func assertKind(t *testing.T, err error, want mcperr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var me *mcperr.Error
	if !errors.As(err, &me) {
		t.Fatalf("error %v is not a taxonomy error", err)
	}
	if me.Kind() != want {
		t.Errorf("kind = %v, want %v", me.Kind(), want)
	}
}
