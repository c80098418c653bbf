// Package mcp implements the server's two transports: a JSON-RPC 2.0 HTTP
// endpoint and a stdio session. Both expose the same tool set and the same
// error envelope.
package mcp

import stdjson "encoding/json"

// Request is an incoming JSON-RPC 2.0 request. ID is kept raw so it is
// echoed back exactly as received, whatever its JSON type.
type Request struct {
	JSONRPC string             `json:"jsonrpc"`
	ID      stdjson.RawMessage `json:"id"`
	Method  string             `json:"method"`
	Params  stdjson.RawMessage `json:"params"`
}

// Response is the JSON-RPC 2.0 reply. Both result and error keys are always
// present; exactly one is non-null.
type Response struct {
	JSONRPC string             `json:"jsonrpc"`
	ID      stdjson.RawMessage `json:"id"`
	Result  any                `json:"result"`
	Error   *ErrorResponse     `json:"error"`
}

// ErrorResponse is the error member of a failed Response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ToolDescriptor is one entry of the tools/list manifest.
type ToolDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema any    `json:"inputSchema"`
}

func objectSchema(properties map[string]any, required []string) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func stringProperty(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

// Manifest returns the static tool manifest served by tools/list.
func Manifest() []ToolDescriptor {
	return []ToolDescriptor{
		{
			Name:        "get_balance",
			Description: "Get ETH and ERC20 token balances for a wallet address",
			InputSchema: objectSchema(map[string]any{
				"address":       stringProperty("Wallet address to query"),
				"token_address": stringProperty("Optional token contract address"),
			}, []string{"address"}),
		},
		{
			Name:        "get_token_price",
			Description: "Get current token price in USD and ETH",
			InputSchema: objectSchema(map[string]any{
				"token_address": stringProperty("Token contract address"),
			}, []string{"token_address"}),
		},
		{
			Name:        "swap_tokens",
			Description: "Simulate a token swap on Uniswap",
			InputSchema: objectSchema(map[string]any{
				"from_token":         stringProperty("Source token contract address"),
				"to_token":           stringProperty("Destination token contract address"),
				"amount":             stringProperty("Amount to swap (as decimal string)"),
				"slippage_tolerance": stringProperty("Slippage tolerance percentage (default: 0.5)"),
			}, []string{"from_token", "to_token", "amount"}),
		},
	}
}
