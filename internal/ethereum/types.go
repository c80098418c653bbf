package ethereum

import "github.com/shopspring/decimal"

// BalanceInfo is a per-request snapshot of a wallet: native balance plus
// the ERC-20 holdings keyed by contract address. Never persisted.
type BalanceInfo struct {
	Address       string                  `json:"address"`
	EthBalance    decimal.Decimal         `json:"eth_balance"`
	TokenBalances map[string]TokenBalance `json:"token_balances"`
}

// TokenBalance is one ERC-20 holding. BalanceFormatted is always
// Balance / 10^Decimals rendered as a string.
type TokenBalance struct {
	ContractAddress  string          `json:"contract_address"`
	Symbol           string          `json:"symbol"`
	Name             string          `json:"name"`
	Decimals         uint8           `json:"decimals"`
	Balance          decimal.Decimal `json:"balance"`
	BalanceFormatted string          `json:"balance_formatted"`
}

// PriceInfo is a spot USD price from the external price API.
type PriceInfo struct {
	TokenAddress string          `json:"token_address"`
	Symbol       string          `json:"symbol"`
	PriceUSD     decimal.Decimal `json:"price_usd"`
}

// SwapSimulation is a quoted, never-executed trade. AmountOut already has
// the slippage tolerance applied: it is the guaranteed minimum, not the
// raw quote.
type SwapSimulation struct {
	FromToken         string          `json:"from_token"`
	ToToken           string          `json:"to_token"`
	AmountIn          decimal.Decimal `json:"amount_in"`
	AmountOut         decimal.Decimal `json:"amount_out"`
	GasEstimate       uint64          `json:"gas_estimate"`
	GasPrice          decimal.Decimal `json:"gas_price"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	Route             []string        `json:"route"`
	SlippageTolerance decimal.Decimal `json:"slippage_tolerance"`
}
