package ethereum

import "strings"

// TokenInfo is static ERC-20 metadata.
type TokenInfo struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// wellKnownTokens maps lower-cased mainnet contract addresses to metadata.
// Used as the fallback when live name()/symbol()/decimals() calls fail, and
// as the only metadata source during swap simulation. Immutable.
var wellKnownTokens = map[string]TokenInfo{
	"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48": {Name: "USD Coin", Symbol: "USDC", Decimals: 6},
	"0xdac17f958d2ee523a2206206994597c13d831ec7": {Name: "Tether USD", Symbol: "USDT", Decimals: 6},
	"0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2": {Name: "Wrapped Ether", Symbol: "WETH", Decimals: 18},
	"0x6b175474e89094c44da98b954eedeac495271d0f": {Name: "Dai Stablecoin", Symbol: "DAI", Decimals: 18},
	"0x2260fac5e5542a773aa44fbcfedf7c193bc2c599": {Name: "Wrapped BTC", Symbol: "WBTC", Decimals: 8},
	"0x514910771af9ca656af840dff83e8264ecf986ca": {Name: "ChainLink Token", Symbol: "LINK", Decimals: 18},
	"0x1f9840a85d5af5bf1d1762f925bdaddc4201f984": {Name: "Uniswap", Symbol: "UNI", Decimals: 18},
	"0x7d1afa7b718fb893db30a3abc0cfc608aacfebb0": {Name: "Polygon", Symbol: "MATIC", Decimals: 18},
	"0x4fabb145d64652a948d72533023f6e7a623c7c53": {Name: "Binance USD", Symbol: "BUSD", Decimals: 18},
	"0x95ad61b0a150d79219dcf64e1e6cc01f0b64c4ce": {Name: "Shiba Inu", Symbol: "SHIB", Decimals: 18},
}

// commonTokenAddresses is the fixed list scanned when get_balance is called
// without a specific token.
var commonTokenAddresses = []string{
	"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", // USDC
	"0xdAC17F958D2ee523a2206206994597C13D831ec7", // USDT
	"0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", // WETH
}

// knownTokenInfo looks up the static table, falling back to generic
// metadata with 18 decimals for unrecognized addresses.
func knownTokenInfo(tokenAddress string) TokenInfo {
	if info, ok := wellKnownTokens[strings.ToLower(tokenAddress)]; ok {
		return info
	}
	return TokenInfo{Name: "Token", Symbol: "TOKEN", Decimals: 18}
}
