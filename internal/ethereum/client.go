// Package ethereum talks to an Ethereum node and the external price API.
// The client is immutable after construction and safe for concurrent use;
// it performs no internal fan-out and keeps no cross-request state.
package ethereum

import (
	"context"
	"log/slog"
	"math/big"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"

	"github.com/web3wallet/wallet-mcp/internal/mcperr"
	"github.com/web3wallet/wallet-mcp/internal/validate"
)

// nodeBackend is the slice of ethclient.Client the engine needs. Tests
// substitute a fake; production always uses a real dialed client.
type nodeBackend interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, msg goethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg goethereum.CallMsg) (uint64, error)
}

// priceSource yields a USD spot price for a token address.
type priceSource interface {
	TokenPriceUSD(ctx context.Context, tokenAddress string) (decimal.Decimal, error)
}

// Client orchestrates node calls: balances, ERC-20 metadata, swap quoting
// and gas estimation.
type Client struct {
	node    nodeBackend
	pricing priceSource
	logger  *slog.Logger
}

// NewClient validates the configuration, dials the RPC endpoint and returns
// a ready client. The private key is format-checked only; it is never used
// to sign anything.
func NewClient(rpcURL, privateKey string, pricing *PriceClient, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := validate.Config(rpcURL, privateKey); err != nil {
		return nil, err
	}

	node, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, mcperr.Wrap(mcperr.KindEthereumRPC, err)
	}

	logger.Info("Ethereum client initialized successfully")
	return &Client{node: node, pricing: pricing, logger: logger}, nil
}

// GetBalance fetches the native balance and, depending on tokenAddress,
// either one specific token balance or the fixed well-known token scan.
// During the scan a per-token failure is swallowed; partial results are
// returned rather than failing the whole call.
func (c *Client) GetBalance(ctx context.Context, address, tokenAddress string) (*BalanceInfo, error) {
	if !common.IsHexAddress(address) {
		return nil, mcperr.New(mcperr.KindInvalidAddress, address)
	}
	addr := common.HexToAddress(address)

	c.logger.Debug("Fetching ETH balance", "address", address)
	balanceWei, err := c.node.BalanceAt(ctx, addr, nil)
	if err != nil {
		return nil, mcperr.Wrap(mcperr.KindEthereumRPC, err)
	}
	ethBalance := decimal.NewFromBigInt(balanceWei, -18)

	tokenBalances := make(map[string]TokenBalance)
	if tokenAddress != "" {
		tb, err := c.tokenBalance(ctx, addr, tokenAddress)
		if err != nil {
			return nil, err
		}
		tokenBalances[tokenAddress] = *tb
	} else {
		for _, contract := range commonTokenAddresses {
			tb, err := c.tokenBalance(ctx, addr, contract)
			if err != nil {
				c.logger.Debug("Skipping token during balance scan",
					"token_address", contract,
					"error", err,
				)
				continue
			}
			tokenBalances[contract] = *tb
		}
	}

	c.logger.Info("Balance information retrieved",
		"address", address,
		"eth_balance", ethBalance.String(),
		"token_count", len(tokenBalances),
	)

	return &BalanceInfo{
		Address:       address,
		EthBalance:    ethBalance,
		TokenBalances: tokenBalances,
	}, nil
}

// tokenBalance reads balanceOf for one token, resolving metadata live with
// a static-table fallback.
func (c *Client) tokenBalance(ctx context.Context, wallet common.Address, tokenAddress string) (*TokenBalance, error) {
	if !common.IsHexAddress(tokenAddress) {
		return nil, mcperr.New(mcperr.KindInvalidTokenContract, tokenAddress)
	}
	token := common.HexToAddress(tokenAddress)

	info, err := c.tokenMetadata(ctx, token)
	if err != nil {
		c.logger.Warn("Live token metadata lookup failed, using known-token table",
			"token_address", tokenAddress,
			"error", err,
		)
		info = knownTokenInfo(tokenAddress)
	}

	data := encodeCall("balanceOf(address)", addressWord(wallet))
	result, err := c.node.CallContract(ctx, goethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return nil, mcperr.Wrap(mcperr.KindEthereumRPC, err)
	}

	raw := decodeUint(result)
	balance := decimal.NewFromBigInt(raw, 0)
	formatted := decimal.NewFromBigInt(raw, -int32(info.Decimals))

	return &TokenBalance{
		ContractAddress:  tokenAddress,
		Symbol:           info.Symbol,
		Name:             info.Name,
		Decimals:         info.Decimals,
		Balance:          balance,
		BalanceFormatted: formatted.String(),
	}, nil
}

// tokenMetadata reads name(), symbol() and decimals() from the contract.
func (c *Client) tokenMetadata(ctx context.Context, token common.Address) (TokenInfo, error) {
	name, err := c.callString(ctx, token, "name()")
	if err != nil {
		return TokenInfo{}, err
	}
	symbol, err := c.callString(ctx, token, "symbol()")
	if err != nil {
		return TokenInfo{}, err
	}

	result, err := c.node.CallContract(ctx, goethereum.CallMsg{To: &token, Data: encodeCall("decimals()")}, nil)
	if err != nil {
		return TokenInfo{}, mcperr.Wrap(mcperr.KindEthereumRPC, err)
	}
	decimals := decodeUint(result)

	return TokenInfo{Name: name, Symbol: symbol, Decimals: uint8(decimals.Uint64())}, nil
}

func (c *Client) callString(ctx context.Context, token common.Address, signature string) (string, error) {
	result, err := c.node.CallContract(ctx, goethereum.CallMsg{To: &token, Data: encodeCall(signature)}, nil)
	if err != nil {
		return "", mcperr.Wrap(mcperr.KindEthereumRPC, err)
	}
	return decodeString(result)
}

// GetTokenPrice fetches the USD spot price. The symbol always comes from
// the well-known token table, never from the price API.
func (c *Client) GetTokenPrice(ctx context.Context, tokenAddress string) (*PriceInfo, error) {
	info := knownTokenInfo(tokenAddress)

	c.logger.Info("Fetching token price", "token_address", tokenAddress, "symbol", info.Symbol)
	priceUSD, err := c.pricing.TokenPriceUSD(ctx, tokenAddress)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Token price fetched",
		"token_address", tokenAddress,
		"symbol", info.Symbol,
		"price_usd", priceUSD.String(),
	)

	return &PriceInfo{
		TokenAddress: tokenAddress,
		Symbol:       info.Symbol,
		PriceUSD:     priceUSD,
	}, nil
}
