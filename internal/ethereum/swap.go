package ethereum

import (
	"context"
	"math/big"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/web3wallet/wallet-mcp/internal/mcperr"
)

// Fixed mainnet contracts. The quoter is Uniswap V3 Quoter v1, the router
// Uniswap V2; both are used read-only, nothing is ever broadcast.
var (
	quoterAddress = common.HexToAddress("0xb27308f9F90D607463bb33eA1BeBb41C27CE5AB6")
	routerAddress = common.HexToAddress("0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D")

	// Placeholder sender for estimation-only transactions.
	estimationSender = common.HexToAddress("0x0000000000000000000000000000000000000001")
)

// quoteFeeTiers is the attempt order for V3 pools: 0.3%, 0.05%, 1.0%.
// The ordering reflects typical liquidity concentration; the first tier
// returning a nonzero quote wins.
var quoteFeeTiers = []uint32{3000, 500, 10000}

const fallbackSwapGas = 200000

var hundred = decimal.NewFromInt(100)

// SimulateSwap quotes a trade across the fee tiers, applies the slippage
// haircut and estimates gas. The returned AmountOut is the guaranteed
// minimum after tolerance. Nothing is signed or broadcast.
func (c *Client) SimulateSwap(ctx context.Context, fromToken, toToken string, amount, slippage decimal.Decimal) (*SwapSimulation, error) {
	c.logger.Info("Starting swap simulation",
		"from_token", fromToken,
		"to_token", toToken,
		"amount", amount.String(),
		"slippage", slippage.String(),
	)

	if !common.IsHexAddress(fromToken) {
		return nil, mcperr.New(mcperr.KindInvalidTokenContract, fromToken)
	}
	if !common.IsHexAddress(toToken) {
		return nil, mcperr.New(mcperr.KindInvalidTokenContract, toToken)
	}
	fromAddr := common.HexToAddress(fromToken)
	toAddr := common.HexToAddress(toToken)

	gasPriceWei, err := c.node.SuggestGasPrice(ctx)
	if err != nil {
		return nil, mcperr.Errorf(mcperr.KindNetwork, "Failed to get gas price: %v", err)
	}
	gasPrice := decimal.NewFromBigInt(gasPriceWei, -18)

	// Swap quoting resolves decimals from the static table only; no live
	// metadata calls on this path.
	fromInfo := knownTokenInfo(fromToken)
	toInfo := knownTokenInfo(toToken)

	amountIn := amount.Shift(int32(fromInfo.Decimals)).BigInt()

	var rawOut *big.Int
	for _, fee := range quoteFeeTiers {
		out, err := c.quoteExactInputSingle(ctx, fromAddr, toAddr, fee, amountIn)
		if err != nil {
			c.logger.Debug("Quoter call failed", "fee", fee, "error", err)
			continue
		}
		if out.Sign() == 0 {
			c.logger.Debug("Quoter returned zero", "fee", fee)
			continue
		}
		c.logger.Info("Quoter success", "fee", fee, "amount_out_wei", out.String())
		rawOut = out
		break
	}
	if rawOut == nil {
		return nil, mcperr.New(mcperr.KindSwapSimulationFailed, "quoter failed on all fee tiers")
	}

	amountOut := decimal.NewFromBigInt(rawOut, -int32(toInfo.Decimals))

	// Haircut: amount_out * (100 - slippage) / 100, exact decimal arithmetic.
	finalAmountOut := amountOut.Mul(hundred.Sub(slippage)).Shift(-2)

	gasEstimate := c.estimateSwapGas(ctx, fromAddr, toAddr, amountIn)
	totalCost := decimal.NewFromInt(int64(gasEstimate)).Mul(gasPrice)

	sim := &SwapSimulation{
		FromToken:         fromToken,
		ToToken:           toToken,
		AmountIn:          amount,
		AmountOut:         finalAmountOut,
		GasEstimate:       gasEstimate,
		GasPrice:          gasPrice,
		TotalCost:         totalCost,
		Route:             []string{fromToken, toToken},
		SlippageTolerance: slippage,
	}

	c.logger.Info("Swap simulation completed",
		"amount_in", sim.AmountIn.String(),
		"amount_out", sim.AmountOut.String(),
		"gas_estimate", sim.GasEstimate,
	)

	return sim, nil
}

// quoteExactInputSingle calls the V3 quoter for one fee tier.
// sqrtPriceLimitX96 is always zero (no limit).
func (c *Client) quoteExactInputSingle(ctx context.Context, tokenIn, tokenOut common.Address, fee uint32, amountIn *big.Int) (*big.Int, error) {
	data := encodeCall("quoteExactInputSingle(address,address,uint24,uint256,uint160)",
		addressWord(tokenIn),
		addressWord(tokenOut),
		uintWord(big.NewInt(int64(fee))),
		uintWord(amountIn),
		uintWord(new(big.Int)),
	)

	result, err := c.node.CallContract(ctx, goethereum.CallMsg{To: &quoterAddress, Data: data}, nil)
	if err != nil {
		return nil, mcperr.Wrap(mcperr.KindEthereumRPC, err)
	}
	if len(result) < wordSize {
		return nil, mcperr.New(mcperr.KindSwapSimulationFailed, "invalid quoter response")
	}
	return decodeUint(result), nil
}

// estimateSwapGas asks the node to estimate a swapExactTokensForTokens
// transaction against the V2 router. The transaction is never sent;
// amountOutMin is zero and the deadline one hour out. Any estimation
// failure falls back to a constant rather than failing the simulation.
func (c *Client) estimateSwapGas(ctx context.Context, fromToken, toToken common.Address, amountIn *big.Int) uint64 {
	deadline := big.NewInt(time.Now().Unix() + 3600)
	data := encodeSwapExactTokensForTokens(amountIn, fromToken, toToken, estimationSender, deadline)

	gas, err := c.node.EstimateGas(ctx, goethereum.CallMsg{
		From: estimationSender,
		To:   &routerAddress,
		Data: data,
	})
	if err != nil {
		c.logger.Warn("Gas estimation failed, using fallback estimate",
			"error", err,
			"fallback_gas", fallbackSwapGas,
		)
		return fallbackSwapGas
	}

	c.logger.Info("Gas estimation completed", "gas_estimate", gas)
	return gas
}

// encodeSwapExactTokensForTokens builds the router calldata by hand:
// swapExactTokensForTokens(uint256,uint256,address[],address,uint256).
// The path array is dynamic, so the head holds its byte offset and the
// tail its length followed by the two hops.
func encodeSwapExactTokensForTokens(amountIn *big.Int, fromToken, toToken, recipient common.Address, deadline *big.Int) []byte {
	// Head: amountIn, amountOutMin, path offset, to, deadline = 5 words,
	// so the path data starts at byte 160.
	head := []([wordSize]byte){
		uintWord(amountIn),
		uintWord(new(big.Int)), // amountOutMin = 0, estimation only
		uintWord(big.NewInt(5 * wordSize)),
		addressWord(recipient),
		uintWord(deadline),
	}
	tail := []([wordSize]byte){
		uintWord(big.NewInt(2)),
		addressWord(fromToken),
		addressWord(toToken),
	}
	return encodeCall("swapExactTokensForTokens(uint256,uint256,address[],address,uint256)",
		append(head, tail...)...)
}
