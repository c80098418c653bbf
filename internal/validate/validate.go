// Package validate holds the pure input checks run before any network call.
// Each function returns nil or a typed error from the mcperr taxonomy.
package validate

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/web3wallet/wallet-mcp/internal/mcperr"
)

var (
	privateKeyRe = regexp.MustCompile(`^(0x)?[a-fA-F0-9]{64}$`)

	maxAmount   = decimal.NewFromInt(1_000_000_000)
	maxSlippage = decimal.NewFromInt(50)
)

// Address checks the 0x-prefixed 40-hex-digit Ethereum address format.
func Address(address string) error {
	if address == "" {
		return mcperr.New(mcperr.KindInvalidAddress, "Address cannot be empty")
	}
	if !strings.HasPrefix(address, "0x") || !common.IsHexAddress(address) {
		return mcperr.Errorf(mcperr.KindInvalidAddress, "Invalid Ethereum address format: %s", address)
	}
	return nil
}

// PrivateKey checks the format only. The key is never used to sign anything.
func PrivateKey(privateKey string) error {
	if privateKey == "" {
		return mcperr.New(mcperr.KindInvalidPrivateKey, "Private key cannot be empty")
	}
	if !privateKeyRe.MatchString(privateKey) {
		return mcperr.Errorf(mcperr.KindInvalidPrivateKey, "Invalid private key format: %s", privateKey)
	}
	return nil
}

// Amount parses a decimal amount string. It must be strictly positive and
// at most 1,000,000,000.
func Amount(amount string) (decimal.Decimal, error) {
	if amount == "" {
		return decimal.Zero, mcperr.New(mcperr.KindInvalidAmount, "Amount cannot be empty")
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, mcperr.Errorf(mcperr.KindInvalidAmount, "Invalid amount format '%s': %v", amount, err)
	}
	if d.Sign() <= 0 {
		return decimal.Zero, mcperr.Errorf(mcperr.KindInvalidAmount, "Amount must be positive: %s", amount)
	}
	if d.GreaterThan(maxAmount) {
		return decimal.Zero, mcperr.Errorf(mcperr.KindInvalidAmount, "Amount too large: %s", amount)
	}
	return d, nil
}

// Slippage parses a slippage tolerance percentage, valid between 0 and 50.
func Slippage(slippage string) (decimal.Decimal, error) {
	if slippage == "" {
		return decimal.Zero, mcperr.New(mcperr.KindInvalidSlippage, "Slippage cannot be empty")
	}
	d, err := decimal.NewFromString(slippage)
	if err != nil {
		return decimal.Zero, mcperr.Errorf(mcperr.KindInvalidSlippage, "Invalid slippage format '%s': %v", slippage, err)
	}
	if d.Sign() < 0 {
		return decimal.Zero, mcperr.Errorf(mcperr.KindInvalidSlippage, "Slippage cannot be negative: %s", slippage)
	}
	if d.GreaterThan(maxSlippage) {
		return decimal.Zero, mcperr.Errorf(mcperr.KindInvalidSlippage, "Slippage too high (max 50%%): %s", slippage)
	}
	return d, nil
}

// RPCURL requires an http or https endpoint.
func RPCURL(url string) error {
	if url == "" {
		return mcperr.New(mcperr.KindConfiguration, "RPC URL cannot be empty")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return mcperr.Errorf(mcperr.KindConfiguration, "Invalid RPC URL format: %s", url)
	}
	return nil
}

// Config composes the endpoint and private key checks run at startup.
func Config(rpcURL, privateKey string) error {
	if err := RPCURL(rpcURL); err != nil {
		return err
	}
	return PrivateKey(privateKey)
}
