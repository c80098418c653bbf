package validate

import "github.com/web3wallet/wallet-mcp/internal/mcperr"

// ToolArgs runs the per-tool schema check against the raw argument map.
// Unknown tool names are a validation failure.
func ToolArgs(toolName string, args map[string]any) error {
	switch toolName {
	case "get_balance":
		return getBalanceArgs(args)
	case "get_token_price":
		return getTokenPriceArgs(args)
	case "swap_tokens":
		return swapTokensArgs(args)
	default:
		return mcperr.Errorf(mcperr.KindValidation, "Unknown tool: %s", toolName)
	}
}

func requiredString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", mcperr.New(mcperr.KindMissingParameter, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", mcperr.New(mcperr.KindMissingParameter, key)
	}
	return s, nil
}

func getBalanceArgs(args map[string]any) error {
	address, err := requiredString(args, "address")
	if err != nil {
		return err
	}
	if err := Address(address); err != nil {
		return err
	}
	if v, ok := args["token_address"]; ok {
		if tokenAddress, ok := v.(string); ok {
			if err := Address(tokenAddress); err != nil {
				return err
			}
		}
	}
	return nil
}

func getTokenPriceArgs(args map[string]any) error {
	tokenAddress, err := requiredString(args, "token_address")
	if err != nil {
		return err
	}
	return Address(tokenAddress)
}

func swapTokensArgs(args map[string]any) error {
	fromToken, err := requiredString(args, "from_token")
	if err != nil {
		return err
	}
	toToken, err := requiredString(args, "to_token")
	if err != nil {
		return err
	}
	amount, err := requiredString(args, "amount")
	if err != nil {
		return err
	}
	if err := Address(fromToken); err != nil {
		return err
	}
	if err := Address(toToken); err != nil {
		return err
	}
	if _, err := Amount(amount); err != nil {
		return err
	}
	if v, ok := args["slippage_tolerance"]; ok {
		if slippage, ok := v.(string); ok {
			if _, err := Slippage(slippage); err != nil {
				return err
			}
		}
	}
	return nil
}
