package validate

import (
	"errors"
	"testing"

	"github.com/web3wallet/wallet-mcp/internal/mcperr"
)

func kindOf(t *testing.T, err error) mcperr.Kind {
	t.Helper()
	var me *mcperr.Error
	if !errors.As(err, &me) {
		t.Fatalf("error %v is not a taxonomy error", err)
	}
	return me.Kind()
}

func TestAddress(t *testing.T) {
	valid := []string{
		"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		"0x0000000000000000000000000000000000000000",
		"0xdac17f958d2ee523a2206206994597c13d831ec7",
	}
	for _, addr := range valid {
		if err := Address(addr); err != nil {
			t.Errorf("Address(%q) = %v, want nil", addr, err)
		}
	}

	invalid := []string{
		"",
		"A0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",    // missing prefix
		"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB4",   // too short
		"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB488", // too long
		"0xZZb86991c6218b36c1d19D4a2e9Eb0cE3606eB48",  // non-hex
		"vitalik.eth",
	}
	for _, addr := range invalid {
		err := Address(addr)
		if err == nil {
			t.Errorf("Address(%q) = nil, want error", addr)
			continue
		}
		if kindOf(t, err) != mcperr.KindInvalidAddress {
			t.Errorf("Address(%q) kind = %v", addr, kindOf(t, err))
		}
	}
}

func TestPrivateKey(t *testing.T) {
	valid := []string{
		"0x" + repeat64("a"),
		repeat64("0"),
		"0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890ABCDEF",
	}
	for _, key := range valid {
		if err := PrivateKey(key); err != nil {
			t.Errorf("PrivateKey(%q) = %v, want nil", key, err)
		}
	}

	invalid := []string{"", "0x1234", repeat64("g"), "0x" + repeat64("a") + "ff"}
	for _, key := range invalid {
		if err := PrivateKey(key); err == nil {
			t.Errorf("PrivateKey(%q) = nil, want error", key)
		}
	}
}

func TestAmount(t *testing.T) {
	valid := map[string]string{
		"1":          "1",
		"0.000001":   "0.000001",
		"1000000000": "1000000000", // exactly the cap
		"1.5":        "1.5",
	}
	for in, want := range valid {
		d, err := Amount(in)
		if err != nil {
			t.Errorf("Amount(%q) = %v, want nil", in, err)
			continue
		}
		if d.String() != want {
			t.Errorf("Amount(%q) = %s, want %s", in, d, want)
		}
	}

	invalid := []string{"", "0", "-1", "1000000001", "abc", "1,5"}
	for _, in := range invalid {
		_, err := Amount(in)
		if err == nil {
			t.Errorf("Amount(%q) = nil, want error", in)
			continue
		}
		if kindOf(t, err) != mcperr.KindInvalidAmount {
			t.Errorf("Amount(%q) kind = %v", in, kindOf(t, err))
		}
	}
}

func TestSlippage(t *testing.T) {
	valid := []string{"0", "0.5", "50"}
	for _, in := range valid {
		if _, err := Slippage(in); err != nil {
			t.Errorf("Slippage(%q) = %v, want nil", in, err)
		}
	}

	invalid := []string{"", "-0.1", "50.1", "abc"}
	for _, in := range invalid {
		_, err := Slippage(in)
		if err == nil {
			t.Errorf("Slippage(%q) = nil, want error", in)
			continue
		}
		if kindOf(t, err) != mcperr.KindInvalidSlippage {
			t.Errorf("Slippage(%q) kind = %v", in, kindOf(t, err))
		}
	}
}

func TestRPCURL(t *testing.T) {
	if err := RPCURL("https://eth-mainnet.g.alchemy.com/v2/key"); err != nil {
		t.Errorf("https URL rejected: %v", err)
	}
	if err := RPCURL("http://localhost:8545"); err != nil {
		t.Errorf("http URL rejected: %v", err)
	}
	for _, in := range []string{"", "ws://localhost:8545", "localhost:8545"} {
		if err := RPCURL(in); err == nil {
			t.Errorf("RPCURL(%q) = nil, want error", in)
		}
	}
}

func TestConfig(t *testing.T) {
	key := "0x" + repeat64("a")
	if err := Config("https://localhost:8545", key); err != nil {
		t.Errorf("Config = %v, want nil", err)
	}
	if err := Config("ftp://x", key); err == nil {
		t.Error("bad URL accepted")
	}
	if err := Config("https://localhost:8545", "nope"); err == nil {
		t.Error("bad key accepted")
	}
}

func repeat64(s string) string {
	out := ""
	for i := 0; i < 64; i++ {
		out += s
	}
	return out
}
