package mcperr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestEveryKindHasValidCode(t *testing.T) {
	valid := map[int]bool{
		CodeInvalidRequest: true,
		CodeMethodNotFound: true,
		CodeInvalidParams:  true,
		CodeInternal:       true,
	}
	for _, kind := range Kinds() {
		e := New(kind, "x")
		if !valid[e.Code()] {
			t.Errorf("kind %d has code %d outside the JSON-RPC set", kind, e.Code())
		}
	}
}

func TestKindCodes(t *testing.T) {
	cases := []struct {
		kind Kind
		code int
	}{
		{KindJSONRPC, CodeInvalidRequest},
		{KindInvalidJSONRPCRequest, CodeInvalidRequest},
		{KindMethodNotFound, CodeMethodNotFound},
		{KindMissingParameter, CodeInvalidParams},
		{KindInvalidAddress, CodeInvalidParams},
		{KindInvalidAmount, CodeInvalidParams},
		{KindInvalidSlippage, CodeInvalidParams},
		{KindEthereumRPC, CodeInternal},
		{KindNetwork, CodeInternal},
		{KindSwapSimulationFailed, CodeInternal},
		{KindPriceFetchFailed, CodeInternal},
	}
	for _, tc := range cases {
		if got := New(tc.kind, "x").Code(); got != tc.code {
			t.Errorf("kind %d: code = %d, want %d", tc.kind, got, tc.code)
		}
	}
}

func TestErrorMessagePrefix(t *testing.T) {
	e := New(KindMethodNotFound, "tools/unknown")
	if got := e.Error(); got != "Method not found: tools/unknown" {
		t.Errorf("Error() = %q", got)
	}

	e = Errorf(KindInvalidAmount, "Amount too large: %s", "2000000000")
	if !strings.HasPrefix(e.Error(), "Invalid amount: ") {
		t.Errorf("Error() = %q, want Invalid amount prefix", e.Error())
	}
}

func TestContext(t *testing.T) {
	e := New(KindInvalidAddress, "0x123")
	ctx := e.Context()
	if ctx["error_type"] != "validation" {
		t.Errorf("error_type = %q", ctx["error_type"])
	}
	if ctx["invalid_address"] != "0x123" {
		t.Errorf("invalid_address = %q", ctx["invalid_address"])
	}

	e = New(KindNetwork, "connection refused")
	ctx = e.Context()
	if ctx["error_type"] != "network" {
		t.Errorf("error_type = %q", ctx["error_type"])
	}
	if ctx["message"] != "connection refused" {
		t.Errorf("message = %q", ctx["message"])
	}
}

func TestClassify(t *testing.T) {
	e := New(KindTimeout, "deadline")
	if got := Classify(fmt.Errorf("wrapped: %w", e)); got.Kind() != KindTimeout {
		t.Errorf("Classify kept kind %d, want KindTimeout", got.Kind())
	}

	plain := errors.New("boom")
	got := Classify(plain)
	if got.Kind() != KindOther {
		t.Errorf("Classify(plain) kind = %d, want KindOther", got.Kind())
	}
	if !errors.Is(got, plain) {
		t.Error("Classify(plain) lost the cause chain")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(KindNetwork, nil) != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

func TestSeverityString(t *testing.T) {
	cases := map[Severity]string{
		SeverityLow:      "Low",
		SeverityMedium:   "Medium",
		SeverityHigh:     "High",
		SeverityCritical: "Critical",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", s, got, want)
		}
	}
}
