// Package mcperr defines the closed error taxonomy used across the server.
// Every failure surfaced to a caller is one of these kinds, each carrying a
// fixed JSON-RPC code, a severity tier, contextual key/value data, and
// recovery metadata. The set is never extended at runtime; new kinds are a
// code change so that codes and retry policy stay centrally auditable.
package mcperr

import (
	"errors"
	"fmt"
)

// Kind identifies one entry of the taxonomy.
type Kind int

const (
	// JSON-RPC shape errors
	KindJSONRPC Kind = iota
	KindInvalidJSONRPCRequest
	KindMethodNotFound
	KindMissingParameter
	KindInvalidParameterType

	// Ethereum network errors
	KindEthereumRPC
	KindNetwork
	KindRPCTimeout
	KindRateLimitExceeded

	// Address and contract errors
	KindInvalidAddress
	KindInvalidTokenContract
	KindContractNotFound
	KindInvalidContractABI

	// Balance and transaction errors
	KindInsufficientBalance
	KindTransactionFailed
	KindSwapSimulationFailed
	KindGasEstimationFailed
	KindSlippageTooHigh

	// Price and API errors
	KindPriceFetchFailed
	KindAPIRateLimitExceeded
	KindInvalidPriceData
	KindTokenNotFound

	// Wallet and signature errors
	KindWallet
	KindInvalidPrivateKey
	KindSigningFailed
	KindWalletNotInitialized

	// Validation and configuration errors
	KindConfiguration
	KindValidation
	KindInvalidAmount
	KindInvalidSlippage

	// System errors
	KindSerialization
	KindHTTP
	KindIO
	KindTimeout
	KindOther
)

// Severity ranks an error for logging purposes only; it never drives
// control flow.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "Low"
	case SeverityMedium:
		return "Medium"
	case SeverityHigh:
		return "High"
	case SeverityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// JSON-RPC error codes used by the taxonomy.
const (
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternal       = -32603
)

// meta is the per-kind metadata record. One row per kind, nothing computed
// outside this table.
type meta struct {
	prefix      string
	errType     string
	code        int
	severity    Severity
	recoverable bool
	maxRetries  uint
	delayCap    uint // exponent cap for 2^min(attempt, cap) backoff
	fixedDelay  uint // seconds; overrides backoff when nonzero
}

var kindTable = map[Kind]meta{
	KindJSONRPC:               {prefix: "JSON-RPC error", errType: "general", code: CodeInvalidRequest, severity: SeverityHigh, maxRetries: 1},
	KindInvalidJSONRPCRequest: {prefix: "Invalid JSON-RPC request", errType: "general", code: CodeInvalidRequest, severity: SeverityHigh, maxRetries: 1},
	KindMethodNotFound:        {prefix: "Method not found", errType: "general", code: CodeMethodNotFound, severity: SeverityMedium, maxRetries: 1},
	KindMissingParameter:      {prefix: "Missing required parameter", errType: "general", code: CodeInvalidParams, severity: SeverityMedium, maxRetries: 1},
	KindInvalidParameterType:  {prefix: "Invalid parameter type", errType: "general", code: CodeInvalidParams, severity: SeverityMedium, maxRetries: 1},

	KindEthereumRPC:       {prefix: "Ethereum RPC error", errType: "ethereum_rpc", code: CodeInternal, severity: SeverityHigh, maxRetries: 1},
	KindNetwork:           {prefix: "Network connection failed", errType: "network", code: CodeInternal, severity: SeverityHigh, recoverable: true, maxRetries: 5, delayCap: 5},
	KindRPCTimeout:        {prefix: "RPC timeout", errType: "general", code: CodeInternal, severity: SeverityHigh, recoverable: true, maxRetries: 3, delayCap: 3},
	KindRateLimitExceeded: {prefix: "Rate limit exceeded", errType: "general", code: CodeInternal, severity: SeverityMedium, recoverable: true, maxRetries: 3, fixedDelay: 60},

	KindInvalidAddress:       {prefix: "Invalid address", errType: "validation", code: CodeInvalidParams, severity: SeverityMedium, maxRetries: 1},
	KindInvalidTokenContract: {prefix: "Invalid token contract", errType: "general", code: CodeInvalidParams, severity: SeverityMedium, maxRetries: 1},
	KindContractNotFound:     {prefix: "Contract not found", errType: "general", code: CodeInvalidParams, severity: SeverityMedium, maxRetries: 1},
	KindInvalidContractABI:   {prefix: "Invalid contract ABI", errType: "general", code: CodeInvalidParams, severity: SeverityHigh, maxRetries: 1},

	KindInsufficientBalance:  {prefix: "Insufficient balance", errType: "balance", code: CodeInternal, severity: SeverityMedium, maxRetries: 1},
	KindTransactionFailed:    {prefix: "Transaction failed", errType: "general", code: CodeInternal, severity: SeverityHigh, maxRetries: 1},
	KindSwapSimulationFailed: {prefix: "Swap simulation failed", errType: "general", code: CodeInternal, severity: SeverityHigh, maxRetries: 1},
	KindGasEstimationFailed:  {prefix: "Gas estimation failed", errType: "general", code: CodeInternal, severity: SeverityHigh, maxRetries: 1},
	KindSlippageTooHigh:      {prefix: "Slippage too high", errType: "general", code: CodeInternal, severity: SeverityMedium, maxRetries: 1},

	KindPriceFetchFailed:     {prefix: "Price fetch failed", errType: "general", code: CodeInternal, severity: SeverityMedium, maxRetries: 1},
	KindAPIRateLimitExceeded: {prefix: "API rate limit exceeded", errType: "general", code: CodeInternal, severity: SeverityMedium, recoverable: true, maxRetries: 3, fixedDelay: 60},
	KindInvalidPriceData:     {prefix: "Invalid price data", errType: "general", code: CodeInternal, severity: SeverityMedium, maxRetries: 1},
	KindTokenNotFound:        {prefix: "Token not found", errType: "general", code: CodeInvalidParams, severity: SeverityMedium, maxRetries: 1},

	KindWallet:               {prefix: "Wallet error", errType: "general", code: CodeInternal, severity: SeverityHigh, maxRetries: 1},
	KindInvalidPrivateKey:    {prefix: "Invalid private key", errType: "general", code: CodeInvalidParams, severity: SeverityHigh, maxRetries: 1},
	KindSigningFailed:        {prefix: "Signing failed", errType: "general", code: CodeInternal, severity: SeverityHigh, maxRetries: 1},
	KindWalletNotInitialized: {prefix: "Wallet not initialized", errType: "general", code: CodeInternal, severity: SeverityHigh, maxRetries: 1},

	KindConfiguration:   {prefix: "Configuration error", errType: "general", code: CodeInternal, severity: SeverityHigh, maxRetries: 1},
	KindValidation:      {prefix: "Validation failed", errType: "general", code: CodeInvalidParams, severity: SeverityMedium, maxRetries: 1},
	KindInvalidAmount:   {prefix: "Invalid amount", errType: "general", code: CodeInvalidParams, severity: SeverityMedium, maxRetries: 1},
	KindInvalidSlippage: {prefix: "Invalid slippage", errType: "general", code: CodeInvalidParams, severity: SeverityMedium, maxRetries: 1},

	KindSerialization: {prefix: "Serialization error", errType: "general", code: CodeInternal, severity: SeverityHigh, maxRetries: 1},
	KindHTTP:          {prefix: "HTTP error", errType: "general", code: CodeInternal, severity: SeverityMedium, recoverable: true, maxRetries: 3, delayCap: 3},
	KindIO:            {prefix: "IO error", errType: "general", code: CodeInternal, severity: SeverityMedium, maxRetries: 1},
	KindTimeout:       {prefix: "Timeout error", errType: "general", code: CodeInternal, severity: SeverityMedium, recoverable: true, maxRetries: 1},
	KindOther:         {prefix: "Other error", errType: "general", code: CodeInternal, severity: SeverityHigh, maxRetries: 1},
}

// Kinds returns every kind in the taxonomy. Used by tests to check the
// tables exhaustively.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindTable))
	for k := range kindTable {
		kinds = append(kinds, k)
	}
	return kinds
}

// Error is one classified failure. The zero value is not valid; construct
// through New, Errorf or Wrap.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error under the given kind, keeping it
// reachable through errors.Unwrap.
func Wrap(kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, msg: err.Error(), cause: err}
}

func (e *Error) Error() string {
	return kindTable[e.kind].prefix + ": " + e.msg
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Kind() Kind { return e.kind }

// Code returns the JSON-RPC error code for this kind, always one of
// {-32600, -32601, -32602, -32603}.
func (e *Error) Code() int { return kindTable[e.kind].code }

func (e *Error) Severity() Severity { return kindTable[e.kind].severity }

// Context returns machine-readable context for the error envelope.
func (e *Error) Context() map[string]string {
	m := kindTable[e.kind]
	ctx := map[string]string{"error_type": m.errType}
	if e.kind == KindInvalidAddress {
		ctx["invalid_address"] = e.msg
	} else {
		ctx["message"] = e.msg
	}
	return ctx
}

// Classify returns the *Error inside err, or wraps err as KindOther so that
// every failure reaching a boundary has taxonomy metadata.
func Classify(err error) *Error {
	var me *Error
	if errors.As(err, &me) {
		return me
	}
	return Wrap(KindOther, err)
}
