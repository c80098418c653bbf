package ethereum

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/web3wallet/wallet-mcp/internal/mcperr"
)

// Minimal ABI codec for the handful of read calls this server makes.
// Encoding is selector + static 32-byte words; decoding covers the two
// return shapes we see: a single unsigned integer and a dynamic string.

const wordSize = 32

// selector returns the first 4 bytes of the Keccak-256 hash of the
// canonical function signature, e.g. "balanceOf(address)" -> 0x70a08231.
func selector(signature string) []byte {
	return crypto.Keccak256([]byte(signature))[:4]
}

// addressWord right-aligns an address into a zero-padded 32-byte word.
func addressWord(addr common.Address) [wordSize]byte {
	var w [wordSize]byte
	copy(w[wordSize-common.AddressLength:], addr.Bytes())
	return w
}

// uintWord encodes an unsigned integer as a big-endian 32-byte word.
func uintWord(v *big.Int) [wordSize]byte {
	var w [wordSize]byte
	v.FillBytes(w[:])
	return w
}

// encodeCall builds call data: the selector followed by the static words in
// declaration order.
func encodeCall(signature string, words ...[wordSize]byte) []byte {
	data := make([]byte, 0, 4+len(words)*wordSize)
	data = append(data, selector(signature)...)
	for _, w := range words {
		data = append(data, w[:]...)
	}
	return data
}

// decodeUint interprets the last 16 bytes of the final 32-byte word as a
// big-endian unsigned integer. That range covers every value read here
// (balances, decimals, quotes, gas).
func decodeUint(data []byte) *big.Int {
	if len(data) > 16 {
		data = data[len(data)-16:]
	}
	return new(big.Int).SetBytes(data)
}

// wordOffset reads a 32-byte big-endian word as a byte offset. Returns -1
// for values that cannot index the payload.
func wordOffset(word []byte) int {
	v := new(big.Int).SetBytes(word)
	if !v.IsInt64() || v.Int64() > int64(1<<31) {
		return -1
	}
	return int(v.Int64())
}

// decodeString parses a dynamic string return payload: a 32-byte offset,
// a 32-byte length at that offset, then the UTF-8 bytes. Trailing NUL
// bytes are trimmed and invalid UTF-8 replaced rather than rejected.
func decodeString(data []byte) (string, error) {
	if len(data) < wordSize {
		return "", mcperr.New(mcperr.KindValidation, "Invalid response length")
	}

	offset := wordOffset(data[:wordSize])
	if offset < 0 || offset+wordSize > len(data) {
		return "", mcperr.New(mcperr.KindValidation, "Invalid string offset")
	}

	length := wordOffset(data[offset : offset+wordSize])
	if length < 0 || offset+wordSize+length > len(data) {
		return "", mcperr.New(mcperr.KindValidation, "Invalid string length")
	}

	raw := data[offset+wordSize : offset+wordSize+length]
	s := strings.ToValidUTF8(string(raw), "�")
	return strings.TrimRight(s, "\x00"), nil
}
