package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidHex is returned when a string is not a 0x-prefixed hexadecimal
// quantity.
var ErrInvalidHex = errors.New("invalid hex quantity")

// Hex is a 0x-prefixed hexadecimal quantity as returned by block explorers
// (e.g. "0x1a"). The bare prefix "0x" is the explorer encoding of zero.
type Hex string

// HexFromString validates s and returns it as a Hex.
func HexFromString(s string) (Hex, error) {
	if _, err := parseHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

func parseHex(s string) (*big.Int, error) {
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok {
		digits, ok = strings.CutPrefix(s, "0X")
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q must start with 0x", ErrInvalidHex, s)
	}

	if digits == "" {
		return new(big.Int), nil
	}

	v, ok := new(big.Int).SetString(digits, 16)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return v, nil
}

// UnmarshalJSON parses and validates a JSON string holding a hex quantity.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	parsed, err := HexFromString(s)
	if err != nil {
		return err
	}

	*h = parsed
	return nil
}

// BigInt decodes h as an unsigned integer of arbitrary size.
func (h Hex) BigInt() (*big.Int, error) {
	return parseHex(string(h))
}

// Uint64 decodes h, failing when the value does not fit in 64 bits.
func (h Hex) Uint64() (uint64, error) {
	v, err := h.BigInt()
	if err != nil {
		return 0, err
	}

	if !v.IsUint64() {
		return 0, fmt.Errorf("%w: %q overflows uint64", ErrInvalidHex, string(h))
	}
	return v.Uint64(), nil
}
