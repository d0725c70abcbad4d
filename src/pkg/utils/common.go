package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidUint32 = errors.New("not a valid 32-bit unsigned value")

func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// ParseUint32 accepts a decimal literal, or a hexadecimal one with or
// without a 0x prefix. Decimal wins when the text is valid as both.
func ParseUint32(s string) (uint32, error) {
	s = strings.TrimSpace(s)

	if v, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32(v), nil
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUint32, s)
	}

	return uint32(v), nil
}

// FormatHex renders v the way hash values are printed everywhere.
func FormatHex(v uint32) string {
	return fmt.Sprintf("0x%08x", v)
}
