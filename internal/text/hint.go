package text

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidCharacter is returned when a hint contains a rune outside 'a'..'z'.
	ErrInvalidCharacter = errors.New("invalid hint character")
	// ErrHintOverflow is returned when a hint does not fit in a uint32.
	ErrHintOverflow = errors.New("hint out of range")
)

// EncodeHint renders n as positional base-26 over 'a'..'z', most
// significant digit first. Zero encodes as "a".
func EncodeHint(n uint32) string {
	if n == 0 {
		return "a"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('a' + n%26)
		n /= 26
	}
	return string(buf[i:])
}

// DecodeHint evaluates s as positional base-26. Leading 'a' digits are
// zeros, so "a" and "aa" both decode to 0.
func DecodeHint(s string) (uint32, error) {
	var v uint32
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
		}
		d := uint32(r - 'a')
		if v > (math.MaxUint32-d)/26 {
			return 0, fmt.Errorf("%w: %q", ErrHintOverflow, s)
		}
		v = v*26 + d
	}
	return v, nil
}
