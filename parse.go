package num

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is the only error produced when converting text to an Int.
// Use errors.Is to test for it; the concrete error is a *SyntaxError.
var ErrInvalidFormat = errors.New("invalid format")

// SyntaxError describes why a string could not be converted to an Int.
type SyntaxError struct {
	Input  string
	Offset int // byte offset of the first offending character
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("num: int string %q invalid at offset %d: %s", e.Input, e.Offset, e.Reason)
}

func (e *SyntaxError) Unwrap() error { return ErrInvalidFormat }

// IntFromString creates an Int from a decimal string. The string may start
// with a single '+' or '-' and must otherwise contain only the ASCII digits
// '0' to '9'; at least one digit is required. Redundant leading zeros are
// accepted and dropped, so "00001" is 1. "-0" is 0.
func IntFromString(s string) (out Int, err error) {
	digits, neg := s, false
	if len(digits) > 0 {
		switch digits[0] {
		case '+':
			digits = digits[1:]
		case '-':
			digits, neg = digits[1:], true
		}
	}
	off := len(s) - len(digits)

	if len(digits) == 0 {
		reason := "empty input"
		if off > 0 {
			reason = "no digits after sign"
		}
		return out, &SyntaxError{Input: s, Offset: off, Reason: reason}
	}
	for idx := 0; idx < len(digits); idx++ {
		if c := digits[idx]; c < '0' || c > '9' {
			return out, &SyntaxError{Input: s, Offset: off + idx,
				Reason: fmt.Sprintf("unexpected character %q", c)}
		}
	}

	return newInt(neg, limbsFromDigits(digits)), nil
}

// MustIntFromString is like IntFromString but panics if s is invalid. It is
// intended for constants in tests and examples.
func MustIntFromString(s string) Int {
	i, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return i
}

// limbsFromDigits splits a string of ASCII digits into limbDigits-sized groups
// starting from the least significant end. The most significant group may be
// shorter. The result is normalized.
func limbsFromDigits(digits string) limbs {
	n := (len(digits) + limbDigits - 1) / limbDigits
	z := make(limbs, n)

	hi := len(digits)
	for i := range z {
		lo := hi - limbDigits
		if lo < 0 {
			lo = 0
		}
		var w uint64
		for _, c := range []byte(digits[lo:hi]) {
			w = w*10 + uint64(c-'0')
		}
		z[i] = w
		hi = lo
	}

	return z.norm()
}
