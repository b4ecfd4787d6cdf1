package readnum

import (
	"math"
	"strconv"
	"strings"
)

// MaxDigitsInDoublePrecision caps the number of meaningful decimal digits a
// float64 can carry. Digits requested beyond this bound are deterministic
// zeros, never garbage.
const MaxDigitsInDoublePrecision = 15

// parts holds the decomposed pieces of a finite value. All digit strings are
// unsigned; the sign is tracked separately so every rendering mode operates
// on the absolute value.
type parts struct {
	// intDigits is the full integer part, e.g. "1234" for 1234.5.
	intDigits string
	// decDigits is the full decimal part including leading zeros,
	// e.g. "0000000123" for 1.23e-8.
	decDigits string
	// multiplier counts the leading zeros of decDigits for magnitudes below
	// 0.1. Significant-figure precision extends by this amount so the
	// placeholder zeros are not counted as significant.
	multiplier int
	// negative is true for values strictly below zero. Negative zero is not
	// negative.
	negative bool
}

// decompose splits a finite value into integer and decimal digit strings
// using the shortest round-trip decimal representation, so the natural form
// of the value is preserved exactly.
func decompose(v float64) parts {
	a := math.Abs(v)
	s := strconv.FormatFloat(a, 'f', -1, 64)

	intDigits, decDigits, _ := strings.Cut(s, ".")

	multiplier := 0
	if a > 0 && a < 0.1 {
		for multiplier < len(decDigits) && decDigits[multiplier] == '0' {
			multiplier++
		}
	}

	return parts{
		intDigits:  intDigits,
		decDigits:  decDigits,
		multiplier: multiplier,
		negative:   v < 0,
	}
}

// isInteger reports whether the decomposed value has no decimal part.
func (p parts) isInteger() bool { return p.decDigits == "" }

// scaledLen is the number of decimal digits past the leading-zero
// placeholders.
func (p parts) scaledLen() int { return len(p.decDigits) - p.multiplier }
