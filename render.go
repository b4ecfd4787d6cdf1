package readnum

import (
	"math"
	"strconv"
	"strings"
)

// shortformUnits maps magnitude tiers (thousands powers) to unit suffixes.
// The largest supported unit is T; higher magnitudes keep the T suffix with
// a longer quotient ("1535663T").
var shortformUnits = [...]string{"", "k", "M", "B", "T"}

// maxShortformTier is the highest tier with a named unit.
const maxShortformTier = len(shortformUnits) - 1

// incrementDigits adds one to an unsigned digit string, e.g. "99" -> "100".
func incrementDigits(digits string) string {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

// roundDigitsAt rounds an unsigned digit string to at most n digits using
// round-half-up. The returned carry is 1 when rounding overflows past the
// leading digit (e.g. "999" at n=2 becomes "00" with carry 1).
func roundDigitsAt(digits string, n int) (string, int) {
	if n >= len(digits) {
		return digits, 0
	}
	if n == 0 {
		if digits != "" && digits[0] >= '5' {
			return "", 1
		}
		return "", 0
	}
	kept := digits[:n]
	if digits[n] >= '5' {
		kept = incrementDigits(kept)
		if len(kept) > n {
			return kept[1:], 1
		}
	}
	return kept, 0
}

// zeroPad extends a digit string with trailing zeros up to length n.
func zeroPad(digits string, n int) string {
	if len(digits) >= n {
		return digits
	}
	return digits + strings.Repeat("0", n-len(digits))
}

// renderDecimalPart renders the decimal digits of a non-integer value under
// the configured precision rules. The returned carry is 1 when rounding
// overflowed into the integer part.
//
// Three rendering methods exist:
//   - natural (no precision configured): the shortest round-trip digits,
//     capped at MaxDigitsInDoublePrecision meaningful digits, with trailing
//     zeros stripped;
//   - fixed precision: exactly Precision digits, zero-padded past the
//     double-precision cap;
//   - significant figures: the first N meaningful digits after the decimal
//     point, with leading placeholder zeros preserved in sub-0.1 magnitudes.
func renderDecimalPart(p parts, o Options) (string, int) {
	digits := p.decDigits

	var roundAt, targetLen int
	natural := false
	switch {
	case o.Precision != nil:
		targetLen = *o.Precision
		roundAt = targetLen
		if cap := p.multiplier + MaxDigitsInDoublePrecision; roundAt > cap {
			roundAt = cap
		}
	case o.SignificantFiguresAfterDecimalPoint != nil:
		sig := *o.SignificantFiguresAfterDecimalPoint
		targetLen = p.multiplier + sig
		roundAt = p.multiplier + minInt(sig, MaxDigitsInDoublePrecision)
	default:
		natural = true
		roundAt = p.multiplier + minInt(p.scaledLen(), MaxDigitsInDoublePrecision)
		targetLen = roundAt
	}

	rounded, carry := roundDigitsAt(digits, roundAt)
	if natural {
		return strings.TrimRight(rounded, "0"), carry
	}
	return zeroPad(rounded, targetLen), carry
}

// renderGroupedInteger renders integer digits with the configured group
// delimiter, applying a pending carry from decimal rounding first.
func renderGroupedInteger(intDigits string, carry int, o Options) string {
	if carry > 0 {
		intDigits = incrementDigits(intDigits)
	}
	if o.DigitGroupDelimiter == "" {
		return intDigits
	}

	size := o.DigitGroupSize
	var b strings.Builder
	b.Grow(len(intDigits) + (len(intDigits)/size)*len(o.DigitGroupDelimiter))
	lead := len(intDigits) % size
	if lead > 0 {
		b.WriteString(intDigits[:lead])
	}
	for i := lead; i < len(intDigits); i += size {
		if b.Len() > 0 {
			b.WriteString(o.DigitGroupDelimiter)
		}
		b.WriteString(intDigits[i : i+size])
	}
	return b.String()
}

// renderGrouped renders a finite value in grouped-plain mode.
func renderGrouped(p parts, o Options) string {
	if p.isInteger() {
		body := renderGroupedInteger(p.intDigits, 0, o)
		if o.ShowDecimalPartIfInteger {
			return applySign(p, body+o.DecimalSymbol+integerDecimalZeros(o))
		}
		return applySign(p, body)
	}

	decimal, carry := renderDecimalPart(p, o)
	body := renderGroupedInteger(p.intDigits, carry, o) + o.DecimalSymbol + decimal
	return applySign(p, body)
}

// integerDecimalZeros returns the forced decimal part for integer values
// under ShowDecimalPartIfInteger: two zeros by convention, or a zero run
// matching the configured precision.
func integerDecimalZeros(o Options) string {
	if o.Precision == nil {
		return "00"
	}
	if *o.Precision == 0 {
		return "0"
	}
	return strings.Repeat("0", *o.Precision)
}

// renderShortform renders a value of magnitude >= 1000 with a unit suffix.
// The quotient follows the same precision rules as grouped-plain, defaulting
// to an integer quotient when no precision is configured. Shortform output
// is never digit-grouped.
func renderShortform(v float64, p parts, o Options) string {
	tier := (len(p.intDigits) - 1) / 3
	if tier > maxShortformTier {
		tier = maxShortformTier
	}

	prec := 0
	switch {
	case o.Precision != nil:
		prec = *o.Precision
	case o.SignificantFiguresAfterDecimalPoint != nil:
		prec = *o.SignificantFiguresAfterDecimalPoint
	}
	if prec > MaxDigitsInDoublePrecision {
		prec = MaxDigitsInDoublePrecision
	}

	quotient := math.Abs(v) / math.Pow10(tier*3)
	body := strconv.FormatFloat(quotient, 'f', prec, 64) + shortformUnits[tier]
	return applySign(p, body)
}

// renderExponential renders a value in scientific notation. The mantissa
// carries the configured precision or significant-figure count, defaulting
// to DefaultExponentPrecision digits; under NaturalExponentMantissa it keeps
// its shortest round-trip form instead. The exponent is zero-padded to at
// least two digits with an explicit sign.
func renderExponential(v float64, o Options) string {
	prec := DefaultExponentPrecision
	switch {
	case o.Precision != nil:
		prec = *o.Precision
	case o.SignificantFiguresAfterDecimalPoint != nil:
		prec = *o.SignificantFiguresAfterDecimalPoint
	case o.NaturalExponentMantissa:
		prec = -1
	}
	return applySign(parts{negative: v < 0}, strconv.FormatFloat(math.Abs(v), 'e', prec, 64))
}

// applySign prefixes the sign character once to the assembled string.
func applySign(p parts, s string) string {
	if p.negative {
		return "-" + s
	}
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
