// Package readnum formats numeric values into human-readable strings:
// grouped digits ("1,234,567"), shortform unit suffixes ("12.3M"), fixed or
// significant-figure precision, and scientific notation for very large or
// very small magnitudes.
//
// A Formatter captures its configuration once at construction and never
// mutates it, so a single instance can format many values concurrently
// without synchronization. Per-call overrides operate on a copy.
//
// Representation modes are selected in a fixed order (first match wins):
//
//  1. exponential-large, when enabled and |v| >= LargeNumberThreshold;
//  2. exponential-small, when enabled and 0 < |v| <= SmallNumberThreshold;
//  3. shortform, when enabled and |v| >= 1000;
//  4. grouped-plain otherwise.
//
// Non-finite values render as the literal strings "NaN", "Infinity" and
// "-Infinity" unless StrictNonFinite is set, in which case they produce an
// InputError. Zero always formats as "0" regardless of mode flags.
package readnum

import (
	"math"
	"strconv"
)

// shortformThreshold is the magnitude at which shortform notation begins.
const shortformThreshold = 1000

// Mode identifies the representation a value renders in.
type Mode string

// Representation modes, in selection order.
const (
	ModeNonFinite   Mode = "non_finite"
	ModeExponential Mode = "exponential"
	ModeShortform   Mode = "shortform"
	ModeGrouped     Mode = "grouped"
)

// Formatter produces human-readable representations of numbers under a
// fixed, validated configuration.
type Formatter struct {
	opts Options
}

// New creates a Formatter from the default configuration with the given
// options applied.
//
// Parameters:
//   - opts: Functional options overriding the defaults.
//
// Returns:
//   - *Formatter: The configured formatter.
//   - error: A ConfigError if the resulting configuration is invalid.
func New(opts ...Option) (*Formatter, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Formatter{opts: o}, nil
}

// MustNew is like New but panics on configuration errors. It is intended
// for package-level formatter variables with static configurations.
func MustNew(opts ...Option) *Formatter {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Options returns a copy of the formatter's configuration.
func (f *Formatter) Options() Options { return f.opts }

// Mode reports which representation Format would select for the value. It
// mirrors the dispatch order of Format exactly.
func (f *Formatter) Mode(v float64) Mode {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ModeNonFinite
	}
	o := f.opts
	a := math.Abs(v)
	switch {
	case o.UseExponentForLargeNumbers && a >= o.LargeNumberThreshold:
		return ModeExponential
	case o.UseExponentForSmallNumbers && a > 0 && a <= o.SmallNumberThreshold:
		return ModeExponential
	case o.UseShortform && a >= shortformThreshold:
		return ModeShortform
	default:
		return ModeGrouped
	}
}

// Format renders a value under the formatter's standing configuration.
//
// Parameters:
//   - v: The value to format.
//
// Returns:
//   - string: The textual representation.
//   - error: An InputError for non-finite values when StrictNonFinite is set.
func (f *Formatter) Format(v float64) (string, error) {
	return format(v, f.opts)
}

// FormatWith renders a value with per-call overrides merged onto a copy of
// the standing configuration. The formatter itself is never mutated, so
// concurrent callers may apply different overrides safely.
//
// Parameters:
//   - v: The value to format.
//   - overrides: Options applied on top of the standing configuration.
//
// Returns:
//   - string: The textual representation.
//   - error: A ConfigError if the merged configuration is invalid, or an
//     InputError for non-finite values when StrictNonFinite is set.
func (f *Formatter) FormatWith(v float64, overrides ...Option) (string, error) {
	o := f.opts
	for _, opt := range overrides {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return "", err
	}
	return format(v, o)
}

// FormatInt renders an integer exactly, without a float64 round trip, so
// values beyond 2^53 keep all their digits in grouped-plain mode. Threshold
// comparisons and shortform quotients still use float64 magnitude, which is
// exact for every supported unit tier.
func (f *Formatter) FormatInt(v int64) (string, error) {
	o := f.opts
	fv := float64(v)

	switch {
	case o.UseExponentForLargeNumbers && math.Abs(fv) >= o.LargeNumberThreshold:
		return format(fv, o)
	case o.UseExponentForSmallNumbers && v != 0 && math.Abs(fv) <= o.SmallNumberThreshold:
		return format(fv, o)
	}

	p := parts{negative: v < 0}
	if v < 0 {
		// Negate via the unsigned domain so math.MinInt64 stays exact.
		p.intDigits = strconv.FormatUint(uint64(-(v + 1))+1, 10)
	} else {
		p.intDigits = strconv.FormatInt(v, 10)
	}

	if o.UseShortform && (v >= shortformThreshold || v <= -shortformThreshold) {
		return renderShortform(fv, p, o), nil
	}

	body := renderGroupedInteger(p.intDigits, 0, o)
	if o.ShowDecimalPartIfInteger {
		body += o.DecimalSymbol + integerDecimalZeros(o)
	}
	return applySign(p, body), nil
}

// format is the single rendering entry point shared by Format and
// FormatWith. The options are assumed validated.
func format(v float64, o Options) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if o.StrictNonFinite {
			return "", InputError{Value: v, Message: "value is not a finite number"}
		}
		return nonFiniteString(v), nil
	}

	a := math.Abs(v)
	switch {
	case o.UseExponentForLargeNumbers && a >= o.LargeNumberThreshold:
		return renderExponential(v, o), nil
	case o.UseExponentForSmallNumbers && a > 0 && a <= o.SmallNumberThreshold:
		return renderExponential(v, o), nil
	}

	p := decompose(v)
	if o.UseShortform && a >= shortformThreshold {
		return renderShortform(v, p, o), nil
	}
	return renderGrouped(p, o), nil
}

// nonFiniteString maps NaN and infinities to their documented literal
// representations.
func nonFiniteString(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	default:
		return "-Infinity"
	}
}
