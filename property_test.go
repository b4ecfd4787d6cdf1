package readnum

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestGrouping_PropertyBased verifies the structural invariants of
// grouped-plain integer output: stripping the delimiters recovers the exact
// input digits, every interior group has exactly the configured size, and the
// leading group never exceeds it.
func TestGrouping_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	f := MustNew()

	properties.Property("delimiter-stripped output parses back to the input", prop.ForAll(
		func(v int64) bool {
			s, err := f.FormatInt(v)
			if err != nil {
				return false
			}
			parsed, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
			if err != nil {
				return false
			}
			return parsed == v
		},
		gen.Int64(),
	))

	properties.Property("interior groups hold exactly three digits", prop.ForAll(
		func(v int64) bool {
			s, err := f.FormatInt(v)
			if err != nil {
				return false
			}
			s = strings.TrimPrefix(s, "-")
			groups := strings.Split(s, ",")
			if len(groups[0]) < 1 || len(groups[0]) > 3 {
				return false
			}
			for _, g := range groups[1:] {
				if len(g) != 3 {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestSignPrefix_PropertyBased verifies that negation only ever prepends a
// single minus sign, across every representation mode.
func TestSignPrefix_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	formatters := map[string]*Formatter{
		"grouped":          MustNew(),
		"fixed precision":  MustNew(WithPrecision(4)),
		"shortform":        MustNew(WithShortform(true), WithPrecision(2)),
		"exponent large":   MustNew(WithExponentForLargeNumbers(true)),
		"exponent small":   MustNew(WithExponentForSmallNumbers(true)),
		"sig figures":      MustNew(WithSignificantFigures(3)),
		"every mode armed": MustNew(WithShortform(true), WithExponentForLargeNumbers(true), WithExponentForSmallNumbers(true)),
	}

	for name, f := range formatters {
		f := f
		properties.Property(name+" negation prepends exactly one minus", prop.ForAll(
			func(v float64) bool {
				if v < 0 {
					v = -v
				}
				pos, err := f.Format(v)
				if err != nil {
					return false
				}
				neg, err := f.Format(-v)
				if err != nil {
					return false
				}
				if v == 0 {
					return neg == pos
				}
				return neg == "-"+pos
			},
			gen.Float64Range(-1e12, 1e12),
		))
	}

	properties.TestingRun(t)
}

// TestFiniteInputsNeverError_PropertyBased verifies that a validly configured
// formatter returns an error for no finite input.
func TestFiniteInputsNeverError_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	f := MustNew(
		WithShortform(true),
		WithExponentForLargeNumbers(true),
		WithExponentForSmallNumbers(true),
		WithPrecision(3),
	)

	properties.Property("Format never errors on finite values", prop.ForAll(
		func(v float64) bool {
			_, err := f.Format(v)
			return err == nil
		},
		gen.Float64(),
	))

	properties.TestingRun(t)
}

// TestShortformSuffix_PropertyBased verifies unit selection against the
// magnitude tiers.
func TestShortformSuffix_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	f := MustNew(WithShortform(true))

	tiers := []struct {
		name   string
		lo, hi int64
		suffix string
	}{
		{"thousands", 1_000, 999_999, "k"},
		{"millions", 1_000_000, 999_999_999, "M"},
		{"billions", 1_000_000_000, 999_999_999_999, "B"},
		{"trillions", 1_000_000_000_000, 999_999_999_999_999, "T"},
	}
	for _, tier := range tiers {
		tier := tier
		properties.Property(tier.name+" carry the "+tier.suffix+" suffix", prop.ForAll(
			func(v int64) bool {
				s, err := f.FormatInt(v)
				if err != nil {
					return false
				}
				return strings.HasSuffix(s, tier.suffix)
			},
			gen.Int64Range(tier.lo, tier.hi),
		))
	}

	properties.Property("below one thousand carries no suffix", prop.ForAll(
		func(v int64) bool {
			s, err := f.FormatInt(v)
			if err != nil {
				return false
			}
			return !strings.ContainsAny(s, "kMBT")
		},
		gen.Int64Range(-999, 999),
	))

	properties.TestingRun(t)
}

// TestFormatWithIsolation_PropertyBased verifies that per-call overrides leak
// nothing into the standing configuration.
func TestFormatWithIsolation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	f := MustNew()

	properties.Property("overridden calls never change standing output", prop.ForAll(
		func(v float64) bool {
			before, err := f.Format(v)
			if err != nil {
				return false
			}
			if _, err := f.FormatWith(v, WithShortform(true), WithPrecision(5)); err != nil {
				return false
			}
			after, err := f.Format(v)
			if err != nil {
				return false
			}
			return before == after
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.TestingRun(t)
}
