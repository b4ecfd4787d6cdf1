package readnum

// Default configuration values. They match the behavior of the default
// Formatter returned by New with no options.
const (
	// DefaultDigitGroupSize is the number of integer digits per group.
	DefaultDigitGroupSize = 3
	// DefaultDigitGroupDelimiter separates integer digit groups.
	DefaultDigitGroupDelimiter = ","
	// DefaultDecimalSymbol separates the integer and decimal parts.
	DefaultDecimalSymbol = "."
	// DefaultLargeNumberThreshold is the magnitude at or above which a value
	// is considered large for exponential notation.
	DefaultLargeNumberThreshold = 1e6
	// DefaultSmallNumberThreshold is the magnitude at or below which a
	// nonzero value is considered small for exponential notation.
	DefaultSmallNumberThreshold = 1e-6
	// DefaultExponentPrecision is the mantissa precision used by the
	// exponential modes when no precision is configured.
	DefaultExponentPrecision = 6
)

// Options holds the full formatting configuration. A zero Options value is
// not usable directly; obtain one from DefaultOptions or let New apply the
// defaults. Once validated, an Options value never mutates.
type Options struct {
	// DigitGroupSize is the size of each integer digit group. For example,
	// with size 3 the number 123456789 renders as 123,456,789. Must be
	// positive; use an empty DigitGroupDelimiter to disable grouping.
	DigitGroupSize int

	// DigitGroupDelimiter is the string inserted between digit groups.
	// "-" is rejected because it is ambiguous with the sign prefix.
	DigitGroupDelimiter string

	// DecimalSymbol is the string used as the decimal point.
	// "-" is rejected for the same reason as DigitGroupDelimiter.
	DecimalSymbol string

	// Precision is the number of digits to keep after the decimal point.
	// With precision 3 the value -4.56789 renders as -4.568; with precision
	// 0 the value -75.924 renders as "-76." (including the decimal symbol).
	// When nil, the value renders in its natural shortest round-trip form.
	// Mutually exclusive with SignificantFiguresAfterDecimalPoint.
	Precision *int

	// SignificantFiguresAfterDecimalPoint is the number of significant
	// digits to keep after the decimal point, counting from the first
	// nonzero digit. Leading zeros in sub-unity magnitudes are preserved as
	// placeholders, so -1.2345e-50 with 3 significant figures renders with
	// 50 leading zeros followed by "123". Must be positive when set.
	SignificantFiguresAfterDecimalPoint *int

	// NaturalExponentMantissa makes the exponential modes print the mantissa
	// in its full shortest round-trip form instead of the default
	// DefaultExponentPrecision digits. It has no effect when Precision or
	// SignificantFiguresAfterDecimalPoint is set.
	NaturalExponentMantissa bool

	// ShowDecimalPartIfInteger forces a decimal part on integer values.
	// The number of zero digits follows Precision, defaulting to two.
	ShowDecimalPartIfInteger bool

	// UseShortform renders magnitudes of 1000 and above with a unit suffix
	// (k, M, B, T). The largest supported unit is T, so 1.535663e18 renders
	// as "1535663T".
	UseShortform bool

	// UseExponentForLargeNumbers switches to scientific notation when the
	// magnitude reaches LargeNumberThreshold.
	UseExponentForLargeNumbers bool

	// LargeNumberThreshold is the cutoff magnitude for large-number
	// exponential notation. Must be positive.
	LargeNumberThreshold float64

	// UseExponentForSmallNumbers switches to scientific notation when a
	// nonzero magnitude does not exceed SmallNumberThreshold.
	UseExponentForSmallNumbers bool

	// SmallNumberThreshold is the cutoff magnitude for small-number
	// exponential notation. Must be positive.
	SmallNumberThreshold float64

	// StrictNonFinite makes Format return an InputError for NaN and
	// infinities instead of the literal strings "NaN", "Infinity" and
	// "-Infinity".
	StrictNonFinite bool
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		DigitGroupSize:       DefaultDigitGroupSize,
		DigitGroupDelimiter:  DefaultDigitGroupDelimiter,
		DecimalSymbol:        DefaultDecimalSymbol,
		LargeNumberThreshold: DefaultLargeNumberThreshold,
		SmallNumberThreshold: DefaultSmallNumberThreshold,
	}
}

// Option configures a Formatter during construction or a single FormatWith
// call.
type Option func(*Options)

// WithOptions replaces the entire option set. It is useful for seeding a new
// Formatter from the configuration of an existing one before applying further
// options.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithDigitGroupSize sets the integer digit group size.
func WithDigitGroupSize(size int) Option {
	return func(o *Options) { o.DigitGroupSize = size }
}

// WithDigitGroupDelimiter sets the string inserted between digit groups.
// An empty delimiter disables grouping.
func WithDigitGroupDelimiter(delim string) Option {
	return func(o *Options) { o.DigitGroupDelimiter = delim }
}

// WithDecimalSymbol sets the string used as the decimal point.
func WithDecimalSymbol(symbol string) Option {
	return func(o *Options) { o.DecimalSymbol = symbol }
}

// WithPrecision fixes the number of digits after the decimal point.
func WithPrecision(p int) Option {
	return func(o *Options) { o.Precision = &p }
}

// WithNaturalPrecision clears any precision or significant-figure setting
// and requests natural shortest round-trip rendering everywhere, including
// the exponential mantissa.
func WithNaturalPrecision() Option {
	return func(o *Options) {
		o.Precision = nil
		o.SignificantFiguresAfterDecimalPoint = nil
		o.NaturalExponentMantissa = true
	}
}

// WithSignificantFigures sets the number of significant figures to keep
// after the decimal point.
func WithSignificantFigures(n int) Option {
	return func(o *Options) { o.SignificantFiguresAfterDecimalPoint = &n }
}

// WithShowDecimalPartIfInteger forces a decimal part on integer values.
func WithShowDecimalPartIfInteger(show bool) Option {
	return func(o *Options) { o.ShowDecimalPartIfInteger = show }
}

// WithShortform enables unit-suffixed abbreviation for large magnitudes.
func WithShortform(use bool) Option {
	return func(o *Options) { o.UseShortform = use }
}

// WithExponentForLargeNumbers enables scientific notation for magnitudes at
// or above the large-number threshold.
func WithExponentForLargeNumbers(use bool) Option {
	return func(o *Options) { o.UseExponentForLargeNumbers = use }
}

// WithLargeNumberThreshold sets the large-number cutoff magnitude.
func WithLargeNumberThreshold(t float64) Option {
	return func(o *Options) { o.LargeNumberThreshold = t }
}

// WithExponentForSmallNumbers enables scientific notation for nonzero
// magnitudes at or below the small-number threshold.
func WithExponentForSmallNumbers(use bool) Option {
	return func(o *Options) { o.UseExponentForSmallNumbers = use }
}

// WithSmallNumberThreshold sets the small-number cutoff magnitude.
func WithSmallNumberThreshold(t float64) Option {
	return func(o *Options) { o.SmallNumberThreshold = t }
}

// WithStrictNonFinite makes non-finite inputs an error instead of rendering
// literal strings.
func WithStrictNonFinite(strict bool) Option {
	return func(o *Options) { o.StrictNonFinite = strict }
}

// validate checks the option set for internal consistency. It is called once
// at construction and again after every per-call override merge.
func (o Options) validate() error {
	if o.DigitGroupSize <= 0 {
		return newConfigError("digit group size must be positive, got %d", o.DigitGroupSize)
	}
	if o.DigitGroupDelimiter == "-" {
		return newConfigError("using %q as the digit group delimiter is ambiguous with the sign prefix", "-")
	}
	if o.DecimalSymbol == "-" {
		return newConfigError("using %q as the decimal symbol is ambiguous with the sign prefix", "-")
	}
	if o.DecimalSymbol == "" {
		return newConfigError("decimal symbol must not be empty")
	}
	if o.Precision != nil && *o.Precision < 0 {
		return newConfigError("precision must be non-negative, got %d", *o.Precision)
	}
	if o.SignificantFiguresAfterDecimalPoint != nil && *o.SignificantFiguresAfterDecimalPoint <= 0 {
		return newConfigError("significant figures must be positive, got %d", *o.SignificantFiguresAfterDecimalPoint)
	}
	if o.Precision != nil && o.SignificantFiguresAfterDecimalPoint != nil {
		return newConfigError("precision and significant figures are mutually exclusive")
	}
	if o.LargeNumberThreshold <= 0 {
		return newConfigError("large number threshold must be positive, got %v", o.LargeNumberThreshold)
	}
	if o.SmallNumberThreshold <= 0 {
		return newConfigError("small number threshold must be positive, got %v", o.SmallNumberThreshold)
	}
	return nil
}
