package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/agbru/readnum"
	apperrors "github.com/agbru/readnum/internal/errors"
)

// EnvPrefix is the prefix of every environment variable the application
// reads.
const EnvPrefix = "READNUM_"

// DefaultTimeout bounds batch and TUI runs.
const DefaultTimeout = 5 * time.Minute

// unsetPrecision marks a precision flag the user did not touch. Precision 0
// is meaningful ("-76."), so absence cannot be encoded as zero.
const unsetPrecision = -1

// AppConfig holds the full application configuration, resolved from CLI
// flags, environment variables and defaults, in that priority order.
type AppConfig struct {
	// GroupSize is the number of integer digits per group.
	GroupSize int
	// Delimiter separates integer digit groups. Empty disables grouping.
	Delimiter string
	// DecimalSymbol separates the integer and decimal parts.
	DecimalSymbol string
	// Precision is the fixed number of decimal digits, or unsetPrecision.
	Precision int
	// SigFigs is the number of significant decimal figures, or 0 when unset.
	SigFigs int
	// Shortform enables unit-suffixed abbreviation (12.3M).
	Shortform bool
	// ExpLarge enables scientific notation for large magnitudes.
	ExpLarge bool
	// ExpSmall enables scientific notation for small magnitudes.
	ExpSmall bool
	// LargeThreshold overrides the large-number cutoff when positive.
	LargeThreshold float64
	// SmallThreshold overrides the small-number cutoff when positive.
	SmallThreshold float64
	// ShowDecimal forces a decimal part on integer values.
	ShowDecimal bool
	// Strict makes non-finite inputs an error instead of literal strings.
	Strict bool
	// InputFile is a file of values to format, one per line. "-" is stdin.
	InputFile string
	// OutputFile receives formatted output instead of stdout.
	OutputFile string
	// TUI launches the interactive explorer.
	TUI bool
	// Quiet suppresses informational output, leaving only formatted values.
	Quiet bool
	// Verbose enables debug logging.
	Verbose bool
	// MetricsAddr, when non-empty, serves Prometheus metrics on this address
	// during batch runs.
	MetricsAddr string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Completion selects a shell completion script to generate.
	Completion string
	// Values are the positional arguments to format.
	Values []string
}

// DefaultConfig returns the configuration used when no flag or environment
// variable overrides it.
func DefaultConfig() AppConfig {
	return AppConfig{
		GroupSize:     readnum.DefaultDigitGroupSize,
		Delimiter:     readnum.DefaultDigitGroupDelimiter,
		DecimalSymbol: readnum.DefaultDecimalSymbol,
		Precision:     unsetPrecision,
		Timeout:       DefaultTimeout,
	}
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags not set explicitly.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: The destination for usage and parse error output.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when --help was requested, or a ConfigError for
//     invalid values.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.GroupSize, "group-size", cfg.GroupSize, "Number of integer digits per group")
	fs.StringVar(&cfg.Delimiter, "delimiter", cfg.Delimiter, "String inserted between digit groups (empty disables grouping)")
	fs.StringVar(&cfg.DecimalSymbol, "decimal-symbol", cfg.DecimalSymbol, "String used as the decimal point")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "Fixed number of decimal digits (-1 for natural)")
	fs.IntVar(&cfg.Precision, "p", cfg.Precision, "Shorthand for -precision")
	fs.IntVar(&cfg.SigFigs, "sig-figs", cfg.SigFigs, "Significant decimal figures (0 for natural)")
	fs.BoolVar(&cfg.Shortform, "shortform", cfg.Shortform, "Abbreviate large magnitudes with k/M/B/T suffixes")
	fs.BoolVar(&cfg.Shortform, "s", cfg.Shortform, "Shorthand for -shortform")
	fs.BoolVar(&cfg.ExpLarge, "exp-large", cfg.ExpLarge, "Use scientific notation for large magnitudes")
	fs.BoolVar(&cfg.ExpSmall, "exp-small", cfg.ExpSmall, "Use scientific notation for small magnitudes")
	fs.Float64Var(&cfg.LargeThreshold, "large-threshold", cfg.LargeThreshold, "Large-number cutoff magnitude (0 for default)")
	fs.Float64Var(&cfg.SmallThreshold, "small-threshold", cfg.SmallThreshold, "Small-number cutoff magnitude (0 for default)")
	fs.BoolVar(&cfg.ShowDecimal, "show-decimal", cfg.ShowDecimal, "Force a decimal part on integer values")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Treat NaN and infinities as errors")
	fs.StringVar(&cfg.InputFile, "input", cfg.InputFile, "File of values to format, one per line (\"-\" for stdin)")
	fs.StringVar(&cfg.InputFile, "i", cfg.InputFile, "Shorthand for -input")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "Write formatted output to this file instead of stdout")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "Shorthand for -output")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "Launch the interactive explorer")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Suppress informational output")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "Shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Shorthand for -verbose")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address during batch runs")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Maximum run duration")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "Generate a shell completion script (bash, zsh, fish)")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options] [value ...]\n\n", programName)
		fmt.Fprintf(errWriter, "Formats numbers into human-readable strings. With no values and no\n")
		fmt.Fprintf(errWriter, "-input file, an interactive prompt is started.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)
	cfg.Values = fs.Args()

	if err := validate(cfg); err != nil {
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate rejects configurations the formatter itself cannot check, such as
// flag combinations that select more than one run mode.
func validate(cfg AppConfig) error {
	if cfg.Precision != unsetPrecision && cfg.SigFigs != 0 {
		return apperrors.NewConfigError("-precision and -sig-figs are mutually exclusive")
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.TUI && cfg.InputFile != "" {
		return apperrors.NewConfigError("-tui cannot be combined with -input")
	}
	if cfg.TUI && len(cfg.Values) > 0 {
		return apperrors.NewConfigError("-tui cannot be combined with positional values")
	}
	switch cfg.Completion {
	case "", "bash", "zsh", "fish":
	default:
		return apperrors.NewConfigError("unsupported completion shell %q", cfg.Completion)
	}
	return nil
}

// FormatterOptions translates the configuration into core formatter options.
// Validation of the resulting set is left to readnum.New.
func (c AppConfig) FormatterOptions() []readnum.Option {
	opts := []readnum.Option{
		readnum.WithDigitGroupSize(c.GroupSize),
		readnum.WithDigitGroupDelimiter(c.Delimiter),
		readnum.WithDecimalSymbol(c.DecimalSymbol),
		readnum.WithShortform(c.Shortform),
		readnum.WithExponentForLargeNumbers(c.ExpLarge),
		readnum.WithExponentForSmallNumbers(c.ExpSmall),
		readnum.WithShowDecimalPartIfInteger(c.ShowDecimal),
		readnum.WithStrictNonFinite(c.Strict),
	}
	if c.Precision != unsetPrecision {
		opts = append(opts, readnum.WithPrecision(c.Precision))
	}
	if c.SigFigs != 0 {
		opts = append(opts, readnum.WithSignificantFigures(c.SigFigs))
	}
	if c.LargeThreshold != 0 {
		opts = append(opts, readnum.WithLargeNumberThreshold(c.LargeThreshold))
	}
	if c.SmallThreshold != 0 {
		opts = append(opts, readnum.WithSmallNumberThreshold(c.SmallThreshold))
	}
	return opts
}
