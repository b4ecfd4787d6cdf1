// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the READNUM_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides,
// grouped as numeric, float, duration, string and boolean entries.
var envOverrides = []envOverride{
	// Numeric overrides
	{"GROUP_SIZE", []string{"group-size"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.GroupSize = parsed
		}
	}},
	{"PRECISION", []string{"precision", "p"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Precision = parsed
		}
	}},
	{"SIG_FIGS", []string{"sig-figs"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SigFigs = parsed
		}
	}},

	// Float overrides
	{"LARGE_THRESHOLD", []string{"large-threshold"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.LargeThreshold = parsed
		}
	}},
	{"SMALL_THRESHOLD", []string{"small-threshold"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.SmallThreshold = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"DELIMITER", []string{"delimiter"}, func(c *AppConfig, v string) {
		c.Delimiter = v
	}},
	{"DECIMAL_SYMBOL", []string{"decimal-symbol"}, func(c *AppConfig, v string) {
		c.DecimalSymbol = v
	}},
	{"INPUT", []string{"input", "i"}, func(c *AppConfig, v string) {
		c.InputFile = v
	}},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) {
		c.OutputFile = v
	}},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, v string) {
		c.MetricsAddr = v
	}},

	// Boolean overrides
	{"SHORTFORM", []string{"shortform", "s"}, func(c *AppConfig, v string) {
		c.Shortform = parseBoolEnv(v, c.Shortform)
	}},
	{"EXP_LARGE", []string{"exp-large"}, func(c *AppConfig, v string) {
		c.ExpLarge = parseBoolEnv(v, c.ExpLarge)
	}},
	{"EXP_SMALL", []string{"exp-small"}, func(c *AppConfig, v string) {
		c.ExpSmall = parseBoolEnv(v, c.ExpSmall)
	}},
	{"SHOW_DECIMAL", []string{"show-decimal"}, func(c *AppConfig, v string) {
		c.ShowDecimal = parseBoolEnv(v, c.ShowDecimal)
	}},
	{"STRICT", []string{"strict"}, func(c *AppConfig, v string) {
		c.Strict = parseBoolEnv(v, c.Strict)
	}},
	{"TUI", []string{"tui"}, func(c *AppConfig, v string) {
		c.TUI = parseBoolEnv(v, c.TUI)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"VERBOSE", []string{"v", "verbose"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with READNUM_):
//   - GROUP_SIZE, PRECISION, SIG_FIGS, LARGE_THRESHOLD, SMALL_THRESHOLD,
//     TIMEOUT, DELIMITER, DECIMAL_SYMBOL, INPUT, OUTPUT, METRICS_ADDR,
//     SHORTFORM, EXP_LARGE, EXP_SMALL, SHOW_DECIMAL, STRICT, TUI, QUIET,
//     VERBOSE
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
