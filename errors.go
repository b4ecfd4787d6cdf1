package readnum

import "fmt"

// ConfigError represents an invalid or mutually-incompatible set of
// formatting options supplied at construction time or through a per-call
// override. It indicates that the formatter cannot proceed with the
// requested configuration.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// newConfigError creates a new ConfigError with a formatted message.
func newConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InputError represents a value that cannot be formatted, such as NaN or
// an infinity when StrictNonFinite is enabled.
type InputError struct {
	// Value is the offending input value.
	Value float64
	// Message explains why the value was rejected.
	Message string
}

// Error returns a formatted message describing the input failure.
func (e InputError) Error() string {
	return fmt.Sprintf("input error for value %v: %s", e.Value, e.Message)
}
