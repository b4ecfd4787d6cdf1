// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--precision"),
			expected: "invalid value 42 for flag --precision",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		input       string
		cause       error
		expectedMsg string
		checkIs     error
		checkUnwrap bool
	}{
		{
			name:        "Error names the input",
			input:       "12abc",
			cause:       errors.New("invalid syntax"),
			expectedMsg: `cannot format "12abc": invalid syntax`,
		},
		{
			name:        "Unwrap returns cause",
			input:       "NaN",
			cause:       errors.New("value is not a finite number"),
			expectedMsg: `cannot format "NaN": value is not a finite number`,
			checkUnwrap: true,
		},
		{
			name:        "errors.Is works with wrapped error",
			input:       "1e9",
			cause:       context.Canceled,
			expectedMsg: `cannot format "1e9": context canceled`,
			checkIs:     context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := FormatError{Input: tt.input, Cause: tt.cause}

			if err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, err.Error())
			}

			if tt.checkUnwrap && err.Unwrap() != tt.cause {
				t.Error("Unwrap should return the original cause")
			}

			if tt.checkIs != nil && !errors.Is(err, tt.checkIs) {
				t.Errorf("errors.Is should find %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      TimeoutError
		expected string
	}{
		{
			name:     "Error returns formatted message",
			err:      TimeoutError{Operation: "batch", Limit: 30 * time.Second},
			expected: `operation "batch" timed out after 30s`,
		},
		{
			name:     "Error with subsecond limit",
			err:      TimeoutError{Operation: "repl read", Limit: 500 * time.Millisecond},
			expected: `operation "repl read" timed out after 500ms`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "group-size", Message: "must be positive"}
	expected := `validation error for "group-size": must be positive`
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestIOError(t *testing.T) {
	t.Parallel()
	cause := errors.New("permission denied")
	err := IOError{Op: "read", Path: "values.txt", Cause: cause}

	expected := "read values.txt: permission denied"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause in the chain")
	}

	var ioErr IOError
	wrapped := fmt.Errorf("batch failed: %w", err)
	if !errors.As(wrapped, &ioErr) {
		t.Error("errors.As should recover the IOError through wrapping")
	}
	if ioErr.Path != "values.txt" {
		t.Errorf("recovered Path = %q, want %q", ioErr.Path, "values.txt")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	t.Run("wraps with context", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("disk full")
		err := WrapError(cause, "writing output %s", "out.txt")
		expected := "writing output out.txt: disk full"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
		if !errors.Is(err, cause) {
			t.Error("wrapped error should match the cause with errors.Is")
		}
	})

	t.Run("nil error stays nil", func(t *testing.T) {
		t.Parallel()
		if err := WrapError(nil, "context"); err != nil {
			t.Errorf("WrapError(nil) = %v, want nil", err)
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), true},
		{"plain error", errors.New("other"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}
