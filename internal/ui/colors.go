package ui

// Accessor functions return the escape code of the corresponding category in
// the currently active theme. Presentation code uses these instead of raw
// escape codes so theme switches and NO_COLOR take effect everywhere at once.

// ColorPrimary returns the main accent color code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the secondary color code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorSuccess returns the success color code.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the warning color code.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the error color code.
func ColorError() string { return GetCurrentTheme().Error }

// ColorInfo returns the informational color code.
func ColorInfo() string { return GetCurrentTheme().Info }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
