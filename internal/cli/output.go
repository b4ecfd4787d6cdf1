// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayRunSummary].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatResultLine].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultsToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/readnum/internal/format"
	"github.com/agbru/readnum/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the results (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything except the formatted values.
	Quiet bool
	// Verbose echoes the raw input alongside each formatted value.
	Verbose bool
}

// RunSummary aggregates the outcome of a batch formatting run.
type RunSummary struct {
	// Total is the number of input values processed.
	Total int
	// Failed is the number of values that could not be formatted.
	Failed int
	// Duration is the wall-clock duration of the run.
	Duration time.Duration
}

// FormatResultLine formats one result for display. In verbose mode the raw
// input is echoed before the formatted value so batch output stays traceable
// to its source lines.
//
// Parameters:
//   - raw: The input token as read.
//   - formatted: The formatted representation.
//   - verbose: Whether to include the raw input.
//
// Returns:
//   - string: The display line, without a trailing newline.
func FormatResultLine(raw, formatted string, verbose bool) string {
	if verbose {
		return fmt.Sprintf("%s => %s", raw, formatted)
	}
	return formatted
}

// DisplayResult outputs one formatted value with colorization.
//
// Parameters:
//   - out: The output writer.
//   - raw: The input token as read.
//   - formatted: The formatted representation.
//   - config: Output configuration.
func DisplayResult(out io.Writer, raw, formatted string, config OutputConfig) {
	if config.Quiet {
		DisplayQuietResult(out, formatted)
		return
	}
	if config.Verbose {
		fmt.Fprintf(out, "%s%s%s => %s%s%s\n",
			ui.ColorSecondary(), raw, ui.ColorReset(),
			ui.ColorSuccess(), formatted, ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "%s%s%s\n", ui.ColorSuccess(), formatted, ui.ColorReset())
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
// The line carries no color codes, so it is safe to pipe into other tools.
//
// Parameters:
//   - out: The output writer.
//   - formatted: The formatted representation.
func DisplayQuietResult(out io.Writer, formatted string) {
	fmt.Fprintln(out, formatted)
}

// DisplayFormatError reports a value that could not be formatted.
//
// Parameters:
//   - out: The output writer.
//   - raw: The input token as read.
//   - err: The formatting or parse error.
func DisplayFormatError(out io.Writer, raw string, err error) {
	fmt.Fprintf(out, "%s✗ %q: %v%s\n", ui.ColorError(), raw, err, ui.ColorReset())
}

// WriteResultsToFile writes formatted results to a file, creating parent
// directories as needed. A commented header records run provenance.
//
// Parameters:
//   - lines: The formatted result lines, in input order.
//   - summary: The run summary written into the header.
//   - config: Output configuration; no-op when OutputFile is empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultsToFile(lines []string, summary RunSummary, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Formatted Values\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Values: %d\n", summary.Total)
	fmt.Fprintf(file, "# Failed: %d\n", summary.Failed)
	fmt.Fprintf(file, "# Duration: %s\n", format.FormatExecutionDuration(summary.Duration))
	fmt.Fprintf(file, "\n")

	for _, line := range lines {
		fmt.Fprintln(file, line)
	}

	return nil
}

// DisplayRunSummary shows the outcome of a batch run: counts, failures and
// duration, with colorized status.
//
// Parameters:
//   - out: The output writer.
//   - summary: The run summary to display.
func DisplayRunSummary(out io.Writer, summary RunSummary) {
	fmt.Fprintf(out, "\n%sRun summary:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Values:   %s%d%s\n", ui.ColorInfo(), summary.Total, ui.ColorReset())
	if summary.Failed > 0 {
		fmt.Fprintf(out, "  Failed:   %s%d%s\n", ui.ColorError(), summary.Failed, ui.ColorReset())
	} else {
		fmt.Fprintf(out, "  Failed:   %s0%s\n", ui.ColorSuccess(), ui.ColorReset())
	}
	fmt.Fprintf(out, "  Duration: %s%s%s\n", ui.ColorInfo(), format.FormatExecutionDuration(summary.Duration), ui.ColorReset())
}

// DisplaySavedTo confirms that results were written to a file.
func DisplaySavedTo(out io.Writer, path string) {
	fmt.Fprintf(out, "\n%s✓ Results saved to: %s%s%s\n",
		ui.ColorSuccess(), ui.ColorInfo(), path, ui.ColorReset())
}

// padRight returns the string followed by enough spaces to reach the given
// extra length. Used for aligning columns that carry ANSI color codes, which
// defeat fmt's width verbs.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}
