package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/briandowns/spinner"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/readnum"
	apperrors "github.com/agbru/readnum/internal/errors"
	"github.com/agbru/readnum/internal/format"
	"github.com/agbru/readnum/internal/logging"
	"github.com/agbru/readnum/internal/metrics"
)

// tracerName identifies this package's spans in trace backends.
const tracerName = "github.com/agbru/readnum/internal/cli"

// ReadValues reads value tokens from r, one per line. Blank lines and lines
// starting with '#' are skipped, so value files can carry comments.
//
// Parameters:
//   - r: The source of newline-separated values.
//
// Returns:
//   - []string: The trimmed value tokens, in input order.
//   - error: A read error, if any.
func ReadValues(r io.Reader) ([]string, error) {
	var values []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		values = append(values, line)
	}
	return values, scanner.Err()
}

// ReadValuesFile reads value tokens from the named file, or from stdin when
// the path is "-".
func ReadValuesFile(path string) ([]string, error) {
	if path == "-" {
		return ReadValues(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &apperrors.IOError{Op: "open", Path: path, Cause: err}
	}
	defer f.Close()
	values, err := ReadValues(f)
	if err != nil {
		return nil, &apperrors.IOError{Op: "read", Path: path, Cause: err}
	}
	return values, nil
}

// batchResult holds the outcome of formatting one input token. Results are
// stored by index so concurrent workers preserve input order.
type batchResult struct {
	formatted string
	mode      readnum.Mode
	err       error
}

// RunBatch formats a list of value tokens concurrently and writes the results
// in input order. Individual values that fail to parse or format are reported
// on errOut and counted, but do not abort the batch; only context
// cancellation stops the run early.
//
// Parameters:
//   - ctx: Cancellation and deadline control for the run.
//   - formatter: The configured formatter.
//   - values: The raw value tokens.
//   - out: The destination for formatted values.
//   - errOut: The destination for progress display and per-value errors.
//   - m: The metrics sink.
//   - logger: The structured logger.
//   - config: Output configuration.
//
// Returns:
//   - RunSummary: Counts and duration of the run.
//   - error: A context or file output error; per-value failures are only
//     reflected in the summary.
func RunBatch(ctx context.Context, formatter *readnum.Formatter, values []string,
	out, errOut io.Writer, m *metrics.Metrics, logger logging.Logger, config OutputConfig) (RunSummary, error) {

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "batch.format",
		trace.WithAttributes(attribute.Int("values.count", len(values))))
	defer span.End()

	start := time.Now()
	results := make([]batchResult, len(values))

	var done atomic.Int64
	stopProgress := startProgressDisplay(errOut, len(values), &done, config)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, raw := range values {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatOne(formatter, raw)
			done.Add(1)
			return nil
		})
	}
	runErr := g.Wait()
	stopProgress()

	summary := RunSummary{Total: len(values)}
	lines := make([]string, 0, len(values))
	for i, res := range results {
		if runErr != nil && res.formatted == "" && res.err == nil {
			// Worker never ran this index before cancellation.
			continue
		}
		if res.err != nil {
			summary.Failed++
			m.RecordError()
			logger.Error("format failed", res.err, logging.String("input", values[i]))
			DisplayFormatError(errOut, values[i], res.err)
			continue
		}
		m.RecordValue(string(res.mode))
		logger.Debug("value formatted", logging.String("input", values[i]), logging.String("mode", string(res.mode)))
		line := FormatResultLine(values[i], res.formatted, config.Verbose)
		lines = append(lines, line)
		DisplayResult(out, values[i], res.formatted, config)
	}

	summary.Duration = time.Since(start)
	m.ObserveBatchDuration(summary.Duration.Seconds())
	span.SetAttributes(attribute.Int("values.failed", summary.Failed))

	if runErr != nil {
		return summary, runErr
	}

	if err := WriteResultsToFile(lines, summary, config); err != nil {
		return summary, err
	}
	if config.OutputFile != "" && !config.Quiet {
		DisplaySavedTo(out, config.OutputFile)
	}
	if !config.Quiet {
		DisplayRunSummary(out, summary)
	}
	if config.Verbose && !config.Quiet {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		DisplayMemoryStats(ms.HeapAlloc, ms.TotalAlloc, ms.NumGC, ms.PauseTotalNs, out)
	}
	logger.Info("batch complete",
		logging.Int("values", summary.Total),
		logging.Int("failed", summary.Failed),
		logging.String("duration", format.FormatExecutionDuration(summary.Duration)))

	return summary, nil
}

// formatOne parses and formats a single token. Integer-looking tokens go
// through FormatInt so digits beyond float64 precision are kept exact.
func formatOne(formatter *readnum.Formatter, raw string) batchResult {
	token := strings.TrimSpace(raw)

	if !strings.ContainsAny(token, ".eE") {
		if iv, err := strconv.ParseInt(token, 10, 64); err == nil {
			formatted, err := formatter.FormatInt(iv)
			if err != nil {
				return batchResult{err: &apperrors.FormatError{Input: raw, Cause: err}}
			}
			return batchResult{formatted: formatted, mode: formatter.Mode(float64(iv))}
		}
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return batchResult{err: &apperrors.FormatError{Input: raw, Cause: err}}
	}
	formatted, err := formatter.Format(v)
	if err != nil {
		return batchResult{err: &apperrors.FormatError{Input: raw, Cause: err}}
	}
	return batchResult{formatted: formatted, mode: formatter.Mode(v)}
}

// startProgressDisplay starts a spinner with a progress bar and ETA on errOut
// and returns a function that stops it. The display is suppressed in quiet
// mode and for trivially small batches.
func startProgressDisplay(errOut io.Writer, total int, done *atomic.Int64, config OutputConfig) func() {
	if config.Quiet || total < 2 {
		return func() {}
	}

	sp := newSpinner(spinner.WithWriter(errOut))
	progress := format.NewProgressWithETA(1)
	sp.Start()

	stop := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(ProgressRefreshRate)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				avg, eta := progress.UpdateWithETA(0, float64(done.Load())/float64(total))
				sp.UpdateSuffix(" " + format.FormatProgressBarWithETA(avg, eta, ProgressBarWidth))
			}
		}
	}()

	return func() {
		close(stop)
		<-finished
		sp.Stop()
	}
}
