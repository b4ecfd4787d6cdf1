package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/readnum"
	"github.com/agbru/readnum/internal/cli"
	apperrors "github.com/agbru/readnum/internal/errors"
	"github.com/agbru/readnum/internal/logging"
	"github.com/agbru/readnum/internal/metrics"
	"github.com/agbru/readnum/internal/server"
)

// runFormat orchestrates the non-TUI run modes: batch formatting of
// positional values and input files, or the interactive prompt when no
// values were given.
func (a *Application) runFormat(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	formatter, err := readnum.New(a.Config.FormatterOptions()...)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	// Gather values: positional arguments first, then the input file.
	values := a.Config.Values
	if a.Config.InputFile != "" {
		fileValues, err := cli.ReadValuesFile(a.Config.InputFile)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorInput
		}
		values = append(values, fileValues...)
	}

	// No values and no input file: start the interactive prompt.
	if len(values) == 0 {
		repl := cli.NewREPL(formatter)
		repl.SetOutput(out)
		repl.Start()
		return apperrors.ExitSuccess
	}

	logger := logging.NewLogger(a.ErrWriter, "readnum")

	if !a.Config.Quiet {
		cli.DisplayRunConfig(out, a.Config)
	}

	m := metrics.NewMetrics()
	summary, err := a.runBatchWithMetricsServer(ctx, formatter, values, out, m, logger)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			fmt.Fprintf(a.ErrWriter, "Error: run exceeded the %s timeout\n", a.Config.Timeout)
			return apperrors.ExitErrorTimeout
		case errors.Is(err, context.Canceled):
			return apperrors.ExitErrorCanceled
		default:
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}

	if summary.Failed > 0 {
		return apperrors.ExitErrorInput
	}
	return apperrors.ExitSuccess
}

// runBatchWithMetricsServer runs the batch, optionally exposing the metrics
// endpoint for its duration. The server is shut down once the batch ends.
func (a *Application) runBatchWithMetricsServer(ctx context.Context, formatter *readnum.Formatter,
	values []string, out io.Writer, m *metrics.Metrics, logger logging.Logger) (cli.RunSummary, error) {

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}

	if a.Config.MetricsAddr == "" {
		return cli.RunBatch(ctx, formatter, values, out, a.ErrWriter, m, logger, outputCfg)
	}

	serverCtx, stopServer := context.WithCancel(ctx)
	defer stopServer()

	var g errgroup.Group
	srv := server.New(a.Config.MetricsAddr, m, logger)
	g.Go(func() error { return srv.Run(serverCtx) })

	summary, err := cli.RunBatch(ctx, formatter, values, out, a.ErrWriter, m, logger, outputCfg)

	stopServer()
	if srvErr := g.Wait(); srvErr != nil {
		logger.Error("metrics server failed", srvErr)
	}
	return summary, err
}
