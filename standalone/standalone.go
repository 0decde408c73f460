// Package standalone is the shared main of the per-kernel executables.
// Each executable takes no arguments, runs its kernel once with the
// default parameters and prints the two-line plain report.
package standalone

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/weiihann/kernbench/harness"
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/report"
)

// Main runs k and exits the process, with status 1 on any failure.
func Main(k kernel.Kernel) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	if err := Run(context.Background(), os.Stdout, logger, k); err != nil {
		logger.Error("benchmark failed",
			slog.String("kernel", k.Name()),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

// Run times one run of k and writes its plain report to w.
func Run(ctx context.Context, w io.Writer, logger *slog.Logger, k kernel.Kernel) error {
	result, err := harness.NewRunner(logger).Run(ctx, k)
	if err != nil {
		return err
	}

	if err := report.Plain(w, *result); err != nil {
		return fmt.Errorf("report %s: %w", k.Name(), err)
	}

	return nil
}
