package harness

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/workload"
)

// Runner times kernels in the current process.
type Runner struct {
	Clock  Clock
	Logger *slog.Logger
}

// NewRunner creates a Runner on the system monotonic clock.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{
		Clock:  MonotonicClock{},
		Logger: logger,
	}
}

// Run prepares k, times exactly its task, and returns the result. Input
// generation and witness extraction happen outside the timed region.
func (r *Runner) Run(ctx context.Context, k kernel.Kernel) (*Result, error) {
	logger := r.Logger.With(slog.String("kernel", k.Name()))

	task, err := k.Prepare(workload.NewGenerator(k.Seed()))
	if err != nil {
		return nil, fmt.Errorf("prepare %s: %w", k.Name(), err)
	}

	// Collect generation garbage so it is not paid for inside the region.
	runtime.GC()

	timer := NewTimer(r.Clock)
	if err := timer.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", k.Name(), err)
	}

	task.Run()

	elapsed, err := timer.Stop()
	if err != nil {
		return nil, fmt.Errorf("stop %s: %w", k.Name(), err)
	}

	witness := task.Witness()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	logger.DebugContext(ctx, "kernel finished",
		slog.Duration("elapsed", elapsed),
		slog.String("witness", witness.String()),
	)

	return &Result{
		Kernel:          k.Name(),
		Category:        string(k.Category()),
		Seed:            k.Seed(),
		Witness:         witness,
		ElapsedSeconds:  elapsed.Seconds(),
		PeakMemoryBytes: m.Sys,
	}, nil
}

// RunAll runs every kernel runs times in sequence. The context is checked
// between runs; a kernel that has started always runs to completion.
func (r *Runner) RunAll(
	ctx context.Context,
	kernels []kernel.Kernel,
	runs int,
) ([]Result, error) {
	if runs <= 0 {
		return nil, fmt.Errorf(
			"%w: runs = %d must be positive",
			workload.ErrInvalidConfiguration, runs,
		)
	}

	results := make([]Result, 0, len(kernels)*runs)

	for _, k := range kernels {
		r.Logger.InfoContext(ctx, "running kernel",
			slog.String("kernel", k.Name()),
			slog.String("category", string(k.Category())),
			slog.Int64("seed", k.Seed()),
			slog.Int("runs", runs),
		)

		for i := 0; i < runs; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			res, err := r.Run(ctx, k)
			if err != nil {
				return nil, err
			}

			res.Run = i + 1
			results = append(results, *res)
		}
	}

	return results, nil
}
