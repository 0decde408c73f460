package harness

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/weiihann/kernbench/kernel"
)

// tookRE matches the elapsed-time line of a standalone binary.
var tookRE = regexp.MustCompile(`^(\S+) took\s+([0-9.eE+-]+)`)

// ProcessConfig holds parameters for a single child-process run.
type ProcessConfig struct {
	Timeout time.Duration
}

// ProcessRunner launches one kernel's standalone binary and parses what
// it prints.
type ProcessRunner struct {
	Name       string
	Category   string
	BinaryPath string
	Env        []string
	Logger     *slog.Logger
}

// NewProcessRunner creates a ProcessRunner for the named kernel. Env is
// appended to the inherited environment.
func NewProcessRunner(
	name, category, binaryPath string,
	env []string,
	logger *slog.Logger,
) *ProcessRunner {
	return &ProcessRunner{
		Name:       name,
		Category:   category,
		BinaryPath: binaryPath,
		Env:        env,
		Logger:     logger.With(slog.String("kernel", name)),
	}
}

// Run executes the binary once and returns the parsed result. The
// elapsed time is the one the binary reports about its own timed region;
// the wall time of the whole process is kept alongside.
func (r *ProcessRunner) Run(ctx context.Context, cfg ProcessConfig) (*Result, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.BinaryPath)
	cmd.WaitDelay = time.Second

	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Logger.Debug("starting kernel binary",
		slog.String("binary", r.BinaryPath),
	)

	wallStart := time.Now()

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf(
			"kernel %s failed: %w\nstderr: %s",
			r.Name, err, stderr.String(),
		)
	}

	wallElapsed := time.Since(wallStart)

	r.Logger.Debug("kernel binary finished",
		slog.Duration("wall_time", wallElapsed),
	)

	result, err := ParseOutput(r.Name, &stdout)
	if err != nil {
		return nil, fmt.Errorf(
			"parse %s output: %w\nstdout: %s",
			r.Name, err, stdout.String(),
		)
	}

	result.Category = r.Category
	result.WallSeconds = wallElapsed.Seconds()
	result.PeakMemoryBytes = peakRSS(cmd.ProcessState)

	return result, nil
}

// ParseOutput reads the two-line report of a standalone binary:
//
//	<kernel>: name=value ...
//	<kernel> took <seconds>
func ParseOutput(name string, r io.Reader) (*Result, error) {
	result := &Result{Kernel: name}

	var (
		sawWitness bool
		sawTook    bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if m := tookRE.FindStringSubmatch(line); m != nil {
			secs, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				return nil, fmt.Errorf("elapsed %q: %w", m[2], err)
			}
			if secs < 0 {
				return nil, fmt.Errorf("negative elapsed time %v", secs)
			}

			result.ElapsedSeconds = secs
			sawTook = true

			continue
		}

		label, fields, ok := strings.Cut(line, ": ")
		if !ok || label != name {
			continue
		}

		w, err := kernel.ParseWitness(fields)
		if err != nil {
			return nil, err
		}

		result.Witness = w
		sawWitness = true
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read output: %w", err)
	}

	if !sawTook {
		return nil, fmt.Errorf("no elapsed time line for %s", name)
	}

	if !sawWitness {
		return nil, fmt.Errorf("no witness line for %s", name)
	}

	return result, nil
}
