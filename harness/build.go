package harness

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// BuildConfig describes where standalone kernel binaries come from and
// where they go.
type BuildConfig struct {
	// ModuleDir is the root of this module; binaries build from
	// ModuleDir/cmd/<kernel>.
	ModuleDir string
	BinDir    string
	// Flags are extra `go build` flags, e.g. -gcflags=-B.
	Flags []string
}

// ResolveBinary returns the expected binary path for a kernel.
func ResolveBinary(binDir, kernelName string) string {
	name := kernelName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	return filepath.Join(binDir, name)
}

// Build compiles the standalone binary for the given kernel.
func Build(
	ctx context.Context,
	logger *slog.Logger,
	cfg BuildConfig,
	kernelName string,
) (string, error) {
	srcDir := filepath.Join(cfg.ModuleDir, "cmd", kernelName)
	binPath := ResolveBinary(cfg.BinDir, kernelName)

	if _, err := os.Stat(srcDir); err != nil {
		return "", fmt.Errorf("unknown kernel %q: %w", kernelName, err)
	}

	logger.InfoContext(ctx, "building kernel binary",
		slog.String("kernel", kernelName),
		slog.String("source_dir", srcDir),
		slog.Any("flags", cfg.Flags),
	)

	args := make([]string, 0, len(cfg.Flags)+4)
	args = append(args, "build")
	args = append(args, cfg.Flags...)
	args = append(args, "-o", binPath, "./"+filepath.ToSlash(
		filepath.Join("cmd", kernelName),
	))

	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = cfg.ModuleDir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("build %s: %w", kernelName, err)
	}

	if _, err := os.Stat(binPath); err != nil {
		return "", fmt.Errorf(
			"build %s: binary not found at %s", kernelName, binPath,
		)
	}

	logger.InfoContext(ctx, "kernel binary built",
		slog.String("kernel", kernelName),
		slog.String("binary", binPath),
	)

	return binPath, nil
}
