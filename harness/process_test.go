package harness

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBinary writes a shell script standing in for a kernel binary.
func fakeBinary(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	path := filepath.Join(t.TempDir(), "kernel.sh")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	return path
}

func TestProcessRunnerRun(t *testing.T) {
	bin := fakeBinary(t, `echo "fibonacci: fib=9227465"
echo "fibonacci took 0.042"`)

	runner := NewProcessRunner("fibonacci", "recursion", bin, nil, discardLogger())

	result, err := runner.Run(context.Background(), ProcessConfig{
		Timeout: 10 * time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, "fibonacci", result.Kernel)
	assert.Equal(t, "recursion", result.Category)
	assert.Equal(t, 0.042, result.ElapsedSeconds)
	assert.Equal(t, "fib=9227465", result.Witness.String())
	assert.Greater(t, result.WallSeconds, 0.0)
}

func TestProcessRunnerPassesEnv(t *testing.T) {
	bin := fakeBinary(t, `echo "sieve: primes=$KERNBENCH_TEST_PRIMES"
echo "sieve took 0.5"`)

	runner := NewProcessRunner("sieve", "compute", bin,
		[]string{"KERNBENCH_TEST_PRIMES=25"}, discardLogger())

	result, err := runner.Run(context.Background(), ProcessConfig{})
	require.NoError(t, err)
	assert.Equal(t, "primes=25", result.Witness.String())
}

func TestProcessRunnerFailure(t *testing.T) {
	bin := fakeBinary(t, `echo "invalid configuration" >&2
exit 1`)

	runner := NewProcessRunner("sieve", "compute", bin, nil, discardLogger())

	_, err := runner.Run(context.Background(), ProcessConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestProcessRunnerTimeout(t *testing.T) {
	bin := fakeBinary(t, `exec sleep 5`)

	runner := NewProcessRunner("sieve", "compute", bin, nil, discardLogger())

	_, err := runner.Run(context.Background(), ProcessConfig{
		Timeout: 50 * time.Millisecond,
	})
	assert.Error(t, err)
}

func requireGo(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("builds a kernel binary")
	}

	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not on PATH")
	}
}

func TestBuildAndRunKernelBinary(t *testing.T) {
	requireGo(t)

	moduleDir, err := filepath.Abs("..")
	require.NoError(t, err)

	binDir := t.TempDir()

	bin, err := Build(context.Background(), discardLogger(), BuildConfig{
		ModuleDir: moduleDir,
		BinDir:    binDir,
		Flags:     []string{"-trimpath"},
	}, "fibonacci")
	require.NoError(t, err)
	assert.Equal(t, ResolveBinary(binDir, "fibonacci"), bin)

	runner := NewProcessRunner("fibonacci", "recursion", bin, nil, discardLogger())

	result, err := runner.Run(context.Background(), ProcessConfig{
		Timeout: time.Minute,
	})
	require.NoError(t, err)

	assert.Equal(t, "fib=9227465", result.Witness.String())
	assert.GreaterOrEqual(t, result.ElapsedSeconds, 0.0)
	assert.GreaterOrEqual(t, result.WallSeconds, result.ElapsedSeconds)
}

func TestBuildRejectsBadFlags(t *testing.T) {
	requireGo(t)

	moduleDir, err := filepath.Abs("..")
	require.NoError(t, err)

	_, err = Build(context.Background(), discardLogger(), BuildConfig{
		ModuleDir: moduleDir,
		BinDir:    t.TempDir(),
		Flags:     []string{"-no-such-flag"},
	}, "fibonacci")
	assert.Error(t, err)
}
