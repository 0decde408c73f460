package standalone

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiihann/kernbench/harness"
	"github.com/weiihann/kernbench/kernel"
	"github.com/weiihann/kernbench/workload"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunWritesParseableReport(t *testing.T) {
	k := kernel.NewSieve(kernel.SieveParams{N: 100})

	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), &buf, discardLogger(), k))

	result, err := harness.ParseOutput(kernel.NameSieve, &buf)
	require.NoError(t, err)
	assert.Equal(t, "primes=25", result.Witness.String())
	assert.GreaterOrEqual(t, result.ElapsedSeconds, 0.0)
}

func TestRunInvalidConfiguration(t *testing.T) {
	k := kernel.NewFibonacci(kernel.FibonacciParams{N: 0})

	var buf bytes.Buffer
	err := Run(context.Background(), &buf, discardLogger(), k)
	require.Error(t, err)
	assert.True(t, errors.Is(err, workload.ErrInvalidConfiguration))
	assert.Zero(t, buf.Len(), "no partial output")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRunWriteFailure(t *testing.T) {
	k := kernel.NewFibonacci(kernel.FibonacciParams{N: 10})

	err := Run(context.Background(), failingWriter{}, discardLogger(), k)
	assert.Error(t, err)
}
