package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/weiihann/kernbench/harness"
	"github.com/weiihann/kernbench/kernel"
)

func TestChart(t *testing.T) {
	var buf bytes.Buffer
	if err := Chart(&buf, fixtureSummaries()); err != nil {
		t.Fatalf("Chart failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"<html", "Kernel timings", "sieve", "binary-search"} {
		if !strings.Contains(output, want) {
			t.Errorf("chart missing %q", want)
		}
	}

	if err := Chart(&buf, nil); err == nil {
		t.Error("expected error for empty chart")
	}
}

func TestWriteMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernbench.prom")

	if err := WriteMetrics(path, fixtureSummaries()); err != nil {
		t.Fatalf("WriteMetrics failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	output := string(data)
	for _, want := range []string{
		`kernbench_elapsed_seconds{category="compute",kernel="sieve"} 0.011`,
		`kernbench_runs{kernel="binary-search"} 3`,
		`kernbench_witness{field="primes",kernel="sieve"} 148933`,
		`kernbench_witness_stable{kernel="convolution"} 1`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("metrics missing %q\n%s", want, output)
		}
	}
}

func TestAppendHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	records, err := ReadHistory(path)
	if err != nil {
		t.Fatalf("ReadHistory on missing file: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty history, got %d", len(records))
	}

	results := []harness.Result{
		{Kernel: "sieve", Category: "compute", Run: 1, Witness: kernel.Witness{kernel.Int("primes", 168)}, ElapsedSeconds: 0.01},
		{Kernel: "fibonacci", Category: "recursion", Run: 1, Witness: kernel.Witness{kernel.Int("fib", 55)}, ElapsedSeconds: 0.02},
	}

	first := NewDocument(results, false)
	second := NewDocument(results, true)

	if err := AppendHistory(path, first); err != nil {
		t.Fatalf("AppendHistory failed: %v", err)
	}
	if err := AppendHistory(path, second); err != nil {
		t.Fatalf("AppendHistory failed: %v", err)
	}

	records, err = ReadHistory(path)
	if err != nil {
		t.Fatalf("ReadHistory failed: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}

	if records[0].RunID != first.RunID || records[2].RunID != second.RunID {
		t.Error("records not appended in order")
	}
	if records[0].RunID == records[2].RunID {
		t.Error("expected distinct run ids")
	}
	if !records[3].Isolated {
		t.Error("expected isolated flag on second run")
	}
	if got := records[0].Witness.String(); got != "primes=168" {
		t.Errorf("witness = %q, want primes=168", got)
	}
}

func TestReadHistoryCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadHistory(path); err == nil {
		t.Error("expected error for corrupt history")
	}
}
