package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/weiihann/kernbench/harness"
	"github.com/weiihann/kernbench/kernel"
)

func fixtureSummaries() []Summary {
	return []Summary{
		{
			Kernel:          "sieve",
			Category:        "compute",
			Runs:            3,
			Times:           []float64{0.012, 0.010, 0.011},
			MedianSeconds:   0.011,
			MinSeconds:      0.010,
			MaxSeconds:      0.012,
			Witness:         kernel.Witness{kernel.Int("primes", 148933)},
			WitnessStable:   true,
			PeakMemoryBytes: 64 * 1024 * 1024,
		},
		{
			Kernel:        "binary-search",
			Category:      "search",
			Seed:          12345,
			Runs:          3,
			Times:         []float64{0.005, 0.0055, 0.006},
			MedianSeconds: 0.0055,
			MinSeconds:    0.005,
			MaxSeconds:    0.006,
			Witness:       kernel.Witness{kernel.Int("hits", 100077)},
			WitnessStable: true,
		},
		{
			Kernel:          "convolution",
			Category:        "stencil",
			Runs:            1,
			Times:           []float64{0.0000125},
			MedianSeconds:   0.0000125,
			MinSeconds:      0.0000125,
			MaxSeconds:      0.0000125,
			Witness:         kernel.Witness{kernel.Float("center", 1)},
			WitnessStable:   true,
			PeakMemoryBytes: 1536,
		},
	}
}

func TestGenerateGolden(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, fixtureSummaries()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "markdown", buf.Bytes())
}

func TestGenerateMismatchedWitnesses(t *testing.T) {
	summaries := []Summary{
		{
			Kernel:        "sort",
			Category:      "sort",
			Runs:          2,
			MedianSeconds: 0.1,
			Witness:       kernel.Witness{kernel.Int("first", 1)},
			WitnessStable: false,
			Witnesses:     []string{"first=1", "first=2"},
		},
	}

	var buf bytes.Buffer
	if err := Generate(&buf, summaries); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "MISMATCH") {
		t.Error("expected MISMATCH for differing witnesses")
	}
	if !strings.Contains(output, "first=1 | first=2") {
		t.Error("expected both witnesses in mismatch details")
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, nil)
	if err == nil {
		t.Error("expected error for empty results")
	}
}

func TestGenerateJSON(t *testing.T) {
	results := []harness.Result{
		{
			Kernel:         "sieve",
			Category:       "compute",
			Run:            1,
			Witness:        kernel.Witness{kernel.Int("primes", 25)},
			ElapsedSeconds: 0.5,
		},
	}

	var buf bytes.Buffer
	if err := GenerateJSON(&buf, NewDocument(results, false)); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	var parsed Document
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if parsed.RunID == "" {
		t.Error("expected a run id")
	}
	if len(parsed.Summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(parsed.Summaries))
	}
	if parsed.Summaries[0].Kernel != "sieve" {
		t.Errorf("kernel = %q, want sieve", parsed.Summaries[0].Kernel)
	}
	if got := parsed.Results[0].Witness.String(); got != "primes=25" {
		t.Errorf("witness = %q, want primes=25", got)
	}
}

func TestPlain(t *testing.T) {
	r := harness.Result{
		Kernel:         "string-parse",
		Witness:        kernel.Witness{kernel.Int("tokens", 3), kernel.Int("total_len", 3)},
		ElapsedSeconds: 0.25,
	}

	var buf bytes.Buffer
	if err := Plain(&buf, r); err != nil {
		t.Fatalf("Plain failed: %v", err)
	}

	want := "string-parse: tokens=3 total_len=3\nstring-parse took 0.250000000\n"
	if buf.String() != want {
		t.Errorf("Plain = %q, want %q", buf.String(), want)
	}
}

func TestPlainParsesBack(t *testing.T) {
	r := harness.Result{
		Kernel: "transpose",
		Witness: kernel.Witness{
			kernel.Float("checksum", 7.2253125e+06),
		},
		ElapsedSeconds: 0.000123456,
	}

	var buf bytes.Buffer
	if err := Plain(&buf, r); err != nil {
		t.Fatalf("Plain failed: %v", err)
	}

	parsed, err := harness.ParseOutput("transpose", &buf)
	if err != nil {
		t.Fatalf("ParseOutput failed: %v", err)
	}

	if parsed.Witness.String() != r.Witness.String() {
		t.Errorf("witness = %q, want %q", parsed.Witness, r.Witness)
	}
	if parsed.ElapsedSeconds != r.ElapsedSeconds {
		t.Errorf("elapsed = %v, want %v", parsed.ElapsedSeconds, r.ElapsedSeconds)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input uint64
		want  string
	}{
		{0, "-"},
		{512, "512 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{1073741824, "1 GB"},
	}

	for _, tt := range tests {
		got := formatBytes(tt.input)
		if got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0.00µs"},
		{0.0000005, "0.50µs"},
		{0.0005, "500.00µs"},
		{0.001, "1.00ms"},
		{0.5, "500.00ms"},
		{1, "1.00s"},
		{60, "60.00s"},
	}

	for _, tt := range tests {
		got := formatSeconds(tt.input)
		if got != tt.want {
			t.Errorf("formatSeconds(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatWitness(t *testing.T) {
	w := kernel.Witness{
		kernel.Int("tokens", 1111110),
		kernel.Int("small", 12),
		kernel.Float("center", 1.5),
	}

	want := "tokens=1,111,110 small=12 center=1.5"
	if got := formatWitness(w); got != want {
		t.Errorf("formatWitness = %q, want %q", got, want)
	}
}
