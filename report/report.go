// Package report formats benchmark results: the plain two-line output of
// a single run, and comparison tables, JSON, charts, metrics and history
// for a suite.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/weiihann/kernbench/harness"
	"github.com/weiihann/kernbench/kernel"
)

var printer = message.NewPrinter(language.English)

// Plain writes the witness line and the elapsed-time line of one run.
func Plain(w io.Writer, r harness.Result) error {
	if _, err := fmt.Fprintf(w, "%s: %s\n", r.Kernel, r.Witness); err != nil {
		return fmt.Errorf("write witness: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s took %.9f\n", r.Kernel, r.ElapsedSeconds); err != nil {
		return fmt.Errorf("write elapsed: %w", err)
	}

	return nil
}

// PlainAll writes Plain for every result in order.
func PlainAll(w io.Writer, results []harness.Result) error {
	for _, r := range results {
		if err := Plain(w, r); err != nil {
			return err
		}
	}

	return nil
}

// Generate writes a markdown comparison table for the given summaries.
func Generate(w io.Writer, summaries []Summary) error {
	if len(summaries) == 0 {
		return fmt.Errorf("no results to report")
	}

	fastest := findFastest(summaries)

	// Header.
	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	// Witness stability check.
	if unstable := unstableWitnesses(summaries); len(unstable) == 0 {
		fmt.Fprintln(w, "Witnesses: **stable across runs**")
	} else {
		fmt.Fprintln(w, "Witnesses: **MISMATCH**")

		for _, s := range unstable {
			fmt.Fprintf(w, "  - %s: %s\n", s.Kernel,
				strings.Join(s.Witnesses, " | "))
		}
	}

	fmt.Fprintln(w)

	// Table header.
	fmt.Fprintln(w, "| Kernel | Category | Runs | Median | Min | Max "+
		"| Peak Mem | Relative |")
	fmt.Fprintln(w, "|--------|----------|------|--------|-----|-----"+
		"|----------|----------|")

	for _, s := range summaries {
		relative := 1.0
		if fastest > 0 && s.MedianSeconds > 0 {
			relative = s.MedianSeconds / fastest
		}

		fmt.Fprintf(w, "| %s | %s | %d | %s | %s | %s | %s | %.2fx |\n",
			s.Kernel,
			s.Category,
			s.Runs,
			formatSeconds(s.MedianSeconds),
			formatSeconds(s.MinSeconds),
			formatSeconds(s.MaxSeconds),
			formatBytes(s.PeakMemoryBytes),
			relative,
		)
	}

	fmt.Fprintln(w)

	// Witness rows.
	fmt.Fprintln(w, "| Kernel | Seed | Witness |")
	fmt.Fprintln(w, "|--------|------|---------|")

	for _, s := range summaries {
		fmt.Fprintf(w, "| %s | %d | %s |\n",
			s.Kernel,
			s.Seed,
			formatWitness(s.Witness),
		)
	}

	return nil
}

// GenerateJSON writes doc as indented JSON to w.
func GenerateJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

func unstableWitnesses(summaries []Summary) []Summary {
	var out []Summary
	for _, s := range summaries {
		if !s.WitnessStable {
			out = append(out, s)
		}
	}

	return out
}

func findFastest(summaries []Summary) float64 {
	fastest := math.Inf(1)
	for _, s := range summaries {
		if s.MedianSeconds > 0 && s.MedianSeconds < fastest {
			fastest = s.MedianSeconds
		}
	}

	if math.IsInf(fastest, 1) {
		return 0
	}

	return fastest
}

func formatSeconds(s float64) string {
	switch {
	case s < 1e-3:
		return fmt.Sprintf("%.2fµs", s*1e6)
	case s < 1:
		return fmt.Sprintf("%.2fms", s*1e3)
	default:
		return fmt.Sprintf("%.2fs", s)
	}
}

// formatWitness groups the digits of integer fields for reading.
func formatWitness(w kernel.Witness) string {
	parts := make([]string, len(w))
	for i, f := range w {
		if v, ok := f.Value.(int64); ok {
			parts[i] = printer.Sprintf("%s=%d", f.Name, v)

			continue
		}

		parts[i] = f.Name + "=" + f.String()
	}

	return strings.Join(parts, " ")
}

func formatBytes(b uint64) string {
	if b == 0 {
		return "-"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(b)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	formatted := fmt.Sprintf("%.1f", size)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")

	return formatted + " " + units[unit]
}
