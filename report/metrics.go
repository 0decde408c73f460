package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteMetrics writes summaries to path in the Prometheus text exposition
// format, suitable for a node_exporter textfile collector.
func WriteMetrics(path string, summaries []Summary) error {
	reg, err := metricsRegistry(summaries)
	if err != nil {
		return err
	}

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	return nil
}

func metricsRegistry(summaries []Summary) (*prometheus.Registry, error) {
	elapsed := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "kernbench",
		Name:      "elapsed_seconds",
		Help:      "Median elapsed seconds of the timed region.",
	}, []string{"kernel", "category"})

	runs := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "kernbench",
		Name:      "runs",
		Help:      "Number of timed runs.",
	}, []string{"kernel"})

	witness := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "kernbench",
		Name:      "witness",
		Help:      "Witness values of the first run of each kernel.",
	}, []string{"kernel", "field"})

	stable := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "kernbench",
		Name:      "witness_stable",
		Help:      "1 if every run produced the same witness.",
	}, []string{"kernel"})

	reg := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{elapsed, runs, witness, stable} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}

	for _, s := range summaries {
		elapsed.WithLabelValues(s.Kernel, s.Category).Set(s.MedianSeconds)
		runs.WithLabelValues(s.Kernel).Set(float64(s.Runs))

		for _, f := range s.Witness {
			witness.WithLabelValues(s.Kernel, f.Name).Set(f.Float64())
		}

		v := 0.0
		if s.WitnessStable {
			v = 1
		}
		stable.WithLabelValues(s.Kernel).Set(v)
	}

	return reg, nil
}
