package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart renders an HTML page with a bar chart of median, min and max
// elapsed seconds per kernel.
func Chart(w io.Writer, summaries []Summary) error {
	if len(summaries) == 0 {
		return fmt.Errorf("no results to chart")
	}

	names := make([]string, len(summaries))
	medians := make([]opts.BarData, len(summaries))
	mins := make([]opts.BarData, len(summaries))
	maxes := make([]opts.BarData, len(summaries))

	for i, s := range summaries {
		names[i] = s.Kernel
		medians[i] = opts.BarData{Name: s.Kernel, Value: s.MedianSeconds}
		mins[i] = opts.BarData{Name: s.Kernel, Value: s.MinSeconds}
		maxes[i] = opts.BarData{Name: s.Kernel, Value: s.MaxSeconds}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Kernel timings",
			Subtitle: "Elapsed seconds of the timed region",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "seconds"}),
	)

	bar.SetXAxis(names).
		AddSeries("median", medians).
		AddSeries("min", mins).
		AddSeries("max", maxes)

	page := components.NewPage()
	page.PageTitle = "kernbench"
	page.AddCharts(bar)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return nil
}
