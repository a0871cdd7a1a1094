package util

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mihai-snyk/genopt/pkg/genetic/framework"
)

// PlotConvergence renders a line chart of the best and mean fitness of every generation
// in history as an HTML page.
func PlotConvergence(w io.Writer, history []framework.GenerationStats, problemName, algorithmName string) error {
	if len(history) == 0 {
		return fmt.Errorf("history is empty for %s problem", problemName)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Convergence for %s Problem", algorithmName, problemName),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "generation",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "fitness",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	generations := make([]string, len(history))
	best := make([]opts.LineData, len(history))
	mean := make([]opts.LineData, len(history))
	for i, s := range history {
		generations[i] = strconv.Itoa(s.Generation)
		best[i] = opts.LineData{Value: s.Best}
		mean[i] = opts.LineData{Value: s.Mean}
	}

	line.SetXAxis(generations).
		AddSeries("Best", best).
		AddSeries("Mean", mean).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithLineChartOpts(opts.LineChart{
				ShowSymbol: opts.Bool(true),
			}),
		)

	return line.Render(w)
}

// PlotConvergenceFile writes the chart produced by PlotConvergence to path.
func PlotConvergenceFile(path string, history []framework.GenerationStats, problemName, algorithmName string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return PlotConvergence(f, history, problemName, algorithmName)
}
