// Package charts draws one bar chart per scenario and metric comparing the
// averaged results of each algorithm.
package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"cpu-scheduling-simulator/internal/experiments"
)

// Metric selects one averaged value of a row.
type Metric struct {
	Key   string
	Title string
	Value func(experiments.Row) float64
}

var Metrics = []Metric{
	{Key: "avg_waiting", Title: "Average waiting time", Value: func(r experiments.Row) float64 { return r.AvgWaiting }},
	{Key: "avg_turnaround", Title: "Average turnaround", Value: func(r experiments.Row) float64 { return r.AvgTurnaround }},
	{Key: "avg_response", Title: "Average response time", Value: func(r experiments.Row) float64 { return r.AvgResponse }},
}

// RenderAll writes <scenario>_<metric>.png into dir for every scenario in rows
// and returns the written paths.
func RenderAll(dir string, rows []experiments.Row) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	order, grouped := experiments.GroupByScenario(rows)
	paths := make([]string, 0, len(order)*len(Metrics))
	for _, scenario := range order {
		for _, m := range Metrics {
			path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", scenario, m.Key))
			if err := renderBars(path, scenario, m, grouped[scenario]); err != nil {
				return nil, fmt.Errorf("chart %s: %w", path, err)
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

func renderBars(path, scenario string, m Metric, rows []experiments.Row) error {
	// algorithms by name so every chart has the same axis
	sorted := slices.Clone(rows)
	slices.SortFunc(sorted, func(a, b experiments.Row) int {
		return strings.Compare(a.Algorithm, b.Algorithm)
	})

	values := make(plotter.Values, len(sorted))
	names := make([]string, len(sorted))
	for i, r := range sorted {
		values[i] = m.Value(r)
		names[i] = r.Algorithm
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Scenario: %s - %s", scenario, m.Title)
	p.Y.Label.Text = "Time"

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(names...)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
