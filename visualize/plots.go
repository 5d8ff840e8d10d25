// Package visualize renders library results as PNG charts via gonum/plot.
// It is a pure presentation layer: every function takes computed values and
// a destination path, and holds no state.
package visualize

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/scistats/scistats/metrics"
	"github.com/scistats/scistats/pkg/errors"
	"github.com/scistats/scistats/stats/montecarlo"
)

// PrecisionRecallPlot renders a precision/recall trade-off curve to path.
func PrecisionRecallPlot(points []metrics.PRPoint, path string) error {
	if len(points) == 0 {
		return errors.NewValueError("PrecisionRecallPlot", "no curve points")
	}

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.Recall
		xys[i].Y = pt.Precision
	}

	p := plot.New()
	p.Title.Text = "Precision/Recall Trade-off"
	p.X.Label.Text = "Recall"
	p.Y.Label.Text = "Precision"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	line, err := plotter.NewLine(xys)
	if err != nil {
		return errors.Wrap(err, "failed to build PR line")
	}
	p.Add(plotter.NewGrid(), line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "failed to save PR plot")
	}
	return nil
}

// CoverageConvergencePlot renders empirical coverage against the number of
// trials, with a horizontal reference line at the nominal confidence level.
func CoverageConvergencePlot(results []montecarlo.CoverageResult, nominal float64, path string) error {
	if len(results) == 0 {
		return errors.NewValueError("CoverageConvergencePlot", "no results")
	}
	if nominal <= 0 || nominal >= 1 {
		return errors.NewValidationError("nominal", "must be in the open interval (0, 1)", nominal)
	}

	xys := make(plotter.XYs, len(results))
	for i, res := range results {
		xys[i].X = float64(res.Trials)
		xys[i].Y = res.Coverage
	}

	p := plot.New()
	p.Title.Text = "Empirical Coverage Convergence"
	p.X.Label.Text = "Trials"
	p.Y.Label.Text = "Coverage"

	line, err := plotter.NewLine(xys)
	if err != nil {
		return errors.Wrap(err, "failed to build coverage line")
	}

	ref := plotter.XYs{
		{X: xys[0].X, Y: nominal},
		{X: xys[len(xys)-1].X, Y: nominal},
	}
	refLine, err := plotter.NewLine(ref)
	if err != nil {
		return errors.Wrap(err, "failed to build reference line")
	}
	refLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	p.Add(plotter.NewGrid(), line, refLine)
	p.Legend.Add("empirical", line)
	p.Legend.Add("nominal", refLine)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "failed to save coverage plot")
	}
	return nil
}

// ImportanceBarChart renders per-feature importances as a bar chart.
// names and importances must have equal length.
func ImportanceBarChart(names []string, importances []float64, path string) error {
	if len(importances) == 0 {
		return errors.NewValueError("ImportanceBarChart", "no importances")
	}
	if len(names) != len(importances) {
		return errors.NewDimensionError("ImportanceBarChart", len(importances), len(names), 1)
	}

	p := plot.New()
	p.Title.Text = "Feature Importances"
	p.Y.Label.Text = "Importance"

	bars, err := plotter.NewBarChart(plotter.Values(importances), vg.Points(20))
	if err != nil {
		return errors.Wrap(err, "failed to build bar chart")
	}
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "failed to save importance chart")
	}
	return nil
}
