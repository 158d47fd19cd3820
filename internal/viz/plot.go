package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pksim/internal/pk"
)

type PlotOptions struct {
	Width  int
	Height int
}

var DefaultPlotOptions = PlotOptions{Width: 72, Height: 14}

// ConcentrationPlot draws the steady-state curves with and without the
// intervention and the sleep threshold, in ng/mL.
func ConcentrationPlot(c pk.Concentrations, thresholdNgML, adjustedNgML, naiveNgML float64, o PlotOptions) string {
	if len(c.SteadyState) == 0 {
		return ""
	}

	with := toNgML(c.SteadyState)
	without := toNgML(c.Baseline.SteadyState)
	threshold := make([]float64, len(with))
	for i := range threshold {
		threshold[i] = thresholdNgML
	}

	top := ConcentrationAxisMax(c, thresholdNgML, naiveNgML, adjustedNgML)
	return asciigraph.PlotMany(
		[][]float64{with, without, threshold},
		asciigraph.Height(o.Height),
		asciigraph.Width(o.Width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(top),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red, asciigraph.Yellow),
		asciigraph.Caption(fmt.Sprintf("steady state ng/mL over %gh: green with, red without, yellow threshold %g",
			c.SteadyState[len(c.SteadyState)-1].TimeH, thresholdNgML)),
	)
}

// PhPlot draws urine pH over the dosing interval.
func PhPlot(ph pk.PhSeries, safe pk.SafetyWindow, o PlotOptions) string {
	if len(ph) == 0 {
		return ""
	}
	lo, hi := PhAxisRange(ph, safe)
	return asciigraph.Plot(ph.Values(),
		asciigraph.Height(o.Height/2+1),
		asciigraph.Width(o.Width),
		asciigraph.LowerBound(lo),
		asciigraph.UpperBound(hi),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Blue),
		asciigraph.Caption(fmt.Sprintf("urine pH (safe %.1f-%.1f)", safe.Min, safe.Max)),
	)
}

func toNgML(s pk.Series) []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = pk.MgLToNgML(p.ValueMgL)
	}
	return out
}
