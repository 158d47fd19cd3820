package viz

import (
	"math"

	"github.com/san-kum/pksim/internal/pk"
)

// ConcentrationAxisMax returns the upper bound (ng/mL) of the concentration
// chart: the largest series value or threshold, rounded up to a multiple of
// ten, plus 20. Without data it falls back to 100 or just above the
// thresholds.
func ConcentrationAxisMax(c pk.Concentrations, userNgML, naiveNgML, adjustedNgML float64) float64 {
	if len(c.SingleDose) == 0 {
		return math.Max(100, math.Max(userNgML+10, adjustedNgML+10))
	}

	peak := 0.0
	for _, s := range []pk.Series{c.SteadyState, c.SingleDose, c.Baseline.SteadyState, c.Baseline.SingleDose} {
		for _, p := range s {
			v := pk.MgLToNgML(p.ValueMgL)
			if !math.IsInf(v, 0) && !math.IsNaN(v) {
				peak = math.Max(peak, v)
			}
		}
	}

	top := math.Max(math.Max(peak, userNgML), math.Max(naiveNgML, adjustedNgML))
	return math.Ceil(top/10)*10 + 20
}

// PhAxisRange pads the observed pH range by 0.2 and widens it to show the
// safety window with 0.5 margin.
func PhAxisRange(ph pk.PhSeries, safe pk.SafetyWindow) (lo, hi float64) {
	lo, hi = safe.Min-0.5, safe.Max+0.5

	minPh, maxPh := math.Inf(1), math.Inf(-1)
	for _, p := range ph {
		if math.IsInf(p.Ph, 0) || math.IsNaN(p.Ph) {
			continue
		}
		minPh = math.Min(minPh, p.Ph)
		maxPh = math.Max(maxPh, p.Ph)
	}
	if math.IsInf(minPh, 1) {
		return lo, hi
	}
	return math.Min(minPh-0.2, lo), math.Max(maxPh+0.2, hi)
}
