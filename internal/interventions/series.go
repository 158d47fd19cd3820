package interventions

import (
	"math"

	"github.com/san-kum/pksim/internal/pk"
)

// boundaryTol is the relative tolerance for snapping the last grid sample to
// the interval boundary.
const boundaryTol = 1e-9

// MaxSamples bounds the number of grid steps in one dosing interval.
const MaxSamples = 1_000_000

// TimeGrid returns sample times 0, step, 2*step, ... up to intervalH. The last
// sample is always exactly intervalH: it is snapped when the grid lands within
// tolerance and appended when the step does not divide the interval. A
// non-positive or non-finite step or interval, or a grid of more than
// MaxSamples steps, yields the single sample t=0.
func TimeGrid(intervalH, stepH float64) []float64 {
	if !(stepH > 0) || !(intervalH > 0) || math.IsInf(intervalH, 0) || math.IsInf(stepH, 0) {
		return []float64{0}
	}
	if !(intervalH/stepH <= MaxSamples) {
		return []float64{0}
	}

	n := int(math.Floor(intervalH/stepH + boundaryTol))
	times := make([]float64, n+1, n+2)
	for i := range times {
		times[i] = float64(i) * stepH
	}

	tol := boundaryTol * math.Max(1, intervalH)
	if times[n] >= intervalH-tol {
		times[n] = intervalH
	} else {
		times = append(times, intervalH)
	}
	return times
}

// GenerateSeries samples iv over one dosing interval.
func GenerateSeries(basePh float64, iv pk.Intervention, dosingIntervalH, timeStepH float64) pk.PhSeries {
	times := TimeGrid(dosingIntervalH, timeStepH)
	series := make(pk.PhSeries, len(times))
	for i, t := range times {
		series[i] = pk.PhPoint{TimeH: t, Ph: iv.UrinePh(basePh, dosingIntervalH, t)}
	}
	return series
}

// Flat is the no-intervention pH series held at basePh.
func Flat(basePh, dosingIntervalH, timeStepH float64) pk.PhSeries {
	return GenerateSeries(basePh, None{}, dosingIntervalH, timeStepH)
}
