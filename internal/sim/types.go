package sim

import (
	"github.com/san-kum/pksim/internal/analysis"
	"github.com/san-kum/pksim/internal/pk"
)

// Inputs are the per-run scalars of one calculation.
type Inputs struct {
	Drug               pk.DrugInputs
	SleepThresholdNgML float64
	TimeStepH          float64
	DosingIntervalH    float64
}

type Result struct {
	Ph             pk.PhSeries
	Concentrations pk.Concentrations
	Sleep          analysis.SleepAnalysis
	Summary        analysis.Summary
	Metrics        map[string]float64
}
