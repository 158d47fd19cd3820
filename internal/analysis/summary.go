package analysis

import (
	"math"

	"github.com/san-kum/pksim/internal/pk"
)

// Summary holds PK parameters derived from the baseline single-dose curve.
type Summary struct {
	EliminationRatePerH  float64 `json:"eliminationRateConstant"`
	HalfLifeH            float64 `json:"halfLifeH"`
	AccumulationFactor   float64 `json:"accumulationFactor"`
	TroughSteadyStateMgL float64 `json:"troughSteadyStateMgL"`
}

// Summarize estimates k = ln(C0/Cend)/tau from the first and last baseline
// single-dose samples. When either end is non-positive or the interval is
// not positive, rate and half-life are 0 and the accumulation factor is 1.
// An infinite accumulation factor contributes no trough.
func Summarize(c pk.Concentrations, dosingIntervalH float64) Summary {
	s := Summary{AccumulationFactor: 1}
	c0, cEnd := c.Baseline.SingleDose.First(), c.Baseline.SingleDose.Last()
	if c0 > 0 && cEnd > 0 && dosingIntervalH > 0 {
		s.EliminationRatePerH = math.Log(c0/cEnd) / dosingIntervalH
		s.HalfLifeH = math.Ln2 / s.EliminationRatePerH
		s.AccumulationFactor = pk.AccumulationFactor(s.EliminationRatePerH, dosingIntervalH)
	}
	if !math.IsInf(s.AccumulationFactor, 0) {
		s.TroughSteadyStateMgL = cEnd * s.AccumulationFactor
	}
	return s
}
