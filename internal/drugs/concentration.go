package drugs

import (
	"math"

	"github.com/san-kum/pksim/internal/integrators"
	"github.com/san-kum/pksim/internal/pk"
)

// Concentrations integrates elimination over ph. The rate on each interval is
// taken from the pH at the interval's start. Intervals wider than timeStepH are
// split into equal sub-steps.
func (a *Amphetamine) Concentrations(ph pk.PhSeries, in pk.DrugInputs, timeStepH float64) pk.Concentrations {
	if len(ph) == 0 {
		return pk.Concentrations{}
	}

	vd := a.VolumeOfDistribution(in)
	c0 := a.InitialConcentration(in)
	intervalH := ph.End()

	single := a.decay(c0, ph, vd, timeStepH)

	meanRate := 0.0
	for _, p := range ph {
		meanRate += EliminationRate(p.Ph, vd, a.Params)
	}
	meanRate /= float64(len(ph))

	trough := 0.0
	if r := pk.AccumulationFactor(meanRate, intervalH); !math.IsInf(r, 0) {
		trough = single.Last() * r
	}
	troughDecay := a.decay(trough, ph, vd, timeStepH)

	steady := make(pk.Series, len(single))
	for i, p := range single {
		steady[i] = pk.Point{TimeH: p.TimeH, ValueMgL: p.ValueMgL + troughDecay[i].ValueMgL}
	}

	return pk.Concentrations{
		SingleDose:  single,
		SteadyState: steady,
		Baseline:    a.baseline(c0, ph, vd, in.BaseUrinePh, intervalH),
	}
}

func (a *Amphetamine) decay(c0 float64, ph pk.PhSeries, vd, timeStepH float64) pk.Series {
	integ := a.Integrator
	if integ == nil {
		integ = integrators.NewExponential()
	}

	out := make(pk.Series, len(ph))
	c := c0
	out[0] = pk.Point{TimeH: ph[0].TimeH, ValueMgL: c}

	for i := 1; i < len(ph); i++ {
		rate := EliminationRate(ph[i-1].Ph, vd, a.Params)
		gap := ph[i].TimeH - ph[i-1].TimeH

		switch {
		case math.IsInf(rate, 1):
			c = 0
		case rate > 0 && gap > 0:
			n := substeps(gap, timeStepH)
			h := gap / float64(n)
			for j := 0; j < n; j++ {
				c = integ.Step(c, rate, h)
			}
		}

		out[i] = pk.Point{TimeH: ph[i].TimeH, ValueMgL: c}
	}
	return out
}

func substeps(gap, timeStepH float64) int {
	if !(timeStepH > 0) {
		return 1
	}
	n := int(math.Ceil(gap/timeStepH - 1e-9))
	if n < 1 {
		return 1
	}
	return n
}

// baseline is the closed-form solution at constant pH. A rate that is not
// finite and positive leaves both series flat at c0.
func (a *Amphetamine) baseline(c0 float64, ph pk.PhSeries, vd, basePh, intervalH float64) pk.BaselineConcentrations {
	single := make(pk.Series, len(ph))
	steady := make(pk.Series, len(ph))

	k := EliminationRate(basePh, vd, a.Params)
	if !pk.IsFinitePositive(k) {
		for i, p := range ph {
			single[i] = pk.Point{TimeH: p.TimeH, ValueMgL: c0}
			steady[i] = pk.Point{TimeH: p.TimeH, ValueMgL: c0}
		}
		return pk.BaselineConcentrations{SingleDose: single, SteadyState: steady}
	}

	trough := 0.0
	if r := pk.AccumulationFactor(k, intervalH); !math.IsInf(r, 0) {
		trough = c0 * math.Exp(-k*intervalH) * r
	}

	for i, p := range ph {
		decay := math.Exp(-k * p.TimeH)
		single[i] = pk.Point{TimeH: p.TimeH, ValueMgL: c0 * decay}
		steady[i] = pk.Point{TimeH: p.TimeH, ValueMgL: c0*decay + trough*decay}
	}
	return pk.BaselineConcentrations{SingleDose: single, SteadyState: steady}
}
