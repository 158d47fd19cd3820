package pk

import "math"

// NgMLPerMgL converts mg/L to ng/mL. The model works in mg/L; ng/mL is a
// presentation unit.
const NgMLPerMgL = 1000.0

func MgLToNgML(v float64) float64 { return v * NgMLPerMgL }
func NgMLToMgL(v float64) float64 { return v / NgMLPerMgL }

type PhPoint struct {
	TimeH float64 `json:"timeH"`
	Ph    float64 `json:"ph"`
}

type PhSeries []PhPoint

func (s PhSeries) Times() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.TimeH
	}
	return out
}

func (s PhSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Ph
	}
	return out
}

// End returns the time of the last sample, or 0 for an empty series.
func (s PhSeries) End() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].TimeH
}

type Point struct {
	TimeH    float64 `json:"timeH"`
	ValueMgL float64 `json:"valueMgL"`
}

type Series []Point

func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.ValueMgL
	}
	return out
}

// First returns the first value, or 0 for an empty series.
func (s Series) First() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0].ValueMgL
}

// Last returns the last value, or 0 for an empty series.
func (s Series) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].ValueMgL
}

// SameAxis reports whether both series sample the same time points.
func (s Series) SameAxis(other Series) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i].TimeH != other[i].TimeH {
			return false
		}
	}
	return true
}

type BaselineConcentrations struct {
	SingleDose  Series `json:"singleDoseMgL"`
	SteadyState Series `json:"steadyStateMgL"`
}

// Concentrations is the bundle produced by a concentration model. The dynamic
// series follow the intervention pH path; Baseline holds pH constant at the
// user's baseline. All four series share one time axis.
type Concentrations struct {
	SingleDose  Series                 `json:"singleDoseMgL"`
	SteadyState Series                 `json:"steadyStateMgL"`
	Baseline    BaselineConcentrations `json:"baseline"`
}

func (c Concentrations) Aligned() bool {
	return c.SingleDose.SameAxis(c.SteadyState) &&
		c.SingleDose.SameAxis(c.Baseline.SingleDose) &&
		c.SingleDose.SameAxis(c.Baseline.SteadyState)
}

type DrugInputs struct {
	DoseMg       float64 `json:"doseMg" yaml:"dose_mg"`
	BodyWeightKg float64 `json:"bodyWeightKg" yaml:"body_weight_kg"`
	BaseUrinePh  float64 `json:"baseUrinePh" yaml:"base_urine_ph"`
}

// Intervention computes the instantaneous urinary pH at timeH hours after the
// drug dose. Implementations carry their own inputs and parameters.
type Intervention interface {
	Name() string
	UrinePh(basePh, dosingIntervalH, timeH float64) float64
}

// Drug turns a pH series into the concentration bundle. The dosing interval is
// the time of the last pH sample.
type Drug interface {
	Name() string
	NaiveSleepThresholdNgML() float64
	Concentrations(ph PhSeries, in DrugInputs, timeStepH float64) Concentrations
}

// Integrator advances a concentration over dt hours at a constant
// elimination rate (per hour).
type Integrator interface {
	Step(c, rate, dt float64) float64
}

type Metric interface {
	Name() string
	Observe(t, v float64)
	Value() float64
	Reset()
}

// SafetyWindow is a physiological urine pH range.
type SafetyWindow struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

var UrinePhSafety = SafetyWindow{Min: 4.5, Max: 8.0}

func (w SafetyWindow) Contains(ph float64) bool {
	return ph >= w.Min && ph <= w.Max
}

// AccumulationFactor returns R = 1/(1-exp(-k*tau)). It is +Inf when the rate is
// not positive or the exponential term does not fall below one.
func AccumulationFactor(rate, intervalH float64) float64 {
	if !(rate > 0) {
		return math.Inf(1)
	}
	expTerm := math.Exp(-rate * intervalH)
	if !(expTerm < 1) {
		return math.Inf(1)
	}
	return 1 / (1 - expTerm)
}

// IsFinitePositive reports whether v is a usable, strictly positive rate.
func IsFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
