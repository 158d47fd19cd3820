package analysis

import "github.com/san-kum/pksim/internal/pk"

// SleepOnset returns the time of the first sample at or below the threshold
// (ng/mL). The series is scanned in order; monotonicity is not assumed.
func SleepOnset(s pk.Series, thresholdNgML float64) (float64, bool) {
	thresholdMgL := pk.NgMLToMgL(thresholdNgML)
	for _, p := range s {
		if p.ValueMgL <= thresholdMgL {
			return p.TimeH, true
		}
	}
	return 0, false
}

// SleepAnalysis is one of Neither, OnlyWith, OnlyWithout or Both, depending on
// which steady-state series reach the sleep threshold within the interval.
type SleepAnalysis interface {
	WithInterventionH() (float64, bool)
	WithoutInterventionH() (float64, bool)
	Outcome() string
	sleepAnalysis()
}

// Neither: no series reaches the threshold.
type Neither struct{}

// OnlyWith: only the intervention series reaches the threshold.
type OnlyWith struct {
	WithH float64
}

// OnlyWithout: only the baseline series reaches the threshold.
type OnlyWithout struct {
	WithoutH float64
}

type Both struct {
	WithH    float64
	WithoutH float64
	GainedH  float64
}

func (Neither) WithInterventionH() (float64, bool)    { return 0, false }
func (Neither) WithoutInterventionH() (float64, bool) { return 0, false }
func (Neither) Outcome() string                       { return "neither" }
func (Neither) sleepAnalysis()                        {}

func (o OnlyWith) WithInterventionH() (float64, bool)  { return o.WithH, true }
func (OnlyWith) WithoutInterventionH() (float64, bool) { return 0, false }
func (OnlyWith) Outcome() string                       { return "only_with" }
func (OnlyWith) sleepAnalysis()                        {}

func (OnlyWithout) WithInterventionH() (float64, bool)      { return 0, false }
func (o OnlyWithout) WithoutInterventionH() (float64, bool) { return o.WithoutH, true }
func (OnlyWithout) Outcome() string                         { return "only_without" }
func (OnlyWithout) sleepAnalysis()                          {}

func (b Both) WithInterventionH() (float64, bool)    { return b.WithH, true }
func (b Both) WithoutInterventionH() (float64, bool) { return b.WithoutH, true }
func (Both) Outcome() string                         { return "both" }
func (Both) sleepAnalysis()                          {}

// ImprovementPercent returns GainedH relative to WithH. It is undefined when
// sleep is possible immediately with the intervention (WithH == 0).
func (b Both) ImprovementPercent() (float64, bool) {
	if b.WithH == 0 {
		return 0, false
	}
	return b.GainedH / b.WithH * 100, true
}

// AnalyzeSleep compares sleep onset on the intervention and baseline
// steady-state series.
func AnalyzeSleep(c pk.Concentrations, thresholdNgML float64) SleepAnalysis {
	with, okWith := SleepOnset(c.SteadyState, thresholdNgML)
	without, okWithout := SleepOnset(c.Baseline.SteadyState, thresholdNgML)

	switch {
	case okWith && okWithout:
		return Both{WithH: with, WithoutH: without, GainedH: without - with}
	case okWith:
		return OnlyWith{WithH: with}
	case okWithout:
		return OnlyWithout{WithoutH: without}
	default:
		return Neither{}
	}
}

// SleepFields is the flat, nullable form of a SleepAnalysis.
type SleepFields struct {
	Outcome              string   `json:"outcome"`
	WithInterventionH    *float64 `json:"soonestWithInterventionH"`
	WithoutInterventionH *float64 `json:"soonestWithoutInterventionH"`
	GainedH              *float64 `json:"additionalSleepHoursGained"`
	ImprovementPercent   *float64 `json:"sleepImprovementPercent"`
}

func Fields(s SleepAnalysis) SleepFields {
	f := SleepFields{Outcome: s.Outcome()}
	if v, ok := s.WithInterventionH(); ok {
		f.WithInterventionH = &v
	}
	if v, ok := s.WithoutInterventionH(); ok {
		f.WithoutInterventionH = &v
	}
	if b, ok := s.(Both); ok {
		gained := b.GainedH
		f.GainedH = &gained
		if pct, ok := b.ImprovementPercent(); ok {
			f.ImprovementPercent = &pct
		}
	}
	return f
}
