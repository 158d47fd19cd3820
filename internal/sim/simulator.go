package sim

import (
	"math"

	"go.uber.org/zap"

	"github.com/san-kum/pksim/internal/analysis"
	"github.com/san-kum/pksim/internal/interventions"
	"github.com/san-kum/pksim/internal/metrics"
	"github.com/san-kum/pksim/internal/pk"
)

// Simulator threads one drug and one intervention through pH generation,
// concentration modelling and analysis. Metrics are stateful, so a Simulator
// must not run concurrently with itself.
type Simulator struct {
	drug         pk.Drug
	intervention pk.Intervention
	concMetrics  []pk.Metric
	phMetrics    []pk.Metric
	log          *zap.Logger
}

type Option func(*Simulator)

func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// WithConcentrationMetric observes the steady-state series with the
// intervention, in mg/L.
func WithConcentrationMetric(m pk.Metric) Option {
	return func(s *Simulator) { s.concMetrics = append(s.concMetrics, m) }
}

// WithPhMetric observes the urine pH series.
func WithPhMetric(m pk.Metric) Option {
	return func(s *Simulator) { s.phMetrics = append(s.phMetrics, m) }
}

// WithDefaultMetrics installs peak concentration, AUC, minimum pH and hours
// outside the urine pH safety window.
func WithDefaultMetrics() Option {
	return func(s *Simulator) {
		s.concMetrics = append(s.concMetrics, metrics.NewPeakConcentration(), metrics.NewAUC())
		s.phMetrics = append(s.phMetrics, metrics.NewMinPh(), metrics.NewHoursOutsideSafePh(pk.UrinePhSafety))
	}
}

func New(drug pk.Drug, intervention pk.Intervention, opts ...Option) *Simulator {
	if intervention == nil {
		intervention = interventions.None{}
	}
	s := &Simulator{
		drug:         drug,
		intervention: intervention,
		concMetrics:  make([]pk.Metric, 0),
		phMetrics:    make([]pk.Metric, 0),
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) Drug() pk.Drug                 { return s.drug }
func (s *Simulator) Intervention() pk.Intervention { return s.intervention }

// Run generates the pH series, computes the concentration bundle, and
// analyzes it. Degenerate inputs yield degenerate outputs rather than errors.
func (s *Simulator) Run(in Inputs) *Result {
	ph := interventions.GenerateSeries(in.Drug.BaseUrinePh, s.intervention, in.DosingIntervalH, in.TimeStepH)
	return s.evaluate(ph, in)
}

// Baseline runs the same pipeline at constant base pH.
func (s *Simulator) Baseline(in Inputs) *Result {
	ph := interventions.Flat(in.Drug.BaseUrinePh, in.DosingIntervalH, in.TimeStepH)
	return s.evaluate(ph, in)
}

func (s *Simulator) evaluate(ph pk.PhSeries, in Inputs) *Result {
	conc := s.drug.Concentrations(ph, in.Drug, in.TimeStepH)

	result := &Result{
		Ph:             ph,
		Concentrations: conc,
		Sleep:          analysis.AnalyzeSleep(conc, in.SleepThresholdNgML),
		Summary:        analysis.Summarize(conc, in.DosingIntervalH),
		Metrics:        make(map[string]float64, len(s.concMetrics)+len(s.phMetrics)),
	}

	for _, m := range s.concMetrics {
		m.Reset()
		for _, p := range conc.SteadyState {
			m.Observe(p.TimeH, p.ValueMgL)
		}
		result.Metrics[m.Name()] = m.Value()
	}
	for _, m := range s.phMetrics {
		m.Reset()
		for _, p := range ph {
			m.Observe(p.TimeH, p.Ph)
		}
		result.Metrics[m.Name()] = m.Value()
	}

	if math.IsInf(result.Summary.AccumulationFactor, 0) {
		s.log.Debug("baseline accumulation factor is infinite, no steady-state trough applied")
	}
	s.log.Debug("run complete",
		zap.String("drug", s.drug.Name()),
		zap.String("intervention", s.intervention.Name()),
		zap.Int("samples", len(ph)),
		zap.String("sleep", result.Sleep.Outcome()),
		zap.Float64("half_life_h", result.Summary.HalfLifeH),
	)

	return result
}
