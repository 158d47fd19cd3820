package sim

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/san-kum/pksim/internal/analysis"
	"github.com/san-kum/pksim/internal/drugs"
	"github.com/san-kum/pksim/internal/interventions"
	"github.com/san-kum/pksim/internal/pk"
)

func defaultInputs() Inputs {
	return Inputs{
		Drug:               pk.DrugInputs{DoseMg: 30, BodyWeightKg: 70, BaseUrinePh: 6.5},
		SleepThresholdNgML: 13,
		TimeStepH:          0.1,
		DosingIntervalH:    24,
	}
}

func vitaminC(doseMg, timeH float64) pk.Intervention {
	return interventions.NewVitaminC(interventions.VitaminCInputs{
		DoseMg:                      doseMg,
		TimeH:                       timeH,
		UrineFlowLPerH:              0.06,
		BufferCapacityMmolPerLPerPh: 30,
	})
}

var _ = Describe("Simulator", func() {
	var in Inputs

	BeforeEach(func() {
		in = defaultInputs()
	})

	Describe("Run", func() {
		It("aligns every series on the pH time axis", func() {
			res := New(drugs.NewAmphetamine(), vitaminC(1800, 2)).Run(in)

			Expect(res.Ph).To(HaveLen(241))
			Expect(res.Concentrations.Aligned()).To(BeTrue())
			for i, p := range res.Ph {
				Expect(res.Concentrations.SingleDose[i].TimeH).To(Equal(p.TimeH))
			}
		})

		It("never produces negative concentrations", func() {
			res := New(drugs.NewAmphetamine(), vitaminC(4000, 0)).Run(in)
			for _, s := range []pk.Series{
				res.Concentrations.SingleDose,
				res.Concentrations.SteadyState,
				res.Concentrations.Baseline.SingleDose,
				res.Concentrations.Baseline.SteadyState,
			} {
				for _, p := range s {
					Expect(p.ValueMgL).To(BeNumerically(">=", 0))
				}
			}
		})

		It("is deterministic", func() {
			s := New(drugs.NewAmphetamine(), vitaminC(1800, 2), WithDefaultMetrics())
			a, b := s.Run(in), s.Run(in)
			Expect(a.Ph).To(Equal(b.Ph))
			Expect(a.Concentrations).To(Equal(b.Concentrations))
			Expect(a.Metrics).To(Equal(b.Metrics))
		})

		It("starts at the closed-form initial concentration", func() {
			res := New(drugs.NewAmphetamine(), vitaminC(0, 2)).Run(in)
			want := (0.96 * 0.294 * 30) / (3.14 * 70)
			Expect(res.Concentrations.SingleDose[0].ValueMgL).To(BeNumerically("~", want, 1e-12))
		})

		Context("without any vitamin C", func() {
			It("keeps pH flat and matches the baseline", func() {
				res := New(drugs.NewAmphetamine(), vitaminC(0, 2)).Run(in)

				for _, p := range res.Ph {
					Expect(p.Ph).To(Equal(6.5))
				}
				c := res.Concentrations
				for i := range c.SingleDose {
					Expect(c.SingleDose[i].ValueMgL).To(BeNumerically("~", c.Baseline.SingleDose[i].ValueMgL, 1e-12))
					Expect(c.SteadyState[i].ValueMgL).To(BeNumerically("~", c.Baseline.SteadyState[i].ValueMgL, 1e-12))
				}
			})
		})

		Context("when vitamin C is taken after the interval", func() {
			It("leaves pH untouched", func() {
				res := New(drugs.NewAmphetamine(), vitaminC(1800, 30)).Run(in)
				for _, p := range res.Ph {
					Expect(p.Ph).To(Equal(6.5))
				}
			})
		})

		Context("with 1800 mg vitamin C at 2 h", func() {
			var res *Result

			BeforeEach(func() {
				res = New(drugs.NewAmphetamine(), vitaminC(1800, 2), WithDefaultMetrics()).Run(in)
			})

			It("leaves pH at baseline at the administration instant", func() {
				Expect(res.Ph[20].TimeH).To(Equal(2.0))
				Expect(res.Ph[20].Ph).To(Equal(6.5))
			})

			It("acidifies and then recovers", func() {
				oneHourAfter := 6.5 - res.Ph[30].Ph
				fourHoursAfter := 6.5 - res.Ph[60].Ph
				Expect(oneHourAfter).To(BeNumerically(">", fourHoursAfter))
				Expect(fourHoursAfter).To(BeNumerically(">", 0))
			})

			It("clears the drug faster than the baseline", func() {
				c := res.Concentrations
				Expect(c.SteadyState[len(c.SteadyState)-1].ValueMgL).
					To(BeNumerically("<", c.Baseline.SteadyState[len(c.Baseline.SteadyState)-1].ValueMgL))
			})

			It("reports the default metrics", func() {
				Expect(res.Metrics).To(HaveKey("peak_concentration"))
				Expect(res.Metrics).To(HaveKey("auc"))
				Expect(res.Metrics["min_urine_ph"]).To(BeNumerically("<", 6.5))
				Expect(res.Metrics["hours_outside_safe_ph"]).To(BeNumerically(">=", 0))
			})
		})

		It("reports immediate onset for a huge threshold", func() {
			in.SleepThresholdNgML = 1000
			res := New(drugs.NewAmphetamine(), vitaminC(1800, 2)).Run(in)

			both, ok := res.Sleep.(analysis.Both)
			Expect(ok).To(BeTrue())
			Expect(both.WithH).To(BeZero())
			Expect(both.WithoutH).To(BeZero())
			Expect(both.GainedH).To(BeZero())
		})

		It("reports neither for a tiny threshold", func() {
			in.SleepThresholdNgML = 0.001
			res := New(drugs.NewAmphetamine(), vitaminC(1800, 2)).Run(in)
			Expect(res.Sleep).To(BeAssignableToTypeOf(analysis.Neither{}))
		})

		It("summarizes the baseline curve", func() {
			res := New(drugs.NewAmphetamine(), vitaminC(1800, 2)).Run(in)
			k := (7.14 + 7.41) / (3.14 * 70)
			Expect(res.Summary.EliminationRatePerH).To(BeNumerically("~", k, 1e-9))
			Expect(res.Summary.HalfLifeH).To(BeNumerically("~", math.Ln2/k, 1e-6))
			Expect(res.Summary.AccumulationFactor).To(BeNumerically(">", 1))
		})

		Context("with degenerate inputs", func() {
			It("returns zeros for a zero body weight", func() {
				in.Drug.BodyWeightKg = 0
				res := New(drugs.NewAmphetamine(), vitaminC(1800, 2)).Run(in)
				for _, p := range res.Concentrations.SteadyState {
					Expect(p.ValueMgL).To(BeZero())
				}
				Expect(res.Summary.AccumulationFactor).To(Equal(1.0))
			})

			It("returns a single sample for a non-positive time step", func() {
				in.TimeStepH = 0
				res := New(drugs.NewAmphetamine(), vitaminC(1800, 2)).Run(in)
				Expect(res.Ph).To(HaveLen(1))
				Expect(res.Concentrations.Aligned()).To(BeTrue())
			})
		})

		It("treats a nil intervention as none", func() {
			s := New(drugs.NewAmphetamine(), nil)
			Expect(s.Intervention().Name()).To(Equal("none"))
		})

		It("accepts a logger", func() {
			s := New(drugs.NewAmphetamine(), vitaminC(1800, 2), WithLogger(zap.NewExample()))
			Expect(s.Run(in).Ph).NotTo(BeEmpty())
		})
	})

	Describe("Baseline", func() {
		It("matches a run with no intervention", func() {
			base := New(drugs.NewAmphetamine(), vitaminC(1800, 2)).Baseline(in)
			none := New(drugs.NewAmphetamine(), interventions.None{}).Run(in)
			Expect(base.Ph).To(Equal(none.Ph))
			Expect(base.Summary).To(Equal(none.Summary))
		})
	})
})
