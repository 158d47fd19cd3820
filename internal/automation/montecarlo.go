package automation

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/pksim/internal/analysis"
	"github.com/san-kum/pksim/internal/config"
	"github.com/san-kum/pksim/internal/experiment"
)

// MonteCarloConfig perturbs patient inputs uniformly around Base. Sampled
// values are clamped to config.DefaultBounds.
type MonteCarloConfig struct {
	Base           *config.Config
	NumTrials      int
	Seed           int64
	WeightSpreadKg float64
	PhSpread       float64
	FlowSpread     float64
}

type MonteCarloResult struct {
	TrialID        int
	BodyWeightKg   float64
	BaseUrinePh    float64
	UrineFlowLPerH float64
	Sleep          analysis.SleepAnalysis
}

// RunMonteCarlo runs NumTrials perturbed experiments. A zero seed uses the
// clock.
func RunMonteCarlo(ctx context.Context, cfg MonteCarloConfig, registry *experiment.Registry, log *zap.Logger) ([]MonteCarloResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	results := make([]MonteCarloResult, 0, cfg.NumTrials)

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := config.DefaultBounds

	for trial := 0; trial < cfg.NumTrials; trial++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		c := cfg.Base.Clone()
		c.BodyWeightKg = b.BodyWeightKg.Clamp(c.BodyWeightKg + (rng.Float64()-0.5)*2*cfg.WeightSpreadKg)
		c.BaseUrinePh = b.BaseUrinePh.Clamp(c.BaseUrinePh + (rng.Float64()-0.5)*2*cfg.PhSpread)
		c.VitaminC.UrineFlowLPerH = b.UrineFlowLPerH.Clamp(c.VitaminC.UrineFlowLPerH + (rng.Float64()-0.5)*2*cfg.FlowSpread)

		exp, err := experiment.New(registry, c, nil)
		if err != nil {
			return results, err
		}

		results = append(results, MonteCarloResult{
			TrialID:        trial,
			BodyWeightKg:   c.BodyWeightKg,
			BaseUrinePh:    c.BaseUrinePh,
			UrineFlowLPerH: c.VitaminC.UrineFlowLPerH,
			Sleep:          exp.Run().Sleep,
		})

		if (trial+1)%100 == 0 {
			log.Debug("monte carlo progress", zap.Int("done", trial+1), zap.Int("trials", cfg.NumTrials))
		}
	}

	return results, nil
}

// MonteCarloStats counts outcomes and summarizes hours gained over the
// trials where both curves reach the threshold.
type MonteCarloStats struct {
	Trials        int
	Outcomes      map[string]int
	MeanGainedH   float64
	MedianGainedH float64
	MinGainedH    float64
	MaxGainedH    float64
}

func Stats(results []MonteCarloResult) MonteCarloStats {
	s := MonteCarloStats{
		Trials:   len(results),
		Outcomes: make(map[string]int),
	}

	gained := make([]float64, 0, len(results))
	for _, r := range results {
		s.Outcomes[r.Sleep.Outcome()]++
		if b, ok := r.Sleep.(analysis.Both); ok {
			gained = append(gained, b.GainedH)
		}
	}
	if len(gained) == 0 {
		return s
	}

	sort.Float64s(gained)
	sum := 0.0
	for _, g := range gained {
		sum += g
	}
	s.MeanGainedH = sum / float64(len(gained))
	s.MinGainedH = gained[0]
	s.MaxGainedH = gained[len(gained)-1]

	mid := len(gained) / 2
	if len(gained)%2 == 0 {
		s.MedianGainedH = (gained[mid-1] + gained[mid]) / 2
	} else {
		s.MedianGainedH = gained[mid]
	}
	return s
}
