package sim

import (
	"context"
	"math"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/pksim/internal/analysis"
	"github.com/san-kum/pksim/internal/pk"
)

// InterventionFactory builds an intervention for one dose and timing.
type InterventionFactory func(doseMg, timeH float64) pk.Intervention

type SweepGrid struct {
	DosesMg []float64
	TimesH  []float64
}

// LinearGrid spans [lo, hi] with n evenly spaced values.
func LinearGrid(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

type SweepPoint struct {
	DoseMg float64
	TimeH  float64
	Sleep  analysis.SleepAnalysis
	MinPh  float64
}

// Score orders sweep points: enabling sleep that is otherwise unreachable
// ranks first, then hours gained. Points where the intervention never
// reaches the threshold score -Inf.
func (p SweepPoint) Score() float64 {
	switch s := p.Sleep.(type) {
	case analysis.OnlyWith:
		return math.Inf(1)
	case analysis.Both:
		return s.GainedH
	default:
		return math.Inf(-1)
	}
}

// Sweep evaluates every dose and timing combination concurrently and returns
// the points best first. Ties keep grid order.
func Sweep(ctx context.Context, drug pk.Drug, factory InterventionFactory, in Inputs, grid SweepGrid, log *zap.Logger) ([]SweepPoint, error) {
	if log == nil {
		log = zap.NewNop()
	}

	points := make([]SweepPoint, 0, len(grid.DosesMg)*len(grid.TimesH))
	for _, d := range grid.DosesMg {
		for _, t := range grid.TimesH {
			points = append(points, SweepPoint{DoseMg: d, TimeH: t})
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range points {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := &points[i]
			s := New(drug, factory(p.DoseMg, p.TimeH))
			res := s.Run(in)
			p.Sleep = res.Sleep
			p.MinPh = minPh(res.Ph)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(points, func(a, b int) bool {
		return points[a].Score() > points[b].Score()
	})

	log.Debug("sweep complete", zap.Int("points", len(points)))
	return points, nil
}

func minPh(ph pk.PhSeries) float64 {
	if len(ph) == 0 {
		return 0
	}
	m := ph[0].Ph
	for _, p := range ph[1:] {
		m = math.Min(m, p.Ph)
	}
	return m
}
