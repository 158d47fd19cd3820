package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/san-kum/pksim/internal/config"
	"github.com/san-kum/pksim/internal/pk"
	"github.com/san-kum/pksim/internal/sim"
)

// Experiment is one configured calculation with a unique run ID.
type Experiment struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Config    *config.Config

	simulator *sim.Simulator
	registry  *Registry
	log       *zap.Logger
}

// New resolves the named drug, intervention and integrator in cfg.
func New(r *Registry, cfg *config.Config, log *zap.Logger) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	integ, err := r.GetIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}
	drug, err := r.GetDrug(cfg.Drug, integ)
	if err != nil {
		return nil, err
	}
	iv, err := r.GetIntervention(cfg.Intervention, cfg.VitaminC)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	return &Experiment{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		Config:    cfg,
		simulator: sim.New(drug, iv,
			sim.WithLogger(log.With(zap.String("run_id", id.String()))),
			sim.WithDefaultMetrics(),
		),
		registry: r,
		log:      log,
	}, nil
}

func (e *Experiment) Run() *sim.Result {
	return e.simulator.Run(e.Config.SimInputs())
}

func (e *Experiment) Baseline() *sim.Result {
	return e.simulator.Baseline(e.Config.SimInputs())
}

// Sweep varies the vitamin C dose and timing of the configured intervention,
// keeping flow and buffer capacity from the config.
func (e *Experiment) Sweep(ctx context.Context, grid sim.SweepGrid) ([]sim.SweepPoint, error) {
	name := e.Config.Intervention
	if name == "none" {
		return nil, fmt.Errorf("%w: sweep needs a dose-dependent intervention, got %s", pk.ErrUnknownIntervention, name)
	}
	build, ok := e.registry.interventions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", pk.ErrUnknownIntervention, name)
	}

	base := e.Config.VitaminC
	factory := func(doseMg, timeH float64) pk.Intervention {
		in := base
		in.DoseMg, in.TimeH = doseMg, timeH
		return build(in)
	}

	return sim.Sweep(ctx, e.simulator.Drug(), factory, e.Config.SimInputs(), grid, e.log)
}

func (e *Experiment) Simulator() *sim.Simulator {
	return e.simulator
}
