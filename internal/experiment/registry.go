package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/pksim/internal/drugs"
	"github.com/san-kum/pksim/internal/integrators"
	"github.com/san-kum/pksim/internal/interventions"
	"github.com/san-kum/pksim/internal/pk"
)

type Registry struct {
	drugs         map[string]func(pk.Integrator) pk.Drug
	interventions map[string]func(interventions.VitaminCInputs) pk.Intervention
	integrators   map[string]func() pk.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		drugs:         make(map[string]func(pk.Integrator) pk.Drug),
		interventions: make(map[string]func(interventions.VitaminCInputs) pk.Intervention),
		integrators:   make(map[string]func() pk.Integrator),
	}

	r.drugs["amphetamine"] = func(integ pk.Integrator) pk.Drug {
		a := drugs.NewAmphetamine()
		a.Integrator = integ
		return a
	}

	r.interventions["vitamin_c"] = func(in interventions.VitaminCInputs) pk.Intervention {
		return interventions.NewVitaminC(in)
	}
	r.interventions["none"] = func(interventions.VitaminCInputs) pk.Intervention {
		return interventions.None{}
	}

	r.integrators["exponential"] = func() pk.Integrator { return integrators.NewExponential() }
	r.integrators["euler"] = func() pk.Integrator { return integrators.NewEuler() }

	return r
}

func (r *Registry) GetIntegrator(name string) (pk.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", pk.ErrUnknownIntegrator, name)
	}
	return fn(), nil
}

func (r *Registry) GetDrug(name string, integ pk.Integrator) (pk.Drug, error) {
	fn, ok := r.drugs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", pk.ErrUnknownDrug, name)
	}
	return fn(integ), nil
}

func (r *Registry) GetIntervention(name string, in interventions.VitaminCInputs) (pk.Intervention, error) {
	fn, ok := r.interventions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", pk.ErrUnknownIntervention, name)
	}
	return fn(in), nil
}

func (r *Registry) ListDrugs() []string         { return sortedKeys(r.drugs) }
func (r *Registry) ListInterventions() []string { return sortedKeys(r.interventions) }
func (r *Registry) ListIntegrators() []string   { return sortedKeys(r.integrators) }

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
