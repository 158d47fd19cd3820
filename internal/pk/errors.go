package pk

import "errors"

// Errors returned by the layers that assemble a run. The model itself never
// returns errors.
var (
	// ErrUnknownDrug indicates a drug name missing from the registry.
	ErrUnknownDrug = errors.New("pk: unknown drug")

	// ErrUnknownIntervention indicates an intervention name missing from the registry.
	ErrUnknownIntervention = errors.New("pk: unknown intervention")

	// ErrUnknownIntegrator indicates an integrator name missing from the registry.
	ErrUnknownIntegrator = errors.New("pk: unknown integrator")

	// ErrInvalidTimeStep indicates a non-positive or non-finite time step.
	ErrInvalidTimeStep = errors.New("pk: time step must be positive")

	// ErrInvalidInterval indicates a non-positive or non-finite dosing interval.
	ErrInvalidInterval = errors.New("pk: dosing interval must be positive")

	// ErrUnknownPreset indicates a preset name missing from the preset table.
	ErrUnknownPreset = errors.New("pk: unknown preset")
)
