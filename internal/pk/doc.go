// Package pk provides the core primitives of the urinary-pH pharmacokinetic model.
//
// The package defines the data carried between pipeline stages and the
// capabilities each stage is pluggable over:
//
//   - [PhSeries]: urinary pH sampled on a fixed time grid
//   - [Series]: a concentration time series in mg/L
//   - [Concentrations]: the four aligned series of one run
//   - [Intervention]: a pH model (baseline pH, time) -> urinary pH
//   - [Drug]: a concentration model (pH series, inputs, step) -> [Concentrations]
//   - [Integrator]: per-step decay rule used by concentration models
//   - [Metric]: streaming observer over a series
//
// # Example
//
//	ph := interventions.GenerateSeries(in.BaseUrinePh, vitc, 24, 0.1)
//	conc := drugs.NewAmphetamine().Concentrations(ph, in, 0.1)
//	r := pk.AccumulationFactor(k, 24)
//
// # Purity
//
// Every function in the model is a pure function of its arguments. Degenerate
// inputs never produce errors; they map to documented fallback values
// (infinity, zero, or the unmodified baseline).
package pk
