// Package interventions models urinary pH under a co-administered
// intervention and samples it into a [pk.PhSeries].
package interventions
