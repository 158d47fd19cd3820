package integrators

import "math"

// Exponential decays a concentration exactly over a step with constant rate.
type Exponential struct{}

func NewExponential() *Exponential {
	return &Exponential{}
}

func (e *Exponential) Step(c, rate, dt float64) float64 {
	return c * math.Exp(-rate*dt)
}
