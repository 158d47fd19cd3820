package integrators

// Euler is the first-order explicit update c' = c - k*c*dt, clamped at zero.
// It is kept for comparing step sizes against the exact exponential rule.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(c, rate, dt float64) float64 {
	next := c - rate*c*dt
	if next < 0 {
		return 0
	}
	return next
}
