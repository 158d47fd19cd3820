package metrics

// AUC integrates observed concentration over time with the trapezoid rule.
// Samples must arrive in time order.
type AUC struct {
	name    string
	sum     float64
	lastT   float64
	lastV   float64
	samples int
}

func NewAUC() *AUC {
	return &AUC{
		name: "auc",
	}
}

func (a *AUC) Name() string {
	return a.name
}

func (a *AUC) Observe(t, v float64) {
	if a.samples > 0 {
		a.sum += 0.5 * (a.lastV + v) * (t - a.lastT)
	}
	a.lastT, a.lastV = t, v
	a.samples++
}

func (a *AUC) Value() float64 {
	return a.sum
}

func (a *AUC) Reset() {
	a.sum = 0
	a.lastT, a.lastV = 0, 0
	a.samples = 0
}
