package metrics

import "math"

// PeakConcentration tracks the largest observed concentration.
type PeakConcentration struct {
	name    string
	peak    float64
	peakAt  float64
	samples int
}

func NewPeakConcentration() *PeakConcentration {
	return &PeakConcentration{
		name: "peak_concentration",
		peak: math.Inf(-1),
	}
}

func (p *PeakConcentration) Name() string { return p.name }

func (p *PeakConcentration) Observe(t, v float64) {
	if v > p.peak {
		p.peak = v
		p.peakAt = t
	}
	p.samples++
}

func (p *PeakConcentration) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.peak
}

// At returns the time of the peak.
func (p *PeakConcentration) At() float64 { return p.peakAt }

func (p *PeakConcentration) Reset() {
	p.peak = math.Inf(-1)
	p.peakAt = 0
	p.samples = 0
}
