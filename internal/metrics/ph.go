package metrics

import (
	"math"

	"github.com/san-kum/pksim/internal/pk"
)

type MinPh struct {
	name    string
	min     float64
	samples int
}

func NewMinPh() *MinPh {
	return &MinPh{
		name: "min_urine_ph",
		min:  math.Inf(1),
	}
}

func (m *MinPh) Name() string { return m.name }

func (m *MinPh) Observe(t, v float64) {
	m.min = math.Min(m.min, v)
	m.samples++
}

func (m *MinPh) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.min
}

func (m *MinPh) Reset() {
	m.min = math.Inf(1)
	m.samples = 0
}

// HoursOutsideSafePh accumulates the time urine pH spends outside a safety
// window. Each interval is charged to the sample at its start.
type HoursOutsideSafePh struct {
	name    string
	window  pk.SafetyWindow
	hours   float64
	lastT   float64
	lastOut bool
	samples int
}

func NewHoursOutsideSafePh(window pk.SafetyWindow) *HoursOutsideSafePh {
	return &HoursOutsideSafePh{
		name:   "hours_outside_safe_ph",
		window: window,
	}
}

func (h *HoursOutsideSafePh) Name() string {
	return h.name
}

func (h *HoursOutsideSafePh) Observe(t, v float64) {
	if h.samples > 0 && h.lastOut {
		h.hours += t - h.lastT
	}
	h.lastT = t
	h.lastOut = !h.window.Contains(v)
	h.samples++
}

func (h *HoursOutsideSafePh) Value() float64 {
	return h.hours
}

func (h *HoursOutsideSafePh) Reset() {
	h.hours = 0
	h.lastT = 0
	h.lastOut = false
	h.samples = 0
}
