package config

import "fmt"

type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Bounds are the input ranges of the interactive calculator. Values outside
// them are still valid model inputs.
type Bounds struct {
	DoseMg             Range
	BodyWeightKg       Range
	BaseUrinePh        Range
	VitaminCDoseMg     Range
	VitaminCTimeH      Range
	UrineFlowLPerH     Range
	BufferCapacity     Range
	SleepThresholdNgML Range
	DoseClockH         Range
}

var DefaultBounds = Bounds{
	DoseMg:             Range{10, 70},
	BodyWeightKg:       Range{30, 150},
	BaseUrinePh:        Range{4.5, 8.5},
	VitaminCDoseMg:     Range{0, 4000},
	VitaminCTimeH:      Range{0, 23},
	UrineFlowLPerH:     Range{0.02, 0.2},
	BufferCapacity:     Range{10, 50},
	SleepThresholdNgML: Range{0, 50},
	DoseClockH:         Range{5, 11},
}

// OutOfBounds lists every field outside DefaultBounds.
func (c *Config) OutOfBounds() []string {
	b := DefaultBounds
	checks := []struct {
		name string
		v    float64
		r    Range
	}{
		{"dose_mg", c.DoseMg, b.DoseMg},
		{"body_weight_kg", c.BodyWeightKg, b.BodyWeightKg},
		{"base_urine_ph", c.BaseUrinePh, b.BaseUrinePh},
		{"sleep_threshold_ng_ml", c.SleepThresholdNgML, b.SleepThresholdNgML},
		{"dose_clock_h", c.DoseClockH, b.DoseClockH},
		{"vitamin_c.dose_mg", c.VitaminC.DoseMg, b.VitaminCDoseMg},
		{"vitamin_c.time_h", c.VitaminC.TimeH, b.VitaminCTimeH},
		{"vitamin_c.urine_flow_l_per_h", c.VitaminC.UrineFlowLPerH, b.UrineFlowLPerH},
		{"vitamin_c.buffer_capacity_mmol_per_l_per_ph", c.VitaminC.BufferCapacityMmolPerLPerPh, b.BufferCapacity},
	}

	var out []string
	for _, ch := range checks {
		if !ch.r.Contains(ch.v) {
			out = append(out, fmt.Sprintf("%s=%g outside [%g, %g]", ch.name, ch.v, ch.r.Min, ch.r.Max))
		}
	}
	return out
}
