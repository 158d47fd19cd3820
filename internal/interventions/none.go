package interventions

// None leaves urinary pH at baseline.
type None struct{}

func (None) Name() string { return "none" }

func (None) UrinePh(basePh, dosingIntervalH, timeH float64) float64 { return basePh }
