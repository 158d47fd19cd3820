package drugs

import "math"

// renalPhSlope is the log10 change in renal clearance per pH unit.
const renalPhSlope = -0.3

// RenalClearance returns renal clearance (L/h) at the given urine pH. Alkaline
// urine keeps the drug un-ionized and reabsorbable, so clearance falls as pH
// rises.
func RenalClearance(urinePh float64, p AmphetamineParams) float64 {
	return p.RenalClearanceRefLPerH * math.Pow(10, renalPhSlope*(urinePh-p.ReferencePh))
}

// EliminationRate returns the first-order elimination rate (1/h). It is +Inf
// when the volume of distribution is not positive.
func EliminationRate(urinePh, vdL float64, p AmphetamineParams) float64 {
	if vdL <= 0 {
		return math.Inf(1)
	}
	total := p.HepaticClearanceLPerH + RenalClearance(urinePh, p)
	return total / vdL
}
