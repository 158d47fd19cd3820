package drugs

// maxAdjustedThresholdNgML caps the dose-adjusted sleep threshold.
const maxAdjustedThresholdNgML = 20.0

// AdjustedSleepThreshold estimates a dose-dependent sleep threshold (ng/mL) as
// naive + (dose-30)/4, clamped to [naive, 20].
//
// This is a display heuristic. It is not a pharmacologically validated model
// and its coefficients have no clinical source.
func AdjustedSleepThreshold(doseMg, naiveNgML float64) float64 {
	adjusted := naiveNgML + (doseMg-30)/4
	if adjusted < naiveNgML {
		adjusted = naiveNgML
	}
	if adjusted > maxAdjustedThresholdNgML {
		adjusted = maxAdjustedThresholdNgML
	}
	return adjusted
}
