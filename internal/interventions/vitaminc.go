package interventions

import "math"

// Ascorbate absorption saturates with dose: full absorption up to
// lowDoseMg, the saturated fraction from highDoseMg, linear in between.
const (
	lowDoseMg           = 200.0
	highDoseMg          = 1250.0
	lowDoseAbsorption   = 0.9
	saturatedAbsorption = 0.33
)

type VitaminCParams struct {
	MolarMassMgPerMmol float64 `json:"molarMassMgPerMmol"`
	HalfLifeH          float64 `json:"halfLifeH"`
}

var DefaultVitaminCParams = VitaminCParams{
	MolarMassMgPerMmol: 176.12,
	HalfLifeH:          4.0,
}

type VitaminCInputs struct {
	DoseMg                      float64 `json:"doseMg" yaml:"dose_mg"`
	TimeH                       float64 `json:"timeH" yaml:"time_h"`
	UrineFlowLPerH              float64 `json:"urineFlowLPerH" yaml:"urine_flow_l_per_h"`
	BufferCapacityMmolPerLPerPh float64 `json:"bufferCapacityMmolPerLPerPh" yaml:"buffer_capacity_mmol_per_l_per_ph"`
}

// VitaminC acidifies urine after an oral ascorbic acid dose taken TimeH hours
// after the drug.
type VitaminC struct {
	Inputs VitaminCInputs
	Params VitaminCParams
}

func NewVitaminC(in VitaminCInputs) *VitaminC {
	return &VitaminC{Inputs: in, Params: DefaultVitaminCParams}
}

func (v *VitaminC) Name() string { return "vitamin_c" }

// FractionalAbsorption returns the absorbed fraction of an ascorbate dose.
func FractionalAbsorption(doseMg float64) float64 {
	switch {
	case doseMg <= 0:
		return 0
	case doseMg <= lowDoseMg:
		return lowDoseAbsorption
	case doseMg >= highDoseMg:
		return saturatedAbsorption
	}
	frac := (doseMg - lowDoseMg) / (highDoseMg - lowDoseMg)
	return lowDoseAbsorption - frac*(lowDoseAbsorption-saturatedAbsorption)
}

// UrinePh returns basePh shifted by the ascorbate impulse response. The shift
// is zero up to and including the administration instant.
func (v *VitaminC) UrinePh(basePh, dosingIntervalH, timeH float64) float64 {
	in, p := v.Inputs, v.Params
	if in.DoseMg <= 0 {
		return basePh
	}

	since := timeH - in.TimeH
	if !(since > 0) {
		return basePh
	}

	if in.BufferCapacityMmolPerLPerPh <= 0 || in.UrineFlowLPerH <= 0 || p.MolarMassMgPerMmol <= 0 || p.HalfLifeH <= 0 {
		return basePh
	}

	absorbedMmol := FractionalAbsorption(in.DoseMg) * in.DoseMg / p.MolarMassMgPerMmol
	k := math.Ln2 / p.HalfLifeH
	dynamic := k * math.Exp(-k*since) / (in.BufferCapacityMmolPerLPerPh * in.UrineFlowLPerH)

	return basePh - absorbedMmol*dynamic
}
