package drugs

import (
	"github.com/san-kum/pksim/internal/integrators"
	"github.com/san-kum/pksim/internal/pk"
)

// AmphetamineParams describes dextroamphetamine released from an oral
// lisdexamfetamine dose.
type AmphetamineParams struct {
	NaiveSleepThresholdNgML float64 `json:"naiveSleepThresholdNgML"`
	OralBioavailability     float64 `json:"oralBioavailability"`
	ActivePerProdrug        float64 `json:"activePerProdrug"`
	VdLPerKg                float64 `json:"vdLPerKg"`
	HepaticClearanceLPerH   float64 `json:"hepaticClearanceLPerH"`
	RenalClearanceRefLPerH  float64 `json:"renalClearanceRefLPerH"`
	ReferencePh             float64 `json:"referencePh"`
}

var DefaultAmphetamineParams = AmphetamineParams{
	NaiveSleepThresholdNgML: 15,
	OralBioavailability:     0.96,
	ActivePerProdrug:        0.294,
	VdLPerKg:                3.14,
	HepaticClearanceLPerH:   7.41,
	RenalClearanceRefLPerH:  7.14,
	ReferencePh:             6.5,
}

type Amphetamine struct {
	Params     AmphetamineParams
	Integrator pk.Integrator
}

func NewAmphetamine() *Amphetamine {
	return &Amphetamine{
		Params:     DefaultAmphetamineParams,
		Integrator: integrators.NewExponential(),
	}
}

func (a *Amphetamine) Name() string { return "amphetamine" }

func (a *Amphetamine) NaiveSleepThresholdNgML() float64 {
	return a.Params.NaiveSleepThresholdNgML
}

// VolumeOfDistribution returns the apparent volume in litres.
func (a *Amphetamine) VolumeOfDistribution(in pk.DrugInputs) float64 {
	return a.Params.VdLPerKg * in.BodyWeightKg
}

// InitialConcentration returns the post-dose concentration in mg/L, or 0 when
// the volume of distribution is not positive.
func (a *Amphetamine) InitialConcentration(in pk.DrugInputs) float64 {
	vd := a.VolumeOfDistribution(in)
	if vd <= 0 {
		return 0
	}
	liberatedMg := a.Params.OralBioavailability * a.Params.ActivePerProdrug * in.DoseMg
	return liberatedMg / vd
}
