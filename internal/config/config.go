package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pksim/internal/interventions"
	"github.com/san-kum/pksim/internal/pk"
	"github.com/san-kum/pksim/internal/sim"
)

const (
	DefaultDoseMg             = 30.0
	DefaultBodyWeightKg       = 70.0
	DefaultBaseUrinePh        = 6.5
	DefaultSleepThresholdNgML = 13.0
	DefaultTimeStepH          = 0.1
	DefaultDosingIntervalH    = 24.0
	DefaultDoseClockH         = 7.0

	DefaultVitaminCDoseMg          = 1800.0
	DefaultVitaminCTimeH           = 2.0
	DefaultUrineFlowLPerH          = 0.06
	DefaultBufferCapacityMmolPerPh = 30.0
)

type Config struct {
	Drug               string                       `json:"drug" yaml:"drug"`
	Intervention       string                       `json:"intervention" yaml:"intervention"`
	Integrator         string                       `json:"integrator" yaml:"integrator"`
	DoseMg             float64                      `json:"doseMg" yaml:"dose_mg"`
	BodyWeightKg       float64                      `json:"bodyWeightKg" yaml:"body_weight_kg"`
	BaseUrinePh        float64                      `json:"baseUrinePh" yaml:"base_urine_ph"`
	SleepThresholdNgML float64                      `json:"sleepThresholdNgML" yaml:"sleep_threshold_ng_ml"`
	TimeStepH          float64                      `json:"timeStepH" yaml:"time_step_h"`
	DosingIntervalH    float64                      `json:"dosingIntervalH" yaml:"dosing_interval_h"`
	DoseClockH         float64                      `json:"doseClockH" yaml:"dose_clock_h"`
	VitaminC           interventions.VitaminCInputs `json:"vitaminC" yaml:"vitamin_c"`
}

func DefaultConfig() *Config {
	return &Config{
		Drug:               "amphetamine",
		Intervention:       "vitamin_c",
		Integrator:         "exponential",
		DoseMg:             DefaultDoseMg,
		BodyWeightKg:       DefaultBodyWeightKg,
		BaseUrinePh:        DefaultBaseUrinePh,
		SleepThresholdNgML: DefaultSleepThresholdNgML,
		TimeStepH:          DefaultTimeStepH,
		DosingIntervalH:    DefaultDosingIntervalH,
		DoseClockH:         DefaultDoseClockH,
		VitaminC: interventions.VitaminCInputs{
			DoseMg:                      DefaultVitaminCDoseMg,
			TimeH:                       DefaultVitaminCTimeH,
			UrineFlowLPerH:              DefaultUrineFlowLPerH,
			BufferCapacityMmolPerLPerPh: DefaultBufferCapacityMmolPerPh,
		},
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings that cannot produce a time grid.
func (c *Config) Validate() error {
	if !(c.TimeStepH > 0) || math.IsInf(c.TimeStepH, 1) {
		return fmt.Errorf("%w: %v", pk.ErrInvalidTimeStep, c.TimeStepH)
	}
	if !(c.DosingIntervalH > 0) || math.IsInf(c.DosingIntervalH, 1) {
		return fmt.Errorf("%w: %v", pk.ErrInvalidInterval, c.DosingIntervalH)
	}
	if c.DosingIntervalH/c.TimeStepH > interventions.MaxSamples {
		return fmt.Errorf("%w: %v h over a %v h interval exceeds %d samples",
			pk.ErrInvalidTimeStep, c.TimeStepH, c.DosingIntervalH, interventions.MaxSamples)
	}
	return nil
}

func (c *Config) DrugInputs() pk.DrugInputs {
	return pk.DrugInputs{
		DoseMg:       c.DoseMg,
		BodyWeightKg: c.BodyWeightKg,
		BaseUrinePh:  c.BaseUrinePh,
	}
}

func (c *Config) SimInputs() sim.Inputs {
	return sim.Inputs{
		Drug:               c.DrugInputs(),
		SleepThresholdNgML: c.SleepThresholdNgML,
		TimeStepH:          c.TimeStepH,
		DosingIntervalH:    c.DosingIntervalH,
	}
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
