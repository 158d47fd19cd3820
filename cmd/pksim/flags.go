package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/pksim/internal/config"
)

var flagInputs struct {
	drug         string
	intervention string
	integrator   string

	doseMg        float64
	bodyWeightKg  float64
	baseUrinePh   float64
	thresholdNgML float64
	timeStepH     float64
	intervalH     float64
	doseClockH    float64

	vitCDoseMg     float64
	vitCTimeH      float64
	urineFlow      float64
	bufferCapacity float64
}

func addInputFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&flagInputs.drug, "drug", d.Drug, "drug model")
	f.StringVar(&flagInputs.intervention, "intervention", d.Intervention, "urine pH intervention: vitamin_c, none")
	f.StringVar(&flagInputs.integrator, "integrator", d.Integrator, "elimination integrator: exponential, euler")
	f.Float64Var(&flagInputs.doseMg, "dose", d.DoseMg, "drug dose (mg)")
	f.Float64Var(&flagInputs.bodyWeightKg, "weight", d.BodyWeightKg, "body weight (kg)")
	f.Float64Var(&flagInputs.baseUrinePh, "ph", d.BaseUrinePh, "baseline urine pH")
	f.Float64Var(&flagInputs.thresholdNgML, "threshold", d.SleepThresholdNgML, "sleep threshold (ng/mL)")
	f.Float64Var(&flagInputs.timeStepH, "dt", d.TimeStepH, "time step (h)")
	f.Float64Var(&flagInputs.intervalH, "interval", d.DosingIntervalH, "dosing interval (h)")
	f.Float64Var(&flagInputs.doseClockH, "dose-clock", d.DoseClockH, "hour of day the drug is taken")
	f.Float64Var(&flagInputs.vitCDoseMg, "vitc", d.VitaminC.DoseMg, "vitamin C dose (mg)")
	f.Float64Var(&flagInputs.vitCTimeH, "vitc-time", d.VitaminC.TimeH, "vitamin C time after the drug (h)")
	f.Float64Var(&flagInputs.urineFlow, "urine-flow", d.VitaminC.UrineFlowLPerH, "urine flow (L/h)")
	f.Float64Var(&flagInputs.bufferCapacity, "buffer", d.VitaminC.BufferCapacityMmolPerLPerPh, "urine buffer capacity (mmol/L per pH unit)")
}

// loadConfig layers the preset, the config file and then explicitly set
// flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, fmt.Errorf("%w (available: %s)", err, join(config.ListPresets()))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	for _, o := range []struct {
		flag string
		dst  *string
		v    string
	}{
		{"drug", &cfg.Drug, flagInputs.drug},
		{"intervention", &cfg.Intervention, flagInputs.intervention},
		{"integrator", &cfg.Integrator, flagInputs.integrator},
	} {
		if f.Changed(o.flag) {
			*o.dst = o.v
		}
	}
	for _, o := range []struct {
		flag string
		dst  *float64
		v    float64
	}{
		{"dose", &cfg.DoseMg, flagInputs.doseMg},
		{"weight", &cfg.BodyWeightKg, flagInputs.bodyWeightKg},
		{"ph", &cfg.BaseUrinePh, flagInputs.baseUrinePh},
		{"threshold", &cfg.SleepThresholdNgML, flagInputs.thresholdNgML},
		{"dt", &cfg.TimeStepH, flagInputs.timeStepH},
		{"interval", &cfg.DosingIntervalH, flagInputs.intervalH},
		{"dose-clock", &cfg.DoseClockH, flagInputs.doseClockH},
		{"vitc", &cfg.VitaminC.DoseMg, flagInputs.vitCDoseMg},
		{"vitc-time", &cfg.VitaminC.TimeH, flagInputs.vitCTimeH},
		{"urine-flow", &cfg.VitaminC.UrineFlowLPerH, flagInputs.urineFlow},
		{"buffer", &cfg.VitaminC.BufferCapacityMmolPerLPerPh, flagInputs.bufferCapacity},
	} {
		if f.Changed(o.flag) {
			*o.dst = o.v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, w := range cfg.OutOfBounds() {
		logger.Warn("input outside calculator range", zap.String("input", w))
	}
	return cfg, nil
}

type table struct {
	*tabwriter.Writer
}

func newTable(w io.Writer) table {
	return table{tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (t table) row(cols ...string) {
	fmt.Fprintln(t, strings.Join(cols, "\t"))
}

func join(names []string) string { return strings.Join(names, ", ") }

func float(v float64, prec int) string { return strconv.FormatFloat(v, 'f', prec, 64) }

func mg(v float64) string { return float(v, 0) + " mg" }

func hours(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	return float(v, 1) + " h"
}
