package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/pksim/internal/pk"
	"github.com/san-kum/pksim/internal/sim"
)

// ChartRow is one time point of the four concentration series in ng/mL.
type ChartRow struct {
	TimeH              float64 `json:"timeH"`
	SingleDoseNgML     float64 `json:"firstPeriodConcentrationNgML"`
	SteadyStateNgML    float64 `json:"steadyStateConcentrationNgML"`
	BaselineSingleNgML float64 `json:"firstDayNoInterventionConcentrationNgML"`
	BaselineSteadyNgML float64 `json:"steadyStateNoInterventionConcentrationNgML"`
}

// ChartRows zips the bundle into rows. The bundle must be aligned.
func ChartRows(c pk.Concentrations) []ChartRow {
	rows := make([]ChartRow, len(c.SingleDose))
	for i, p := range c.SingleDose {
		rows[i] = ChartRow{
			TimeH:              p.TimeH,
			SingleDoseNgML:     pk.MgLToNgML(p.ValueMgL),
			SteadyStateNgML:    pk.MgLToNgML(c.SteadyState[i].ValueMgL),
			BaselineSingleNgML: pk.MgLToNgML(c.Baseline.SingleDose[i].ValueMgL),
			BaselineSteadyNgML: pk.MgLToNgML(c.Baseline.SteadyState[i].ValueMgL),
		}
	}
	return rows
}

var csvHeader = []string{
	"time_h",
	"urine_ph",
	"single_dose_ng_ml",
	"steady_state_ng_ml",
	"baseline_single_dose_ng_ml",
	"baseline_steady_state_ng_ml",
}

// WriteCSV writes one row per sample.
func WriteCSV(w io.Writer, res *sim.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, r := range ChartRows(res.Concentrations) {
		row := []string{
			formatFloat(r.TimeH),
			formatFloat(res.Ph[i].Ph),
			formatFloat(r.SingleDoseNgML),
			formatFloat(r.SteadyStateNgML),
			formatFloat(r.BaselineSingleNgML),
			formatFloat(r.BaselineSteadyNgML),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSweepCSV writes ranked sweep points.
func WriteSweepCSV(w io.Writer, points []sim.SweepPoint) error {
	cw := csv.NewWriter(w)

	header := []string{"rank", "vitamin_c_mg", "time_h", "outcome", "with_h", "without_h", "gained_h", "min_ph"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, p := range points {
		with, okWith := p.Sleep.WithInterventionH()
		without, okWithout := p.Sleep.WithoutInterventionH()
		gained := ""
		if okWith && okWithout {
			gained = formatFloat(without - with)
		}
		row := []string{
			strconv.Itoa(i + 1),
			formatFloat(p.DoseMg),
			formatFloat(p.TimeH),
			p.Sleep.Outcome(),
			optional(with, okWith),
			optional(without, okWithout),
			gained,
			formatFloat(p.MinPh),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func optional(v float64, ok bool) string {
	if !ok {
		return ""
	}
	return formatFloat(v)
}
