package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/pksim/internal/analysis"
	"github.com/san-kum/pksim/internal/config"
	"github.com/san-kum/pksim/internal/drugs"
	"github.com/san-kum/pksim/internal/interventions"
	"github.com/san-kum/pksim/internal/pk"
	"github.com/san-kum/pksim/internal/sim"
)

func defaultRun(t *testing.T) (*config.Config, *sim.Result) {
	t.Helper()
	cfg := config.DefaultConfig()
	s := sim.New(drugs.NewAmphetamine(), interventions.NewVitaminC(cfg.VitaminC), sim.WithDefaultMetrics())
	return cfg, s.Run(cfg.SimInputs())
}

func TestChartRows(t *testing.T) {
	_, res := defaultRun(t)
	rows := ChartRows(res.Concentrations)

	if len(rows) != len(res.Ph) {
		t.Fatalf("expected %d rows, got %d", len(res.Ph), len(rows))
	}
	first := res.Concentrations.SingleDose[0].ValueMgL
	if rows[0].SingleDoseNgML != first*1000 {
		t.Errorf("row 0 single dose = %v, want %v", rows[0].SingleDoseNgML, first*1000)
	}
	if rows[len(rows)-1].TimeH != 24 {
		t.Errorf("last row at %v, want 24", rows[len(rows)-1].TimeH)
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	cfg, res := defaultRun(t)
	id := uuid.New()
	rec := NewRecord(id, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), cfg, res)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rec); err != nil {
		t.Fatal(err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.RunID != id {
		t.Errorf("run ID = %v, want %v", got.RunID, id)
	}
	if len(got.Ph) != len(res.Ph) || got.Inputs.DoseMg != cfg.DoseMg {
		t.Error("series or inputs lost in round trip")
	}
	if got.Sleep.Outcome != res.Sleep.Outcome() {
		t.Errorf("sleep outcome = %s, want %s", got.Sleep.Outcome, res.Sleep.Outcome())
	}
}

func TestWriteJSON_NonFiniteAsNull(t *testing.T) {
	res := &sim.Result{
		Sleep: analysis.Neither{},
		Summary: analysis.Summary{
			HalfLifeH:          math.Inf(1),
			AccumulationFactor: math.Inf(1),
		},
		Metrics: map[string]float64{"peak_concentration": math.Inf(-1), "auc": 1},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewRecord(uuid.New(), time.Now(), config.DefaultConfig(), res)); err != nil {
		t.Fatalf("non-finite values should not fail encoding: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	summary := raw["pkSummary"].(map[string]any)
	if summary["halfLifeH"] != nil || summary["accumulationFactor"] != nil {
		t.Errorf("expected nulls, got %v", summary)
	}
	sleep := raw["sleepAnalysis"].(map[string]any)
	if sleep["outcome"] != "neither" || sleep["additionalSleepHoursGained"] != nil {
		t.Errorf("unexpected sleep fields %v", sleep)
	}
	metrics := raw["metrics"].(map[string]any)
	if _, ok := metrics["peak_concentration"]; ok {
		t.Error("non-finite metric should be dropped")
	}
}

func TestWriteCSV(t *testing.T) {
	_, res := defaultRun(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != len(res.Ph)+1 {
		t.Errorf("expected %d records, got %d", len(res.Ph)+1, len(records))
	}
	if records[0][0] != "time_h" || len(records[0]) != 6 {
		t.Errorf("unexpected header %v", records[0])
	}
	if records[1][1] != "6.500000" {
		t.Errorf("first pH = %s, want 6.500000", records[1][1])
	}
}

func TestWriteSweepCSV(t *testing.T) {
	points := []sim.SweepPoint{
		{DoseMg: 2000, TimeH: 0, Sleep: analysis.Both{WithH: 16, WithoutH: 19, GainedH: 3}, MinPh: 5.5},
		{DoseMg: 0, TimeH: 0, Sleep: analysis.Neither{}, MinPh: 6.5},
	}

	var buf bytes.Buffer
	if err := WriteSweepCSV(&buf, points); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[1][6] != "3.000000" || records[2][3] != "neither" || records[2][6] != "" {
		t.Errorf("unexpected rows %v", records[1:])
	}
}

func TestWriteHTML(t *testing.T) {
	_, res := defaultRun(t)

	var buf bytes.Buffer
	err := WriteHTML(&buf, res, Thresholds{UserNgML: 13, NaiveNgML: 15, AdjustedNgML: 15})
	if err != nil {
		t.Fatal(err)
	}

	html := buf.String()
	for _, want := range []string{"<html", "echarts", "Urine pH", "sleep threshold"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestSeriesSVG(t *testing.T) {
	s := pk.Series{{TimeH: 0, ValueMgL: 0.04}, {TimeH: 12, ValueMgL: 0.02}, {TimeH: 24, ValueMgL: 0.01}}
	svg := SeriesSVG(s, 300, 100, "#00ff88")

	if !strings.HasPrefix(svg, "<?xml") || !strings.Contains(svg, "peak 40.0 ng/mL") {
		t.Errorf("unexpected SVG: %s", svg)
	}
	if !strings.Contains(svg, "M0.0,") || !strings.Contains(svg, " L300.0,") {
		t.Error("path should span the full width")
	}
	if SeriesSVG(s[:1], 300, 100, "#fff") != "" {
		t.Error("single point should render nothing")
	}
}
