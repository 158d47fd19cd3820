package analysis

import (
	"testing"

	"github.com/san-kum/pksim/internal/drugs"
	"github.com/san-kum/pksim/internal/interventions"
	"github.com/san-kum/pksim/internal/pk"
)

func series(valuesNgML ...float64) pk.Series {
	s := make(pk.Series, len(valuesNgML))
	for i, v := range valuesNgML {
		s[i] = pk.Point{TimeH: float64(i), ValueMgL: pk.NgMLToMgL(v)}
	}
	return s
}

func bundle(with, without pk.Series) pk.Concentrations {
	return pk.Concentrations{
		SingleDose:  with,
		SteadyState: with,
		Baseline:    pk.BaselineConcentrations{SingleDose: without, SteadyState: without},
	}
}

func simulated(vitCDose float64) pk.Concentrations {
	vc := interventions.NewVitaminC(interventions.VitaminCInputs{
		DoseMg:                      vitCDose,
		TimeH:                       2,
		UrineFlowLPerH:              0.06,
		BufferCapacityMmolPerLPerPh: 30,
	})
	ph := interventions.GenerateSeries(6.5, vc, 24, 0.1)
	return drugs.NewAmphetamine().Concentrations(ph, pk.DrugInputs{DoseMg: 30, BodyWeightKg: 70, BaseUrinePh: 6.5}, 0.1)
}

func TestSleepOnset(t *testing.T) {
	tests := []struct {
		name      string
		s         pk.Series
		threshold float64
		wantT     float64
		wantOK    bool
	}{
		{"first below", series(20, 16, 14, 10), 15, 2, true},
		{"equal counts", series(20, 15, 10), 15, 1, true},
		{"immediate", series(5, 4), 15, 0, true},
		{"never", series(30, 25, 20), 15, 0, false},
		{"empty", nil, 15, 0, false},
		{"non-monotone", series(20, 10, 30, 5), 12, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SleepOnset(tt.s, tt.threshold)
			if ok != tt.wantOK || got != tt.wantT {
				t.Errorf("SleepOnset = (%v, %v), want (%v, %v)", got, ok, tt.wantT, tt.wantOK)
			}
		})
	}
}

func TestAnalyzeSleep_Variants(t *testing.T) {
	reaches := series(20, 10)
	never := series(20, 18)
	late := series(20, 18, 16, 10)

	if _, ok := AnalyzeSleep(bundle(never, never), 15).(Neither); !ok {
		t.Error("expected Neither")
	}
	if got, ok := AnalyzeSleep(bundle(reaches, never), 15).(OnlyWith); !ok || got.WithH != 1 {
		t.Errorf("expected OnlyWith{1}, got %#v", got)
	}
	if got, ok := AnalyzeSleep(bundle(never, reaches), 15).(OnlyWithout); !ok || got.WithoutH != 1 {
		t.Errorf("expected OnlyWithout{1}, got %#v", got)
	}

	got, ok := AnalyzeSleep(bundle(reaches, late), 15).(Both)
	if !ok {
		t.Fatal("expected Both")
	}
	if got.WithH != 1 || got.WithoutH != 3 || got.GainedH != 2 {
		t.Errorf("unexpected Both: %#v", got)
	}
	pct, ok := got.ImprovementPercent()
	if !ok || pct != 200 {
		t.Errorf("ImprovementPercent = (%v, %v), want (200, true)", pct, ok)
	}
}

func TestBoth_ImprovementPercentUndefined(t *testing.T) {
	b := Both{WithH: 0, WithoutH: 3, GainedH: 3}
	if _, ok := b.ImprovementPercent(); ok {
		t.Error("percent should be undefined when sleep is immediate with the intervention")
	}
}

func TestAnalyzeSleep_HugeThreshold(t *testing.T) {
	got, ok := AnalyzeSleep(simulated(1800), 1000).(Both)
	if !ok {
		t.Fatal("every series starts below 1000 ng/mL")
	}
	if got.WithH != 0 || got.WithoutH != 0 || got.GainedH != 0 {
		t.Errorf("expected immediate onset on both, got %#v", got)
	}
}

func TestAnalyzeSleep_TinyThreshold(t *testing.T) {
	if _, ok := AnalyzeSleep(simulated(1800), 0.001).(Neither); !ok {
		t.Error("expected Neither at 0.001 ng/mL")
	}
}

func TestAnalyzeSleep_MonotoneInThreshold(t *testing.T) {
	conc := simulated(1800)
	prev := -1.0
	for thr := 50.0; thr >= 0; thr -= 2.5 {
		onset, ok := AnalyzeSleep(conc, thr).WithInterventionH()
		if !ok {
			prev = 1e9
			continue
		}
		if prev > onset {
			t.Fatalf("onset decreased when threshold dropped to %v: %v < %v", thr, onset, prev)
		}
		prev = onset
	}
}

func TestAnalyzeSleep_InterventionHelps(t *testing.T) {
	s := AnalyzeSleep(simulated(1800), 13)
	with, okWith := s.WithInterventionH()
	without, okWithout := s.WithoutInterventionH()
	if okWith && okWithout && with > without {
		t.Errorf("acidified urine should not delay sleep: with %v, without %v", with, without)
	}
	if !okWith && okWithout {
		t.Error("baseline reaches the threshold but the intervention does not")
	}
}

func TestFields(t *testing.T) {
	f := Fields(Both{WithH: 4, WithoutH: 6, GainedH: 2})
	if f.Outcome != "both" || f.GainedH == nil || *f.GainedH != 2 {
		t.Errorf("unexpected fields: %#v", f)
	}
	if f.ImprovementPercent == nil || *f.ImprovementPercent != 50 {
		t.Errorf("expected 50%% improvement, got %v", f.ImprovementPercent)
	}

	f = Fields(OnlyWithout{WithoutH: 5})
	if f.WithInterventionH != nil || f.WithoutInterventionH == nil || f.GainedH != nil {
		t.Errorf("unexpected fields: %#v", f)
	}

	f = Fields(Both{WithH: 0, WithoutH: 1, GainedH: 1})
	if f.ImprovementPercent != nil {
		t.Error("percent should be null when with-intervention onset is 0")
	}
}
