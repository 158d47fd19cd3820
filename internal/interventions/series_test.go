package interventions

import (
	"math"
	"testing"
)

func TestTimeGrid(t *testing.T) {
	tests := []struct {
		name     string
		interval float64
		step     float64
		count    int
	}{
		{"default day", 24, 0.1, 241},
		{"exact division", 1, 0.25, 5},
		{"ragged final step", 1, 0.3, 5},
		{"step larger than interval", 1, 5, 2},
		{"zero step", 24, 0, 1},
		{"negative step", 24, -0.1, 1},
		{"zero interval", 0, 0.1, 1},
		{"negative interval", -1, 0.1, 1},
		{"infinite interval", math.Inf(1), 0.1, 1},
		{"huge interval", 1e300, 0.1, 1},
		{"tiny step", 24, 1e-12, 1},
		{"at sample limit", MaxSamples, 1, MaxSamples + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			times := TimeGrid(tt.interval, tt.step)
			if len(times) != tt.count {
				t.Fatalf("expected %d samples, got %d", tt.count, len(times))
			}
			if times[0] != 0 {
				t.Errorf("first sample = %v, want 0", times[0])
			}
			if tt.count > 1 && times[len(times)-1] != tt.interval {
				t.Errorf("last sample = %v, want exactly %v", times[len(times)-1], tt.interval)
			}
			for i := 1; i < len(times); i++ {
				if times[i] <= times[i-1] {
					t.Fatalf("times not increasing at %d: %v <= %v", i, times[i], times[i-1])
				}
			}
		})
	}
}

func TestTimeGrid_NoDrift(t *testing.T) {
	times := TimeGrid(24, 0.1)
	for i, tm := range times[:len(times)-1] {
		if tm != float64(i)*0.1 {
			t.Fatalf("sample %d = %v, want %v", i, tm, float64(i)*0.1)
		}
	}
}

func TestGenerateSeries_NoInterventionIsFlat(t *testing.T) {
	in := defaultInputs()
	in.DoseMg = 0
	series := GenerateSeries(6.5, NewVitaminC(in), 24, 0.1)
	for _, p := range series {
		if p.Ph != 6.5 {
			t.Fatalf("pH at t=%v = %v, want 6.5", p.TimeH, p.Ph)
		}
	}
}

func TestGenerateSeries_LateIntervention(t *testing.T) {
	for _, timing := range []float64{24, 30} {
		in := defaultInputs()
		in.TimeH = timing
		series := GenerateSeries(6.5, NewVitaminC(in), 24, 0.1)
		for _, p := range series {
			if p.Ph != 6.5 {
				t.Fatalf("timing %v: pH at t=%v = %v, want 6.5", timing, p.TimeH, p.Ph)
			}
		}
	}
}

func TestFlat(t *testing.T) {
	series := Flat(7.1, 12, 0.5)
	if len(series) != 25 {
		t.Fatalf("expected 25 samples, got %d", len(series))
	}
	for _, p := range series {
		if math.Abs(p.Ph-7.1) > 0 {
			t.Fatalf("pH at t=%v = %v", p.TimeH, p.Ph)
		}
	}
}
