package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/pksim/internal/pk"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Drug != "amphetamine" {
		t.Errorf("expected drug amphetamine, got %s", cfg.Drug)
	}
	if cfg.TimeStepH <= 0 {
		t.Error("time step should be positive")
	}
	if cfg.VitaminC.DoseMg != 1800 || cfg.VitaminC.TimeH != 2 {
		t.Errorf("unexpected vitamin C defaults: %+v", cfg.VitaminC)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if oob := cfg.OutOfBounds(); len(oob) != 0 {
		t.Errorf("defaults should be in bounds: %v", oob)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero step", func(c *Config) { c.TimeStepH = 0 }, pk.ErrInvalidTimeStep},
		{"negative interval", func(c *Config) { c.DosingIntervalH = -1 }, pk.ErrInvalidInterval},
		{"zero interval", func(c *Config) { c.DosingIntervalH = 0 }, pk.ErrInvalidInterval},
		{"infinite step", func(c *Config) { c.TimeStepH = math.Inf(1) }, pk.ErrInvalidTimeStep},
		{"infinite interval", func(c *Config) { c.DosingIntervalH = math.Inf(1) }, pk.ErrInvalidInterval},
		{"NaN step", func(c *Config) { c.TimeStepH = math.NaN() }, pk.ErrInvalidTimeStep},
		{"tiny step", func(c *Config) { c.TimeStepH = 1e-12 }, pk.ErrInvalidTimeStep},
		{"huge interval", func(c *Config) { c.DosingIntervalH = 1e300 }, pk.ErrInvalidTimeStep},
		{"ok", func(c *Config) {}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DoseMg = 100
	cfg.VitaminC.TimeH = 30

	oob := cfg.OutOfBounds()
	if len(oob) != 2 {
		t.Fatalf("expected 2 violations, got %v", oob)
	}
}

func TestRangeClamp(t *testing.T) {
	r := Range{Min: 1, Max: 2}
	if r.Clamp(0) != 1 || r.Clamp(3) != 2 || r.Clamp(1.5) != 1.5 {
		t.Error("clamp out of range")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pksim.yaml")

	cfg := DefaultConfig()
	cfg.DoseMg = 45
	cfg.VitaminC.UrineFlowLPerH = 0.1
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("dose_mg: 50\nvitamin_c:\n  time_h: 6\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DoseMg != 50 || cfg.VitaminC.TimeH != 6 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.BodyWeightKg != DefaultBodyWeightKg || cfg.VitaminC.DoseMg != DefaultVitaminCDoseMg {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	if err := os.WriteFile(path, []byte("dose_mg: 40\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base, err := GetPreset("alkaline-baseline")
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DoseMg != 40 || cfg.BaseUrinePh != 7.8 {
		t.Errorf("expected preset pH with file dose, got %+v", cfg)
	}
	if base.DoseMg != DefaultDoseMg {
		t.Error("base must not be modified")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("dose_mg: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetPreset(t *testing.T) {
	cfg, err := GetPreset("no-vitamin-c")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.VitaminC.DoseMg != 0 {
		t.Errorf("expected vitamin C dose 0, got %v", cfg.VitaminC.DoseMg)
	}

	again, _ := GetPreset("default")
	if again.VitaminC.DoseMg != DefaultVitaminCDoseMg {
		t.Error("presets must not mutate shared defaults")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	_, err := GetPreset("nonexistent")
	if !errors.Is(err, pk.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for _, name := range presets {
		cfg, err := GetPreset(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestSimInputs(t *testing.T) {
	in := DefaultConfig().SimInputs()
	if in.Drug.DoseMg != 30 || in.DosingIntervalH != 24 || in.SleepThresholdNgML != 13 {
		t.Errorf("unexpected inputs: %+v", in)
	}
}
