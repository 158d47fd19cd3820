package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/pksim/internal/pk"
)

var Presets = map[string]func(*Config){
	"default": func(*Config) {},
	"no-vitamin-c": func(c *Config) {
		c.VitaminC.DoseMg = 0
	},
	"evening-dose": func(c *Config) {
		c.VitaminC.TimeH = 10
	},
	"high-dose": func(c *Config) {
		c.DoseMg = 70
		c.VitaminC.DoseMg = 4000
	},
	"acidic-baseline": func(c *Config) {
		c.BaseUrinePh = 5.5
	},
	"alkaline-baseline": func(c *Config) {
		c.BaseUrinePh = 7.8
	},
}

// GetPreset returns the defaults with the named preset applied.
func GetPreset(name string) (*Config, error) {
	apply, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", pk.ErrUnknownPreset, name)
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
