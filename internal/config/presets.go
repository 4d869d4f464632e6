package config

import (
	"sort"

	"github.com/san-kum/sortviz/internal/animate"
	"github.com/san-kum/sortviz/internal/seq"
)

// Preset is a named palette, optionally tied to the display it was made for.
type Preset struct {
	Description string
	Display     string
	Palette     animate.Palette
}

var Presets = map[string]*Preset{
	"classic": {
		Description: "red comparisons, black items, green when done",
		Palette:     animate.DefaultPalette,
	},
	"scale": {
		Description: "reds scale while comparing, blues at rest, greens when done",
		Display:     "bar",
		Palette: animate.Palette{
			Selected: seq.Scale("reds"),
			Base:     seq.Default,
			Done:     seq.Scale("greens"),
		},
	},
	"plain": {
		Description: "display colors only",
		Palette:     animate.Palette{},
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset palette, and its display when it has one, into c.
func (p *Preset) Apply(c *Config) {
	c.Palette = p.Palette
	if p.Display != "" {
		c.Display = p.Display
	}
}
