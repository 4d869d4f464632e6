// Package palette resolves item colors to terminal colors: named tokens,
// hex literals and value-driven sequential scales.
package palette

import (
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/sortviz/internal/seq"
)

var named = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"green":     "#008000",
	"blue":      "#0000ff",
	"yellow":    "#ffff00",
	"orange":    "#ffa500",
	"purple":    "#800080",
	"magenta":   "#ff00ff",
	"cyan":      "#00ffff",
	"gray":      "#808080",
	"grey":      "#808080",
	"steelblue": "#4682b4",
	"smoke":     "#cbcbcb",
}

// Scale is a sequential color ramp sampled by At.
type Scale struct {
	Name  string
	stops []colorful.Color
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("palette: bad stop " + s)
	}
	return c
}

func newScale(name string, stops ...string) *Scale {
	sc := &Scale{Name: name, stops: make([]colorful.Color, len(stops))}
	for i, s := range stops {
		sc.stops[i] = mustHex(s)
	}
	return sc
}

var scales = map[string]*Scale{
	"blues":  newScale("blues", "#f7fbff", "#c6dbef", "#6baed6", "#2171b5", "#08306b"),
	"reds":   newScale("reds", "#fff5f0", "#fcbba1", "#fb6a4a", "#cb181d", "#67000d"),
	"greens": newScale("greens", "#f7fcf5", "#c7e9c0", "#74c476", "#238b45", "#00441b"),
	"greys":  newScale("greys", "#ffffff", "#d9d9d9", "#969696", "#525252", "#000000"),
}

// At samples the ramp at t in [0,1] (clamped), blending in Lab space.
func (s *Scale) At(t float64) string {
	if t <= 0 {
		return s.stops[0].Hex()
	}
	if t >= 1 {
		return s.stops[len(s.stops)-1].Hex()
	}
	seg := t * float64(len(s.stops)-1)
	i := int(seg)
	return s.stops[i].BlendLab(s.stops[i+1], seg-float64(i)).Clamped().Hex()
}

func LookupScale(name string) (*Scale, bool) {
	sc, ok := scales[strings.ToLower(name)]
	return sc, ok
}

func ScaleNames() []string {
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hex maps a fixed color token to #rrggbb. Unknown tokens report false.
func Hex(token string) (string, bool) {
	if strings.HasPrefix(token, "#") {
		if _, err := colorful.Hex(token); err != nil {
			return "", false
		}
		return strings.ToLower(token), true
	}
	h, ok := named[strings.ToLower(token)]
	return h, ok
}

// Resolve returns the hex color an item with value v is drawn in, given the
// value domain [lo, hi] and the display's default scale. Default items with
// no fallback scale, and unknown tokens, resolve to "" (terminal default).
func Resolve(c seq.Color, v, lo, hi float64, fallback string) string {
	name, isScale := c.ScaleName()
	switch {
	case c.IsDefault():
		if fallback == "" {
			return ""
		}
		name = fallback
	case !isScale:
		h, _ := Hex(string(c))
		return h
	}

	sc, ok := LookupScale(name)
	if !ok {
		return ""
	}
	t := 0.0
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	return sc.At(t)
}

// Blend mixes two hex colors at t. When either side is unset the result
// switches halfway.
func Blend(a, b string, t float64) string {
	if a == b {
		return a
	}
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if a == "" || b == "" || errA != nil || errB != nil {
		if t < 0.5 {
			return a
		}
		return b
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
