// Package ease holds the easing curves used by display transitions. Every
// curve maps [0,1] onto [0,1] with f(0)=0 and f(1)=1; inputs are clamped.
package ease

import penner "github.com/fogleman/ease"

type Func func(t float64) float64

func clamp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func clamped(f func(float64) float64) Func {
	return func(t float64) float64 { return f(clamp(t)) }
}

var (
	Linear     = clamped(penner.Linear)
	CubicInOut = clamped(penner.InOutCubic)
	ExpOut     = clamped(penner.OutExpo)
	ExpInOut   = clamped(penner.InOutExpo)
	BounceOut  = clamped(penner.OutBounce)
	// BackInOut overshoots on both ends, so intermediate values leave [0,1].
	BackInOut = clamped(penner.InOutBack)
)

var byName = map[string]Func{
	"linear":     Linear,
	"cubic":      CubicInOut,
	"exp":        ExpInOut,
	"exp-out":    ExpOut,
	"bounce-out": BounceOut,
	"back":       BackInOut,
}

// Lookup returns the named curve, or Linear.
func Lookup(name string) Func {
	if f, ok := byName[name]; ok {
		return f
	}
	return Linear
}
