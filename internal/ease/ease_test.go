package ease

import (
	"math"
	"testing"

	penner "github.com/fogleman/ease"
)

func TestEndpoints(t *testing.T) {
	for name, f := range byName {
		if got := f(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := f(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		if f(-3) != f(0) || f(7) != f(1) {
			t.Errorf("%s does not clamp its input", name)
		}
	}
}

func TestMonotonic(t *testing.T) {
	for _, name := range []string{"linear", "cubic", "exp", "exp-out", "bounce-out"} {
		f := byName[name]
		prev := f(0)
		for i := 1; i <= 100; i++ {
			v := f(float64(i) / 100)
			if v < -1e-9 || v > 1+1e-9 {
				t.Errorf("%s left [0,1] at %d: %v", name, i, v)
			}
			if name != "bounce-out" && v+1e-9 < prev {
				t.Errorf("%s decreased at %d", name, i)
			}
			prev = v
		}
	}
}

func TestBackOvershoots(t *testing.T) {
	if BackInOut(0.1) >= 0 {
		t.Error("BackInOut should dip below 0 near the start")
	}
	if BackInOut(0.9) <= 1 {
		t.Error("BackInOut should overshoot 1 near the end")
	}
}

func TestLookup(t *testing.T) {
	if Lookup("nope")(0.3) != 0.3 {
		t.Error("unknown curve should fall back to linear")
	}
	if Lookup("bounce-out")(0.5) != BounceOut(0.5) {
		t.Error("Lookup returned the wrong curve")
	}
}

func TestCurvesInsideRange(t *testing.T) {
	pairs := []struct {
		got, want func(float64) float64
	}{
		{CubicInOut, penner.InOutCubic},
		{ExpOut, penner.OutExpo},
		{ExpInOut, penner.InOutExpo},
		{BounceOut, penner.OutBounce},
		{BackInOut, penner.InOutBack},
	}
	for i, p := range pairs {
		for _, x := range []float64{0.1, 0.35, 0.5, 0.8} {
			if p.got(x) != p.want(x) {
				t.Errorf("curve %d at %v = %v, want %v", i, x, p.got(x), p.want(x))
			}
		}
	}
}
