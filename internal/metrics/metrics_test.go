package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/sortviz/internal/animate"
	"github.com/san-kum/sortviz/internal/seq"
)

func run(t *testing.T, set *Set, values ...int) {
	t.Helper()
	input := make(seq.Sequence[int], len(values))
	for i, v := range values {
		input[i] = seq.Item[int]{Value: v}
	}
	b := animate.NewBubble[int](animate.DefaultPalette, 0)
	b.SetClock(animate.InstantClock{})
	b.AddObserver(set)
	if err := b.Run(context.Background(), input, animate.DisplayFunc[int](func(seq.Sequence[int]) error { return nil })); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultSet(t *testing.T) {
	set := Default()
	run(t, set, 3, 1, 2)

	got := set.Values()
	want := map[string]float64{
		"pushes":      10,
		"comparisons": 3,
		"swaps":       2,
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s = %v, want %v", name, got[name], v)
		}
	}
	if math.Abs(got["swap_rate"]-2.0/3.0) > 1e-9 {
		t.Errorf("swap_rate = %v, want 2/3", got["swap_rate"])
	}
}

func TestSwapRateExtremes(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   float64
	}{
		{"sorted", []int{1, 2, 3, 4}, 0},
		{"reversed", []int{4, 3, 2, 1}, 1},
		{"single", []int{7}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewSwapRate()
			run(t, NewSet(r), tt.values...)
			if r.Value() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, r.Value())
			}
		})
	}
}

func TestReset(t *testing.T) {
	set := Default()
	run(t, set, 2, 1)
	set.Reset()

	for name, v := range set.Values() {
		if v != 0 {
			t.Errorf("%s = %v after reset", name, v)
		}
	}
}
