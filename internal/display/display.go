// Package display implements the terminal variants of the sort Display:
// text array, bar chart, paragraph and rocket progress bar. Render records
// a new target and returns at once; the host draws frames with View while a
// transition plays.
package display

import (
	"cmp"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/san-kum/sortviz/internal/animate"
	"github.com/san-kum/sortviz/internal/palette"
	"github.com/san-kum/sortviz/internal/seq"
)

// ErrNoSurface indicates a display with nothing to draw on.
var ErrNoSurface = errors.New("display: no rendering surface")

// Widget is a Display that can also be drawn by a host.
type Widget[T cmp.Ordered] interface {
	animate.Display[T]
	// View draws the frame for the current time.
	View() string
	// Frame draws the running transition at progress p in [0,1].
	Frame(p float64) *Surface
	// Data returns the last rendered sequence.
	Data() seq.Sequence[T]
	Settled() bool
}

type Options struct {
	Width      int
	Height     int
	Transition time.Duration
	Theme      palette.Theme
	Now        func() time.Time
}

func (o Options) withDefaults(height int, transition time.Duration) Options {
	if o.Height == 0 {
		o.Height = height
	}
	if o.Transition == 0 {
		o.Transition = transition
	}
	if o.Theme.Name == "" {
		o.Theme = palette.ThemeDark
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func (o Options) check() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w (%dx%d)", ErrNoSurface, o.Width, o.Height)
	}
	return nil
}

// Label formats a value the way the number displays show it: integers
// zero padded to two digits, everything else as fmt prints it.
func Label[T cmp.Ordered](v T) string {
	switch x := any(v).(type) {
	case int:
		return fmt.Sprintf("%02d", x)
	case int64:
		return fmt.Sprintf("%02d", x)
	case int32:
		return fmt.Sprintf("%02d", x)
	case float64:
		return fmt.Sprintf("%g", x)
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}

func keyOf[T cmp.Ordered](v T) string { return fmt.Sprint(v) }

// ranks maps every value to its position in sorted order, for scale colors
// on displays whose values are not numeric.
func ranks[T cmp.Ordered](s seq.Sequence[T]) map[T]float64 {
	vals := s.Values()
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	out := make(map[T]float64, len(vals))
	for i, v := range vals {
		if _, ok := out[v]; !ok {
			out[v] = float64(i)
		}
	}
	return out
}

// resolveRanked resolves an item color using its rank as the scale input.
func resolveRanked[T cmp.Ordered](it seq.Item[T], rank map[T]float64, n int, fallback string) string {
	return palette.Resolve(it.Color, rank[it.Value], 0, float64(n-1), fallback)
}
