package display

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/palette"
	"github.com/san-kum/sortviz/internal/seq"
)

type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

const (
	barHeight      = 14
	barAxisWidth   = 5
	barTransition  = 266 * time.Millisecond
	barUpdateDelay = 250 * time.Millisecond
	barEnterDelay  = 550 * time.Millisecond
	barScale       = "blues"
	// the color domain starts below zero so the smallest bars stay visible
	barColorOffset = 5
	barMaxTicks    = 20
)

var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// BarDisplay draws one vertical bar per item, height proportional to the
// value. Items without a color take theirs from the blues scale.
type BarDisplay[T Number] struct {
	opts  Options
	label func(T) string
	scene *scene

	mu    sync.Mutex
	data  seq.Sequence[T]
	yMax  float64
	ticks []float64
	band  int
}

func NewBarDisplay[T Number](opts Options) *BarDisplay[T] {
	opts = opts.withDefaults(barHeight, barTransition)
	return &BarDisplay[T]{
		opts:  opts,
		label: Label[T],
		scene: newScene(opts.Now),
		yMax:  1,
		band:  1,
	}
}

func (d *BarDisplay[T]) plotHeight() float64 { return float64(d.opts.Height - 1) }

func (d *BarDisplay[T]) Render(s seq.Sequence[T]) error {
	if err := d.opts.check(); err != nil {
		return err
	}

	yMax := 0.0
	for _, it := range s {
		yMax = math.Max(yMax, float64(it.Value))
	}
	if yMax <= 0 {
		yMax = 1
	}
	colorLo := -float64(barColorOffset)
	base := palette.Resolve(seq.Default, 0, colorLo, yMax, barScale)

	band := 1
	if n := len(s); n > 0 {
		band = max((d.opts.Width-barAxisWidth)/n, 1)
	}
	ph := d.plotHeight()

	targets := make([]target, len(s))
	for i, it := range s {
		v := float64(it.Value)
		targets[i] = target{
			key:   keyOf(it.Value),
			label: d.label(it.Value),
			at: attrs{
				X:     float64(i * band),
				H:     v / yMax * ph,
				Color: palette.Resolve(it.Color, v, colorLo, yMax, barScale),
			},
		}
	}

	tm := timing{
		duration:    d.opts.Transition,
		enterDelay:  barEnterDelay,
		updateDelay: barUpdateDelay,
	}
	d.scene.retarget(targets, tm,
		func(t target) attrs {
			return attrs{X: t.at.X, H: 0, Color: base}
		},
		func(cur attrs) (attrs, attrs) {
			to := cur
			to.H = 0
			to.Color = base
			return cur, to
		})

	d.mu.Lock()
	d.data = s.Clone()
	d.yMax = yMax
	d.ticks = niceTicks(0, yMax, min(int(yMax), barMaxTicks))
	d.band = band
	d.mu.Unlock()
	return nil
}

func (d *BarDisplay[T]) draw(marks []placed) *Surface {
	d.mu.Lock()
	yMax, ticks, band := d.yMax, d.ticks, d.band
	d.mu.Unlock()

	sf := NewSurface(d.opts.Width, d.opts.Height, d.opts.Theme)
	ph := d.opts.Height - 1
	barWidth := max(band-1, 1)

	for _, m := range marks {
		x0 := round(m.at.X)
		h := math.Max(m.at.H, 0)
		full := int(h)
		part := eighths[int((h-float64(full))*8)]
		for x := x0; x < x0+barWidth; x++ {
			for r := 0; r < full; r++ {
				sf.Set(x, ph-1-r, '█', m.at.Color, false)
			}
			if part != ' ' {
				sf.Set(x, ph-1-full, part, m.at.Color, false)
			}
		}
		if m.phase != phaseExit && len([]rune(m.label)) <= band {
			sf.Text(x0, ph, m.label, "", false)
		}
	}

	axis := d.opts.Width - barAxisWidth
	muted := string(d.opts.Theme.Muted)
	sf.VLine(axis, 0, ph-1, '│', muted)
	used := make(map[int]bool)
	for _, v := range ticks {
		row := ph - 1 - round(v/yMax*float64(ph-1))
		if used[row] {
			continue
		}
		used[row] = true
		sf.Set(axis, row, '┤', muted, false)
		sf.Text(axis+1, row, fmt.Sprintf("%g", v), muted, false)
	}
	return sf
}

func (d *BarDisplay[T]) View() string            { return d.draw(d.scene.current()).String() }
func (d *BarDisplay[T]) Frame(p float64) *Surface { return d.draw(d.scene.at(p)) }
func (d *BarDisplay[T]) Settled() bool            { return d.scene.settled() }

func (d *BarDisplay[T]) Data() seq.Sequence[T] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.data.Clone()
}

// niceTicks returns evenly spaced round values in [lo, hi], about count of
// them, stepping by 1, 2 or 5 times a power of ten.
func niceTicks(lo, hi float64, count int) []float64 {
	if count < 1 || hi <= lo {
		return []float64{lo}
	}
	raw := (hi - lo) / float64(count)
	step := math.Pow(10, math.Floor(math.Log10(raw)))
	switch e := raw / step; {
	case e >= math.Sqrt(50):
		step *= 10
	case e >= math.Sqrt(10):
		step *= 5
	case e >= math.Sqrt(2):
		step *= 2
	}

	first := math.Ceil(lo / step)
	last := math.Floor(hi / step)
	out := make([]float64, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		if step < 1 {
			inv := math.Round(1 / step)
			out = append(out, i/inv)
		} else {
			out = append(out, i*step)
		}
	}
	return out
}
