package display

import (
	"cmp"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/ease"
	"github.com/san-kum/sortviz/internal/seq"
)

const (
	rocketHeight     = 18
	rocketTransition = 3 * time.Second
	rocketTickCount  = 4
	rocketTickHalf   = 3
	rocketOuter      = 14
	smokeColor       = "#cbcbcb"
	rocketKey        = "rocket"
)

var rocketArt = []string{
	" /\\ ",
	"|[]|",
	"/||\\",
}

// RocketProgressBar flies a rocket up a percentage gauge. As a sort Display
// it tracks how sorted the sequence is; SetProgress drives it directly.
// Progress above 1 stretches the gauge and adds a tick at the value.
type RocketProgressBar[T cmp.Ordered] struct {
	opts  Options
	scene *scene

	mu       sync.Mutex
	data     seq.Sequence[T]
	progress float64
}

func NewRocketProgressBar[T cmp.Ordered](opts Options) *RocketProgressBar[T] {
	opts = opts.withDefaults(rocketHeight, rocketTransition)
	return &RocketProgressBar[T]{
		opts:  opts,
		scene: newScene(opts.Now),
	}
}

func (d *RocketProgressBar[T]) Render(s seq.Sequence[T]) error {
	if err := d.SetProgress(s.Sortedness()); err != nil {
		return err
	}
	d.mu.Lock()
	d.data = s.Clone()
	d.mu.Unlock()
	return nil
}

// SetProgress flies the rocket to p over the transition duration.
func (d *RocketProgressBar[T]) SetProgress(p float64) error {
	return d.fly(p, d.opts.Transition)
}

// Jump moves the rocket to p without a transition.
func (d *RocketProgressBar[T]) Jump(p float64) error {
	return d.fly(p, 0)
}

func (d *RocketProgressBar[T]) fly(p float64, duration time.Duration) error {
	if err := d.opts.check(); err != nil {
		return err
	}
	if p < 0 || math.IsNaN(p) {
		p = 0
	}

	tm := timing{
		duration: duration,
		enter:    ease.BackInOut,
		update:   ease.BackInOut,
	}
	// Y is the altitude, H the top of the gauge domain
	t := target{key: rocketKey, at: attrs{Y: p, H: math.Max(1, p)}}
	d.scene.retarget([]target{t}, tm,
		func(target) attrs { return attrs{Y: 0, H: 1} },
		func(cur attrs) (attrs, attrs) { return cur, cur })

	d.mu.Lock()
	d.progress = p
	d.mu.Unlock()
	return nil
}

func (d *RocketProgressBar[T]) Progress() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.progress
}

func (d *RocketProgressBar[T]) draw(marks []placed) *Surface {
	sf := NewSurface(d.opts.Width, d.opts.Height, d.opts.Theme)
	if len(marks) == 0 {
		return sf
	}
	alt, dom := marks[0].at.Y, marks[0].at.H
	if dom < 1 {
		dom = 1
	}

	h := d.opts.Height
	ground := h - 1
	top := h * 3 / 8
	gauge := float64(ground - top)
	row := func(v float64) int { return ground - round(v/dom*gauge) }
	cx := d.opts.Width / 2
	muted := string(d.opts.Theme.Muted)
	text := string(d.opts.Theme.Text)

	sf.HLine(0, d.opts.Width-1, ground, '─', muted)

	ticks := niceTicks(0, 1, rocketTickCount)
	if want := d.Progress(); want > 1 {
		ticks = append(ticks, want)
	}
	for i, v := range ticks {
		r := row(v)
		sf.HLine(cx-rocketTickHalf, cx+rocketTickHalf, r, '━', muted)
		label := fmt.Sprintf("%.0f%%", v*100)
		if i%2 == 0 {
			sf.HLine(cx+rocketTickHalf+1, cx+rocketOuter, r, '╌', muted)
			sf.Text(cx+rocketOuter-len(label)+1, r-1, label, text, false)
		} else {
			sf.HLine(cx-rocketOuter, cx-rocketTickHalf-1, r, '╌', muted)
			sf.Text(cx-rocketOuter, r-1, label, text, false)
		}
	}

	base := row(alt)
	for r := base + 1; r < ground; r++ {
		sf.Set(cx-1, r, '░', smokeColor, false)
		sf.Set(cx, r, '░', smokeColor, false)
	}
	accent := string(d.opts.Theme.Accent)
	for i, line := range rocketArt {
		sf.Text(cx-2, base-len(rocketArt)+1+i, line, accent, true)
	}

	sf.Text(0, 0, fmt.Sprintf("%3.0f%%", alt*100), text, true)
	return sf
}

func (d *RocketProgressBar[T]) View() string            { return d.draw(d.scene.current()).String() }
func (d *RocketProgressBar[T]) Frame(p float64) *Surface { return d.draw(d.scene.at(p)) }
func (d *RocketProgressBar[T]) Settled() bool            { return d.scene.settled() }

func (d *RocketProgressBar[T]) Data() seq.Sequence[T] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.data.Clone()
}
