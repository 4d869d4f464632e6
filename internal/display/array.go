package display

import (
	"cmp"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/ease"
	"github.com/san-kum/sortviz/internal/seq"
)

const (
	arrayHeight     = 5
	arrayRow        = 2
	arrayShift      = 2
	arrayCell       = 4
	arrayTransition = 500 * time.Millisecond
	arrayEnterDelay = 200 * time.Millisecond
	enterColor      = "#008000"
	exitColor       = "#ff0000"
)

// ArrayDisplay shows the sequence as a row of labels. New labels bounce in
// from above in green, removed ones fall out in red.
type ArrayDisplay[T cmp.Ordered] struct {
	opts  Options
	label func(T) string
	scene *scene

	mu   sync.Mutex
	data seq.Sequence[T]
}

func NewArrayDisplay[T cmp.Ordered](opts Options) *ArrayDisplay[T] {
	opts = opts.withDefaults(arrayHeight, arrayTransition)
	return &ArrayDisplay[T]{
		opts:  opts,
		label: Label[T],
		scene: newScene(opts.Now),
	}
}

func (d *ArrayDisplay[T]) SetLabel(f func(T) string) { d.label = f }

func (d *ArrayDisplay[T]) Render(s seq.Sequence[T]) error {
	if err := d.opts.check(); err != nil {
		return err
	}

	cell := arrayCell
	if n := len(s); n > 0 && n*cell > d.opts.Width {
		cell = max(d.opts.Width/n, 1)
	}

	rank := ranks(s)
	targets := make([]target, len(s))
	for i, it := range s {
		targets[i] = target{
			key:   keyOf(it.Value),
			label: d.label(it.Value),
			at: attrs{
				X:     float64(i * cell),
				Y:     arrayRow,
				Color: resolveRanked(it, rank, len(s), ""),
			},
		}
	}

	tm := timing{
		duration:   d.opts.Transition,
		enterDelay: arrayEnterDelay,
		enter:      ease.BounceOut,
		update:     ease.ExpInOut,
		exit:       ease.ExpOut,
	}
	d.scene.retarget(targets, tm,
		func(t target) attrs {
			return attrs{X: t.at.X, Y: arrayRow - arrayShift, Color: enterColor}
		},
		func(cur attrs) (attrs, attrs) {
			from := cur
			from.Color = exitColor
			to := from
			to.Y = arrayRow + arrayShift
			return from, to
		})

	d.mu.Lock()
	d.data = s.Clone()
	d.mu.Unlock()
	return nil
}

func (d *ArrayDisplay[T]) draw(marks []placed) *Surface {
	sf := NewSurface(d.opts.Width, d.opts.Height, d.opts.Theme)
	for _, m := range marks {
		sf.Text(round(m.at.X), round(m.at.Y), m.label, m.at.Color, true)
	}
	return sf
}

func (d *ArrayDisplay[T]) View() string            { return d.draw(d.scene.current()).String() }
func (d *ArrayDisplay[T]) Frame(p float64) *Surface { return d.draw(d.scene.at(p)) }
func (d *ArrayDisplay[T]) Settled() bool            { return d.scene.settled() }

func (d *ArrayDisplay[T]) Data() seq.Sequence[T] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.data.Clone()
}
