package display

import (
	"cmp"
	"strings"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/ease"
	"github.com/san-kum/sortviz/internal/seq"
)

const (
	paragraphTransition = 1000 * time.Millisecond
	paragraphSetData    = 700 * time.Millisecond
	paragraphEnterDelay = 200 * time.Millisecond
)

// ParagraphDisplay lays words out left to right by their length. Words are
// matched case-insensitively across renders.
type ParagraphDisplay[T cmp.Ordered] struct {
	opts  Options
	label func(T) string
	scene *scene

	mu   sync.Mutex
	data seq.Sequence[T]
}

func NewParagraphDisplay[T cmp.Ordered](opts Options) *ParagraphDisplay[T] {
	opts = opts.withDefaults(arrayHeight, paragraphTransition)
	return &ParagraphDisplay[T]{
		opts:  opts,
		label: Label[T],
		scene: newScene(opts.Now),
	}
}

func (d *ParagraphDisplay[T]) SetLabel(f func(T) string) { d.label = f }

func (d *ParagraphDisplay[T]) Render(s seq.Sequence[T]) error {
	return d.SetData(s, d.opts.Transition)
}

// SetData renders s with a transition of the given length instead of the
// display default. A zero duration uses the short data-update default.
func (d *ParagraphDisplay[T]) SetData(s seq.Sequence[T], duration time.Duration) error {
	if err := d.opts.check(); err != nil {
		return err
	}
	if duration == 0 {
		duration = paragraphSetData
	}

	rank := ranks(s)
	targets := make([]target, len(s))
	x := 0
	for i, it := range s {
		label := d.label(it.Value)
		targets[i] = target{
			key:   strings.ToLower(label),
			label: label,
			at: attrs{
				X:     float64(x),
				Y:     arrayRow,
				Color: resolveRanked(it, rank, len(s), ""),
			},
		}
		x += len([]rune(label)) + 1
	}

	tm := timing{
		duration:   duration,
		enterDelay: paragraphEnterDelay,
		enter:      ease.BounceOut,
		update:     ease.ExpInOut,
		exit:       ease.ExpOut,
	}
	d.scene.retarget(targets, tm,
		func(t target) attrs {
			from := t.at
			from.Y = arrayRow - arrayShift
			return from
		},
		func(cur attrs) (attrs, attrs) {
			to := cur
			to.Y = arrayRow + arrayShift
			return cur, to
		})

	d.mu.Lock()
	d.data = s.Clone()
	d.mu.Unlock()
	return nil
}

func (d *ParagraphDisplay[T]) draw(marks []placed) *Surface {
	sf := NewSurface(d.opts.Width, d.opts.Height, d.opts.Theme)
	for _, m := range marks {
		sf.Text(round(m.at.X), round(m.at.Y), m.label, m.at.Color, true)
	}
	return sf
}

func (d *ParagraphDisplay[T]) View() string            { return d.draw(d.scene.current()).String() }
func (d *ParagraphDisplay[T]) Frame(p float64) *Surface { return d.draw(d.scene.at(p)) }
func (d *ParagraphDisplay[T]) Settled() bool            { return d.scene.settled() }

func (d *ParagraphDisplay[T]) Data() seq.Sequence[T] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.data.Clone()
}
