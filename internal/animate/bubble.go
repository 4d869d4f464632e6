package animate

import (
	"cmp"
	"context"
	"log/slog"
	"time"

	"github.com/san-kum/sortviz/internal/seq"
)

const DefaultDelay = 800 * time.Millisecond

// Bubble animates a bubble sort, pushing every observable step to a display
// and pausing Delay after each one.
type Bubble[T cmp.Ordered] struct {
	palette   Palette
	delay     time.Duration
	clock     Clock
	logger    *slog.Logger
	observers []Observer
}

func NewBubble[T cmp.Ordered](palette Palette, delay time.Duration) *Bubble[T] {
	return &Bubble[T]{
		palette:   palette,
		delay:     delay,
		clock:     RealClock{},
		logger:    slog.Default(),
		observers: make([]Observer, 0),
	}
}

func (b *Bubble[T]) SetClock(c Clock) { b.clock = c }

func (b *Bubble[T]) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	b.logger = l
}

func (b *Bubble[T]) AddObserver(o Observer) { b.observers = append(b.observers, o) }

func (b *Bubble[T]) Palette() Palette     { return b.palette }
func (b *Bubble[T]) Delay() time.Duration { return b.delay }

type session[T cmp.Ordered] struct {
	b       *Bubble[T]
	ctx     context.Context
	display Display[T]
	items   seq.Sequence[T]
	pushes  int
	total   int
}

// Run sorts a copy of input. The display ends on the sorted sequence with
// every item colored Done. A display or context error aborts the session
// and is returned wrapped in a *SessionError.
func (b *Bubble[T]) Run(ctx context.Context, input seq.Sequence[T], display Display[T]) error {
	if display == nil {
		return ErrNilDisplay
	}

	s := &session[T]{
		b:       b,
		ctx:     ctx,
		display: display,
		items:   input.Clone(),
		total:   TotalPushes(input),
	}
	if s.items == nil {
		s.items = seq.Sequence[T]{}
	}

	n := len(s.items)
	b.logger.Info("sort session started", "items", n, "pushes", s.total, "delay", b.delay)
	start := time.Now()

	// nothing to compare: a single push of the finished state
	if n < 2 {
		if err := s.push(s.items.Paint(b.palette.Done), Step{Kind: KindFinal}, false); err != nil {
			return err
		}
		b.logger.Info("sort session finished", "items", n, "pushes", s.pushes, "elapsed", time.Since(start))
		return nil
	}

	if err := s.push(s.items, Step{Kind: KindInitial}, true); err != nil {
		return err
	}

	items := s.items
	for i := 0; i < n; i++ {
		for j := 0; j < n-1-i; j++ {
			items[j].Color = b.palette.Selected
			items[j+1].Color = b.palette.Selected
			if err := s.push(items, Step{Kind: KindSelect, I: i, J: j}, true); err != nil {
				return err
			}

			if items[j].Value > items[j+1].Value {
				items[j], items[j+1] = items[j+1], items[j]
				if err := s.push(items, Step{Kind: KindSwap, I: i, J: j}, true); err != nil {
					return err
				}
			}

			items[j].Color = b.palette.Base
			items[j+1].Color = b.palette.Base
			if err := s.push(items, Step{Kind: KindRestore, I: i, J: j}, true); err != nil {
				return err
			}
		}
	}

	if err := s.push(items.Paint(b.palette.Done), Step{Kind: KindFinal, I: n - 1, J: -1}, false); err != nil {
		return err
	}

	b.logger.Info("sort session finished", "items", n, "pushes", s.pushes, "elapsed", time.Since(start))
	return nil
}

func (s *session[T]) push(items seq.Sequence[T], step Step, wait bool) error {
	step.Push = s.pushes + 1
	step.Total = s.total

	if err := s.ctx.Err(); err != nil {
		return &SessionError{Step: step, Pushes: s.pushes, Wrapped: err}
	}
	if err := s.display.Render(items.Clone()); err != nil {
		return &SessionError{Step: step, Pushes: s.pushes, Wrapped: err}
	}
	s.pushes++

	s.b.logger.Debug("push", "push", step.Push, "total", step.Total, "kind", step.Kind, "i", step.I, "j", step.J)
	for _, o := range s.b.observers {
		o.OnPush(step)
	}

	if !wait {
		return nil
	}
	if err := s.b.clock.Sleep(s.ctx, s.b.delay); err != nil {
		return &SessionError{Step: step, Pushes: s.pushes, Wrapped: err}
	}
	return nil
}
