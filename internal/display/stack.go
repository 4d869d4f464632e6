package display

import (
	"cmp"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/palette"
	"github.com/san-kum/sortviz/internal/seq"
)

const stackGap = 1

// Panel is one widget of a Stack. When Paint is set the panel renders the
// sequence it returns instead of the shared one.
type Panel[T cmp.Ordered] struct {
	Widget Widget[T]
	Paint  func(seq.Sequence[T]) seq.Sequence[T]
}

var _ Widget[int] = (*Stack[int])(nil)

// Stack shows one sequence on several widgets, top to bottom.
type Stack[T cmp.Ordered] struct {
	panels []Panel[T]
}

func NewStack[T cmp.Ordered](panels ...Panel[T]) *Stack[T] {
	return &Stack[T]{panels: panels}
}

func (s *Stack[T]) Render(in seq.Sequence[T]) error {
	if len(s.panels) == 0 {
		return fmt.Errorf("%w (empty stack)", ErrNoSurface)
	}
	for i, p := range s.panels {
		data := in
		if p.Paint != nil {
			data = p.Paint(in.Clone())
		}
		if err := p.Widget.Render(data); err != nil {
			return fmt.Errorf("panel %d: %w", i, err)
		}
	}
	return nil
}

func (s *Stack[T]) View() string {
	views := make([]string, 0, 2*len(s.panels))
	for i, p := range s.panels {
		if i > 0 {
			views = append(views, "")
		}
		views = append(views, p.Widget.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

// Frame draws every panel at progress p onto one surface, a blank row
// between panels.
func (s *Stack[T]) Frame(p float64) *Surface {
	if len(s.panels) == 0 {
		return NewSurface(0, 0, palette.ThemeDark)
	}

	frames := make([]*Surface, len(s.panels))
	w, h := 0, stackGap*(len(s.panels)-1)
	for i, panel := range s.panels {
		frames[i] = panel.Widget.Frame(p)
		w = max(w, frames[i].Width)
		h += frames[i].Height
	}

	out := NewSurface(w, h, frames[0].theme)
	top := 0
	for _, f := range frames {
		for y := 0; y < f.Height; y++ {
			copy(out.cells[top+y], f.cells[y])
		}
		top += f.Height + stackGap
	}
	return out
}

// Data returns what the first panel shows.
func (s *Stack[T]) Data() seq.Sequence[T] {
	if len(s.panels) == 0 {
		return seq.Sequence[T]{}
	}
	return s.panels[0].Widget.Data()
}

func (s *Stack[T]) Settled() bool {
	for _, p := range s.panels {
		if !p.Widget.Settled() {
			return false
		}
	}
	return true
}
