package display

import (
	"cmp"
	"fmt"
	"io"

	"github.com/san-kum/sortviz/internal/seq"
)

// Printer writes the settled frame of a widget after every push. It is the
// host for non-interactive runs.
type Printer[T cmp.Ordered] struct {
	widget Widget[T]
	out    io.Writer
	styled bool
	frames int
}

func NewPrinter[T cmp.Ordered](w Widget[T], out io.Writer, styled bool) *Printer[T] {
	return &Printer[T]{widget: w, out: out, styled: styled}
}

func (p *Printer[T]) Render(s seq.Sequence[T]) error {
	if err := p.widget.Render(s); err != nil {
		return err
	}
	p.frames++

	frame := p.widget.Frame(1)
	body := frame.Plain()
	if p.styled {
		body = frame.String()
	}
	if _, err := fmt.Fprintf(p.out, "-- frame %d\n%s\n", p.frames, body); err != nil {
		return fmt.Errorf("display: write frame: %w", err)
	}
	return nil
}

func (p *Printer[T]) Frames() int { return p.frames }
