package animate

import (
	"cmp"
	"fmt"

	"github.com/san-kum/sortviz/internal/seq"
)

// Display redraws an ordered sequence. Each call receives a fresh full
// sequence; implementations diff against their previous state themselves.
type Display[T cmp.Ordered] interface {
	Render(s seq.Sequence[T]) error
}

type DisplayFunc[T cmp.Ordered] func(s seq.Sequence[T]) error

func (f DisplayFunc[T]) Render(s seq.Sequence[T]) error { return f(s) }

// Palette holds the highlight colors of a session. Any field may be
// seq.Default.
type Palette struct {
	Selected seq.Color `yaml:"selected" json:"selected"`
	Base     seq.Color `yaml:"base" json:"base"`
	Done     seq.Color `yaml:"done" json:"done"`
}

var DefaultPalette = Palette{Selected: "red", Base: "black", Done: "green"}

type StepKind int

const (
	KindUnknown StepKind = iota
	KindInitial
	KindSelect
	KindSwap
	KindRestore
	KindFinal
)

var kindNames = [...]string{"unknown", "initial", "select", "swap", "restore", "final"}

func (k StepKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func ParseStepKind(s string) StepKind {
	for i, name := range kindNames {
		if name == s {
			return StepKind(i)
		}
	}
	return KindUnknown
}

// Step describes one push. Push counts from 1; Total is known up front
// because bubble sort swaps exactly once per inversion.
type Step struct {
	Kind  StepKind
	Push  int
	Total int
	I, J  int
}

type Observer interface {
	OnPush(step Step)
}

type ObserverFunc func(step Step)

func (f ObserverFunc) OnPush(step Step) { f(step) }

// TotalPushes returns the exact number of pushes a session over s makes.
func TotalPushes[T cmp.Ordered](s seq.Sequence[T]) int {
	n := len(s)
	if n < 2 {
		return 1
	}
	return 2 + 2*seq.MaxInversions(n) + s.Inversions()
}
