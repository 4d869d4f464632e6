// Package metrics summarizes a sort session from the steps its animator
// pushes.
package metrics

import "github.com/san-kum/sortviz/internal/animate"

type Metric interface {
	Name() string
	Observe(step animate.Step)
	Value() float64
	Reset()
}

// Counter counts pushes of one kind, or every push when kind is
// animate.KindUnknown.
type Counter struct {
	name  string
	kind  animate.StepKind
	count int
}

func NewCounter(name string, kind animate.StepKind) *Counter {
	return &Counter{name: name, kind: kind}
}

func NewPushes() *Counter      { return NewCounter("pushes", animate.KindUnknown) }
func NewComparisons() *Counter { return NewCounter("comparisons", animate.KindSelect) }
func NewSwaps() *Counter       { return NewCounter("swaps", animate.KindSwap) }

func (c *Counter) Name() string {
	return c.name
}

func (c *Counter) Observe(step animate.Step) {
	if c.kind == animate.KindUnknown || step.Kind == c.kind {
		c.count++
	}
}

func (c *Counter) Value() float64 {
	return float64(c.count)
}

func (c *Counter) Reset() {
	c.count = 0
}
