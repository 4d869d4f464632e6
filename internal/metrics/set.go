package metrics

import (
	"sync"

	"github.com/san-kum/sortviz/internal/animate"
)

// Set fans pushes out to its metrics. It is an animate.Observer and is
// safe to read while a session runs.
type Set struct {
	mu      sync.Mutex
	metrics []Metric
}

func NewSet(ms ...Metric) *Set {
	return &Set{metrics: ms}
}

// Default tracks pushes, comparisons, swaps and the swap rate.
func Default() *Set {
	return NewSet(NewPushes(), NewComparisons(), NewSwaps(), NewSwapRate())
}

func (s *Set) OnPush(step animate.Step) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.metrics {
		m.Observe(step)
	}
}

func (s *Set) Values() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s *Set) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.metrics {
		m.Reset()
	}
}
