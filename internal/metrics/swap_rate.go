package metrics

import "github.com/san-kum/sortviz/internal/animate"

// SwapRate is the share of comparisons that ended in a swap: 0 for sorted
// input, 1 for reversed input.
type SwapRate struct {
	name        string
	swaps       int
	comparisons int
}

func NewSwapRate() *SwapRate {
	return &SwapRate{
		name: "swap_rate",
	}
}

func (s *SwapRate) Name() string {
	return s.name
}

func (s *SwapRate) Observe(step animate.Step) {
	switch step.Kind {
	case animate.KindSelect:
		s.comparisons++
	case animate.KindSwap:
		s.swaps++
	}
}

func (s *SwapRate) Value() float64 {
	if s.comparisons == 0 {
		return 0
	}
	return float64(s.swaps) / float64(s.comparisons)
}

func (s *SwapRate) Reset() {
	s.swaps = 0
	s.comparisons = 0
}
