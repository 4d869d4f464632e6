package seq

import (
	"cmp"
	"strings"
)

// Color is a fixed color token, the Default sentinel, or a scale reference
// built with Scale.
type Color string

const Default Color = ""

const scalePrefix = "scale:"

// Scale returns a color that is derived from the item value through the
// named sequential scale at render time.
func Scale(name string) Color {
	return Color(scalePrefix + name)
}

func (c Color) IsDefault() bool { return c == Default }

func (c Color) ScaleName() (string, bool) {
	s := string(c)
	if !strings.HasPrefix(s, scalePrefix) {
		return "", false
	}
	return s[len(scalePrefix):], true
}

func (c Color) String() string {
	if c == Default {
		return "default"
	}
	return string(c)
}

// ParseColor is the inverse of Color.String.
func ParseColor(s string) Color {
	if s == "" || s == "default" {
		return Default
	}
	return Color(s)
}

type Item[T cmp.Ordered] struct {
	Value T
	Color Color
}

type Sequence[T cmp.Ordered] []Item[T]

func (s Sequence[T]) Len() int { return len(s) }

func (s Sequence[T]) Clone() Sequence[T] {
	if s == nil {
		return nil
	}
	c := make(Sequence[T], len(s))
	copy(c, s)
	return c
}

func (s Sequence[T]) Values() []T {
	out := make([]T, len(s))
	for i, it := range s {
		out[i] = it.Value
	}
	return out
}

func (s Sequence[T]) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i-1].Value > s[i].Value {
			return false
		}
	}
	return true
}

// Inversions counts pairs (i, j), i < j, with s[i] > s[j]. It is the number
// of swaps bubble sort performs on s.
func (s Sequence[T]) Inversions() int {
	n := 0
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if s[i].Value > s[j].Value {
				n++
			}
		}
	}
	return n
}

// MaxInversions is the inversion count of a reversed sequence of length n.
func MaxInversions(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Sortedness reports 1 - inversions/max, 1 for sequences shorter than two.
func (s Sequence[T]) Sortedness() float64 {
	max := MaxInversions(len(s))
	if max == 0 {
		return 1
	}
	return 1 - float64(s.Inversions())/float64(max)
}

// Paint returns a copy with every item colored c.
func (s Sequence[T]) Paint(c Color) Sequence[T] {
	out := s.Clone()
	for i := range out {
		out[i].Color = c
	}
	return out
}
