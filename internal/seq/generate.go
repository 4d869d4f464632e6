package seq

import (
	"cmp"
	"math/rand"
	"strings"
)

func Range(lo, hi int, c Color) Sequence[int] {
	if hi < lo {
		return Sequence[int]{}
	}
	out := make(Sequence[int], 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, Item[int]{Value: v, Color: c})
	}
	return out
}

func Shuffle[T cmp.Ordered](s Sequence[T], rng *rand.Rand) Sequence[T] {
	out := s.Clone()
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Random draws size distinct values from [min, max). A size of zero or less
// picks between 5 and 20 items. The size is clamped to max-min so the draw always
// terminates.
func Random(rng *rand.Rand, min, max, size int, c Color) Sequence[int] {
	if max <= min {
		return Sequence[int]{}
	}
	if size <= 0 {
		size = 5 + rng.Intn(16)
	}
	if size > max-min {
		size = max - min
	}

	seen := make(map[int]bool, size)
	out := make(Sequence[int], 0, size)
	for len(out) < size {
		v := min + rng.Intn(max-min)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, Item[int]{Value: v, Color: c})
	}
	return out
}

func Words(text string, c Color) Sequence[string] {
	fields := strings.Fields(text)
	out := make(Sequence[string], len(fields))
	for i, w := range fields {
		out[i] = Item[string]{Value: w, Color: c}
	}
	return out
}
