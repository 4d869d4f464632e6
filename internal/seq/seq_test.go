package seq

import (
	"math/rand"
	"testing"
)

func TestColor(t *testing.T) {
	if !Default.IsDefault() {
		t.Error("Default should report IsDefault")
	}
	if Color("red").IsDefault() {
		t.Error("red should not be default")
	}

	name, ok := Scale("reds").ScaleName()
	if !ok || name != "reds" {
		t.Errorf("ScaleName() = %q, %v", name, ok)
	}
	if _, ok := Color("green").ScaleName(); ok {
		t.Error("fixed color should not be a scale")
	}

	for _, c := range []Color{Default, "red", Scale("greens"), "#ff00ff"} {
		if got := ParseColor(c.String()); got != c {
			t.Errorf("ParseColor(%q) = %q, want %q", c.String(), got, c)
		}
	}
}

func TestSequence_Clone(t *testing.T) {
	s := Range(1, 3, "black")
	c := s.Clone()
	c[0].Color = "red"
	c[1], c[2] = c[2], c[1]

	if s[0].Color != "black" || s[1].Value != 2 {
		t.Errorf("Clone shares storage with original: %v", s)
	}
	if Sequence[int](nil).Clone() != nil {
		t.Error("nil clone should stay nil")
	}
}

func TestSequence_Inversions(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		inv    int
		sorted bool
	}{
		{"empty", nil, 0, true},
		{"single", []int{4}, 0, true},
		{"sorted", []int{1, 2, 3, 4}, 0, true},
		{"reversed", []int{4, 3, 2, 1}, 6, false},
		{"scenario", []int{3, 1, 2}, 2, false},
		{"ties", []int{2, 2, 1}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := make(Sequence[int], len(tt.values))
			for i, v := range tt.values {
				s[i] = Item[int]{Value: v}
			}
			if got := s.Inversions(); got != tt.inv {
				t.Errorf("Inversions() = %d, want %d", got, tt.inv)
			}
			if got := s.IsSorted(); got != tt.sorted {
				t.Errorf("IsSorted() = %v, want %v", got, tt.sorted)
			}
		})
	}
}

func TestSequence_Sortedness(t *testing.T) {
	if got := Range(1, 5, Default).Sortedness(); got != 1 {
		t.Errorf("sorted sequence sortedness = %v, want 1", got)
	}
	rev := Sequence[int]{{Value: 3}, {Value: 2}, {Value: 1}}
	if got := rev.Sortedness(); got != 0 {
		t.Errorf("reversed sortedness = %v, want 0", got)
	}
	if got := (Sequence[int]{}).Sortedness(); got != 1 {
		t.Errorf("empty sortedness = %v, want 1", got)
	}
}

func TestRange(t *testing.T) {
	s := Range(1, 15, "black")
	if len(s) != 15 || s[0].Value != 1 || s[14].Value != 15 {
		t.Errorf("Range(1, 15) = %v", s.Values())
	}
	if len(Range(3, 1, Default)) != 0 {
		t.Error("inverted range should be empty")
	}
}

func TestShuffle(t *testing.T) {
	s := Range(1, 20, "black")
	sh := Shuffle(s, rand.New(rand.NewSource(7)))

	if len(sh) != len(s) {
		t.Fatalf("Shuffle changed length: %d", len(sh))
	}
	seen := map[int]bool{}
	for _, it := range sh {
		seen[it.Value] = true
	}
	if len(seen) != 20 {
		t.Error("Shuffle is not a permutation")
	}
	if !s.IsSorted() {
		t.Error("Shuffle mutated its input")
	}
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	s := Random(rng, 0, 20, 10, "black")
	if len(s) != 10 {
		t.Fatalf("expected 10 items, got %d", len(s))
	}
	seen := map[int]bool{}
	for _, it := range s {
		if it.Value < 0 || it.Value >= 20 {
			t.Errorf("value %d out of range", it.Value)
		}
		if seen[it.Value] {
			t.Errorf("duplicate value %d", it.Value)
		}
		seen[it.Value] = true
	}

	sizes := map[int]bool{}
	for i := 0; i < 2000; i++ {
		auto := Random(rng, 0, 100, 0, Default)
		if len(auto) < 5 || len(auto) > 20 {
			t.Fatalf("auto size %d outside [5, 20]", len(auto))
		}
		sizes[len(auto)] = true
	}
	if !sizes[5] || !sizes[20] {
		t.Errorf("auto sizes never reached both ends of [5, 20]: %v", sizes)
	}

	if got := len(Random(rng, 0, 4, 10, Default)); got != 4 {
		t.Errorf("size should clamp to range width, got %d", got)
	}
	if got := len(Random(rng, 5, 5, 3, Default)); got != 0 {
		t.Errorf("empty range should yield nothing, got %d", got)
	}
}

func TestWords(t *testing.T) {
	s := Words("  the quick  brown fox ", "black")
	want := []string{"the", "quick", "brown", "fox"}
	if len(s) != len(want) {
		t.Fatalf("Words() = %v", s.Values())
	}
	for i, w := range want {
		if s[i].Value != w || s[i].Color != "black" {
			t.Errorf("word %d = %+v", i, s[i])
		}
	}
}
