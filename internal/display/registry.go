package display

import (
	"fmt"
	"sort"
)

// Registry builds widgets by name. Words have no bar variant.
type Registry struct {
	ints  map[string]func(Options) Widget[int]
	words map[string]func(Options) Widget[string]
}

func NewRegistry() *Registry {
	r := &Registry{
		ints:  make(map[string]func(Options) Widget[int]),
		words: make(map[string]func(Options) Widget[string]),
	}

	r.ints["array"] = func(o Options) Widget[int] { return NewArrayDisplay[int](o) }
	r.ints["bar"] = func(o Options) Widget[int] { return NewBarDisplay[int](o) }
	r.ints["paragraph"] = func(o Options) Widget[int] { return NewParagraphDisplay[int](o) }
	r.ints["rocket"] = func(o Options) Widget[int] { return NewRocketProgressBar[int](o) }

	r.words["array"] = func(o Options) Widget[string] { return NewArrayDisplay[string](o) }
	r.words["paragraph"] = func(o Options) Widget[string] { return NewParagraphDisplay[string](o) }
	r.words["rocket"] = func(o Options) Widget[string] { return NewRocketProgressBar[string](o) }

	return r
}

func (r *Registry) Ints(name string, o Options) (Widget[int], error) {
	fn, ok := r.ints[name]
	if !ok {
		return nil, fmt.Errorf("unknown display: %s (available: %v)", name, r.ListInts())
	}
	return fn(o), nil
}

func (r *Registry) Words(name string, o Options) (Widget[string], error) {
	fn, ok := r.words[name]
	if !ok {
		return nil, fmt.Errorf("unknown word display: %s (available: %v)", name, r.ListWords())
	}
	return fn(o), nil
}

func (r *Registry) ListInts() []string  { return sortedKeys(r.ints) }
func (r *Registry) ListWords() []string { return sortedKeys(r.words) }

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
