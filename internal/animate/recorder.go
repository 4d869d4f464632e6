package animate

import (
	"cmp"
	"sync"

	"github.com/san-kum/sortviz/internal/seq"
)

type Frame[T cmp.Ordered] struct {
	Step  Step
	Items seq.Sequence[T]
}

// Recorder is a Display that keeps a copy of every push. Registered as an
// observer on the same animator it also labels each frame with its step.
type Recorder[T cmp.Ordered] struct {
	mu     sync.Mutex
	frames []Frame[T]
}

func NewRecorder[T cmp.Ordered]() *Recorder[T] {
	return &Recorder[T]{frames: make([]Frame[T], 0)}
}

func (r *Recorder[T]) Render(s seq.Sequence[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, Frame[T]{Items: s.Clone()})
	return nil
}

func (r *Recorder[T]) OnPush(step Step) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) > 0 {
		r.frames[len(r.frames)-1].Step = step
	}
}

func (r *Recorder[T]) Frames() []Frame[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Frame[T], len(r.frames))
	copy(out, r.frames)
	return out
}

func (r *Recorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func (r *Recorder[T]) Last() (seq.Sequence[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return nil, false
	}
	return r.frames[len(r.frames)-1].Items, true
}

func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = r.frames[:0]
}

// Multi fans every push out to each display in order and stops at the first
// error.
type Multi[T cmp.Ordered] []Display[T]

func (m Multi[T]) Render(s seq.Sequence[T]) error {
	for _, d := range m {
		if err := d.Render(s); err != nil {
			return err
		}
	}
	return nil
}
