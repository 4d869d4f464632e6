package display

import (
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/ease"
	"github.com/san-kum/sortviz/internal/palette"
)

// attrs are the animated properties of one mark. Variants decide what X, Y
// and H mean on their surface.
type attrs struct {
	X, Y, H float64
	Color   string
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func (a attrs) toward(b attrs, t float64) attrs {
	return attrs{
		X:     lerp(a.X, b.X, t),
		Y:     lerp(a.Y, b.Y, t),
		H:     lerp(a.H, b.H, t),
		Color: palette.Blend(a.Color, b.Color, t),
	}
}

type phase int

const (
	phaseEnter phase = iota
	phaseUpdate
	phaseExit
)

type mark struct {
	key   string
	label string
	from  attrs
	to    attrs
	phase phase
}

type timing struct {
	duration    time.Duration
	enterDelay  time.Duration
	updateDelay time.Duration
	exitDelay   time.Duration
	enter       ease.Func
	update      ease.Func
	exit        ease.Func
}

func (t timing) delay(p phase) time.Duration {
	switch p {
	case phaseEnter:
		return t.enterDelay
	case phaseExit:
		return t.exitDelay
	default:
		return t.updateDelay
	}
}

func (t timing) curve(p phase) ease.Func {
	var f ease.Func
	switch p {
	case phaseEnter:
		f = t.enter
	case phaseExit:
		f = t.exit
	default:
		f = t.update
	}
	if f == nil {
		return ease.CubicInOut
	}
	return f
}

func (t timing) total() time.Duration {
	d := t.enterDelay
	if t.updateDelay > d {
		d = t.updateDelay
	}
	if t.exitDelay > d {
		d = t.exitDelay
	}
	return d + t.duration
}

func (t timing) local(p phase, elapsed time.Duration) float64 {
	elapsed -= t.delay(p)
	if t.duration <= 0 {
		if elapsed >= 0 {
			return 1
		}
		return 0
	}
	v := float64(elapsed) / float64(t.duration)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

type target struct {
	key   string
	label string
	at    attrs
}

type placed struct {
	key   string
	label string
	phase phase
	at    attrs
}

// scene holds the marks of a display and the transition currently moving
// them. Render goroutines retarget it while the host reads frames.
type scene struct {
	mu     sync.Mutex
	marks  []*mark
	start  time.Time
	timing timing
	now    func() time.Time
}

func newScene(now func() time.Time) *scene {
	return &scene{now: now, start: now()}
}

func (s *scene) attrsOf(m *mark, elapsed time.Duration) attrs {
	return m.from.toward(m.to, s.timing.curve(m.phase)(s.timing.local(m.phase, elapsed)))
}

// retarget starts a new transition from wherever the marks are now toward
// targets. enterFrom gives the starting attrs of a new mark; exit gives the
// start and end attrs of a mark that left the data.
func (s *scene) retarget(targets []target, tm timing, enterFrom func(target) attrs, exit func(attrs) (attrs, attrs)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	elapsed := now.Sub(s.start)

	cur := make([]*mark, 0, len(s.marks))
	for _, m := range s.marks {
		if m.phase == phaseExit && s.timing.local(phaseExit, elapsed) >= 1 {
			continue
		}
		m.from = s.attrsOf(m, elapsed)
		cur = append(cur, m)
	}

	oldKeys := make([]string, len(cur))
	for i, m := range cur {
		oldKeys[i] = m.key
	}
	newKeys := make([]string, len(targets))
	for i, t := range targets {
		newKeys[i] = t.key
	}
	j := Join(oldKeys, newKeys)

	ordered := make([]*mark, len(targets))
	for _, p := range j.Update {
		m := cur[p.Old]
		t := targets[p.New]
		m.label = t.label
		m.to = t.at
		m.phase = phaseUpdate
		ordered[p.New] = m
	}
	for _, i := range j.Enter {
		t := targets[i]
		ordered[i] = &mark{key: t.key, label: t.label, from: enterFrom(t), to: t.at, phase: phaseEnter}
	}
	for _, i := range j.Exit {
		m := cur[i]
		m.from, m.to = exit(m.from)
		m.phase = phaseExit
		ordered = append(ordered, m)
	}

	s.marks = ordered
	s.start = now
	s.timing = tm
}

func (s *scene) frame(elapsed time.Duration) []placed {
	out := make([]placed, 0, len(s.marks))
	for _, m := range s.marks {
		if m.phase == phaseExit && s.timing.local(phaseExit, elapsed) >= 1 {
			continue
		}
		out = append(out, placed{key: m.key, label: m.label, phase: m.phase, at: s.attrsOf(m, elapsed)})
	}
	return out
}

// current returns the marks as they stand right now.
func (s *scene) current() []placed {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame(s.now().Sub(s.start))
}

// at returns the marks at progress p of the running transition.
func (s *scene) at(p float64) []placed {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return s.frame(time.Duration(p * float64(s.timing.total())))
}

func (s *scene) settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Sub(s.start) >= s.timing.total()
}
