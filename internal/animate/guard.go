package animate

import (
	"cmp"
	"context"
	"log/slog"
	"sync"

	"github.com/san-kum/sortviz/internal/seq"
)

// SessionGuard allows at most one session at a time against its display.
// Build one per (display, control) pair; guards share no state.
type SessionGuard[T cmp.Ordered] struct {
	mu       sync.Mutex
	active   bool
	animator *Bubble[T]
	display  Display[T]
	logger   *slog.Logger
}

func NewSessionGuard[T cmp.Ordered](animator *Bubble[T], display Display[T]) *SessionGuard[T] {
	return &SessionGuard[T]{
		animator: animator,
		display:  display,
		logger:   slog.Default(),
	}
}

func (g *SessionGuard[T]) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	g.logger = l
}

func (g *SessionGuard[T]) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// TryRun starts a session over s and blocks until it completes. It returns
// false without touching the display when a session is already running.
// The guard is released when the session ends, including when it fails;
// the failure is returned to the caller.
func (g *SessionGuard[T]) TryRun(ctx context.Context, s seq.Sequence[T]) (bool, error) {
	if g.animator == nil {
		return false, ErrNilAnimator
	}

	g.mu.Lock()
	if g.active {
		g.mu.Unlock()
		g.logger.Debug("sort session rejected, guard active")
		return false, nil
	}
	g.active = true
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.active = false
		g.mu.Unlock()
	}()

	if err := g.animator.Run(ctx, s, g.display); err != nil {
		g.logger.Warn("sort session failed", "err", err)
		return true, err
	}
	return true, nil
}
