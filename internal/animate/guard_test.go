package animate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/san-kum/sortviz/internal/seq"
)

// gateClock blocks the first Sleep until release is closed.
type gateClock struct {
	entered chan struct{}
	release chan struct{}
	first   bool
}

func newGateClock() *gateClock {
	return &gateClock{entered: make(chan struct{}), release: make(chan struct{}), first: true}
}

func (c *gateClock) Sleep(ctx context.Context, _ time.Duration) error {
	if c.first {
		c.first = false
		close(c.entered)
		select {
		case <-c.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return ctx.Err()
}

func TestSessionGuardRejectsOverlap(t *testing.T) {
	b := NewBubble[int](DefaultPalette, DefaultDelay)
	clock := newGateClock()
	b.SetClock(clock)
	rec := NewRecorder[int]()
	guard := NewSessionGuard(b, Display[int](rec))

	input := items(3, 1, 2)
	done := make(chan error, 1)
	go func() {
		ok, err := guard.TryRun(context.Background(), input)
		if !ok {
			err = errors.New("first run was rejected")
		}
		done <- err
	}()

	select {
	case <-clock.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("first session never started")
	}

	if !guard.Active() {
		t.Error("guard should be active while a session runs")
	}
	pushesBefore := rec.Len()
	ok, err := guard.TryRun(context.Background(), items(9, 8))
	if ok || err != nil {
		t.Errorf("overlapping TryRun = %v, %v; want false, nil", ok, err)
	}
	if rec.Len() != pushesBefore {
		t.Errorf("rejected run touched the display: %d -> %d pushes", pushesBefore, rec.Len())
	}

	close(clock.release)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("first session failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("first session never finished")
	}

	if guard.Active() {
		t.Error("guard should be inactive after completion")
	}
	if rec.Len() != TotalPushes(input) {
		t.Errorf("expected %d pushes from the accepted session only, got %d", TotalPushes(input), rec.Len())
	}
}

func TestSessionGuardEmptyInput(t *testing.T) {
	b := NewBubble[int](DefaultPalette, DefaultDelay)
	b.SetClock(InstantClock{})
	rec := NewRecorder[int]()
	guard := NewSessionGuard(b, Display[int](rec))

	ok, err := guard.TryRun(context.Background(), seq.Sequence[int]{})
	if !ok || err != nil {
		t.Fatalf("TryRun = %v, %v", ok, err)
	}
	if rec.Len() != 1 {
		t.Errorf("expected one push, got %d", rec.Len())
	}
	if guard.Active() {
		t.Error("guard should return to inactive")
	}
}

func TestSessionGuardReleasesOnFailure(t *testing.T) {
	b := NewBubble[int](DefaultPalette, DefaultDelay)
	b.SetClock(InstantClock{})
	boom := errors.New("render failed")
	guard := NewSessionGuard(b, Display[int](DisplayFunc[int](func(seq.Sequence[int]) error { return boom })))

	ok, err := guard.TryRun(context.Background(), items(2, 1))
	if !ok {
		t.Error("session should have been accepted")
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected display error, got %v", err)
	}
	if guard.Active() {
		t.Error("guard stuck active after a failed session")
	}
}

func TestSessionGuardsAreIndependent(t *testing.T) {
	b1 := NewBubble[int](DefaultPalette, DefaultDelay)
	gate := newGateClock()
	b1.SetClock(gate)
	g1 := NewSessionGuard(b1, Display[int](NewRecorder[int]()))

	b2 := NewBubble[int](DefaultPalette, DefaultDelay)
	b2.SetClock(InstantClock{})
	g2 := NewSessionGuard(b2, Display[int](NewRecorder[int]()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = g1.TryRun(context.Background(), items(2, 1))
	}()
	<-gate.entered

	ok, err := g2.TryRun(context.Background(), items(2, 1))
	if !ok || err != nil {
		t.Errorf("independent guard blocked: %v, %v", ok, err)
	}

	close(gate.release)
	<-done
}

func TestSessionGuardNilAnimator(t *testing.T) {
	g := NewSessionGuard[int](nil, NewRecorder[int]())
	if ok, err := g.TryRun(context.Background(), items(1)); ok || !errors.Is(err, ErrNilAnimator) {
		t.Errorf("TryRun = %v, %v", ok, err)
	}
}
