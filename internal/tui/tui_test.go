package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortviz/internal/animate"
	"github.com/san-kum/sortviz/internal/display"
	"github.com/san-kum/sortviz/internal/palette"
	"github.com/san-kum/sortviz/internal/seq"
)

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

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func reverse(s seq.Sequence[int]) seq.Sequence[int] {
	out := s.Clone()
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func newPage(t *testing.T, clock animate.Clock) (*SortPage[int], display.Widget[int]) {
	t.Helper()
	b := animate.NewBubble[int](animate.DefaultPalette, time.Millisecond)
	b.SetClock(clock)
	w := display.NewArrayDisplay[int](display.Options{Width: 80})

	page, err := NewSortPage(Config[int]{
		Title:   "Bubble sort",
		Widget:  w,
		Bubble:  b,
		Initial: seq.Range(1, 4, "black"),
		Resize:  func(n int) seq.Sequence[int] { return seq.Range(1, n, "black") },
		MaxSize: 6,
		Shuffle: reverse,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(page.Close)
	return page, w
}

func TestSortPagePlay(t *testing.T) {
	page, w := newPage(t, animate.InstantClock{})

	_, cmd := page.Update(enter)
	if cmd == nil {
		t.Fatal("play returned no command")
	}
	page.Update(cmd())

	if page.Runs() != 1 {
		t.Fatalf("runs = %d, want 1", page.Runs())
	}
	// reversed [1..4] has 6 inversions: 2 + 2*6 + 6
	if page.Status() != "sorted in 20 pushes, 6 swaps" {
		t.Errorf("status = %q", page.Status())
	}

	got := w.Data()
	if !got.IsSorted() || got.Len() != 4 {
		t.Errorf("display not left sorted: %v", got.Values())
	}
	for _, it := range got {
		if it.Color != "green" {
			t.Errorf("item %d colored %q, want green", it.Value, it.Color)
		}
	}
}

func TestSortPageResize(t *testing.T) {
	page, w := newPage(t, animate.InstantClock{})

	page.Update(runes("+"))
	if page.Size() != 5 || w.Data().Len() != 5 {
		t.Fatalf("size = %d, shown = %d, want 5", page.Size(), w.Data().Len())
	}
	page.Update(runes("+"))
	page.Update(runes("+"))
	if page.Size() != 6 {
		t.Errorf("size grew past max: %d", page.Size())
	}
	for i := 0; i < 10; i++ {
		page.Update(runes("-"))
	}
	if page.Size() != 2 {
		t.Errorf("size shrank past min: %d", page.Size())
	}
}

func TestSortPageWhileRunning(t *testing.T) {
	clock := newGateClock()
	page, w := newPage(t, clock)

	_, cmd := page.Update(enter)
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case <-clock.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("session never started")
	}
	if !page.Running() {
		t.Fatal("page should report a running session")
	}
	if !strings.Contains(page.View(), "play") {
		t.Error("view lost the play control")
	}

	page.Update(runes("+"))
	if page.Size() != 4 {
		t.Errorf("size changed during a session: %d", page.Size())
	}

	_, second := page.Update(enter)
	page.Update(second())
	if page.Status() != "a session is already running" {
		t.Errorf("second play status = %q", page.Status())
	}

	close(clock.release)
	select {
	case msg := <-done:
		page.Update(msg)
	case <-time.After(5 * time.Second):
		t.Fatal("session never finished")
	}
	if page.Running() {
		t.Error("guard still held after the session")
	}
	if !w.Data().IsSorted() {
		t.Error("display not sorted after the session")
	}
}

func TestSortPageQuitCancels(t *testing.T) {
	clock := newGateClock()
	page, _ := newPage(t, clock)

	_, cmd := page.Update(enter)
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	<-clock.entered

	page.Update(runes("q"))

	select {
	case msg := <-done:
		page.Update(msg)
	case <-time.After(5 * time.Second):
		t.Fatal("quit did not abort the session")
	}
	if page.Running() {
		t.Error("guard still held after abort")
	}
	if !strings.Contains(page.Status(), "context canceled") {
		t.Errorf("status = %q", page.Status())
	}
}

func TestSortPageRandom(t *testing.T) {
	w := display.NewBarDisplay[int](display.Options{Width: 60})
	calls := 0
	page, err := NewSortPage(Config[int]{
		Title:  "Random numbers",
		Widget: w,
		Regenerate: func() seq.Sequence[int] {
			calls++
			return seq.Range(1, calls+2, seq.Default)
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	defer page.Close()

	if _, cmd := page.Update(enter); cmd != nil {
		t.Error("random page should have no play control")
	}
	page.Update(regenMsg(time.Now()))
	page.Update(regenMsg(time.Now()))
	if calls != 2 || w.Data().Len() != 4 {
		t.Errorf("calls = %d, shown = %d", calls, w.Data().Len())
	}
}

func TestNewSortPageNilWidget(t *testing.T) {
	if _, err := NewSortPage(Config[int]{}); err == nil {
		t.Error("expected an error for a page without a widget")
	}
}

func TestRocketPage(t *testing.T) {
	r := display.NewRocketProgressBar[int](display.Options{Width: 40})
	page := NewRocketPage(r, 50, palette.Theme{}, nil)

	page.Update(enter)
	if r.Progress() != 0.5 {
		t.Errorf("progress = %v, want 0.5", r.Progress())
	}
	if page.Status() != "launched to 50%" {
		t.Errorf("status = %q", page.Status())
	}

	page.Update(tea.KeyMsg{Type: tea.KeyUp})
	if r.Progress() != 0.55 {
		t.Errorf("progress after nudge = %v, want 0.55", r.Progress())
	}
	if v, _ := page.Percent(); v != 55 {
		t.Errorf("input = %v, want 55", v)
	}

	page.Update(runes("x"))
	page.Update(enter)
	if !strings.Contains(page.Status(), "not a percentage") {
		t.Errorf("status = %q", page.Status())
	}
	if r.Progress() != 0.55 {
		t.Errorf("bad input moved the rocket: %v", r.Progress())
	}
}
