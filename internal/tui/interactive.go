// Package tui hosts the sort displays in a bubbletea program: a play
// control guarded against overlapping sessions, a size control and a frame
// clock that redraws the running transition.
package tui

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortviz/internal/animate"
	"github.com/san-kum/sortviz/internal/display"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/palette"
	"github.com/san-kum/sortviz/internal/seq"
)

const (
	frameInterval  = time.Second / 60
	randomInterval = 2 * time.Second
	progressWidth  = 40
)

// Config describes one demo page. Bubble is nil for pages that only show
// data, like the random numbers demo.
type Config[T cmp.Ordered] struct {
	Title   string
	Widget  display.Widget[T]
	Bubble  *animate.Bubble[T]
	Initial seq.Sequence[T]

	// Resize builds the sequence shown after a size change. Nil disables
	// the size control.
	Resize  func(n int) seq.Sequence[T]
	Size    int
	MinSize int
	MaxSize int

	// Shuffle prepares the input of a session from the shown data.
	Shuffle func(seq.Sequence[T]) seq.Sequence[T]

	// Regenerate replaces the shown data every two seconds when set.
	Regenerate func() seq.Sequence[T]

	Theme  palette.Theme
	Logger *slog.Logger
}

type frameMsg time.Time

type regenMsg time.Time

type sessionDoneMsg struct {
	ran bool
	err error
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func regen() tea.Cmd {
	return tea.Tick(randomInterval, func(t time.Time) tea.Msg { return regenMsg(t) })
}

// tracker keeps the last push seen by the animator. Sessions run on a
// command goroutine while the program reads it on every frame.
type tracker struct {
	mu   sync.Mutex
	step animate.Step
}

func (t *tracker) OnPush(step animate.Step) {
	t.mu.Lock()
	t.step = step
	t.mu.Unlock()
}

func (t *tracker) last() animate.Step {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.step
}

func (t *tracker) reset() {
	t.mu.Lock()
	t.step = animate.Step{}
	t.mu.Unlock()
}

// SortPage is the bubbletea model of a sort or random demo.
type SortPage[T cmp.Ordered] struct {
	cfg    Config[T]
	guard  *animate.SessionGuard[T]
	steps  *tracker
	stats  *metrics.Set
	ctx    context.Context
	cancel context.CancelFunc

	keys     KeyMap
	help     help.Model
	progress progress.Model
	style    styles
	logger   *slog.Logger

	size   int
	status string
	failed bool
	runs   int
}

func NewSortPage[T cmp.Ordered](cfg Config[T]) (*SortPage[T], error) {
	if cfg.Widget == nil {
		return nil, animate.ErrNilDisplay
	}
	if cfg.Theme.Name == "" {
		cfg.Theme = palette.ThemeDark
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.MinSize <= 0 {
		cfg.MinSize = 2
	}
	if cfg.MaxSize < cfg.MinSize {
		cfg.MaxSize = 30
	}
	if cfg.Size <= 0 {
		cfg.Size = cfg.Initial.Len()
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &SortPage[T]{
		cfg:      cfg,
		steps:    &tracker{},
		stats:    metrics.Default(),
		ctx:      ctx,
		cancel:   cancel,
		keys:     DefaultKeyMap,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
		style:    newStyles(cfg.Theme),
		logger:   cfg.Logger,
		size:     cfg.Size,
	}

	if cfg.Bubble != nil {
		cfg.Bubble.AddObserver(p.steps)
		cfg.Bubble.AddObserver(p.stats)
		p.guard = animate.NewSessionGuard(cfg.Bubble, cfg.Widget)
		p.guard.SetLogger(cfg.Logger)
	}

	if cfg.Initial != nil {
		if err := cfg.Widget.Render(cfg.Initial); err != nil {
			cancel()
			return nil, fmt.Errorf("initial render: %w", err)
		}
	}
	return p, nil
}

func (p *SortPage[T]) Init() tea.Cmd {
	if p.cfg.Regenerate != nil {
		return tea.Batch(frame(), regen())
	}
	return frame()
}

func (p *SortPage[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.help.Width = msg.Width
		return p, nil

	case frameMsg:
		return p, frame()

	case regenMsg:
		if p.cfg.Regenerate == nil {
			return p, nil
		}
		if err := p.cfg.Widget.Render(p.cfg.Regenerate()); err != nil {
			p.fail(err)
		}
		return p, regen()

	case sessionDoneMsg:
		return p, p.finished(msg)

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *SortPage[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Quit):
		p.cancel()
		return p, tea.Quit
	case key.Matches(msg, p.keys.Help):
		p.help.ShowAll = !p.help.ShowAll
	case key.Matches(msg, p.keys.Play):
		return p, p.play()
	case key.Matches(msg, p.keys.Grow):
		p.resize(p.size + 1)
	case key.Matches(msg, p.keys.Shrink):
		p.resize(p.size - 1)
	}
	return p, nil
}

// play starts a session on a command goroutine. A second press while one
// runs reaches the guard, which turns it away.
func (p *SortPage[T]) play() tea.Cmd {
	if p.guard == nil {
		return nil
	}
	input := p.cfg.Widget.Data()
	if p.cfg.Shuffle != nil {
		input = p.cfg.Shuffle(input)
	}
	if !p.guard.Active() {
		p.steps.reset()
		p.stats.Reset()
		p.status = ""
		p.failed = false
	}

	guard, ctx := p.guard, p.ctx
	return func() tea.Msg {
		ran, err := guard.TryRun(ctx, input)
		return sessionDoneMsg{ran: ran, err: err}
	}
}

func (p *SortPage[T]) finished(msg sessionDoneMsg) tea.Cmd {
	if !msg.ran {
		p.status = "a session is already running"
		return nil
	}
	if msg.err != nil {
		p.fail(msg.err)
		return nil
	}
	p.runs++
	p.status = fmt.Sprintf("sorted in %d pushes, %.0f swaps", p.steps.last().Push, p.stats.Values()["swaps"])
	return nil
}

func (p *SortPage[T]) fail(err error) {
	p.failed = true
	p.status = err.Error()
	p.logger.Error("display failed", "err", err)
}

// resize applies between sessions only.
func (p *SortPage[T]) resize(n int) {
	if p.cfg.Resize == nil || p.Running() {
		return
	}
	if n < p.cfg.MinSize || n > p.cfg.MaxSize {
		return
	}
	p.size = n
	if err := p.cfg.Widget.Render(p.cfg.Resize(n)); err != nil {
		p.fail(err)
	}
}

// Running reports whether a session holds the guard.
func (p *SortPage[T]) Running() bool {
	return p.guard != nil && p.guard.Active()
}

func (p *SortPage[T]) Size() int { return p.size }

func (p *SortPage[T]) Status() string { return p.status }

func (p *SortPage[T]) Runs() int { return p.runs }

// Close aborts a running session.
func (p *SortPage[T]) Close() { p.cancel() }

func (p *SortPage[T]) View() string {
	var b strings.Builder

	b.WriteString(p.style.title.Render(p.cfg.Title) + "\n\n")
	b.WriteString(p.style.frame.Render(p.cfg.Widget.View()) + "\n\n")

	if p.guard != nil {
		step := p.steps.last()
		frac := 0.0
		if step.Total > 0 {
			frac = float64(step.Push) / float64(step.Total)
		}

		play := p.style.accent.Render("▶ play")
		if p.Running() {
			play = p.style.disabled.Render("▶ play")
		}
		b.WriteString(fmt.Sprintf(" %s  %s  %s\n", play, p.progress.ViewAs(frac),
			p.style.dim.Render(fmt.Sprintf("%s %d/%d", step.Kind, step.Push, step.Total))))
	}
	if p.cfg.Resize != nil {
		b.WriteString(fmt.Sprintf(" %s %s\n", p.style.dim.Render("size"), p.style.text.Render(fmt.Sprint(p.size))))
	}

	switch {
	case p.status == "":
	case p.failed:
		b.WriteString(" " + p.style.err.Render(p.status) + "\n")
	default:
		b.WriteString(" " + p.style.success.Render(p.status) + "\n")
	}

	b.WriteString("\n" + p.help.View(p.keys) + "\n")
	return b.String()
}
