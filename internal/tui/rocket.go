package tui

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortviz/internal/display"
	"github.com/san-kum/sortviz/internal/palette"
)

const nudgeStep = 5

// Rocket is the subset of the rocket progress bar the page drives.
type Rocket interface {
	SetProgress(p float64) error
	Jump(p float64) error
	Progress() float64
	View() string
}

var _ Rocket = (*display.RocketProgressBar[int])(nil)

// RocketPage edits a percentage and launches the rocket to it. The arrow
// keys move it in place, like dragging a slider.
type RocketPage struct {
	rocket Rocket
	input  textinput.Model
	keys   RocketKeyMap
	help   help.Model
	style  styles
	logger *slog.Logger

	status string
	failed bool
}

func NewRocketPage(rocket Rocket, percent float64, theme palette.Theme, logger *slog.Logger) *RocketPage {
	if theme.Name == "" {
		theme = palette.ThemeDark
	}
	if logger == nil {
		logger = slog.Default()
	}

	in := textinput.New()
	in.Prompt = "percent: "
	in.Placeholder = "75"
	in.CharLimit = 5
	in.Width = 6
	in.SetValue(strconv.FormatFloat(percent, 'f', -1, 64))
	in.Focus()

	return &RocketPage{
		rocket: rocket,
		input:  in,
		keys:   DefaultRocketKeyMap,
		help:   help.New(),
		style:  newStyles(theme),
		logger: logger,
	}
}

func (p *RocketPage) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, frame())
}

func (p *RocketPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return p, frame()
	case tea.WindowSizeMsg:
		p.help.Width = msg.Width
		return p, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			return p, tea.Quit
		case key.Matches(msg, p.keys.Launch):
			p.launch()
			return p, nil
		case key.Matches(msg, p.keys.Nudge):
			p.nudge(nudgeStep)
			return p, nil
		case key.Matches(msg, p.keys.Drop):
			p.nudge(-nudgeStep)
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// Percent parses the input field.
func (p *RocketPage) Percent() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(p.input.Value()), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a percentage: %q", p.input.Value())
	}
	return v, nil
}

func (p *RocketPage) launch() {
	v, err := p.Percent()
	if err != nil {
		p.fail(err)
		return
	}
	if err := p.rocket.SetProgress(v / 100); err != nil {
		p.fail(err)
		return
	}
	p.failed = false
	p.status = fmt.Sprintf("launched to %g%%", v)
	p.logger.Debug("rocket launched", "percent", v)
}

func (p *RocketPage) nudge(delta float64) {
	v := math.Max(0, math.Round(p.rocket.Progress()*100)+delta)
	if err := p.rocket.Jump(v / 100); err != nil {
		p.fail(err)
		return
	}
	p.input.SetValue(strconv.FormatFloat(v, 'f', -1, 64))
	p.failed = false
	p.status = ""
}

func (p *RocketPage) fail(err error) {
	p.failed = true
	p.status = err.Error()
	p.logger.Warn("rocket input rejected", "err", err)
}

func (p *RocketPage) Status() string { return p.status }

func (p *RocketPage) View() string {
	var b strings.Builder
	b.WriteString(p.style.title.Render("Rocket progress bar") + "\n\n")
	b.WriteString(p.style.frame.Render(p.rocket.View()) + "\n\n")
	b.WriteString(" " + p.input.View() + "\n")
	if p.status != "" {
		st := p.style.success
		if p.failed {
			st = p.style.err
		}
		b.WriteString(" " + st.Render(p.status) + "\n")
	}
	b.WriteString("\n" + p.help.View(p.keys) + "\n")
	return b.String()
}
