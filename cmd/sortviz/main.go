package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortviz/internal/animate"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/display"
	"github.com/san-kum/sortviz/internal/palette"
	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/spf13/cobra"
)

const defaultSentence = "Sphinx of black quartz judge my vow"

var (
	dataDir string
	verbose bool
	logFile string

	delay       time.Duration
	size        int
	width       int
	seed        int64
	displayName string
	preset      string
	configFile  string
	theme       string
	words       string
	plain       bool

	traceAll  bool
	frameIdx  int
	outPath   string
	svgWidth  int
	svgHeight int

	logSink io.Closer
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "animated bubble sort in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logSink != nil {
				logSink.Close()
			}
		},
		RunE: runSort,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "trace directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to a file (interactive pages log nowhere otherwise)")
	addSessionFlags(rootCmd)

	sortCmd := &cobra.Command{
		Use:   "sort",
		Short: "bubble sort a shuffled sequence",
		RunE:  runSort,
	}
	addSessionFlags(sortCmd)
	sortCmd.Flags().StringVar(&words, "words", "", "sort the words of a sentence instead of numbers")
	sortCmd.Flags().Lookup("words").NoOptDefVal = defaultSentence
	sortCmd.Flags().BoolVar(&plain, "plain", false, "print every push instead of running the interactive page")

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "show new random numbers as an array and a bar chart every two seconds",
		RunE:  runRandom,
	}
	addSessionFlags(randomCmd)

	rocketCmd := &cobra.Command{
		Use:   "rocket [percent]",
		Short: "rocket progress bar",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRocket,
	}
	rocketCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rocketCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rocketCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "display width in columns")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "record a session without delays and store it",
		RunE:  runTrace,
	}
	addSessionFlags(traceCmd)
	traceCmd.Flags().BoolVar(&traceAll, "all", false, "record one session per display concurrently")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list traces",
		RunE:  listTraces,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [trace_id]",
		Short: "plot inversions and swaps of a trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotTrace,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [trace_id]",
		Short: "export a trace as json",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportTraceJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (stdout if empty)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [trace_id]",
		Short: "export one frame of a trace as svg",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportTraceSVG,
	}
	exportSVGCmd.Flags().IntVar(&frameIdx, "frame", -1, "frame index (last if negative)")
	exportSVGCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file")
	exportSVGCmd.Flags().IntVar(&svgWidth, "svg-width", 640, "svg width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "svg-height", 360, "svg height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list palette presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(sortCmd, randomCmd, rocketCmd, traceCmd, listCmd, plotCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&delay, "delay", config.DefaultDelay, "pause after every push")
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "number of items")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "display width in columns")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (time based if zero)")
	cmd.Flags().StringVar(&displayName, "display", config.DefaultDisplay, "display: array, bar, paragraph, rocket")
	cmd.Flags().StringVar(&preset, "preset", "", "palette preset")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme: dark, light, retro")
}

func setupLogging() error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "sortviz")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logSink = f
		out = f
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return nil
}

// quietLogs keeps log lines from tearing the interactive renderer when no
// log file was given.
func quietLogs() {
	if logFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}
}

// sessionLogger returns the logger for a session's animator. Interactive
// sessions silence the default first, so anything built from the result
// stays off the alt screen.
func sessionLogger(interactive bool) *slog.Logger {
	if interactive {
		quietLogs()
	}
	return slog.Default()
}

// loadSettings merges the config file, the preset and explicitly set flags,
// in that order.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p.Apply(cfg)
	}

	flags := cmd.Flags()
	if flags.Changed("delay") {
		cfg.Delay = delay
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("display") {
		cfg.Display = displayName
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	} else if configFile != "" {
		dataDir = cfg.DataDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRand(cfg *config.Config) (*rand.Rand, int64) {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s)), s
}

func displayOptions(cfg *config.Config, name string) display.Options {
	return display.Options{
		Width:      cfg.Width,
		Transition: cfg.Transition(name),
		Theme:      palette.GetTheme(cfg.Theme),
	}
}

func newBubble[T cmp.Ordered](cfg *config.Config, logger *slog.Logger) *animate.Bubble[T] {
	b := animate.NewBubble[T](cfg.Palette, cfg.Delay)
	b.SetLogger(logger)
	return b
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if words != "" {
		return sortWords(cmd.Context(), cfg)
	}

	rng, _ := newRand(cfg)
	reg := display.NewRegistry()
	widget, err := reg.Ints(cfg.Display, displayOptions(cfg, cfg.Display))
	if err != nil {
		return err
	}

	initial := seq.Range(1, cfg.Size, cfg.Palette.Base)
	logger := sessionLogger(!plain)
	b := newBubble[int](cfg, logger)

	if plain {
		printer := display.NewPrinter(widget, os.Stdout, false)
		guard := animate.NewSessionGuard[int](b, printer)
		_, err := guard.TryRun(cmd.Context(), seq.Shuffle(initial, rng))
		return err
	}

	page, err := tui.NewSortPage(tui.Config[int]{
		Title:   fmt.Sprintf("Bubble sort · %s", cfg.Display),
		Widget:  widget,
		Bubble:  b,
		Initial: initial,
		Resize:  func(n int) seq.Sequence[int] { return seq.Range(1, n, cfg.Palette.Base) },
		Size:    cfg.Size,
		Shuffle: func(s seq.Sequence[int]) seq.Sequence[int] { return seq.Shuffle(s, rng) },
		Theme:   palette.GetTheme(cfg.Theme),
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	return runProgram(page)
}

func sortWords(ctx context.Context, cfg *config.Config) error {
	rng, _ := newRand(cfg)
	reg := display.NewRegistry()
	name := cfg.Display
	if name == "bar" {
		name = "paragraph"
	}
	widget, err := reg.Words(name, displayOptions(cfg, name))
	if err != nil {
		return err
	}

	initial := seq.Words(words, cfg.Palette.Base)
	logger := sessionLogger(!plain)
	b := newBubble[string](cfg, logger)

	if plain {
		printer := display.NewPrinter(widget, os.Stdout, false)
		guard := animate.NewSessionGuard[string](b, printer)
		_, err := guard.TryRun(ctx, seq.Shuffle(initial, rng))
		return err
	}

	page, err := tui.NewSortPage(tui.Config[string]{
		Title:   fmt.Sprintf("Bubble sort · %s words", name),
		Widget:  widget,
		Bubble:  b,
		Initial: initial,
		Shuffle: func(s seq.Sequence[string]) seq.Sequence[string] { return seq.Shuffle(s, rng) },
		Theme:   palette.GetTheme(cfg.Theme),
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	return runProgram(page)
}

func runRandom(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	rng, _ := newRand(cfg)
	widget, err := randomWidget(cfg)
	if err != nil {
		return err
	}

	n := 0
	if cmd.Flags().Changed("size") {
		n = cfg.Size
	}
	generate := func() seq.Sequence[int] { return seq.Random(rng, cfg.Min, cfg.Max, n, "black") }

	logger := sessionLogger(true)
	page, err := tui.NewSortPage(tui.Config[int]{
		Title:      "Random numbers",
		Widget:     widget,
		Initial:    generate(),
		Regenerate: generate,
		Theme:      palette.GetTheme(cfg.Theme),
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	return runProgram(page)
}

// randomWidget shows the numbers as an array above a bar chart whose bars
// take their colors from the value scale.
func randomWidget(cfg *config.Config) (display.Widget[int], error) {
	reg := display.NewRegistry()
	array, err := reg.Ints("array", displayOptions(cfg, "array"))
	if err != nil {
		return nil, err
	}
	bar, err := reg.Ints("bar", displayOptions(cfg, "bar"))
	if err != nil {
		return nil, err
	}
	return display.NewStack[int](
		display.Panel[int]{Widget: array},
		display.Panel[int]{Widget: bar, Paint: func(s seq.Sequence[int]) seq.Sequence[int] { return s.Paint(seq.Default) }},
	), nil
}

func runRocket(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	percent := 75.0
	if len(args) == 1 {
		percent, err = strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid percent %q: %w", args[0], err)
		}
	}

	rocket := display.NewRocketProgressBar[int](displayOptions(cfg, "rocket"))
	if err := rocket.SetProgress(percent / 100); err != nil {
		return err
	}

	return runProgram(tui.NewRocketPage(rocket, percent, palette.GetTheme(cfg.Theme), sessionLogger(true)))
}

func runProgram(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	if c, ok := m.(interface{ Close() }); ok {
		c.Close()
	}
	return err
}
