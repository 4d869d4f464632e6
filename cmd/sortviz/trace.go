package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/animate"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/display"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type traceResult struct {
	display string
	id      string
	meta    store.TraceMetadata
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	rng, usedSeed := newRand(cfg)
	input := seq.Shuffle(seq.Range(1, cfg.Size, cfg.Palette.Base), rng)

	names := []string{cfg.Display}
	reg := display.NewRegistry()
	if traceAll {
		names = reg.ListInts()
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	var mu sync.Mutex
	results := make([]traceResult, 0, len(names))

	g, ctx := errgroup.WithContext(cmd.Context())
	for _, name := range names {
		g.Go(func() error {
			res, err := recordTrace(ctx, cfg, reg, st, name, input, usedSeed)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].display < results[j].display })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDISPLAY\tSIZE\tPUSHES\tSWAPS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", r.id, r.display, r.meta.Size, r.meta.Pushes, r.meta.Swaps)
	}
	return w.Flush()
}

// recordTrace runs one session without delays. Every push goes through the
// named display too, so a display that cannot render fails the trace.
func recordTrace(ctx context.Context, cfg *config.Config, reg *display.Registry, st *store.Store, name string, input seq.Sequence[int], usedSeed int64) (traceResult, error) {
	widget, err := reg.Ints(name, displayOptions(cfg, name))
	if err != nil {
		return traceResult{}, err
	}

	logger := slog.Default().With("display", name)
	b := animate.NewBubble[int](cfg.Palette, 0)
	b.SetClock(animate.InstantClock{})
	b.SetLogger(logger)

	rec := animate.NewRecorder[int]()
	stats := metrics.Default()
	b.AddObserver(rec)
	b.AddObserver(stats)

	guard := animate.NewSessionGuard[int](b, animate.Multi[int]{rec, widget})
	guard.SetLogger(logger)
	if _, err := guard.TryRun(ctx, input); err != nil {
		return traceResult{}, err
	}

	frames := rec.Frames()
	meta := store.NewMetadata(name, usedSeed, cfg.Palette, cfg.Delay, frames)
	meta.Metrics = stats.Values()
	id, err := st.Save(meta, frames)
	if err != nil {
		return traceResult{}, fmt.Errorf("save trace: %w", err)
	}
	logger.Info("trace saved", "id", id, "pushes", meta.Pushes)
	return traceResult{display: name, id: id, meta: meta}, nil
}

func listTraces(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	traces, err := st.List()
	if err != nil {
		return err
	}

	if len(traces) == 0 {
		fmt.Println("no traces found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDISPLAY\tSIZE\tPUSHES\tSWAPS\tDELAY\tTIME")
	for _, t := range traces {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			t.ID, t.Display, t.Size, t.Pushes, t.Swaps, t.Delay(), t.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

// resolveTrace loads the trace named in args, or the latest one.
func resolveTrace(args []string) (*store.TraceMetadata, []animate.Frame[int], error) {
	st := store.New(dataDir)

	var (
		meta *store.TraceMetadata
		err  error
	)
	if len(args) == 1 {
		meta, err = st.Load(args[0])
	} else {
		meta, err = st.Latest()
	}
	if err != nil {
		return nil, nil, err
	}

	frames, err := st.LoadFrames(meta.ID)
	if err != nil {
		return nil, nil, err
	}
	return meta, frames, nil
}

func plotTrace(cmd *cobra.Command, args []string) error {
	meta, frames, err := resolveTrace(args)
	if err != nil {
		return err
	}
	if len(frames) < 2 {
		return fmt.Errorf("trace %s has too few frames to plot", meta.ID)
	}

	inversions := make([]float64, len(frames))
	swaps := make([]float64, len(frames))
	total := 0
	for i, f := range frames {
		inversions[i] = float64(f.Items.Inversions())
		if f.Step.Kind == animate.KindSwap {
			total++
		}
		swaps[i] = float64(total)
	}

	fmt.Printf("trace: %s (%s, %d items)\n", meta.ID, meta.Display, meta.Size)
	names := make([]string, 0, len(meta.Metrics))
	for name := range meta.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-12s %g\n", name, meta.Metrics[name])
	}
	fmt.Println()

	plots := []struct {
		data    []float64
		caption string
	}{
		{inversions, "inversions per push"},
		{swaps, "swaps so far"},
	}
	for _, p := range plots {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportTraceJSON(cmd *cobra.Command, args []string) error {
	meta, frames, err := resolveTrace(args)
	if err != nil {
		return err
	}
	if outPath == "" {
		return export.WriteJSON(os.Stdout, *meta, frames)
	}
	if err := export.ExportJSON(outPath, *meta, frames); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", meta.ID, outPath)
	return nil
}

func exportTraceSVG(cmd *cobra.Command, args []string) error {
	meta, frames, err := resolveTrace(args)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("trace %s has no frames", meta.ID)
	}

	idx := frameIdx
	if idx < 0 {
		idx = len(frames) - 1
	}
	if idx >= len(frames) {
		return fmt.Errorf("frame %d out of range (trace has %d)", idx, len(frames))
	}

	path := outPath
	if path == "" {
		path = fmt.Sprintf("%s_frame%d.svg", meta.ID, idx)
	}
	svg := export.FrameToSVG(frames[idx], svgWidth, svgHeight)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	return writePresets(os.Stdout)
}

func writePresets(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISPLAY\tSELECTED\tBASE\tDONE\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		disp := p.Display
		if disp == "" {
			disp = "any"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			name, disp, p.Palette.Selected, p.Palette.Base, p.Palette.Done, p.Description)
	}
	return w.Flush()
}
