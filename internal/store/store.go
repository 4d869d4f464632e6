// Package store keeps recorded sort traces on disk: one directory per trace
// holding metadata.json and a frames.csv with one row per item per push.
package store

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/sortviz/internal/animate"
	"github.com/san-kum/sortviz/internal/seq"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

var (
	ErrNotFound  = errors.New("trace not found")
	ErrBadFrames = errors.New("malformed frames file")
)

var framesHeader = []string{"frame", "kind", "i", "j", "index", "value", "color"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type TraceMetadata struct {
	ID         string             `json:"id"`
	Display    string             `json:"display"`
	Size       int                `json:"size"`
	Seed       int64              `json:"seed"`
	Palette    animate.Palette    `json:"palette"`
	DelayMS    int64              `json:"delay_ms"`
	Pushes     int                `json:"pushes"`
	Swaps      int                `json:"swaps"`
	Inversions int                `json:"inversions"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
}

func (m TraceMetadata) Delay() time.Duration {
	return time.Duration(m.DelayMS) * time.Millisecond
}

// NewMetadata summarizes a recorded session.
func NewMetadata(display string, seed int64, p animate.Palette, delay time.Duration, frames []animate.Frame[int]) TraceMetadata {
	meta := TraceMetadata{
		Display: display,
		Seed:    seed,
		Palette: p,
		DelayMS: delay.Milliseconds(),
		Pushes:  len(frames),
	}
	if len(frames) > 0 {
		meta.Size = frames[0].Items.Len()
		meta.Inversions = frames[0].Items.Inversions()
	}
	for _, f := range frames {
		if f.Step.Kind == animate.KindSwap {
			meta.Swaps++
		}
	}
	return meta
}

// Save writes a trace and returns its id. Traces saved in the same second
// get a numeric suffix.
func (s *Store) Save(meta TraceMetadata, frames []animate.Frame[int]) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}

	now := time.Now()
	base := fmt.Sprintf("trace_%d_%s", now.Unix(), meta.Display)
	traceID := base
	for n := 2; ; n++ {
		err := os.Mkdir(filepath.Join(s.baseDir, traceID), 0755)
		if err == nil {
			break
		}
		if !errors.Is(err, os.ErrExist) {
			return "", err
		}
		traceID = fmt.Sprintf("%s_%d", base, n)
	}
	dir := filepath.Join(s.baseDir, traceID)

	meta.ID = traceID
	meta.Timestamp = now

	if err := writeTrace(dir, meta, frames); err != nil {
		os.RemoveAll(dir)
		return "", err
	}
	return traceID, nil
}

func writeTrace(dir string, meta TraceMetadata, frames []animate.Frame[int]) error {
	metaFile, err := os.Create(filepath.Join(dir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	csvFile, err := os.Create(filepath.Join(dir, framesFile))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(framesHeader); err != nil {
		return err
	}
	for n, f := range frames {
		for idx, it := range f.Items {
			row := []string{
				strconv.Itoa(n),
				f.Step.Kind.String(),
				strconv.Itoa(f.Step.I),
				strconv.Itoa(f.Step.J),
				strconv.Itoa(idx),
				strconv.Itoa(it.Value),
				it.Color.String(),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		// an empty sequence still records its push
		if len(f.Items) == 0 {
			row := []string{strconv.Itoa(n), f.Step.Kind.String(), strconv.Itoa(f.Step.I), strconv.Itoa(f.Step.J), "", "", ""}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return metaFile.Close()
}

// List returns every readable trace, oldest first.
func (s *Store) List() ([]TraceMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TraceMetadata{}, nil
		}
		return nil, err
	}

	traces := make([]TraceMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		traces = append(traces, *meta)
	}

	sort.SliceStable(traces, func(i, j int) bool {
		return traces[i].Timestamp.Before(traces[j].Timestamp)
	})
	return traces, nil
}

func (s *Store) Load(traceID string) (*TraceMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, traceID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, traceID)
		}
		return nil, err
	}

	var meta TraceMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Latest returns the most recent trace.
func (s *Store) Latest() (*TraceMetadata, error) {
	traces, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(traces) == 0 {
		return nil, fmt.Errorf("%w: store %s is empty", ErrNotFound, s.baseDir)
	}
	return &traces[len(traces)-1], nil
}

func (s *Store) LoadFrames(traceID string) ([]animate.Frame[int], error) {
	file, err := os.Open(filepath.Join(s.baseDir, traceID, framesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, traceID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(framesHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFrames, err)
	}
	if len(records) < 2 {
		return []animate.Frame[int]{}, nil
	}

	frames := make([]animate.Frame[int], 0)
	for line, record := range records[1:] {
		n, err := strconv.Atoi(record[0])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: line %d: frame %q", ErrBadFrames, line+2, record[0])
		}
		for len(frames) <= n {
			frames = append(frames, animate.Frame[int]{Items: seq.Sequence[int]{}})
		}

		f := &frames[n]
		kind := animate.ParseStepKind(record[1])
		if kind == animate.KindUnknown {
			return nil, fmt.Errorf("%w: line %d: kind %q", ErrBadFrames, line+2, record[1])
		}
		i, errI := strconv.Atoi(record[2])
		j, errJ := strconv.Atoi(record[3])
		if errI != nil || errJ != nil {
			return nil, fmt.Errorf("%w: line %d: pair %q,%q", ErrBadFrames, line+2, record[2], record[3])
		}
		f.Step = animate.Step{Kind: kind, Push: n + 1, I: i, J: j}

		if record[4] == "" {
			continue
		}
		v, err := strconv.Atoi(record[5])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: value %q", ErrBadFrames, line+2, record[5])
		}
		f.Items = append(f.Items, seq.Item[int]{Value: v, Color: seq.ParseColor(record[6])})
	}

	for i := range frames {
		frames[i].Step.Total = len(frames)
	}
	return frames, nil
}
