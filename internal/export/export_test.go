package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/animate"
	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/store"
)

func frame() animate.Frame[int] {
	return animate.Frame[int]{
		Step: animate.Step{Kind: animate.KindSelect, Push: 2, Total: 10, I: 0, J: 0},
		Items: seq.Sequence[int]{
			{Value: 3, Color: "red"},
			{Value: 1, Color: "red"},
			{Value: 2},
		},
	}
}

func TestFrameToSVG(t *testing.T) {
	svg := FrameToSVG(frame(), 320, 200)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete svg document")
	}
	// background plus one bar per item
	if n := strings.Count(svg, "<rect"); n != 4 {
		t.Errorf("expected 4 rects, got %d", n)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Error("fixed red color not resolved")
	}
	for _, label := range []string{">03<", ">01<", ">02<"} {
		if !strings.Contains(svg, label) {
			t.Errorf("missing label %s", label)
		}
	}
	if !strings.Contains(svg, "push 2/10 select") {
		t.Error("missing step caption")
	}
}

func TestFrameToSVGEmpty(t *testing.T) {
	svg := FrameToSVG(animate.Frame[int]{}, 100, 100)
	if strings.Count(svg, "<rect") != 1 {
		t.Errorf("empty frame should only draw the background: %s", svg)
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	meta := store.TraceMetadata{ID: "trace_1_array", Display: "array", Pushes: 1}

	if err := ExportJSON(path, meta, []animate.Frame[int]{frame()}); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got ExportData
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got.Trace.ID != meta.ID || len(got.Frames) != 1 {
		t.Fatalf("unexpected export %+v", got)
	}
	f := got.Frames[0]
	if f.Kind != "select" || f.Push != 2 || len(f.Items) != 3 {
		t.Errorf("unexpected frame %+v", f)
	}
	if f.Items[2].Color != "default" {
		t.Errorf("default color exported as %q", f.Items[2].Color)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, store.TraceMetadata{}, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"frames": []`) {
		t.Errorf("nil frames should export as an empty list: %s", buf.String())
	}
}
