package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/sortviz/internal/animate"
	"github.com/san-kum/sortviz/internal/store"
)

type ExportItem struct {
	Value int    `json:"value"`
	Color string `json:"color"`
}

type ExportFrame struct {
	Push  int          `json:"push"`
	Kind  string       `json:"kind"`
	I     int          `json:"i"`
	J     int          `json:"j"`
	Items []ExportItem `json:"items"`
}

type ExportData struct {
	Trace  store.TraceMetadata `json:"trace"`
	Frames []ExportFrame       `json:"frames"`
}

func NewExportData(meta store.TraceMetadata, frames []animate.Frame[int]) ExportData {
	data := ExportData{
		Trace:  meta,
		Frames: make([]ExportFrame, len(frames)),
	}
	for i, f := range frames {
		ef := ExportFrame{
			Push:  f.Step.Push,
			Kind:  f.Step.Kind.String(),
			I:     f.Step.I,
			J:     f.Step.J,
			Items: make([]ExportItem, len(f.Items)),
		}
		for k, it := range f.Items {
			ef.Items[k] = ExportItem{Value: it.Value, Color: it.Color.String()}
		}
		data.Frames[i] = ef
	}
	return data
}

func ExportJSON(path string, meta store.TraceMetadata, frames []animate.Frame[int]) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, meta, frames)
}

func WriteJSON(w io.Writer, meta store.TraceMetadata, frames []animate.Frame[int]) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(meta, frames))
}
