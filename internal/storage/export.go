package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/wheely/internal/wheel"
)

// ExportData is the JSON export shape. Masses is nested per cup, one
// array of frame values each, matching how external consumers want the
// trajectory shaped.
type ExportData struct {
	ID     string       `json:"id,omitempty"`
	Meta   *RunMetadata `json:"meta,omitempty"`
	Frames int          `json:"frames"`
	Cups   int          `json:"cups"`
	Times  []float64    `json:"times"`
	Theta  []float64    `json:"theta"`
	Mass   [][]float64  `json:"masses"`
}

func newExportData(meta *RunMetadata, result *wheel.Result) ExportData {
	mass := make([][]float64, result.CupCount)
	for cup := range mass {
		mass[cup] = result.CupSeries(cup)
	}

	data := ExportData{
		Meta:   meta,
		Frames: result.FrameCount,
		Cups:   result.CupCount,
		Times:  result.Times,
		Theta:  result.Theta,
		Mass:   mass,
	}
	if meta != nil {
		data.ID = meta.ID
	}
	return data
}

func ExportJSON(path string, meta *RunMetadata, result *wheel.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeExport(file, meta, result)
}

func ExportJSONStdout(meta *RunMetadata, result *wheel.Result) error {
	return writeExport(os.Stdout, meta, result)
}

func writeExport(w io.Writer, meta *RunMetadata, result *wheel.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newExportData(meta, result))
}
