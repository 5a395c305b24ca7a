package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/wheely/internal/wheel"
)

// Store persists simulation runs under a base directory, one
// subdirectory per run holding metadata.json and trajectory.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Cups          int       `json:"cups"`
	Radius        float64   `json:"radius"`
	Gravity       float64   `json:"gravity"`
	Damping       float64   `json:"damping"`
	LeakRate      float64   `json:"leak_rate"`
	InflowRate    float64   `json:"inflow_rate"`
	Inertia       float64   `json:"inertia"`
	Omega0        float64   `json:"omega0"`
	TStart        float64   `json:"t_start"`
	TEnd          float64   `json:"t_end"`
	Frames        int       `json:"frames"`
	StepsPerFrame int       `json:"steps_per_frame"`
	FinalTheta    float64   `json:"final_theta"`
	FinalMass     float64   `json:"final_mass"`
}

// Save writes one run to disk and returns its generated id. The CSV is
// frame-major (one row per frame), converted from the engine's
// cup-major buffer.
func (s *Store) Save(cfg wheel.Config, result *wheel.Result) (string, error) {
	runID := fmt.Sprintf("wheel_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	last := result.FrameCount - 1
	totalMass := 0.0
	for cup := 0; cup < result.CupCount; cup++ {
		totalMass += result.Mass(cup, last)
	}

	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		Cups:          cfg.CupCount,
		Radius:        cfg.Radius,
		Gravity:       cfg.Gravity,
		Damping:       cfg.Damping,
		LeakRate:      cfg.LeakRate,
		InflowRate:    cfg.InflowRate,
		Inertia:       cfg.Inertia,
		Omega0:        cfg.Omega0,
		TStart:        cfg.TStart,
		TEnd:          cfg.TEnd,
		Frames:        cfg.FrameCount,
		StepsPerFrame: cfg.StepsPerFrame,
		FinalTheta:    result.Theta[last],
		FinalMass:     totalMass,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time", "theta"}
	for cup := 0; cup < result.CupCount; cup++ {
		header = append(header, fmt.Sprintf("m%d", cup))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for frame := 0; frame < result.FrameCount; frame++ {
		row := make([]string, 0, 2+result.CupCount)
		row = append(row, strconv.FormatFloat(result.Times[frame], 'g', -1, 64))
		row = append(row, strconv.FormatFloat(result.Theta[frame], 'g', -1, 64))
		for cup := 0; cup < result.CupCount; cup++ {
			row = append(row, strconv.FormatFloat(result.Mass(cup, frame), 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads a run's CSV back into a wheel.Result, restoring
// the cup-major mass layout.
func (s *Store) LoadTrajectory(runID string) (*wheel.Result, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("storage: run %s: empty trajectory", runID)
	}

	cups := len(records[0]) - 2
	frames := len(records) - 1
	result := &wheel.Result{
		CupCount:   cups,
		FrameCount: frames,
		Times:      make([]float64, frames),
		Theta:      make([]float64, frames),
		Masses:     make([]float64, cups*frames),
	}

	for frame := 0; frame < frames; frame++ {
		record := records[frame+1]
		if len(record) != cups+2 {
			return nil, fmt.Errorf("storage: run %s: row %d has %d columns, want %d",
				runID, frame+1, len(record), cups+2)
		}

		if result.Times[frame], err = strconv.ParseFloat(record[0], 64); err != nil {
			return nil, err
		}
		if result.Theta[frame], err = strconv.ParseFloat(record[1], 64); err != nil {
			return nil, err
		}
		for cup := 0; cup < cups; cup++ {
			v, err := strconv.ParseFloat(record[2+cup], 64)
			if err != nil {
				return nil, err
			}
			result.Masses[cup*frames+frame] = v
		}
	}

	return result, nil
}
