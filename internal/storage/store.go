// Package storage persists recorded runs on disk. Each run gets its
// own directory under the base dir holding a metadata.json and a
// positions.csv with one column triple (x, y, z) per body.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orbitsim/internal/sim"
)

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
	Scenario      string    `json:"scenario"`
	Timestamp     time.Time `json:"timestamp"`
	Dt            float64   `json:"dt"`
	Steps         int       `json:"steps"`
	Integrator    string    `json:"integrator"`
	Bodies        []string  `json:"bodies"`
	EnergyDrift   float64   `json:"energy_drift"`
	MomentumDrift float64   `json:"momentum_drift"`
}

func (s *Store) Save(scenario string, dt float64, integrator string, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Scenario:      scenario,
		Timestamp:     time.Now(),
		Dt:            dt,
		Steps:         result.Steps,
		Integrator:    integrator,
		Bodies:        result.Names,
		EnergyDrift:   result.EnergyDrift,
		MomentumDrift: result.MomentumDrift,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "positions.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for _, name := range result.Names {
		header = append(header, name+"_x", name+"_y", name+"_z")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range result.Positions {
		row := make([]string, 0, len(result.Positions[i])+1)
		row = append(row, strconv.FormatFloat(result.Times[i], 'g', 10, 64))
		for _, val := range result.Positions[i] {
			row = append(row, strconv.FormatFloat(val, 'g', 10, 64))
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
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
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadPositions reads back a run's trajectory. Rows are position
// samples in the same column order Save wrote them.
func (s *Store) LoadPositions(runID string) ([][]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "positions.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	positions := make([][]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		row := make([]float64, 0, len(record)-1)
		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}

		times = append(times, t)
		positions = append(positions, row)
	}

	return positions, times, nil
}

// ExportJSON writes a run's metadata and trajectory as one JSON
// document to path.
func (s *Store) ExportJSON(runID, path string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	positions, times, err := s.LoadPositions(runID)
	if err != nil {
		return err
	}

	doc := struct {
		Metadata  *RunMetadata `json:"metadata"`
		Times     []float64    `json:"times"`
		Positions [][]float64  `json:"positions"`
	}{meta, times, positions}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
