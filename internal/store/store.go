// Package store persists headless runs: one directory per run holding
// metadata.json and a states.csv trajectory. Positions and velocities are
// written as decimal strings so a stored run round-trips at full engine
// precision.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
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
	ID         string             `json:"id"`
	Scenario   string             `json:"scenario"`
	Timestamp  time.Time          `json:"timestamp"`
	StepMillis int64              `json:"step_ms"`
	TimeWarp   float64            `json:"time_warp"`
	Ticks      int                `json:"ticks"`
	Metrics    map[string]float64 `json:"metrics"`
}

// BodyState is one body's kinematic state at one tick, as decimal strings.
type BodyState struct {
	Name    string
	X, Y, Z string
	VX, VY  string
	VZ      string
}

// TickRecord is the full body set after one committed tick.
type TickRecord struct {
	Tick    int
	Seconds float64
	Bodies  []BodyState
}

// Save writes a run directory and returns its id.
func (s *Store) Save(scenario string, stepMillis int64, warp float64, records []TickRecord, metricVals map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Scenario:   scenario,
		Timestamp:  time.Now(),
		StepMillis: stepMillis,
		TimeWarp:   warp,
		Ticks:      len(records),
		Metrics:    metricVals,
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

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"tick", "time", "name", "x", "y", "z", "vx", "vy", "vz"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, rec := range records {
		secs := strconv.FormatFloat(rec.Seconds, 'f', 6, 64)
		for _, b := range rec.Bodies {
			row := []string{
				strconv.Itoa(rec.Tick), secs, b.Name,
				b.X, b.Y, b.Z, b.VX, b.VY, b.VZ,
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
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

// LoadStates reads a stored trajectory back as tick records.
func (s *Store) LoadStates(runID string) ([]TickRecord, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
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
		return []TickRecord{}, nil
	}

	out := make([]TickRecord, 0)
	var cur *TickRecord

	for _, row := range records[1:] {
		if len(row) < 9 {
			continue
		}

		tick, err := strconv.Atoi(row[0])
		if err != nil {
			continue
		}
		secs, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			continue
		}

		if cur == nil || cur.Tick != tick {
			out = append(out, TickRecord{Tick: tick, Seconds: secs})
			cur = &out[len(out)-1]
		}

		cur.Bodies = append(cur.Bodies, BodyState{
			Name: row[2],
			X:    row[3], Y: row[4], Z: row[5],
			VX: row[6], VY: row[7], VZ: row[8],
		})
	}

	return out, nil
}
