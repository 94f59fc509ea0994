// Package storage persists bulk runs as per-run directories holding a
// metadata file and a per-trial log.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jmorrel/montysim/internal/game"
	"github.com/jmorrel/montysim/internal/sim"
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
	ID        string             `json:"id"`
	Strategy  string             `json:"strategy"`
	Trials    int                `json:"trials"`
	Seed      int64              `json:"seed"`
	Workers   int                `json:"workers"`
	Timestamp time.Time          `json:"timestamp"`
	Wins      int                `json:"wins"`
	Losses    int                `json:"losses"`
	Metrics   map[string]float64 `json:"metrics"`
}

// TrialRecord is one row of a stored run's trial log.
type TrialRecord struct {
	Trial    int
	Selected game.Door
	Prize    game.Door
	Revealed game.Door
	Outcome  game.Outcome
	CumWins  int
}

// Save writes a run directory (metadata.json plus trials.csv) and
// returns the run ID. rows may be empty for runs without a per-trial
// log, e.g. parallel runs.
func (s *Store) Save(strategy string, seed int64, workers int, result *sim.Result, rows []TrialRecord) (string, error) {
	runID := fmt.Sprintf("%s_%s", strategy, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Strategy:  strategy,
		Trials:    result.Trials,
		Seed:      seed,
		Workers:   workers,
		Timestamp: time.Now(),
		Wins:      result.Tally.Wins,
		Losses:    result.Tally.Losses,
		Metrics:   result.Metrics,
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

	csvFile, err := os.Create(filepath.Join(runDir, "trials.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, rows); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue // skip incomplete run dirs
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadTrials(runID string) ([]TrialRecord, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trials.csv"))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	lines, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(lines) <= 1 {
		return nil, nil
	}

	rows := make([]TrialRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if len(line) < 6 {
			continue
		}
		trial, _ := strconv.Atoi(line[0])
		selected, _ := strconv.Atoi(line[1])
		prize, _ := strconv.Atoi(line[2])
		revealed, _ := strconv.Atoi(line[3])
		cumWins, _ := strconv.Atoi(line[5])

		outcome := game.Lost
		if line[4] == game.Won.String() {
			outcome = game.Won
		}

		rows = append(rows, TrialRecord{
			Trial:    trial,
			Selected: game.Door(selected),
			Prize:    game.Door(prize),
			Revealed: game.Door(revealed),
			Outcome:  outcome,
			CumWins:  cumWins,
		})
	}
	return rows, nil
}
