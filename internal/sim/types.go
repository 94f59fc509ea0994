package sim

import "github.com/jmorrel/montysim/internal/game"

// Metric folds per-trial observations into a scalar summary.
type Metric interface {
	Name() string
	Observe(r *game.Round, o game.Outcome)
	Value() float64
	Reset()
}

// Observer is notified after every completed trial.
type Observer interface {
	OnTrial(trial int, r *game.Round, o game.Outcome)
}

// Config controls one bulk run.
type Config struct {
	Trials  int
	Seed    int64
	Workers int
}

// Result is the aggregate of a bulk run.
type Result struct {
	Tally   game.Tally
	Series  []float64 // running win rate after each trial (sequential runs only)
	Metrics map[string]float64
	Trials  int
}
