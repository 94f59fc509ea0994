package storage

import "github.com/jmorrel/montysim/internal/game"

// Recorder is a sim.Observer that captures per-trial rows for
// persistence.
type Recorder struct {
	rows []TrialRecord
	wins int
}

func NewRecorder(capacity int) *Recorder {
	if capacity < 0 {
		capacity = 0
	}
	return &Recorder{rows: make([]TrialRecord, 0, capacity)}
}

func (r *Recorder) OnTrial(trial int, round *game.Round, o game.Outcome) {
	if o == game.Won {
		r.wins++
	}
	r.rows = append(r.rows, TrialRecord{
		Trial:    trial,
		Selected: round.Selected,
		Prize:    round.Prize,
		Revealed: round.Revealed,
		Outcome:  o,
		CumWins:  r.wins,
	})
}

func (r *Recorder) Rows() []TrialRecord { return r.rows }
