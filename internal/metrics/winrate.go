// Package metrics provides per-trial summary statistics for bulk runs.
package metrics

import "github.com/jmorrel/montysim/internal/game"

// WinRate reports the fraction of observed trials won.
type WinRate struct {
	wins   int
	trials int
}

func NewWinRate() *WinRate { return &WinRate{} }

func (w *WinRate) Name() string { return "win_rate" }

func (w *WinRate) Observe(r *game.Round, o game.Outcome) {
	w.trials++
	if o == game.Won {
		w.wins++
	}
}

func (w *WinRate) Value() float64 {
	if w.trials == 0 {
		return 0
	}
	return float64(w.wins) / float64(w.trials)
}

func (w *WinRate) Reset() {
	w.wins = 0
	w.trials = 0
}
