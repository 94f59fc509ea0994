package metrics

import "github.com/jmorrel/montysim/internal/game"

// Streak tracks the longest run of consecutive trials with the given
// outcome.
type Streak struct {
	target  game.Outcome
	current int
	longest int
}

func NewStreak(target game.Outcome) *Streak {
	return &Streak{target: target}
}

func (s *Streak) Name() string {
	if s.target == game.Won {
		return "longest_win_streak"
	}
	return "longest_loss_streak"
}

func (s *Streak) Observe(r *game.Round, o game.Outcome) {
	if o == s.target {
		s.current++
		if s.current > s.longest {
			s.longest = s.current
		}
	} else {
		s.current = 0
	}
}

func (s *Streak) Value() float64 { return float64(s.longest) }

func (s *Streak) Reset() {
	s.current = 0
	s.longest = 0
}
