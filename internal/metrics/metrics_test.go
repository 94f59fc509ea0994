package metrics

import (
	"testing"

	"github.com/jmorrel/montysim/internal/game"
)

func TestWinRate(t *testing.T) {
	m := NewWinRate()

	if m.Value() != 0 {
		t.Error("empty win rate should be 0")
	}

	for _, o := range []game.Outcome{game.Won, game.Won, game.Lost, game.Won} {
		m.Observe(nil, o)
	}
	if got := m.Value(); got != 0.75 {
		t.Errorf("expected 0.75, got %f", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear the rate")
	}
}

func TestStreak(t *testing.T) {
	outcomes := []game.Outcome{
		game.Won, game.Won, game.Lost, game.Won, game.Won, game.Won, game.Lost,
	}

	wins := NewStreak(game.Won)
	losses := NewStreak(game.Lost)
	for _, o := range outcomes {
		wins.Observe(nil, o)
		losses.Observe(nil, o)
	}

	if got := wins.Value(); got != 3 {
		t.Errorf("expected longest win streak 3, got %f", got)
	}
	if got := losses.Value(); got != 1 {
		t.Errorf("expected longest loss streak 1, got %f", got)
	}

	if wins.Name() != "longest_win_streak" || losses.Name() != "longest_loss_streak" {
		t.Error("unexpected metric names")
	}

	wins.Reset()
	if wins.Value() != 0 {
		t.Error("reset should clear the streak")
	}
}
