package session

import (
	"errors"
	"testing"

	"github.com/jmorrel/montysim/internal/game"
)

func TestSessionHappyPath(t *testing.T) {
	s := New(42)

	if s.Phase() != AwaitingSelection {
		t.Fatalf("new session should await selection, got %s", s.Phase())
	}

	if err := s.Select(1); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if s.Phase() != AwaitingDecision {
		t.Errorf("expected awaiting decision, got %s", s.Phase())
	}
	if s.Round() == nil {
		t.Fatal("round should exist after selection")
	}

	outcome, err := s.Decide(game.Switch)
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}
	if s.Phase() != RoundComplete {
		t.Errorf("expected round complete, got %s", s.Phase())
	}
	if s.LastOutcome() != outcome {
		t.Errorf("last outcome mismatch: %v vs %v", s.LastOutcome(), outcome)
	}
	if s.Tally().Rounds() != 1 {
		t.Errorf("expected 1 completed round, got %d", s.Tally().Rounds())
	}

	if err := s.PlayAgain(); err != nil {
		t.Fatalf("play again failed: %v", err)
	}
	if s.Phase() != AwaitingSelection {
		t.Errorf("expected awaiting selection, got %s", s.Phase())
	}
	if s.Tally().Rounds() != 1 {
		t.Error("play again must keep the tally")
	}
}

func TestSessionPhaseViolations(t *testing.T) {
	s := New(1)

	if _, err := s.Decide(game.Keep); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("decide before selection: expected ErrWrongPhase, got %v", err)
	}
	if err := s.PlayAgain(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("play again before selection: expected ErrWrongPhase, got %v", err)
	}

	if err := s.Select(0); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if err := s.Select(1); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("double select: expected ErrWrongPhase, got %v", err)
	}

	if _, err := s.Decide(game.Keep); err != nil {
		t.Fatalf("decide failed: %v", err)
	}
	if _, err := s.Decide(game.Switch); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("double decide: expected ErrWrongPhase, got %v", err)
	}
	if s.Tally().Rounds() != 1 {
		t.Error("rejected decide must not change the tally")
	}
}

func TestSessionInvalidDoor(t *testing.T) {
	s := New(1)
	if err := s.Select(5); !errors.Is(err, game.ErrInvalidDoor) {
		t.Errorf("expected ErrInvalidDoor, got %v", err)
	}
	if s.Phase() != AwaitingSelection {
		t.Error("failed selection must not advance the phase")
	}
}

func TestSessionReset(t *testing.T) {
	s := New(9)

	for i := 0; i < 3; i++ {
		if err := s.Select(game.Door(i)); err != nil {
			t.Fatalf("select failed: %v", err)
		}
		if _, err := s.Decide(game.Keep); err != nil {
			t.Fatalf("decide failed: %v", err)
		}
		if err := s.PlayAgain(); err != nil {
			t.Fatalf("play again failed: %v", err)
		}
	}
	if s.Tally().Rounds() != 3 {
		t.Fatalf("expected 3 rounds, got %d", s.Tally().Rounds())
	}

	// Reset is legal mid-round too.
	if err := s.Select(0); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	s.Reset()

	if s.Phase() != AwaitingSelection {
		t.Errorf("expected awaiting selection after reset, got %s", s.Phase())
	}
	if s.Tally() != (game.Tally{}) {
		t.Error("reset must clear the tally")
	}
	if s.Round() != nil {
		t.Error("reset must discard the round")
	}
}
