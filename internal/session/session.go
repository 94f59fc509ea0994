// Package session owns one player's interactive game loop: the current
// round, the running tally, and the selection/decision phase machine.
package session

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jmorrel/montysim/internal/game"
)

// Phase tracks where an interactive game stands.
type Phase int

const (
	AwaitingSelection Phase = iota
	AwaitingDecision
	RoundComplete
)

func (p Phase) String() string {
	switch p {
	case AwaitingSelection:
		return "awaiting selection"
	case AwaitingDecision:
		return "awaiting decision"
	case RoundComplete:
		return "round complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrWrongPhase indicates an action that is not legal in the current phase.
var ErrWrongPhase = errors.New("session: action not allowed in current phase")

// Session is a single player's game state. It is not safe for concurrent
// use; each session belongs to exactly one interactive loop.
type Session struct {
	rng      *rand.Rand
	phase    Phase
	round    *game.Round
	tally    game.Tally
	last     game.Outcome
	decision game.Decision
}

func New(seed int64) *Session {
	return &Session{
		rng:   rand.New(rand.NewSource(seed)),
		phase: AwaitingSelection,
	}
}

func (s *Session) Phase() Phase       { return s.phase }
func (s *Session) Round() *game.Round { return s.round }
func (s *Session) Tally() game.Tally  { return s.tally }

// LastOutcome returns the result of the most recent round; meaningful
// only in RoundComplete.
func (s *Session) LastOutcome() game.Outcome { return s.last }

// LastDecision returns the decision that resolved the most recent round.
func (s *Session) LastDecision() game.Decision { return s.decision }

// Select starts a round with the player's door and moves to the
// decision phase.
func (s *Session) Select(door game.Door) error {
	if s.phase != AwaitingSelection {
		return fmt.Errorf("%w: select while %s", ErrWrongPhase, s.phase)
	}
	round, err := game.Start(s.rng, door)
	if err != nil {
		return err
	}
	s.round = round
	s.phase = AwaitingDecision
	return nil
}

// Decide resolves the round with keep or switch and records the outcome
// in the tally.
func (s *Session) Decide(d game.Decision) (game.Outcome, error) {
	if s.phase != AwaitingDecision {
		return 0, fmt.Errorf("%w: decide while %s", ErrWrongPhase, s.phase)
	}
	outcome, err := s.round.Resolve(d)
	if err != nil {
		return 0, err
	}
	s.tally.Record(outcome)
	s.last = outcome
	s.decision = d
	s.phase = RoundComplete
	return outcome, nil
}

// PlayAgain returns to door selection, keeping the tally.
func (s *Session) PlayAgain() error {
	if s.phase != RoundComplete {
		return fmt.Errorf("%w: play again while %s", ErrWrongPhase, s.phase)
	}
	s.round = nil
	s.phase = AwaitingSelection
	return nil
}

// Reset returns to door selection and clears the tally. Legal from any
// phase.
func (s *Session) Reset() {
	s.round = nil
	s.tally = game.Tally{}
	s.phase = AwaitingSelection
}
