package game

import (
	"fmt"
	"math/rand"
)

// Round is a single playthrough: the prize placement, the player's pick,
// the host's opened door, and the one door left closed.
type Round struct {
	Prize     Door
	Selected  Door
	Revealed  Door
	Remaining Door

	outcome  Outcome
	resolved bool
}

// Start begins a round for the given player selection. The prize is placed
// uniformly at random, then the host opens a non-selected goat door; when
// the player picked the prize, the host chooses uniformly between the two
// goat doors.
func Start(rng *rand.Rand, selected Door) (*Round, error) {
	if !selected.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDoor, selected)
	}

	prize := Door(rng.Intn(NumDoors))

	goats := make([]Door, 0, 2)
	for d := Door(0); d < NumDoors; d++ {
		if d != selected && d != prize {
			goats = append(goats, d)
		}
	}
	revealed := goats[0]
	if len(goats) == 2 {
		revealed = goats[rng.Intn(2)]
	}

	r := &Round{Prize: prize, Selected: selected, Revealed: revealed}
	for d := Door(0); d < NumDoors; d++ {
		if d != selected && d != revealed {
			r.Remaining = d
		}
	}
	return r, nil
}

// Resolve scores the player's final decision: Keep stays on the selected
// door, Switch moves to the remaining closed door. A round resolves
// exactly once; a second call fails without changing the recorded outcome.
func (r *Round) Resolve(d Decision) (Outcome, error) {
	if r.resolved {
		return r.outcome, ErrRoundResolved
	}

	final := r.Selected
	if d == Switch {
		final = r.Remaining
	}

	r.outcome = Lost
	if final == r.Prize {
		r.outcome = Won
	}
	r.resolved = true
	return r.outcome, nil
}

// Resolved reports whether the round has been scored.
func (r *Round) Resolved() bool { return r.resolved }

// Outcome returns the recorded result; meaningful only after Resolve.
func (r *Round) Outcome() Outcome { return r.outcome }
