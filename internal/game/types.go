package game

import "fmt"

// NumDoors is fixed by the puzzle: one prize, two goats.
const NumDoors = 3

// Door identifies one of the three doors.
type Door int

// Valid reports whether d is a playable door index.
func (d Door) Valid() bool { return d >= 0 && d < NumDoors }

// Decision is the player's choice after the host's reveal.
type Decision int

const (
	Keep Decision = iota
	Switch
)

func (d Decision) String() string {
	if d == Switch {
		return "switch"
	}
	return "keep"
}

// ParseDecision maps a strategy name to a Decision.
func ParseDecision(s string) (Decision, error) {
	switch s {
	case "keep":
		return Keep, nil
	case "switch":
		return Switch, nil
	default:
		return 0, fmt.Errorf("unknown strategy: %s (want keep or switch)", s)
	}
}

// Outcome is the result of a resolved round.
type Outcome int

const (
	Lost Outcome = iota
	Won
)

func (o Outcome) String() string {
	if o == Won {
		return "won"
	}
	return "lost"
}
