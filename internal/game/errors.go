package game

import "errors"

var (
	// ErrInvalidDoor indicates a door index outside {0,1,2}.
	ErrInvalidDoor = errors.New("game: door index out of range")
	// ErrRoundResolved indicates Resolve was called on an already scored round.
	ErrRoundResolved = errors.New("game: round already resolved")
	// ErrTrialCount indicates a bulk trial count below one.
	ErrTrialCount = errors.New("game: trial count must be at least 1")
)
