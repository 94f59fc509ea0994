// Package game implements the Monty Hall door game: prize placement,
// the host's goat reveal, and keep/switch resolution.
//
// A [Round] is one playthrough. [Start] places the prize and opens a
// goat door; [Round.Resolve] scores the player's final decision exactly
// once. A [Tally] accumulates outcomes across rounds:
//
//	rng := rand.New(rand.NewSource(seed))
//	round, err := game.Start(rng, 0)
//	outcome, err := round.Resolve(game.Switch)
//	tally.Record(outcome)
//
// The package holds no global state; every random draw comes from the
// *rand.Rand the caller passes in, so play is reproducible under a
// fixed seed.
package game
