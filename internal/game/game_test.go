package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartInvalidDoor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, d := range []Door{-1, 3, 99} {
		_, err := Start(rng, d)
		require.ErrorIs(t, err, ErrInvalidDoor, "door %d", d)
	}
}

// TestRevealInvariants checks the goat-reveal and door-partition rules
// over many rounds with randomized selections.
func TestRevealInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		selected := Door(rng.Intn(NumDoors))
		r, err := Start(rng, selected)
		require.NoError(t, err)

		require.NotEqual(t, r.Prize, r.Revealed, "host must never reveal the prize")
		require.NotEqual(t, r.Selected, r.Revealed, "host must never open the player's door")

		seen := map[Door]bool{r.Selected: true, r.Revealed: true, r.Remaining: true}
		require.Len(t, seen, 3, "selected/revealed/remaining must partition the doors")
		for d := Door(0); d < NumDoors; d++ {
			require.True(t, seen[d])
		}
	}
}

// TestResolveStrategies checks that Switch wins exactly when the first
// pick missed the prize, and Keep exactly when it hit.
func TestResolveStrategies(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 2000; i++ {
		selected := Door(rng.Intn(NumDoors))
		r, err := Start(rng, selected)
		require.NoError(t, err)
		keep := *r // score each strategy on its own copy

		switched, err := r.Resolve(Switch)
		require.NoError(t, err)
		require.Equal(t, r.Selected != r.Prize, switched == Won)

		kept, err := keep.Resolve(Keep)
		require.NoError(t, err)
		require.Equal(t, keep.Selected == keep.Prize, kept == Won)

		require.NotEqual(t, switched, kept, "exactly one strategy wins any round")
	}
}

// TestRevealScenarios pins down the concrete reveal cases: with door 0
// selected, prize behind 1 forces a deterministic reveal of door 2, and
// prize behind 0 leaves the host a choice between 1 and 2.
func TestRevealScenarios(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	sawPrizeAt1, sawPrizeAt0 := false, false

	for i := 0; i < 500; i++ {
		r, err := Start(rng, 0)
		require.NoError(t, err)

		switch r.Prize {
		case 1:
			sawPrizeAt1 = true
			require.Equal(t, Door(2), r.Revealed)
			require.Equal(t, Door(1), r.Remaining)

			keep := *r
			out, err := r.Resolve(Switch)
			require.NoError(t, err)
			require.Equal(t, Won, out)
			out, err = keep.Resolve(Keep)
			require.NoError(t, err)
			require.Equal(t, Lost, out)
		case 0:
			sawPrizeAt0 = true
			require.Contains(t, []Door{1, 2}, r.Revealed)
			require.Equal(t, Door(3)-r.Revealed, r.Remaining)

			keep := *r
			out, err := r.Resolve(Switch)
			require.NoError(t, err)
			require.Equal(t, Lost, out)
			out, err = keep.Resolve(Keep)
			require.NoError(t, err)
			require.Equal(t, Won, out)
		}
	}

	require.True(t, sawPrizeAt1)
	require.True(t, sawPrizeAt0)
}

func TestResolveTwice(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	r, err := Start(rng, 1)
	require.NoError(t, err)

	first, err := r.Resolve(Keep)
	require.NoError(t, err)
	require.True(t, r.Resolved())

	again, err := r.Resolve(Switch)
	require.ErrorIs(t, err, ErrRoundResolved)
	require.Equal(t, first, again, "recorded outcome must not change")
}

func TestTally(t *testing.T) {
	var tally Tally
	_, ok := tally.WinRate()
	require.False(t, ok, "win rate undefined with no rounds")

	tally.Record(Won)
	tally.Record(Won)
	tally.Record(Lost)
	require.Equal(t, 3, tally.Rounds())

	rate, ok := tally.WinRate()
	require.True(t, ok)
	require.InDelta(t, 2.0/3.0, rate, 1e-12)

	other := Tally{Wins: 1, Losses: 4}
	tally.Merge(other)
	require.Equal(t, Tally{Wins: 3, Losses: 5}, tally)
}

func TestParseDecision(t *testing.T) {
	d, err := ParseDecision("keep")
	require.NoError(t, err)
	require.Equal(t, Keep, d)

	d, err = ParseDecision("switch")
	require.NoError(t, err)
	require.Equal(t, Switch, d)

	_, err = ParseDecision("stay")
	require.Error(t, err)
}
