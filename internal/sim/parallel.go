package sim

import (
	"context"
	"math/rand"
	"sync"

	"github.com/jmorrel/montysim/internal/game"
)

// runParallel shards cfg.Trials across cfg.Workers goroutines. Each
// worker derives its own seed from the base seed and records into its
// own tally; tallies merge by summation at the end.
func (r *Runner) runParallel(ctx context.Context, cfg Config) (*Result, error) {
	shards := splitTrials(cfg.Trials, cfg.Workers)
	tallies := make([]game.Tally, len(shards))
	errs := make([]error, len(shards))

	var wg sync.WaitGroup
	for i, n := range shards {
		wg.Add(1)
		go func(idx, trials int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(cfg.Seed + int64(idx)))
			for t := 0; t < trials; t++ {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					return
				}

				round, err := game.Start(rng, game.Door(rng.Intn(game.NumDoors)))
				if err != nil {
					errs[idx] = err
					return
				}
				outcome, err := round.Resolve(r.decision)
				if err != nil {
					errs[idx] = err
					return
				}
				tallies[idx].Record(outcome)
			}
		}(i, n)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	result := &Result{Metrics: make(map[string]float64)}
	for _, t := range tallies {
		result.Tally.Merge(t)
	}
	result.Trials = result.Tally.Rounds()

	return result, nil
}

// splitTrials divides n as evenly as possible over w shards.
func splitTrials(n, w int) []int {
	if w > n {
		w = n
	}
	shards := make([]int, w)
	base, rem := n/w, n%w
	for i := range shards {
		shards[i] = base
		if i < rem {
			shards[i]++
		}
	}
	return shards
}
