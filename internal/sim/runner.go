package sim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jmorrel/montysim/internal/game"
)

// Runner executes independent trials under a fixed decision strategy.
type Runner struct {
	decision  game.Decision
	metrics   []Metric
	observers []Observer
}

func New(decision game.Decision) *Runner {
	return &Runner{
		decision:  decision,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run plays cfg.Trials rounds and aggregates the outcomes. Trials are
// independent; each draws a fresh selection and prize placement. When
// cfg.Workers > 1 the trials are sharded across goroutines; metrics,
// observers and the running-rate series need trial ordering and are
// only applied on the sequential path.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Trials < 1 {
		return nil, fmt.Errorf("%w: got %d", game.ErrTrialCount, cfg.Trials)
	}
	if cfg.Workers > 1 {
		return r.runParallel(ctx, cfg)
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	result := &Result{
		Series:  make([]float64, 0, cfg.Trials),
		Metrics: make(map[string]float64),
	}

	for i := 0; i < cfg.Trials; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		round, err := game.Start(rng, game.Door(rng.Intn(game.NumDoors)))
		if err != nil {
			return result, err
		}
		outcome, err := round.Resolve(r.decision)
		if err != nil {
			return result, err
		}

		result.Tally.Record(outcome)
		result.Trials++

		for _, m := range r.metrics {
			m.Observe(round, outcome)
		}
		for _, obs := range r.observers {
			obs.OnTrial(i, round, outcome)
		}

		rate, _ := result.Tally.WinRate()
		result.Series = append(result.Series, rate)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
