// Package sim drives repeated Monty Hall trials under a fixed strategy.
//
// A [Runner] plays independent rounds, re-randomizing both the prize
// placement and the player's selection on every trial, and folds the
// outcomes into a [Result]. Metrics and observers hook into each
// completed trial:
//
//	r := sim.New(game.Switch)
//	r.AddMetric(metrics.NewWinRate())
//	res, err := r.Run(ctx, sim.Config{Trials: 1000, Seed: 42})
//
// With Config.Workers > 1 trials fan out across goroutines with
// per-worker derived seeds; shard tallies merge by summation, so the
// aggregate counts do not depend on scheduling order.
package sim
