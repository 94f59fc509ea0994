package game

// Tally accumulates win/loss counts across completed rounds.
type Tally struct {
	Wins   int
	Losses int
}

// Record adds one completed round to the tally.
func (t *Tally) Record(o Outcome) {
	if o == Won {
		t.Wins++
	} else {
		t.Losses++
	}
}

// Rounds returns the number of completed rounds.
func (t Tally) Rounds() int { return t.Wins + t.Losses }

// WinRate returns the observed win fraction; ok is false when no rounds
// have been recorded.
func (t Tally) WinRate() (rate float64, ok bool) {
	n := t.Rounds()
	if n == 0 {
		return 0, false
	}
	return float64(t.Wins) / float64(n), true
}

// Merge folds other into t. Addition commutes, so shards produced by
// parallel trial workers can merge in any order.
func (t *Tally) Merge(other Tally) {
	t.Wins += other.Wins
	t.Losses += other.Losses
}
