package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"time"

	"golang.org/x/exp/rand"
)

// ModeRandom is reported in the metrics of random agents.
const ModeRandom = "random"

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal
// turn. The same seed replays the same game against a deterministic opponent.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.GameState) (searcher.Choice, metrics.SearchMetric, error) {
	start := time.Now()
	turns := state.Turns()
	metric := metrics.SearchMetric{Mode: ModeRandom, Goroutines: 1, Nodes: len(turns)}
	if len(turns) == 0 {
		metric.Duration = time.Since(start)
		return searcher.Choice{State: state}, metric, searcher.ErrNoMoves
	}

	turn := turns[a.rng.Intn(len(turns))]
	metric.Duration = time.Since(start)
	return searcher.Choice{Path: turn.Path, State: turn.Result.SwitchTurn()}, metric, nil
}
