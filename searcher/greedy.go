package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"

	"github.com/rs/zerolog/log"
)

// GreedyDepth is the tree depth the greedy mode builds. Only the first level is
// looked at.
const GreedyDepth = 3

// Greedy is the legacy selection mode: it ignores minimax propagation and plays
// the first root child with the best raw static value (lowest for the computer,
// highest for the human).
type Greedy struct {
	depth int
	options
}

func NewGreedy(opts ...Option) *Greedy {
	g := &Greedy{depth: GreedyDepth, options: defaultOptions()}
	for _, opt := range opts {
		opt(&g.options)
	}
	return g
}

func (g *Greedy) Search(state game.GameState) (Choice, metrics.SearchMetric, error) {
	g.metrics.Start(ModeGreedy, g.depth, 1)

	root := build(state, nil, g.depth, g.evaluate, g.metrics)
	polarity := RootPolarity(state.CurrentPlayer)

	var best *Node
	bestValue := 0
	for _, child := range root.Children {
		value := g.evaluate(child.State)
		if best == nil || polarity.better(value, bestValue) {
			best = child
			bestValue = value
		}
	}

	if best == nil {
		return Choice{State: state}, g.metrics.Complete(), ErrNoMoves
	}
	g.metrics.SetRootValue(bestValue)

	log.Debug().
		Str("player", state.CurrentPlayer.String()).
		Int("value", bestValue).
		Msgf("greedy picked %v", best.Path)

	return Choice{Path: best.Path, State: best.State}, g.metrics.Complete(), nil
}

// ComputeGreedyMove plays one greedy turn from state.
func ComputeGreedyMove(state game.GameState) (game.GameState, error) {
	choice, _, err := NewGreedy().Search(state)
	return choice.State, err
}
