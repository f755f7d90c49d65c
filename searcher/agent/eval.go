package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
)

type searchAgent struct {
	searcher Searcher
}

// NewMinimaxAgent returns the computer opponent used in actual game play.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return searchAgent{searcher: minimax}
}

// NewGreedyAgent returns an agent using the legacy raw-heuristic selection.
func NewGreedyAgent(greedy *searcher.Greedy) Agent {
	return searchAgent{searcher: greedy}
}

func (a searchAgent) FindMove(state game.GameState) (searcher.Choice, metrics.SearchMetric, error) {
	return a.searcher.Search(state)
}
