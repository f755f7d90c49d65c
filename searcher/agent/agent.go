package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
)

type Agent interface {
	// FindMove picks a complete turn for the side to move and reports search metrics (if collected)
	FindMove(state game.GameState) (searcher.Choice, metrics.SearchMetric, error)
}

// Searcher is implemented by searcher.Minimax and searcher.Greedy.
type Searcher interface {
	Search(state game.GameState) (searcher.Choice, metrics.SearchMetric, error)
}
