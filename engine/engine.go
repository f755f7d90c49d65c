package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

type Engine interface {
	// Run plays a game till a side wins, nobody can move, or the turn cap is reached
	Run() (result game.Status, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
