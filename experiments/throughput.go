package experiments

import (
	"checkers/config"
	"checkers/experiments/metrics"
)

// RunThroughputExperiment plays minimax against itself at the configured depth
// with a growing number of goroutines. Node counts and durations of the move
// records give the search throughput per setting.
func RunThroughputExperiment(cfg config.Experiment, search config.Search) (string, error) {
	configs := []metrics.AgentConfig{}
	for goroutines := 1; goroutines <= 8; goroutines *= 2 {
		configs = append(configs, metrics.AgentConfig{
			ID:         len(configs) + 1,
			Kind:       KindMinimax,
			Depth:      search.Depth,
			Goroutines: goroutines,
		})
	}

	// Same config for both players in each game
	// for the same playing strength and similar game length
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment(cfg, configs, matchUps)
}
