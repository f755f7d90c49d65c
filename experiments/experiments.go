package experiments

import (
	"checkers/config"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"checkers/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	KindMinimax = searcher.ModeMinimax
	KindGreedy  = searcher.ModeGreedy
	KindRandom  = agent.ModeRandom
)

// Run starts the experiment named in cfg.
func Run(cfg config.Experiment, search config.Search) (string, error) {
	switch cfg.Name {
	case "depth":
		return RunDepthExperiment(cfg, search)
	case "throughput":
		return RunThroughputExperiment(cfg, search)
	default:
		return "", fmt.Errorf("unknown experiment %q", cfg.Name)
	}
}

// RunDepthExperiment pairs minimax agents of growing depth, and the greedy
// agent, against a random baseline. It returns the run directory.
func RunDepthExperiment(cfg config.Experiment, search config.Search) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindRandom, Seed: cfg.Seed}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: KindGreedy, Depth: searcher.GreedyDepth, Goroutines: 1},
	}
	for depth := 1; depth <= search.Depth; depth += 2 {
		configs = append(configs, metrics.AgentConfig{
			ID:         len(configs) + 1,
			Kind:       KindMinimax,
			Depth:      depth,
			Goroutines: search.Goroutines,
		})
	}

	// Each matchup pairs the baseline with a searching agent
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}

	return runExperiment(cfg, append(configs, baseline), matchUps)
}

func runExperiment(cfg config.Experiment, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			// Alternate sides so both agents get to move first
			computer, human := config1, config2
			if i%2 == 1 {
				computer, human = config2, config1
			}

			count++
			result, gameMetric, moveMetrics := runGame(computer, human, cfg.MaxTurns, uint64(count))
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Computer:   computer.ID,
				Human:      human.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d: %s", mi+1, len(matchUps), i+1, cfg.Games, result)
		}
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays one game and returns its result. Random agents are reseeded
// per game from their configured seed.
func runGame(computer, human metrics.AgentConfig, maxTurns int, gameID uint64) (game.Status, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(map[game.Player]agent.Agent{
		game.Computer: CreateAgent(computer, gameID),
		game.Human:    CreateAgent(human, gameID),
	})
	e.MaxTurns = maxTurns

	return e.Run()
}

// CreateAgent builds the agent described by config. It panics on an unknown kind.
func CreateAgent(config metrics.AgentConfig, gameID uint64) agent.Agent {
	switch config.Kind {
	case KindMinimax:
		return agent.NewMinimaxAgent(searcher.NewMinimax(config.Depth, searcher.WithGoroutines(config.Goroutines), searcher.WithMetrics()))
	case KindGreedy:
		return agent.NewGreedyAgent(searcher.NewGreedy(searcher.WithMetrics()))
	case KindRandom:
		return agent.NewRandomAgent(config.Seed + gameID)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
