package experiments

import (
	"checkers/config"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows)
}

func TestRunDepthExperiment(t *testing.T) {
	t.Run("writes records for every game", func(t *testing.T) {
		cfg := config.Experiment{Name: "depth", Games: 2, OutDir: t.TempDir(), MaxTurns: 6, Seed: 1}
		search := config.Search{Mode: "minimax", Depth: 3, Goroutines: 2}

		dir, err := Run(cfg, search)
		require.NoError(t, err)

		// greedy, depth 1, depth 3 and the random baseline
		require.Equal(t, 1+4, countRows(t, filepath.Join(dir, "agent_configs.csv")))
		require.Equal(t, 1+3*2, countRows(t, filepath.Join(dir, "game_records.csv")))
		require.Greater(t, countRows(t, filepath.Join(dir, "move_records.csv")), 1)
		require.Equal(t, filepath.Join(cfg.OutDir, "depth"), filepath.Dir(dir))
	})
}

func TestRunThroughputExperiment(t *testing.T) {
	t.Run("plays each goroutine setting against itself", func(t *testing.T) {
		cfg := config.Experiment{Name: "throughput", Games: 1, OutDir: t.TempDir(), MaxTurns: 2, Seed: 1}
		search := config.Search{Mode: "minimax", Depth: 2, Goroutines: 1}

		dir, err := Run(cfg, search)
		require.NoError(t, err)

		require.Equal(t, 1+4, countRows(t, filepath.Join(dir, "agent_configs.csv")))
		require.Equal(t, 1+4, countRows(t, filepath.Join(dir, "game_records.csv")))
		require.Equal(t, 1+4*2, countRows(t, filepath.Join(dir, "move_records.csv")))
	})
}

func TestRun(t *testing.T) {
	t.Run("unknown experiment", func(t *testing.T) {
		_, err := Run(config.Experiment{Name: "cutoff"}, config.Search{})
		require.ErrorContains(t, err, "unknown experiment")
	})
}

func TestCreateAgent(t *testing.T) {
	t.Run("panics on an unknown kind", func(t *testing.T) {
		require.Panics(t, func() {
			CreateAgent(metrics.AgentConfig{Kind: "mcts"}, 1)
		})
	})

	t.Run("minimax agents report their depth", func(t *testing.T) {
		a := CreateAgent(metrics.AgentConfig{Kind: KindMinimax, Depth: 2, Goroutines: 1}, 1)
		_, metric, err := a.FindMove(game.NewGameState())
		require.NoError(t, err)
		require.Equal(t, searcher.ModeMinimax, metric.Mode)
		require.Equal(t, 2, metric.Depth)
	})
}
