package metrics

import (
	"checkers/game"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	t.Run("creates a fresh run directory", func(t *testing.T) {
		out := t.TempDir()
		w1, err := NewWriter(out, "depth")
		require.NoError(t, err)
		w2, err := NewWriter(out, "depth")
		require.NoError(t, err)

		require.DirExists(t, w1.Dir())
		require.NotEqual(t, w1.Dir(), w2.Dir(), "Runs in the same second should not collide")
		require.Equal(t, filepath.Join(out, "depth"), filepath.Dir(w1.Dir()))
	})

	t.Run("writes agent configs", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "depth")
		require.NoError(t, err)

		err = w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "minimax", Depth: 3, Goroutines: 2, Seed: 5}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "depth", "goroutines", "seed"},
			{"1", "minimax", "3", "2", "5"},
		}, rows)
	})

	t.Run("writes game records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "depth")
		require.NoError(t, err)
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

		err = w.WriteGameRecords([]GameRecord{{
			ID: 1, Computer: 2, Human: 3,
			GameMetric: GameMetric{
				StartingPlayer: game.Computer,
				Result:         game.ComputerWon,
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     41,
				HumanPieces:    0,
				ComputerPieces: 5,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"id", "computer", "human", "starting_player", "result", "start_time", "end_time", "duration", "total_moves", "human_pieces", "computer_pieces"}, rows[0])
		require.Equal(t, []string{"1", "2", "3", "computer", "computer won", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "41", "0", "5"}, rows[1])
	})

	t.Run("writes move records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "depth")
		require.NoError(t, err)

		err = w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step: 2, Player: game.Human, Jumps: 1,
				SearchMetric: SearchMetric{Mode: "greedy", Depth: 3, Goroutines: 1, Duration: time.Millisecond, Nodes: 10, Leaves: 7, RootValue: -1},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"game", "step", "player", "jumps", "mode", "depth", "goroutines", "duration", "nodes", "leaves", "root_value"}, rows[0])
		require.Equal(t, []string{"1", "2", "human", "1", "greedy", "3", "1", "1ms", "10", "7", "-1"}, rows[1])
	})

	t.Run("empty records still get a header", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "depth")
		require.NoError(t, err)

		require.NoError(t, w.WriteMoveRecords(nil))
		require.Len(t, readCSV(t, filepath.Join(w.Dir(), "move_records.csv")), 1)
	})
}
