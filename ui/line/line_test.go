package line

import (
	"bytes"
	"checkers/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("accepts common notations", func(t *testing.T) {
		for _, input := range []string{"5,0 4,1", "50 41", "5 0 4 1", "5,0-4,1", "5,0 -> 4,1", "50x41"} {
			from, dest, err := ParseMove(input)
			require.NoError(t, err, input)
			require.Equal(t, game.Position{Row: 5, Col: 0}, from, input)
			require.Equal(t, game.Position{Row: 4, Col: 1}, dest, input)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, _, err := ParseMove("e2e4")
		require.ErrorIs(t, err, ErrBadInput)
	})

	t.Run("rejects the wrong number of digits", func(t *testing.T) {
		_, _, err := ParseMove("5,0 4")
		require.ErrorIs(t, err, ErrBadInput)

		_, _, err = ParseMove("5,0 4,1 3,2")
		require.ErrorIs(t, err, ErrBadInput)
	})

	t.Run("rejects squares off the board", func(t *testing.T) {
		_, _, err := ParseMove("8,0 7,1")
		require.ErrorIs(t, err, ErrBadInput)
	})
}

func TestFrontendOutput(t *testing.T) {
	t.Run("shows the board and messages", func(t *testing.T) {
		var buf bytes.Buffer
		f := &Frontend{out: &buf}

		f.Show(game.NewGameState())
		f.Notify("Computer played 2,1 -> 3,2")

		require.Contains(t, buf.String(), game.NewGameState().String())
		require.Contains(t, buf.String(), "Computer played 2,1 -> 3,2\n")
	})
}
