package gamemaster

import (
	"checkers/game"
	"checkers/searcher"
	"checkers/searcher/agent"
	"testing"

	"github.com/stretchr/testify/require"
)

func pos(row, col int) game.Position {
	return game.Position{Row: row, Col: col}
}

// White man on (6,1) can jump twice; white man on (7,6) can only step.
var doubleJump = []string{
	".b......",
	"........",
	"........",
	"....b...",
	"........",
	"..b.....",
	".w......",
	"......w.",
}

func newSession(t *testing.T, rows []string, toMove game.Player) *Session {
	t.Helper()
	state, err := game.ParseBoard(rows, toMove)
	require.NoError(t, err)
	return NewSession(state, agent.NewMinimaxAgent(searcher.NewMinimax(2)))
}

func TestSessionSubmit(t *testing.T) {
	t.Run("rejects moves on the computer's turn", func(t *testing.T) {
		s := NewSession(game.NewGameState(), agent.NewRandomAgent(1))

		_, err := s.Submit(pos(5, 0), pos(4, 1))
		require.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("rejects a move that is not a step or a jump", func(t *testing.T) {
		s := NewSession(game.NewGameState().SwitchTurn(), agent.NewRandomAgent(1))
		before := s.State()

		_, err := s.Submit(pos(5, 0), pos(3, 0))
		require.ErrorIs(t, err, game.ErrInvalidMove)
		require.Equal(t, before, s.State(), "Rejected move should not change the state")
	})

	t.Run("rejects the wrong piece", func(t *testing.T) {
		s := NewSession(game.NewGameState().SwitchTurn(), agent.NewRandomAgent(1))

		_, err := s.Submit(pos(4, 1), pos(3, 2))
		require.ErrorIs(t, err, game.ErrWrongPiece, "Empty square")

		_, err = s.Submit(pos(2, 1), pos(3, 2))
		require.ErrorIs(t, err, game.ErrWrongPiece, "Computer's piece")
	})

	t.Run("a simple move completes the turn", func(t *testing.T) {
		s := NewSession(game.NewGameState().SwitchTurn(), agent.NewRandomAgent(1))

		outcome, err := s.Submit(pos(5, 0), pos(4, 1))

		require.NoError(t, err)
		require.Equal(t, TurnComplete, outcome)
		require.Equal(t, game.Computer, s.State().CurrentPlayer)
		require.Equal(t, game.White, s.State().At(pos(4, 1)))
		require.Equal(t, game.Empty, s.State().At(pos(5, 0)))
	})

	t.Run("capture is forced", func(t *testing.T) {
		s := newSession(t, doubleJump, game.Human)
		before := s.State()

		_, err := s.Submit(pos(7, 6), pos(6, 5))

		require.ErrorIs(t, err, game.ErrForcedCapture)
		require.Equal(t, before, s.State())
	})

	t.Run("multi-jump stays in the turn until no jump is left", func(t *testing.T) {
		s := newSession(t, doubleJump, game.Human)

		outcome, err := s.Submit(pos(6, 1), pos(4, 3))
		require.NoError(t, err)
		require.Equal(t, Continue, outcome)
		require.Equal(t, game.Human, s.State().CurrentPlayer, "Turn should not switch mid-chain")
		pending, ok := s.Pending()
		require.True(t, ok)
		require.Equal(t, pos(4, 3), pending)
		require.Equal(t, game.Empty, s.State().At(pos(5, 2)))
		require.Equal(t, []game.Move{{From: pos(4, 3), Dest: pos(2, 5), Direction: game.JumpUpRight}}, s.LegalMoves())

		_, err = s.Submit(pos(7, 6), pos(6, 5))
		require.ErrorIs(t, err, ErrMustContinueJump, "Another piece cannot move mid-chain")

		outcome, err = s.Submit(pos(4, 3), pos(2, 5))
		require.NoError(t, err)
		require.Equal(t, TurnComplete, outcome)
		require.Equal(t, game.Computer, s.State().CurrentPlayer)
		require.Equal(t, game.Running, s.State().Status)
		_, ok = s.Pending()
		require.False(t, ok)
		require.Equal(t, 1, s.State().CountPieces(game.Computer))
	})

	t.Run("capturing the last piece wins", func(t *testing.T) {
		rows := append([]string{}, doubleJump...)
		rows[0] = "........"
		s := newSession(t, rows, game.Human)

		_, err := s.Submit(pos(6, 1), pos(4, 3))
		require.NoError(t, err)
		_, err = s.Submit(pos(4, 3), pos(2, 5))
		require.NoError(t, err)

		require.Equal(t, game.HumanWon, s.State().Status)

		_, err = s.Submit(pos(7, 6), pos(6, 5))
		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestSessionComputerMove(t *testing.T) {
	t.Run("plays the agent's choice", func(t *testing.T) {
		s := NewSession(game.NewGameState(), agent.NewMinimaxAgent(searcher.NewMinimax(3)))

		choice, err := s.ComputerMove()

		require.NoError(t, err)
		want, err := searcher.ComputeBestMove(game.NewGameState(), 3)
		require.NoError(t, err)
		require.Equal(t, want, s.State())
		require.Equal(t, want, choice.State)
		require.Equal(t, game.Human, s.State().CurrentPlayer)
	})

	t.Run("rejects on the human's turn", func(t *testing.T) {
		s := newSession(t, doubleJump, game.Human)

		_, err := s.ComputerMove()
		require.ErrorIs(t, err, ErrNotYourTurn)
	})
}

func TestSessionStatus(t *testing.T) {
	t.Run("blocked computer draws", func(t *testing.T) {
		s := newSession(t, []string{
			"........", "........", "........", "........",
			"........", "b.......", ".w......", "..w.....",
		}, game.Computer)

		require.Equal(t, game.Draw, s.UpdateStatus())

		_, err := s.ComputerMove()
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("quit is final", func(t *testing.T) {
		s := NewSession(game.NewGameState(), agent.NewRandomAgent(1))

		s.Quit()

		require.Equal(t, game.Quit, s.UpdateStatus())
		require.Empty(t, s.LegalMoves())
	})
}

func TestSessionThink(t *testing.T) {
	t.Run("thinking leaves the session untouched", func(t *testing.T) {
		s := NewSession(game.NewGameState(), agent.NewGreedyAgent(searcher.NewGreedy()))

		choice, err := s.Think()
		require.NoError(t, err)
		require.Equal(t, game.NewGameState(), s.State())

		require.NoError(t, s.Adopt(choice))
		require.Equal(t, choice.State, s.State())
	})

	t.Run("adopt refuses on the human's turn", func(t *testing.T) {
		s := newSession(t, doubleJump, game.Human)

		err := s.Adopt(searcher.Choice{State: s.State()})
		require.ErrorIs(t, err, ErrNotYourTurn)
	})
}
