package tui

import (
	"checkers/game"
	"checkers/gamemaster"
	"checkers/searcher"
	"checkers/searcher/agent"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(t *testing.T, m model, keys ...string) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(model)
	}
	return m, cmd
}

func humanToMove() *gamemaster.Session {
	return gamemaster.NewSession(game.NewGameState().SwitchTurn(), agent.NewGreedyAgent(searcher.NewGreedy()))
}

func TestModel(t *testing.T) {
	t.Run("computer starts thinking right away", func(t *testing.T) {
		m := newModel(gamemaster.NewSession(game.NewGameState(), agent.NewRandomAgent(1)), "classic")

		require.True(t, m.thinking)
		require.NotNil(t, m.Init())
		require.Contains(t, m.View(), "Computer is thinking")
	})

	t.Run("cursor stays on the board", func(t *testing.T) {
		m := newModel(humanToMove(), "classic")

		m, _ = send(t, m, "h", "h", "j", "j", "j", "j")
		require.Equal(t, game.Position{Row: game.Size - 1, Col: 0}, m.cursor)
	})

	t.Run("select a piece and move it", func(t *testing.T) {
		s := humanToMove()
		m := newModel(s, "classic")

		m, _ = send(t, m, "enter")
		require.NotNil(t, m.selected)
		require.Equal(t, []game.Position{{Row: 4, Col: 1}}, m.targets())

		m, cmd := send(t, m, "up", "right", "enter")
		require.Nil(t, m.selected)
		require.True(t, m.thinking)
		require.NotNil(t, cmd, "Computer should answer the move")
		require.Equal(t, game.White, s.State().At(game.Position{Row: 4, Col: 1}))

		next, _ := m.Update(cmd())
		m = next.(model)
		require.False(t, m.thinking)
		require.Equal(t, game.Human, s.State().CurrentPlayer)
		require.Contains(t, m.message, "Computer played")
	})

	t.Run("rejected move is reported", func(t *testing.T) {
		s := humanToMove()
		m := newModel(s, "mono")

		m, cmd := send(t, m, "enter", "up", "enter")

		require.Nil(t, cmd)
		require.True(t, m.failed)
		require.Contains(t, m.message, game.ErrInvalidMove.Error())
		require.Equal(t, game.Human, s.State().CurrentPlayer)
	})

	t.Run("selecting an empty square", func(t *testing.T) {
		m := newModel(humanToMove(), "classic")

		m, _ = send(t, m, "up", "enter")
		require.Nil(t, m.selected)
		require.True(t, m.failed)
	})

	t.Run("escape clears the selection", func(t *testing.T) {
		m := newModel(humanToMove(), "classic")

		m, _ = send(t, m, "enter", "esc")
		require.Nil(t, m.selected)
	})

	t.Run("q quits", func(t *testing.T) {
		m := newModel(humanToMove(), "classic")

		_, cmd := send(t, m, "q")
		require.NotNil(t, cmd)
		require.Equal(t, tea.Quit(), cmd())
	})

	t.Run("game over is shown", func(t *testing.T) {
		s := humanToMove()
		s.Quit()
		m := newModel(s, "classic")

		require.Contains(t, m.View(), "Game over: quit")
	})
}
