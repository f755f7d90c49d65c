package tui

import (
	"checkers/game"
	"checkers/gamemaster"
	"checkers/searcher"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/slices"
)

type computerMovedMsg struct {
	choice searcher.Choice
	err    error
}

type model struct {
	session  *gamemaster.Session
	styles   styles
	cursor   game.Position
	selected *game.Position
	thinking bool
	message  string
	failed   bool
}

func newModel(session *gamemaster.Session, theme string) model {
	state := session.State()
	return model{
		session:  session,
		styles:   newStyles(theme),
		cursor:   game.Position{Row: game.Size - 3, Col: 0},
		thinking: state.Status == game.Running && state.CurrentPlayer == game.Computer,
	}
}

// Run plays the session in the terminal's alternate screen and returns the final status.
func Run(session *gamemaster.Session, theme string) (game.Status, error) {
	p := tea.NewProgram(newModel(session, theme), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return session.State().Status, fmt.Errorf("failed to run terminal ui: %w", err)
	}

	if session.UpdateStatus() == game.Running {
		session.Quit()
	}
	return session.State().Status, nil
}

func (m model) Init() tea.Cmd {
	if m.thinking {
		return think(m.session)
	}
	return nil
}

// nextTurn starts the computer search when it is the computer's turn.
func (m *model) nextTurn() tea.Cmd {
	if m.session.UpdateStatus() != game.Running || m.session.State().CurrentPlayer != game.Computer {
		return nil
	}
	m.thinking = true
	return think(m.session)
}

func think(session *gamemaster.Session) tea.Cmd {
	return func() tea.Msg {
		choice, err := session.Think()
		return computerMovedMsg{choice: choice, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1, 0)
		case "down", "j":
			m.moveCursor(1, 0)
		case "left", "h":
			m.moveCursor(0, -1)
		case "right", "l":
			m.moveCursor(0, 1)
		case "esc":
			if _, pending := m.session.Pending(); !pending {
				m.selected = nil
			}
		case "enter", " ":
			return m.choose()
		}
	case computerMovedMsg:
		m.thinking = false
		if msg.err != nil {
			m.setError(msg.err)
			m.session.UpdateStatus()
			return m, nil
		}
		if err := m.session.Adopt(msg.choice); err != nil {
			m.setError(err)
			return m, nil
		}
		m.message = fmt.Sprintf("Computer played %s", describe(msg.choice.Path))
		m.failed = false
	}
	return m, nil
}

func (m *model) moveCursor(dr, dc int) {
	row := min(max(m.cursor.Row+dr, 0), game.Size-1)
	col := min(max(m.cursor.Col+dc, 0), game.Size-1)
	m.cursor = game.Position{Row: row, Col: col}
}

func (m *model) setError(err error) {
	m.message = err.Error()
	m.failed = true
}

// choose selects the piece under the cursor or submits a move to it.
func (m model) choose() (tea.Model, tea.Cmd) {
	if m.thinking || m.session.State().Status != game.Running {
		return m, nil
	}

	if m.selected == nil || m.session.State().At(m.cursor).OwnedBy(game.Human) {
		if _, pending := m.session.Pending(); pending {
			return m, nil
		}
		if !m.session.State().At(m.cursor).OwnedBy(game.Human) {
			m.message = "Select one of your pieces"
			m.failed = true
			return m, nil
		}
		cursor := m.cursor
		m.selected = &cursor
		m.message = ""
		return m, nil
	}

	outcome, err := m.session.Submit(*m.selected, m.cursor)
	if err != nil {
		m.setError(err)
		return m, nil
	}

	m.failed = false
	if outcome == gamemaster.Continue {
		dest := m.cursor
		m.selected = &dest
		m.message = "Jump again"
		return m, nil
	}

	m.selected = nil
	m.message = ""
	cmd := m.nextTurn()
	return m, cmd
}

// targets are the destinations of the selected piece's legal moves.
func (m model) targets() []game.Position {
	if m.selected == nil {
		return nil
	}
	var dests []game.Position
	for _, move := range m.session.LegalMoves() {
		if move.From == *m.selected {
			dests = append(dests, move.Dest)
		}
	}
	return dests
}

func (m model) View() string {
	state := m.session.State()
	targets := m.targets()

	var board strings.Builder
	board.WriteString("   ")
	for col := 0; col < game.Size; col++ {
		board.WriteString(fmt.Sprintf(" %d ", col))
	}
	board.WriteString("\n")

	for row := 0; row < game.Size; row++ {
		board.WriteString(fmt.Sprintf(" %d ", row))
		for col := 0; col < game.Size; col++ {
			pos := game.Position{Row: row, Col: col}
			board.WriteString(m.square(pos, state.At(pos), slices.Contains(targets, pos)))
		}
		board.WriteString("\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("Checkers"),
		"",
		board.String(),
		m.statusLine(state),
		m.messageLine(),
		"",
		m.styles.help.Render("arrows/hjkl: move  enter: select/move  esc: deselect  q: quit"),
	)
}

func (m model) square(pos game.Position, piece game.Piece, target bool) string {
	style := m.styles.light
	if (pos.Row+pos.Col)%2 == 1 {
		style = m.styles.dark
	}
	switch {
	case pos == m.cursor:
		style = m.styles.cursor
	case m.selected != nil && pos == *m.selected:
		style = m.styles.selected
	case target:
		style = m.styles.target
	}

	label := " "
	if piece != game.Empty {
		label = piece.String()
		if piece.OwnedBy(game.Human) {
			style = style.Inherit(m.styles.white)
		} else {
			style = style.Inherit(m.styles.black)
		}
	}
	return style.Render(label)
}

func (m model) statusLine(state game.GameState) string {
	var s string
	switch {
	case state.Status != game.Running:
		s = fmt.Sprintf("Game over: %s. Press q to leave.", state.Status)
	case m.thinking:
		s = "Computer is thinking..."
	default:
		s = "Your move (white)"
	}
	return m.styles.status.Render(fmt.Sprintf("%s   white %d  black %d", s, state.CountPieces(game.Human), state.CountPieces(game.Computer)))
}

func (m model) messageLine() string {
	if m.failed {
		return m.styles.error.Render(m.message)
	}
	return m.message
}

func describe(path []game.Move) string {
	parts := make([]string, 0, len(path))
	for _, move := range path {
		parts = append(parts, move.String())
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, ", ")
}
