package gamemaster

import (
	"checkers/game"
	"checkers/searcher"
	"checkers/searcher/agent"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var (
	ErrNotYourTurn      = errors.New("not your turn")
	ErrMustContinueJump = errors.New("the jumping piece must continue")
	ErrGameOver         = errors.New("game is over")
)

// Outcome tells the frontend what a submitted move did to the turn.
type Outcome int

const (
	Continue     Outcome = iota // Same piece must jump again
	TurnComplete                // Turn handed over to the computer
)

func (o Outcome) String() string {
	if o == Continue {
		return "continue"
	}
	return "turn complete"
}

// Session holds the canonical game between the human and one computer agent.
// It is not safe for concurrent use.
type Session struct {
	state    game.GameState
	computer agent.Agent
	pending  *game.Position // landing square of an unfinished multi-jump
	path     []game.Move    // moves of the human turn in progress
}

func NewSession(state game.GameState, computer agent.Agent) *Session {
	if computer == nil {
		panic("session needs a computer agent")
	}
	return &Session{state: state, computer: computer}
}

func (s *Session) State() game.GameState {
	return s.state
}

// Pending returns the square the human must keep jumping from, if any.
func (s *Session) Pending() (game.Position, bool) {
	if s.pending == nil {
		return game.Position{}, false
	}
	return *s.pending, true
}

// LegalMoves lists the moves the side to move may submit next. During a
// multi-jump only further jumps of the same piece qualify.
func (s *Session) LegalMoves() []game.Move {
	if s.state.Status != game.Running {
		return nil
	}
	if s.pending == nil {
		return s.state.LegalMoves()
	}
	return slices.DeleteFunc(s.state.MovesForSquare(*s.pending), func(m game.Move) bool {
		return !m.IsJump()
	})
}

// Submit plays one human move from `from` to `dest`. On error the session is unchanged.
func (s *Session) Submit(from, dest game.Position) (Outcome, error) {
	if s.state.Status != game.Running {
		return Continue, ErrGameOver
	}
	if s.state.CurrentPlayer != game.Human {
		return Continue, ErrNotYourTurn
	}

	m, ok := game.NewMove(from, dest)
	if !ok {
		return Continue, fmt.Errorf("%w: %v to %v is neither a step nor a jump", game.ErrInvalidMove, from, dest)
	}
	if err := s.state.Validate(m); err != nil {
		return Continue, err
	}

	if s.pending != nil {
		if !m.IsJump() || m.From != *s.pending {
			return Continue, fmt.Errorf("%w: jump again from %v", ErrMustContinueJump, *s.pending)
		}
	} else if !m.IsJump() && game.HasJump(s.state.MovesForPlayer(game.Human)) {
		return Continue, fmt.Errorf("%w: %v", game.ErrForcedCapture, m)
	}

	if !slices.Contains(s.LegalMoves(), m) {
		return Continue, fmt.Errorf("%w: %v", game.ErrInvalidMove, m)
	}

	next, err := s.state.Apply(m)
	if err != nil {
		return Continue, err
	}
	s.state = next
	s.path = append(s.path, m)

	if m.IsJump() && s.state.CanContinue(m.Dest) {
		dest := m.Dest
		s.pending = &dest
		return Continue, nil
	}

	log.Debug().Msgf("human played %v", s.path)
	s.state = s.state.SwitchTurn()
	s.pending = nil
	s.path = nil
	s.UpdateStatus()
	return TurnComplete, nil
}

// ComputerMove lets the agent play the computer's turn.
func (s *Session) ComputerMove() (searcher.Choice, error) {
	choice, err := s.Think()
	if err != nil {
		s.UpdateStatus()
		return choice, err
	}
	return choice, s.Adopt(choice)
}

// Think runs the computer agent on the current state without playing the
// result. It only reads the session, so it may run off the UI goroutine while
// nothing else writes to it.
func (s *Session) Think() (searcher.Choice, error) {
	if s.state.Status != game.Running {
		return searcher.Choice{State: s.state}, ErrGameOver
	}
	if s.state.CurrentPlayer != game.Computer {
		return searcher.Choice{State: s.state}, ErrNotYourTurn
	}

	choice, metric, err := s.computer.FindMove(s.state)
	if err != nil {
		return choice, fmt.Errorf("computer cannot move: %w", err)
	}

	log.Debug().
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msgf("computer picked %v", choice.Path)
	return choice, nil
}

// Adopt plays a choice returned by Think.
func (s *Session) Adopt(choice searcher.Choice) error {
	if s.state.Status != game.Running {
		return ErrGameOver
	}
	if s.state.CurrentPlayer != game.Computer || choice.State.CurrentPlayer != game.Human {
		return ErrNotYourTurn
	}

	s.state = choice.State
	s.UpdateStatus()
	return nil
}

// UpdateStatus adopts the outcome of the position while the game is running.
func (s *Session) UpdateStatus() game.Status {
	if s.state.Status == game.Running {
		s.state.Status = s.state.Outcome()
	}
	return s.state.Status
}

func (s *Session) Quit() {
	s.state.Status = game.Quit
	s.pending = nil
	s.path = nil
}
