package gamemaster

import (
	"checkers/game"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrQuit is returned by a frontend when the human leaves the game.
var ErrQuit = errors.New("quit")

// Frontend is a pull-based user interface.
type Frontend interface {
	// ReceiveMove blocks until the human enters a move or ErrQuit
	ReceiveMove() (from, dest game.Position, err error)
	Show(state game.GameState)
	Notify(msg string)
}

// GameMaster drives a session against a frontend.
type GameMaster struct {
	Session *Session
}

func NewGameMaster(session *Session) *GameMaster {
	return &GameMaster{
		Session: session,
	}
}

// Run is the game loop. It returns the final status.
func (gm *GameMaster) Run(frontend Frontend) game.Status {
	for {
		status := gm.Session.UpdateStatus()
		if status != game.Running {
			frontend.Show(gm.Session.State())
			frontend.Notify(fmt.Sprintf("Game over: %s", status))
			log.Info().Msgf("game over: %s", status)
			return status
		}

		if gm.Session.State().CurrentPlayer == game.Computer {
			frontend.Notify("Computer is thinking...")
			choice, err := gm.Session.ComputerMove()
			if err != nil {
				log.Warn().Err(err).Msg("computer move failed")
				frontend.Notify(err.Error())
				return gm.Session.UpdateStatus()
			}
			frontend.Notify(fmt.Sprintf("Computer played %s", formatPath(choice.Path)))
			continue
		}

		frontend.Show(gm.Session.State())
		from, dest, err := frontend.ReceiveMove()
		if errors.Is(err, ErrQuit) {
			gm.Session.Quit()
			continue
		}
		if err != nil {
			frontend.Notify(err.Error())
			continue
		}

		outcome, err := gm.Session.Submit(from, dest)
		if err != nil {
			frontend.Notify(err.Error())
			continue
		}
		if outcome == Continue {
			frontend.Notify(fmt.Sprintf("Jump again from %v", dest))
		}
	}
}

func formatPath(path []game.Move) string {
	if len(path) == 0 {
		return "nothing"
	}
	s := path[0].From.String()
	for _, m := range path {
		if m.IsJump() {
			s += " x " + m.Dest.String()
		} else {
			s += " -> " + m.Dest.String()
		}
	}
	return s
}
