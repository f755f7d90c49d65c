package game

import "errors"

// Player is the side to move. The human plays white, the computer plays black.
type Player int

const (
	Human Player = iota
	Computer
)

func (p Player) String() string {
	switch p {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "unknown"
	}
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == Human {
		return Computer
	}
	return Human
}

// Status is owned by the driver; nothing in this package writes it.
type Status int

const (
	Running Status = iota
	Draw
	ComputerWon
	HumanWon
	Quit
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Draw:
		return "draw"
	case ComputerWon:
		return "computer won"
	case HumanWon:
		return "human won"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// WonBy returns the terminal status for a win by player.
func WonBy(p Player) Status {
	if p == Human {
		return HumanWon
	}
	return ComputerWon
}

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrWrongPiece    = errors.New("wrong piece")
	ErrForcedCapture = errors.New("a capture is available and must be taken")
)

// Turn is one complete turn: a simple move, or a maximal chain of jumps by one piece.
// Result is the state after the last move of Path, before the turn is switched.
type Turn struct {
	Path   []Move
	Result GameState
}

// Evaluate scores a state. Lower values favour the computer.
type Evaluate func(GameState) int
