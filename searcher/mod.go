package searcher

import (
	"checkers/game"
	"errors"
)

// Search modes as reported in metrics
const (
	ModeMinimax = "minimax"
	ModeGreedy  = "greedy"
)

// ErrNoMoves is returned when the side to move has no legal turn.
var ErrNoMoves = errors.New("no legal moves")

// Polarity tells whether a tree level takes the minimum or the maximum of its children.
type Polarity int

const (
	Min Polarity = iota // Computer (black) to move
	Max                 // Human (white) to move
)

func (p Polarity) Flip() Polarity {
	if p == Min {
		return Max
	}
	return Min
}

func (p Polarity) String() string {
	if p == Min {
		return "min"
	}
	return "max"
}

// RootPolarity is the polarity of a root where player is to move. Values are
// material from white's point of view, so black minimizes.
func RootPolarity(player game.Player) Polarity {
	if player == game.Computer {
		return Min
	}
	return Max
}

// better reports whether value improves on best under polarity p.
func (p Polarity) better(value, best int) bool {
	if p == Min {
		return value < best
	}
	return value > best
}

// Choice is a completed turn picked by a searcher. State already has the
// opponent to move.
type Choice struct {
	Path  []game.Move
	State game.GameState
}

// Jumps counts the captures made during the turn.
func (c Choice) Jumps() int {
	n := 0
	for _, m := range c.Path {
		if m.IsJump() {
			n++
		}
	}
	return n
}
