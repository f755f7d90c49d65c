package game

import "fmt"

// Size is the number of rows and columns of the board.
const Size = 8

// Position is a (row, col) square. Row 0 is the computer's back rank.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// InBounds reports whether p lies on the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Position) offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Direction classifies a move by its displacement. Up is toward row 0.
type Direction int

const (
	UpLeft Direction = iota
	UpRight
	JumpUpLeft
	JumpUpRight
	DownLeft
	DownRight
	JumpDownLeft
	JumpDownRight
)

// directions lists every direction in generation order.
var directions = [...]Direction{
	UpLeft, UpRight, JumpUpLeft, JumpUpRight,
	DownLeft, DownRight, JumpDownLeft, JumpDownRight,
}

var deltas = [...][2]int{
	UpLeft:        {-1, -1},
	UpRight:       {-1, 1},
	JumpUpLeft:    {-2, -2},
	JumpUpRight:   {-2, 2},
	DownLeft:      {1, -1},
	DownRight:     {1, 1},
	JumpDownLeft:  {2, -2},
	JumpDownRight: {2, 2},
}

func (d Direction) String() string {
	switch d {
	case UpLeft:
		return "up-left"
	case UpRight:
		return "up-right"
	case JumpUpLeft:
		return "jump-up-left"
	case JumpUpRight:
		return "jump-up-right"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	case JumpDownLeft:
		return "jump-down-left"
	case JumpDownRight:
		return "jump-down-right"
	default:
		return "unknown"
	}
}

func (d Direction) IsJump() bool {
	return d == JumpUpLeft || d == JumpUpRight || d == JumpDownLeft || d == JumpDownRight
}

// IsUp reports whether the direction decreases the row.
func (d Direction) IsUp() bool {
	return d <= JumpUpRight
}

// directionOf classifies the displacement between from and dest.
func directionOf(from, dest Position) (Direction, bool) {
	dr, dc := dest.Row-from.Row, dest.Col-from.Col
	for _, d := range directions {
		if deltas[d][0] == dr && deltas[d][1] == dc {
			return d, true
		}
	}
	return 0, false
}

// Move is a single step or a single jump. Direction is always derived from From and Dest.
type Move struct {
	From      Position
	Dest      Position
	Direction Direction
}

// NewMove builds a move from two squares. ok is false when dest is not one of the
// eight diagonal step or jump destinations of from.
func NewMove(from, dest Position) (Move, bool) {
	d, ok := directionOf(from, dest)
	if !ok {
		return Move{}, false
	}
	return Move{From: from, Dest: dest, Direction: d}, true
}

func moveIn(from Position, d Direction) Move {
	return Move{From: from, Dest: from.offset(deltas[d][0], deltas[d][1]), Direction: d}
}

func (m Move) IsJump() bool {
	return m.Direction.IsJump()
}

// Captured is the square jumped over. Only meaningful for jumps.
func (m Move) Captured() Position {
	return Position{
		Row: (m.From.Row + m.Dest.Row) / 2,
		Col: (m.From.Col + m.Dest.Col) / 2,
	}
}

func (m Move) String() string {
	if m.IsJump() {
		return fmt.Sprintf("%s x %s", m.From, m.Dest)
	}
	return fmt.Sprintf("%s -> %s", m.From, m.Dest)
}
