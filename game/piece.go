package game

// Piece is the content of one board square.
type Piece int8

const (
	Empty Piece = iota
	White
	WhiteKing
	Black
	BlackKing
)

func (p Piece) String() string {
	switch p {
	case White:
		return "w"
	case WhiteKing:
		return "W"
	case Black:
		return "b"
	case BlackKing:
		return "B"
	default:
		return "."
	}
}

// Owner reports which player moves the piece. ok is false for Empty.
func (p Piece) Owner() (owner Player, ok bool) {
	switch p {
	case White, WhiteKing:
		return Human, true
	case Black, BlackKing:
		return Computer, true
	default:
		return 0, false
	}
}

// OwnedBy reports whether the piece belongs to player.
func (p Piece) OwnedBy(player Player) bool {
	owner, ok := p.Owner()
	return ok && owner == player
}

// IsOpponentOf reports whether p and other are pieces of opposite colors.
func (p Piece) IsOpponentOf(other Piece) bool {
	a, ok1 := p.Owner()
	b, ok2 := other.Owner()
	return ok1 && ok2 && a != b
}

func (p Piece) IsKing() bool {
	return p == WhiteKing || p == BlackKing
}

// Promote returns the king of the same color. Kings and Empty are unchanged.
func (p Piece) Promote() Piece {
	switch p {
	case White:
		return WhiteKing
	case Black:
		return BlackKing
	default:
		return p
	}
}

// Weight is the material value of a piece from white's point of view.
func Weight(p Piece) int {
	switch p {
	case White:
		return 1
	case WhiteKing:
		return 2
	case Black:
		return -1
	case BlackKing:
		return -2
	default:
		return 0
	}
}

// pieces returns the man and king variants belonging to player.
func pieces(player Player) (man, king Piece) {
	if player == Human {
		return White, WhiteKing
	}
	return Black, BlackKing
}

// promotionRow is the far row where a man of player becomes a king.
func promotionRow(player Player) int {
	if player == Human {
		return 0
	}
	return Size - 1
}
