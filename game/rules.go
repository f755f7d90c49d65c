package game

import "fmt"

// Validate reports why m cannot be played by the current player, or nil if it can.
// The returned error wraps ErrInvalidMove or ErrWrongPiece.
func (gs GameState) Validate(m Move) error {
	if !m.From.InBounds() {
		return fmt.Errorf("%w: origin %s is off the board", ErrInvalidMove, m.From)
	}
	piece := gs.At(m.From)
	if piece == Empty {
		return fmt.Errorf("%w: no piece on %s", ErrWrongPiece, m.From)
	}
	if !piece.OwnedBy(gs.CurrentPlayer) {
		return fmt.Errorf("%w: piece on %s does not belong to %s", ErrWrongPiece, m.From, gs.CurrentPlayer)
	}
	if !m.Dest.InBounds() {
		return fmt.Errorf("%w: destination %s is off the board", ErrInvalidMove, m.Dest)
	}
	if gs.At(m.Dest) != Empty {
		return fmt.Errorf("%w: destination %s is occupied", ErrInvalidMove, m.Dest)
	}

	d, ok := directionOf(m.From, m.Dest)
	if !ok {
		return fmt.Errorf("%w: %s to %s is not a diagonal step or jump", ErrInvalidMove, m.From, m.Dest)
	}
	if d != m.Direction {
		return fmt.Errorf("%w: direction %s does not match %s to %s", ErrInvalidMove, m.Direction, m.From, m.Dest)
	}
	if !piece.IsKing() && d.IsUp() != (gs.CurrentPlayer == Human) {
		return fmt.Errorf("%w: men cannot move backwards", ErrInvalidMove)
	}
	if d.IsJump() && !gs.At(m.Captured()).IsOpponentOf(piece) {
		return fmt.Errorf("%w: no opposing piece on %s to capture", ErrInvalidMove, m.Captured())
	}
	return nil
}

// MovesForSquare lists the legal moves of the piece on pos, trying the eight
// directions in a fixed order. It returns nil for an empty square.
func (gs GameState) MovesForSquare(pos Position) []Move {
	if gs.At(pos) == Empty {
		return nil
	}
	moves := make([]Move, 0, 4)
	for _, d := range directions {
		m := moveIn(pos, d)
		if gs.Validate(m) == nil {
			moves = append(moves, m)
		}
	}
	return moves
}

// MovesForPlayer lists every legal move of player's pieces in row-major order, as
// if player were to move. The result is not filtered for forced captures.
func (gs GameState) MovesForPlayer(player Player) []Move {
	view := gs.WithPlayer(player)
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := Position{Row: row, Col: col}
			if view.At(pos).OwnedBy(player) {
				moves = append(moves, view.MovesForSquare(pos)...)
			}
		}
	}
	return moves
}

// HasJump reports whether any of moves is a capture.
func HasJump(moves []Move) bool {
	for _, m := range moves {
		if m.IsJump() {
			return true
		}
	}
	return false
}

// FilterForced drops every non-jump when a jump is present, keeping order.
func FilterForced(moves []Move) []Move {
	if !HasJump(moves) {
		return moves
	}
	jumps := make([]Move, 0, len(moves))
	for _, m := range moves {
		if m.IsJump() {
			jumps = append(jumps, m)
		}
	}
	return jumps
}

// LegalMoves is the move set offered to the current player: every legal move,
// reduced to captures only when a capture exists.
func (gs GameState) LegalMoves() []Move {
	return FilterForced(gs.MovesForPlayer(gs.CurrentPlayer))
}

// Apply plays m for the current player and returns the resulting state. On
// rejection the returned state equals gs and the error explains why.
//
// A jump removes the captured piece, and a man reaching the far row is crowned
// as part of the same application. The current player is not switched.
func (gs GameState) Apply(m Move) (GameState, error) {
	if err := gs.Validate(m); err != nil {
		return gs, err
	}

	next := gs
	piece := next.At(m.From)
	next.set(m.From, Empty)
	if m.IsJump() {
		next.set(m.Captured(), Empty)
	}
	if owner, _ := piece.Owner(); m.Dest.Row == promotionRow(owner) {
		piece = piece.Promote()
	}
	next.set(m.Dest, piece)
	return next, nil
}

// Play is Apply without the error: an illegal move leaves the state unchanged.
func (gs GameState) Play(m Move) GameState {
	next, _ := gs.Apply(m)
	return next
}

// CanContinue reports whether the piece that just landed on pos has another jump.
func (gs GameState) CanContinue(pos Position) bool {
	return HasJump(gs.MovesForSquare(pos))
}
