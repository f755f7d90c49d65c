package game

import (
	"encoding/binary"
	"hash/fnv"
	"strings"
)

// Board is the 8x8 grid indexed as [row][col].
type Board [Size][Size]Piece

// GameState is a value type: every operation in this package returns a new copy
// and never mutates its receiver.
type GameState struct {
	Board         Board
	CurrentPlayer Player
	Status        Status
}

// NewGameState returns the standard starting position with the computer to move.
func NewGameState() GameState {
	gs := GameState{CurrentPlayer: Computer, Status: Running}
	for row := 0; row < Size; row++ {
		var piece Piece
		switch {
		case row < 3:
			piece = Black
		case row >= Size-3:
			piece = White
		default:
			continue
		}
		for col := 0; col < Size; col++ {
			if (row+col)%2 == 1 {
				gs.Board[row][col] = piece
			}
		}
	}
	return gs
}

// At returns the piece on pos, or Empty when pos is off the board.
func (gs GameState) At(pos Position) Piece {
	if !pos.InBounds() {
		return Empty
	}
	return gs.Board[pos.Row][pos.Col]
}

func (gs *GameState) set(pos Position, p Piece) {
	gs.Board[pos.Row][pos.Col] = p
}

// SwitchTurn hands the move to the other player. Callers invoke it once per completed turn.
func (gs GameState) SwitchTurn() GameState {
	gs.CurrentPlayer = gs.CurrentPlayer.Opponent()
	return gs
}

// WithPlayer returns a copy with the given player to move.
func (gs GameState) WithPlayer(p Player) GameState {
	gs.CurrentPlayer = p
	return gs
}

// CountPieces counts men and kings belonging to player.
func (gs GameState) CountPieces(player Player) int {
	count := 0
	for row := range gs.Board {
		for _, p := range gs.Board[row] {
			if p.OwnedBy(player) {
				count++
			}
		}
	}
	return count
}

// Hash identifies a position (board and side to move). Status is not part of it.
func (gs GameState) Hash() uint64 {
	h := fnv.New64a()
	var buf [Size * Size]byte
	for row := range gs.Board {
		for col, p := range gs.Board[row] {
			buf[row*Size+col] = byte(p)
		}
	}
	h.Write(buf[:])
	var player [8]byte
	binary.LittleEndian.PutUint64(player[:], uint64(gs.CurrentPlayer))
	h.Write(player[:])
	return h.Sum64()
}

// String renders the board with row and column indices, computer side on top.
func (gs GameState) String() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	for row := range gs.Board {
		sb.WriteByte(byte('0' + row))
		for _, p := range gs.Board[row] {
			sb.WriteByte(' ')
			sb.WriteString(p.String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(gs.CurrentPlayer.String())
	sb.WriteString(" to move")
	return sb.String()
}
