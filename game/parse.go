package game

import (
	"fmt"
	"strings"
)

// ParseBoard builds a state from eight rows of eight symbols, using the notation of
// Piece.String: '.' empty, 'w'/'W' white man/king, 'b'/'B' black man/king.
// Spaces inside a row are ignored.
func ParseBoard(rows []string, toMove Player) (GameState, error) {
	if len(rows) != Size {
		return GameState{}, fmt.Errorf("invalid board: expected %d rows, got %d", Size, len(rows))
	}

	gs := GameState{CurrentPlayer: toMove, Status: Running}
	for r, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != Size {
			return GameState{}, fmt.Errorf("invalid board: row %d has %d squares", r, len(line))
		}
		for c, ch := range line {
			var p Piece
			switch ch {
			case '.':
				p = Empty
			case 'w':
				p = White
			case 'W':
				p = WhiteKing
			case 'b':
				p = Black
			case 'B':
				p = BlackKing
			default:
				return GameState{}, fmt.Errorf("invalid board: unknown piece %q at %d,%d", ch, r, c)
			}
			gs.Board[r][c] = p
		}
	}
	return gs, nil
}

// MustParseBoard is ParseBoard for fixtures known to be valid.
func MustParseBoard(rows []string, toMove Player) GameState {
	gs, err := ParseBoard(rows, toMove)
	if err != nil {
		panic(err)
	}
	return gs
}
