package line

import (
	"checkers/game"
	"checkers/gamemaster"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

var ErrBadInput = errors.New("could not read move")

const help = `Enter a move as "row,col row,col", e.g. "5,0 4,1" or "50 41".
During a multi-jump enter each jump separately.
Commands: help, quit`

// Frontend plays the game on a readline prompt.
type Frontend struct {
	rl  *readline.Instance
	out io.Writer
}

func New(historyFile string) (*Frontend, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "move> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start prompt: %w", err)
	}

	f := &Frontend{rl: rl, out: rl.Stdout()}
	fmt.Fprintln(f.out, help)
	return f, nil
}

func (f *Frontend) Close() error {
	return f.rl.Close()
}

func (f *Frontend) ReceiveMove() (game.Position, game.Position, error) {
	for {
		line, err := f.rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return game.Position{}, game.Position{}, gamemaster.ErrQuit
		}
		if err != nil {
			return game.Position{}, game.Position{}, err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "quit", "exit", "q":
			return game.Position{}, game.Position{}, gamemaster.ErrQuit
		case "help", "h", "?":
			fmt.Fprintln(f.out, help)
			continue
		}

		return ParseMove(line)
	}
}

func (f *Frontend) Show(state game.GameState) {
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, state.String())
}

func (f *Frontend) Notify(msg string) {
	fmt.Fprintln(f.out, msg)
}

// ParseMove reads two squares given as four row/column digits. Spaces, commas,
// dashes, "x" and ">" may separate them.
func ParseMove(line string) (game.Position, game.Position, error) {
	var digits []int
	for _, r := range line {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case strings.ContainsRune(" ,-x>", r):
		default:
			return game.Position{}, game.Position{}, fmt.Errorf("%w: unexpected %q", ErrBadInput, r)
		}
	}
	if len(digits) != 4 {
		return game.Position{}, game.Position{}, fmt.Errorf("%w: want four digits, got %d", ErrBadInput, len(digits))
	}

	from := game.Position{Row: digits[0], Col: digits[1]}
	dest := game.Position{Row: digits[2], Col: digits[3]}
	if !from.InBounds() || !dest.InBounds() {
		return game.Position{}, game.Position{}, fmt.Errorf("%w: squares run from 0 to %d", ErrBadInput, game.Size-1)
	}
	return from, dest, nil
}
