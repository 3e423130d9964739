package game

import (
	"errors"
	"strings"
)

var (
	ErrMoveLength  = errors.New("move string must be 1 or 2 chars")
	ErrBoardLetter = errors.New("game must be within a to i")
	ErrCellIndex   = errors.New("index must be between 1 and 9")
	ErrShorthand   = errors.New("can only use shorthand when a specific board is active")
)

// ParseMove reads "e5" style input: a board letter a-i and a cell digit 1-9.
// A lone digit plays in the active board when one is forced.
func ParseMove(input string, active uint8) (Move, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if len(input) == 0 || len(input) > 2 {
		return NoMove, ErrMoveLength
	}
	if len(input) == 1 && active == FreeChoice {
		return NoMove, ErrShorthand
	}

	board := active
	if len(input) == 2 {
		if input[0] < 'a' || input[0] > 'i' {
			return NoMove, ErrBoardLetter
		}
		board = input[0] - 'a'
	}

	last := input[len(input)-1]
	if last < '1' || last > '9' {
		return NoMove, ErrCellIndex
	}
	return NewMove(board, last-'1'), nil
}
