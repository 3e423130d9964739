package game

import "fmt"

// Slot is the content of a single cell. Blocked only appears on the meta
// board, where it marks a sub-board that ended in a tie.
type Slot uint8

const (
	Empty Slot = iota
	X
	O
	Blocked
)

// Opponent returns the other side. Empty and Blocked map to themselves.
func (s Slot) Opponent() Slot {
	switch s {
	case X:
		return O
	case O:
		return X
	default:
		return s
	}
}

func (s Slot) String() string {
	switch s {
	case Empty:
		return " "
	case X:
		return "X"
	case O:
		return "O"
	case Blocked:
		return "_"
	default:
		return fmt.Sprintf("Slot(%d)", uint8(s))
	}
}

// Status is the outcome of a board from X's perspective.
type Status uint8

const (
	Undecided Status = iota
	Won
	Lost
	Tied
)

// Flip swaps Won and Lost, leaving Tied and Undecided unchanged.
func (s Status) Flip() Status {
	switch s {
	case Won:
		return Lost
	case Lost:
		return Won
	default:
		return s
	}
}

func (s Status) String() string {
	switch s {
	case Undecided:
		return "undecided"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Tied:
		return "tied"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Evaluate scores a game for X (positive is good for X) given the side to move.
type Evaluate func(g *Game, turn Slot) int
