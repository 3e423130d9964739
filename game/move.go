package game

import (
	"errors"
	"fmt"
)

// Move packs a board index in the high nibble and a cell index in the low one.
type Move uint8

// NoMove is an out-of-range move used before a move has been chosen.
const NoMove = Move(9<<4 | 9)

var (
	ErrInvalidMove   = errors.New("move is out of range")
	ErrBoardFinished = errors.New("that game has been finished")
	ErrCellOccupied  = errors.New("square is not empty")
	ErrWrongBoard    = errors.New("must play in the active board")
)

func NewMove(board, cell uint8) Move {
	return Move(board&0x0f<<4 | cell&0x0f)
}

func (m Move) Board() uint8 { return uint8(m) >> 4 }

func (m Move) Cell() uint8 { return uint8(m) & 0x0f }

func (m Move) valid() bool {
	return m.Board() < 9 && m.Cell() < 9
}

// String renders the move in the notation accepted by ParseMove, e.g. "e5".
func (m Move) String() string {
	if !m.valid() {
		return "--"
	}
	return string([]byte{'a' + m.Board(), '1' + m.Cell()})
}

// IsLegal reports why m cannot be played in g, or nil if it can.
func IsLegal(g *Game, m Move) error {
	if !m.valid() {
		return fmt.Errorf("%w: board %d cell %d", ErrInvalidMove, m.Board(), m.Cell())
	}
	b := g.Boards[m.Board()]
	if b.Status() != Undecided {
		return fmt.Errorf("%w: board %c is %s", ErrBoardFinished, 'a'+m.Board(), b.Status())
	}
	if !b.IsEmpty(uint(m.Cell())) {
		return fmt.Errorf("%w: %s", ErrCellOccupied, m)
	}
	if g.Active != FreeChoice && g.Active != m.Board() {
		return fmt.Errorf("%w: %c", ErrWrongBoard, 'a'+g.Active)
	}
	return nil
}

// fastLegal is IsLegal without the error values, for move generation.
func fastLegal(g *Game, m Move) bool {
	b := g.Boards[m.Board()]
	inFinished := uint32(b)&statusMask != 0
	inOccupied := !b.IsEmpty(uint(m.Cell()))
	notActive := g.Active != FreeChoice && g.Active != m.Board()
	return !(inFinished || inOccupied || notActive)
}

// LegalMoves lists the playable moves ordered by board, then cell.
func LegalMoves(g *Game) []Move {
	moves := make([]Move, 0, 81)
	for board := uint8(0); board < 9; board++ {
		for cell := uint8(0); cell < 9; cell++ {
			m := NewMove(board, cell)
			if fastLegal(g, m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}
