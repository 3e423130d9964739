package game

// FreeChoice is the Active value that lets the mover pick any undecided board.
const FreeChoice = 9

// Game is the full position: nine sub-boards, the board the next move must be
// played in, and the overall outcome. It is a plain value, so assigning it
// copies the whole position; search relies on that to branch without sharing.
type Game struct {
	Boards [9]BitBoard
	Active uint8  // 0-8 forces a board, FreeChoice allows any undecided one
	Status Status // derived from the sub-board statuses, never set directly
}

// New returns an empty game where the first move may go anywhere.
func New() Game {
	g := Game{Active: FreeChoice}
	for i := range g.Boards {
		g.Boards[i] = NewBitBoard()
	}
	return g
}

// NewFromBoards builds a game from arbitrary boards, recomputing every board
// status and the overall status. An active board that is already decided
// becomes FreeChoice, as it would after MakeMove.
func NewFromBoards(boards [9]BitBoard, active uint8) Game {
	g := Game{Active: active}
	for i, b := range boards {
		g.Boards[i] = b.settle()
	}
	g.Status = g.Shrink().Status()
	if active < FreeChoice && g.Boards[active].Status() != Undecided {
		g.Active = FreeChoice
	}
	return g
}

// MakeMove plays side's move in place.
func (g *Game) MakeMove(m Move, side Slot) error {
	if err := IsLegal(g, m); err != nil {
		return err
	}

	board, cell := m.Board(), m.Cell()
	g.Boards[board] = g.Boards[board].place(uint(cell), side)
	g.Status = g.Shrink().Status()

	if g.Boards[cell].Status() != Undecided {
		g.Active = FreeChoice
	} else {
		g.Active = cell
	}
	return nil
}

// SimMove returns the game after side plays m, leaving g untouched.
func (g Game) SimMove(m Move, side Slot) (Game, error) {
	if err := g.MakeMove(m, side); err != nil {
		return Game{}, err
	}
	return g, nil
}

// Mirror swaps the sides on every board, so a position can be scored from O's
// point of view with an evaluation written for X.
func (g Game) Mirror() Game {
	for i, b := range g.Boards {
		g.Boards[i] = b.Flip()
	}
	g.Status = g.Status.Flip()
	return g
}

// Shrink collapses the sub-board outcomes into the meta board: won boards
// become X cells, lost boards O cells, tied boards blocked cells and undecided
// boards empty cells.
func (g Game) Shrink() BitBoard {
	var meta uint32
	for i, b := range g.Boards {
		switch b.Status() {
		case Won:
			meta |= 1 << (xOffset + i)
		case Lost:
			meta |= 1 << (oOffset + i)
		case Undecided:
			meta |= 1 << (emptyOffset + i)
		}
	}
	return BitBoard(meta).settle()
}

// MoveCount returns the number of occupied cells over all boards.
func (g *Game) MoveCount() int {
	n := 0
	for _, b := range g.Boards {
		n += b.occupied()
	}
	return n
}

// SideToMove assumes X opened the game.
func (g *Game) SideToMove() Slot {
	if g.MoveCount()%2 == 0 {
		return X
	}
	return O
}
