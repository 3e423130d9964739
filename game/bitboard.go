package game

import (
	"fmt"
	"math/bits"
)

// BitBoard packs one 3x3 board into a uint32:
//
//	bits  0-8   cells held by X
//	bits  9-17  cells held by O
//	bits 18-26  empty cells
//	bits 27-31  Status
//
// A cell with none of its three bits set is Blocked.
type BitBoard uint32

const (
	xOffset      = 0
	oOffset      = 9
	emptyOffset  = 18
	statusOffset = 27

	cellMask   uint32 = 1<<9 - 1
	statusMask uint32 = 0b11111 << statusOffset
	cornerMask uint32 = 0b101000101
)

var lines = [8][3]uint{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

var (
	lineMasks = buildLineMasks()

	wonByX = shiftMasks(lineMasks, xOffset)
	wonByO = shiftMasks(lineMasks, oOffset)

	oneAwayX = buildOneAways(xOffset)
	oneAwayO = buildOneAways(oOffset)
)

func buildLineMasks() [8]uint32 {
	var masks [8]uint32
	for i, line := range lines {
		for _, cell := range line {
			masks[i] |= 1 << cell
		}
	}
	return masks
}

func shiftMasks(masks [8]uint32, offset uint) [8]uint32 {
	var shifted [8]uint32
	for i, m := range masks {
		shifted[i] = m << offset
	}
	return shifted
}

// buildOneAways returns, for every line and every choice of its open cell,
// a mask holding the side's two occupied cells and the open cell's empty bit.
func buildOneAways(offset uint) [24]uint32 {
	var masks [24]uint32
	n := 0
	for _, line := range lines {
		for open := range line {
			var m uint32
			for i, cell := range line {
				if i == open {
					m |= 1 << (emptyOffset + cell)
				} else {
					m |= 1 << (offset + cell)
				}
			}
			masks[n] = m
			n++
		}
	}
	return masks
}

// NewBitBoard returns an undecided board with all nine cells empty.
func NewBitBoard() BitBoard {
	return BitBoard(cellMask << emptyOffset)
}

// FromSlots encodes nine cells and settles the resulting status.
func FromSlots(cells [9]Slot) BitBoard {
	var b uint32
	for i, s := range cells {
		switch s {
		case X:
			b |= 1 << (xOffset + i)
		case O:
			b |= 1 << (oOffset + i)
		case Empty:
			b |= 1 << (emptyOffset + i)
		}
	}
	return BitBoard(b).settle()
}

// Slots decodes the board back into nine cells.
func (b BitBoard) Slots() [9]Slot {
	var cells [9]Slot
	for i := range cells {
		cells[i] = b.Cell(uint(i))
	}
	return cells
}

// Cell returns the content of a single cell.
func (b BitBoard) Cell(i uint) Slot {
	switch {
	case uint32(b)&(1<<(xOffset+i)) != 0:
		return X
	case uint32(b)&(1<<(oOffset+i)) != 0:
		return O
	case uint32(b)&(1<<(emptyOffset+i)) != 0:
		return Empty
	default:
		return Blocked
	}
}

// Occupancy returns the set of cells held by side as a 9-bit mask.
func (b BitBoard) Occupancy(side Slot) uint32 {
	return uint32(b) >> offset(side) & cellMask
}

// IsEmpty reports whether the cell can still be played.
func (b BitBoard) IsEmpty(i uint) bool {
	return uint32(b)&(1<<(emptyOffset+i)) != 0
}

func (b BitBoard) Status() Status {
	st := uint32(b) >> statusOffset
	if st > uint32(Tied) {
		panic(fmt.Sprintf("corrupt board status bits %05b", st))
	}
	return Status(st)
}

func (b BitBoard) withStatus(st Status) BitBoard {
	return BitBoard(uint32(b)&^statusMask | uint32(st)<<statusOffset)
}

// settle recomputes the status from occupancy.
func (b BitBoard) settle() BitBoard {
	switch {
	case b.WonBy(X):
		return b.withStatus(Won)
	case b.WonBy(O):
		return b.withStatus(Lost)
	case !b.possibleToWin():
		return b.withStatus(Tied)
	default:
		return b.withStatus(Undecided)
	}
}

// place puts side on cell i and settles the status. The caller checks the cell is empty.
func (b BitBoard) place(i uint, side Slot) BitBoard {
	v := uint32(b) | 1<<(offset(side)+i)
	v &^= 1 << (emptyOffset + i)
	return BitBoard(v).settle()
}

// Flip swaps the X and O fields and flips the status.
func (b BitBoard) Flip() BitBoard {
	xs := uint32(b) & cellMask
	os := uint32(b) >> oOffset & cellMask
	v := uint32(b) &^ (cellMask | cellMask<<oOffset)
	v |= xs<<oOffset | os
	return BitBoard(v).withStatus(b.Status().Flip())
}

// WonBy reports whether side holds a complete line.
func (b BitBoard) WonBy(side Slot) bool {
	masks := &wonByX
	if offset(side) == oOffset {
		masks = &wonByO
	}
	for _, m := range masks {
		if uint32(b)&m == m {
			return true
		}
	}
	return false
}

// OneAways counts lines where side holds two cells and the third is empty.
func (b BitBoard) OneAways(side Slot) int {
	masks := &oneAwayX
	if offset(side) == oOffset {
		masks = &oneAwayO
	}
	n := 0
	for _, m := range masks {
		if uint32(b)&m == m {
			n++
		}
	}
	return n
}

// Corners counts the corner cells held by side.
func (b BitBoard) Corners(side Slot) int {
	return bits.OnesCount32(uint32(b) & (cornerMask << offset(side)))
}

// possibleToWin reports whether some line can still be completed by either side.
func (b BitBoard) possibleToWin() bool {
	empties := uint32(b) >> emptyOffset & cellMask
	xs := uint32(b)&cellMask | empties
	os := uint32(b)>>oOffset&cellMask | empties
	for _, m := range lineMasks {
		if xs&m == m || os&m == m {
			return true
		}
	}
	return false
}

func (b BitBoard) occupied() int {
	return bits.OnesCount32(uint32(b) & (cellMask | cellMask<<oOffset))
}

func offset(side Slot) uint {
	switch side {
	case X:
		return xOffset
	case O:
		return oOffset
	default:
		panic(fmt.Sprintf("not a side: %v", side))
	}
}
