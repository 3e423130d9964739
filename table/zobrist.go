package table

import (
	"math/bits"
	"ultimate/game"

	"golang.org/x/exp/rand"
)

// DefaultSeed makes hashes reproducible across runs.
const DefaultSeed uint64 = 0x9E3779B97F4A7C15

// Zobrist holds one random key per (board, cell, side), one per active value
// and one for O to move. A position's hash is the XOR of the keys it contains,
// so it does not depend on the order the moves were played in.
type Zobrist struct {
	cells  [9][9][2]uint64
	active [game.FreeChoice + 1]uint64
	side   uint64
}

func NewZobrist(seed uint64) *Zobrist {
	r := rand.New(rand.NewSource(seed))
	next := func() uint64 {
		// A zero key would make its feature invisible to the hash.
		for {
			if v := r.Uint64(); v != 0 {
				return v
			}
		}
	}

	z := &Zobrist{}
	for b := range z.cells {
		for c := range z.cells[b] {
			z.cells[b][c][0] = next()
			z.cells[b][c][1] = next()
		}
	}
	for i := range z.active {
		z.active[i] = next()
	}
	z.side = next()
	return z
}

// Hash recomputes the hash of g with turn to move.
func (z *Zobrist) Hash(g *game.Game, turn game.Slot) uint64 {
	var h uint64
	for b, board := range g.Boards {
		xs := board.Occupancy(game.X)
		for xs != 0 {
			h ^= z.cells[b][bits.TrailingZeros32(xs)][0]
			xs &= xs - 1
		}
		os := board.Occupancy(game.O)
		for os != 0 {
			h ^= z.cells[b][bits.TrailingZeros32(os)][1]
			os &= os - 1
		}
	}
	h ^= z.active[g.Active]
	if turn == game.O {
		h ^= z.side
	}
	return h
}

// Toggle adds or removes side's piece on (board, cell) from h.
func (z *Zobrist) Toggle(h uint64, board, cell uint8, side game.Slot) uint64 {
	i := 0
	if side == game.O {
		i = 1
	}
	return h ^ z.cells[board][cell][i]
}

// ToggleActive swaps the active-board key from one value to another.
func (z *Zobrist) ToggleActive(h uint64, from, to uint8) uint64 {
	return h ^ z.active[from] ^ z.active[to]
}

// ToggleSide flips the side to move.
func (z *Zobrist) ToggleSide(h uint64) uint64 {
	return h ^ z.side
}
