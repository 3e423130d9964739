package game

import "golang.org/x/exp/rand"

// RandomMove picks a legal move uniformly, or NoMove once the game is decided.
func RandomMove(g *Game, r *rand.Rand) Move {
	if g.Status != Undecided {
		return NoMove
	}
	moves := LegalMoves(g)
	if len(moves) == 0 {
		return NoMove
	}
	return moves[r.Intn(len(moves))]
}

// Playout plays up to plies random moves from g, starting with the side to
// move, and stops early if the game is decided.
func Playout(g Game, r *rand.Rand, plies int) Game {
	side := g.SideToMove()
	for i := 0; i < plies; i++ {
		m := RandomMove(&g, r)
		if m == NoMove {
			break
		}
		if err := g.MakeMove(m, side); err != nil {
			panic(err)
		}
		side = side.Opponent()
	}
	return g
}
