package searcher

import "ultimate/game"

// Searcher picks moves for X, the side maximizing at the root. Callers playing
// O search the mirrored game.
type Searcher interface {
	Search(g game.Game) (int, game.Move)
	Rank(g game.Game) ([]Candidate, error)
}

// Candidate is a root move with its full-window minimax score.
type Candidate struct {
	Move  game.Move
	Score int
}
