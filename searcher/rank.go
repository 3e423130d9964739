package searcher

import (
	"cmp"
	"fmt"
	"math"
	"runtime"
	"ultimate/game"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Rank scores every legal root move of g with a full window, best for X
// first. Moves with equal scores stay in generation order. The top score
// equals the one Search returns.
func (a *AlphaBeta) Rank(g game.Game) ([]Candidate, error) {
	maxDepth := a.MaxDepth(&g)
	a.metrics.Start(maxDepth)

	moves := game.LegalMoves(&g)
	if g.Status != game.Undecided {
		moves = nil
	}
	candidates := lo.Map(moves, func(m game.Move, _ int) Candidate {
		return Candidate{Move: m}
	})

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for i := range candidates {
		i := i
		group.Go(func() error {
			child, err := g.SimMove(candidates[i].Move, game.X)
			if err != nil {
				return fmt.Errorf("failed to play root move %s: %w", candidates[i].Move, err)
			}
			// Tables are not shared between goroutines
			s := a.newSearch()
			candidates[i].Score, _ = s.alphaBeta(child, nextDepth(0, &child, true), maxDepth, math.MinInt, math.MaxInt, false)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(candidates, func(x, y Candidate) int {
		return cmp.Compare(y.Score, x.Score)
	})

	a.last = a.metrics.Complete()
	if len(candidates) > 0 {
		a.last.Score = candidates[0].Score
	}
	a.logger.Debug().
		Int("depth", maxDepth).
		Int("candidates", len(candidates)).
		Int("nodes", a.last.Nodes).
		Dur("duration", a.last.Duration).
		Msg("rank complete")
	return candidates, nil
}

// Best returns the candidates sharing the top score.
func Best(candidates []Candidate) []Candidate {
	if len(candidates) == 0 {
		return nil
	}
	top := candidates[0].Score
	return lo.Filter(candidates, func(c Candidate, _ int) bool {
		return c.Score == top
	})
}
