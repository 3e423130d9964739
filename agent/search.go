package agent

import (
	"ultimate/experiments/metrics"
	"ultimate/game"
	"ultimate/searcher"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

type Option func(a *searchAgent)

// WithRandomTies picks uniformly among the root moves sharing the best score
// instead of the first one generated.
func WithRandomTies() Option {
	return func(a *searchAgent) {
		a.randomTies = true
	}
}

type searchAgent struct {
	searcher   *searcher.AlphaBeta
	randomTies bool
}

// NewSearchAgent returns an agent that plays the alpha-beta search's choice.
func NewSearchAgent(s *searcher.AlphaBeta, options ...Option) Agent {
	a := &searchAgent{searcher: s}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *searchAgent) Name() string {
	if a.randomTies {
		return "alphabeta-random-ties"
	}
	return "alphabeta"
}

func (a *searchAgent) FindMove(g game.Game, side game.Slot) (game.Move, metrics.SearchMetric) {
	// The search always maximizes for X
	if side == game.O {
		g = g.Mirror()
	}

	if a.randomTies {
		candidates, err := a.searcher.Rank(g)
		if err == nil && len(candidates) > 0 {
			best := searcher.Best(candidates)
			return best[frand.Intn(len(best))].Move, a.searcher.LastMetric()
		}
		if err != nil {
			log.Warn().Err(err).Msg("failed to rank root moves, falling back to search")
		}
	}

	_, move := a.searcher.Search(g)
	return move, a.searcher.LastMetric()
}
