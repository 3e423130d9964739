package agent

import (
	"ultimate/experiments/metrics"
	"ultimate/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Name() string { return "random" }

func (a *randomAgent) FindMove(g game.Game, side game.Slot) (game.Move, metrics.SearchMetric) {
	return game.RandomMove(&g, a.rng), metrics.SearchMetric{}
}
