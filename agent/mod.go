package agent

import (
	"ultimate/experiments/metrics"
	"ultimate/game"
)

type Agent interface {
	// FindMove returns side's next move in g and performance metrics (if collected) from the search behind it
	FindMove(g game.Game, side game.Slot) (game.Move, metrics.SearchMetric)
	Name() string
}
