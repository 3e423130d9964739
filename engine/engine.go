package engine

import (
	"ultimate/experiments/metrics"
	"ultimate/game"
)

// MaxMoves is the number of cells, so no game can last longer.
const MaxMoves = 81

type Engine interface {
	// Run plays the game till the meta board is decided
	Run() (status game.Status, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
