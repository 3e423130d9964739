package engine

import (
	"fmt"
	"time"
	"ultimate/agent"
	"ultimate/experiments/metrics"
	"ultimate/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	ID     uuid.UUID
	State  game.Game
	agents [2]agent.Agent // X, O
}

// NewLocalEngine sets up a new game between x and o. State may be replaced
// before Run to start from another position.
func NewLocalEngine(x, o agent.Agent) *LocalEngine {
	if x == nil || o == nil {
		panic("need an agent for each side")
	}
	return &LocalEngine{
		ID:     uuid.New(),
		State:  game.New(),
		agents: [2]agent.Agent{x, o},
	}
}

func (e *LocalEngine) agentFor(side game.Slot) agent.Agent {
	if side == game.O {
		return e.agents[1]
	}
	return e.agents[0]
}

// Run executes the entire game loop until the game is decided, or until the
// side to move has no legal move, in which case the status stays Undecided.
func (e *LocalEngine) Run() (game.Status, metrics.GameMetric, []metrics.MoveMetric) {
	logger := log.With().Str("game", e.ID.String()).Logger()
	startTime := time.Now()
	side := e.State.SideToMove()

	logger.Info().Msgf("%s (X) vs %s (O), %s to move", e.agents[0].Name(), e.agents[1].Name(), side)

	var moveMetrics []metrics.MoveMetric
	for step := 1; e.State.Status == game.Undecided; step++ {
		if step > MaxMoves {
			panic(fmt.Sprintf("game %s still undecided after %d moves", e.ID, MaxMoves))
		}

		a := e.agentFor(side)
		move, metric := a.FindMove(e.State, side)
		if err := e.State.MakeMove(move, side); err != nil {
			legal := game.LegalMoves(&e.State)
			if len(legal) == 0 {
				logger.Error().Err(err).Msgf("%s has no legal move in board %d, stopping", side, e.State.Active)
				break
			}
			logger.Warn().Err(err).Msgf("%s returned illegal move %s, playing %s instead", a.Name(), move, legal[0])
			move = legal[0]
			if err := e.State.MakeMove(move, side); err != nil {
				panic(fmt.Sprintf("first legal move %s rejected: %v", move, err))
			}
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Side:         side.String(),
			Move:         move.String(),
			SearchMetric: metric,
		})
		logger.Info().Msgf("move %d: %s plays %s (score %d, %d nodes)", step, side, move, metric.Score, metric.Nodes)

		side = side.Opponent()
	}

	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		Winner:     e.State.Status.String(),
		StartTime:  startTime,
		EndTime:    endTime,
		Duration:   endTime.Sub(startTime),
		TotalMoves: len(moveMetrics),
	}
	logger.Info().Msgf("game over after %d moves: X %s", len(moveMetrics), e.State.Status)

	return e.State.Status, gameMetric, moveMetrics
}
