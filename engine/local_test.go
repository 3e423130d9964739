package engine

import (
	"testing"
	"ultimate/agent"
	"ultimate/experiments/metrics"
	"ultimate/game"
	"ultimate/searcher"

	"github.com/stretchr/testify/require"
)

// stubbornAgent always answers with a move that is never legal.
type stubbornAgent struct{}

func (stubbornAgent) Name() string { return "stubborn" }

func (stubbornAgent) FindMove(g game.Game, side game.Slot) (game.Move, metrics.SearchMetric) {
	return game.NoMove, metrics.SearchMetric{}
}

func TestLocalEngine(t *testing.T) {
	t.Run("random games end decided", func(t *testing.T) {
		for seed := uint64(0); seed < 10; seed++ {
			e := NewLocalEngine(agent.NewRandomAgent(seed), agent.NewRandomAgent(seed+100))

			status, gameMetric, moveMetrics := e.Run()

			require.NotEqual(t, game.Undecided, status)
			require.Equal(t, status.String(), gameMetric.Winner)
			require.Len(t, moveMetrics, gameMetric.TotalMoves)
			require.Equal(t, e.State.MoveCount(), gameMetric.TotalMoves)
			require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
		}
	})

	t.Run("records sides and moves in order", func(t *testing.T) {
		s := searcher.NewAlphaBeta(searcher.WithDepths(2, 2), searcher.WithMetrics())
		e := NewLocalEngine(agent.NewSearchAgent(s), agent.NewRandomAgent(3))

		_, _, moveMetrics := e.Run()

		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
			if i%2 == 0 {
				require.Equal(t, "X", m.Side)
				require.Equal(t, 2, m.Depth)
				require.Greater(t, m.Nodes, 0)
			} else {
				require.Equal(t, "O", m.Side)
				require.Zero(t, m.Nodes)
			}
		}
	})

	t.Run("continues from a given position", func(t *testing.T) {
		e := NewLocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(2))
		require.NoError(t, e.State.MakeMove(game.NewMove(4, 4), game.X))

		_, _, moveMetrics := e.Run()

		require.Equal(t, "O", moveMetrics[0].Side)
		require.Equal(t, "e", moveMetrics[0].Move[:1], "First reply is forced into the center board")
	})

	t.Run("replaces illegal moves", func(t *testing.T) {
		e := NewLocalEngine(stubbornAgent{}, agent.NewRandomAgent(4))

		status, _, moveMetrics := e.Run()

		require.NotEqual(t, game.Undecided, status)
		require.Equal(t, "a1", moveMetrics[0].Move)
	})

	t.Run("stops when the active board is decided", func(t *testing.T) {
		e := NewLocalEngine(stubbornAgent{}, agent.NewRandomAgent(5))
		won := game.FromSlots([9]game.Slot{game.X, game.X, game.X, game.Empty, game.Empty, game.Empty, game.Empty, game.Empty, game.Empty})
		e.State.Boards[0] = won
		e.State.Active = 0

		var status game.Status
		var moveMetrics []metrics.MoveMetric
		require.NotPanics(t, func() { status, _, moveMetrics = e.Run() })

		require.Equal(t, game.Undecided, status)
		require.Empty(t, moveMetrics)
	})

	t.Run("requires both agents", func(t *testing.T) {
		require.Panics(t, func() { NewLocalEngine(agent.NewRandomAgent(1), nil) })
	})
}
