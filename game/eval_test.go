package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestScore(t *testing.T) {
	t.Run("decided boards dominate", func(t *testing.T) {
		require.Equal(t, WinScore, Score(wonX, X))
		require.Equal(t, WinScore, Score(wonX, O))
		require.Equal(t, -WinScore, Score(wonO, X))
	})

	t.Run("empty board is neutral", func(t *testing.T) {
		require.Equal(t, 0, Score(NewBitBoard(), X))
		require.Equal(t, 0, Score(NewBitBoard(), O))
	})

	t.Run("threats weigh more for the side to move", func(t *testing.T) {
		xThreat := FromSlots([9]Slot{X, X, E, E, E, E, E, E, E})
		oThreat := FromSlots([9]Slot{O, O, E, E, E, E, E, E, E})

		// one corner plus one open two
		require.Equal(t, 1+6, Score(xThreat, X))
		require.Equal(t, 1+3, Score(xThreat, O))
		require.Equal(t, -1-3, Score(oThreat, X))
		require.Equal(t, -1-6, Score(oThreat, O))
	})

	t.Run("corners count for their owner", func(t *testing.T) {
		b := FromSlots([9]Slot{X, E, E, E, O, E, E, E, X})

		require.Equal(t, 2, Score(b, X))
	})
}

func TestScoreGame(t *testing.T) {
	t.Run("fresh game is neutral", func(t *testing.T) {
		g := New()

		require.Equal(t, 0, ScoreGame(&g, X))
		require.Equal(t, 0, ScoreGame(&g, O))
	})

	t.Run("won board feeds meta, board and bonus terms", func(t *testing.T) {
		g := NewFromBoards(boardsWith(map[int]BitBoard{0: wonX}), 4)

		// meta: one corner (1) x100, board: 10000/4, bonus: 100
		require.Equal(t, 100+2500+100, ScoreGame(&g, X))
		require.Equal(t, 100+2500+100, ScoreGame(&g, O))
	})

	t.Run("free choice favours the side to move", func(t *testing.T) {
		g := NewFromBoards(boardsWith(map[int]BitBoard{0: wonX}), FreeChoice)

		require.Equal(t, 2700+900, ScoreGame(&g, X))
		require.Equal(t, 2700-900, ScoreGame(&g, O))
	})

	t.Run("decided game reaches the win magnitude", func(t *testing.T) {
		g := NewFromBoards(boardsWith(map[int]BitBoard{0: wonO, 1: wonO, 2: wonO}), FreeChoice)

		require.Equal(t, Lost, g.Status)
		require.LessOrEqual(t, ScoreGame(&g, X), -WinScore)
	})

	t.Run("mirroring negates the score for the other side", func(t *testing.T) {
		r := rand.New(rand.NewSource(5))
		for i := 0; i < 200; i++ {
			g := Playout(New(), r, r.Intn(81))
			m := g.Mirror()

			require.Equal(t, -ScoreGame(&g, X), ScoreGame(&m, O))
			require.Equal(t, -ScoreGame(&g, O), ScoreGame(&m, X))
		}
	})
}
