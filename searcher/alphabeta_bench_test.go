package searcher

import (
	"testing"
	"ultimate/game"
	"ultimate/table"

	"golang.org/x/exp/rand"
)

func BenchmarkSearch(b *testing.B) {
	g := game.Playout(game.New(), rand.New(rand.NewSource(41)), 10)
	if g.Status != game.Undecided {
		b.Fatalf("benchmark position is already decided: %s", g.Status)
	}

	cases := map[string]*AlphaBeta{
		"plain": NewAlphaBeta(WithDepths(6, 6)),
		"table": NewAlphaBeta(WithDepths(6, 6), WithTable(table.NewZobrist(table.DefaultSeed))),
	}
	for _, name := range []string{"plain", "table"} {
		a := cases[name]
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				a.Search(g)
			}
		})
	}
}
