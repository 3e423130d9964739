package experiments

import (
	"os"
	"path/filepath"
	"testing"
	"ultimate/game"

	"github.com/stretchr/testify/require"
)

func TestRunMatch(t *testing.T) {
	t.Run("plays every game and stores the records", func(t *testing.T) {
		dir := t.TempDir()
		first := AgentConfig{Random: true, Seed: 1}
		second := AgentConfig{Random: true, Seed: 2}

		tally, err := RunMatch(first, second, 4, dir)
		require.NoError(t, err)
		require.Equal(t, 4, tally.FirstWins+tally.SecondWins+tally.Ties)

		runs, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		for _, name := range []string{"game_records.csv", "move_records.csv"} {
			_, err := os.Stat(filepath.Join(dir, runs[0].Name(), name))
			require.NoError(t, err)
		}
	})

	t.Run("skips storage without a directory", func(t *testing.T) {
		first := AgentConfig{Depth: 2, LateDepth: 2, Table: true}
		second := AgentConfig{Random: true, Seed: 3}

		tally, err := RunMatch(first, second, 2, "")
		require.NoError(t, err)
		require.Equal(t, 2, tally.FirstWins+tally.SecondWins+tally.Ties)
	})
}

func TestTally(t *testing.T) {
	var tally Tally
	tally.add(game.Won, false)
	tally.add(game.Won, true)
	tally.add(game.Lost, true)
	tally.add(game.Tied, false)

	require.Equal(t, Tally{FirstWins: 2, SecondWins: 1, Ties: 1}, tally)
	require.Panics(t, func() { tally.add(game.Undecided, false) })
}

func TestAgentConfig(t *testing.T) {
	require.Equal(t, "random", AgentConfig{Random: true}.NewAgent().Name())
	require.Equal(t, "alphabeta", AgentConfig{}.NewAgent().Name())
	require.Equal(t, "alphabeta-random-ties", AgentConfig{RandomTies: true}.NewAgent().Name())
}
