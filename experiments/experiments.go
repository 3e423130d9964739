package experiments

import (
	"fmt"
	"ultimate/agent"
	"ultimate/engine"
	"ultimate/experiments/metrics"
	"ultimate/game"
	"ultimate/searcher"
	"ultimate/table"

	"github.com/rs/zerolog/log"
)

type AgentConfig struct {
	Random     bool   // play uniformly random moves instead of searching
	Seed       uint64 // random agent seed
	Depth      int    // 0 keeps the searcher's default
	LateDepth  int
	Table      bool
	RandomTies bool
}

func (c AgentConfig) String() string {
	if c.Random {
		return fmt.Sprintf("random(seed=%d)", c.Seed)
	}
	return fmt.Sprintf("alphabeta(depth=%d/%d table=%t random_ties=%t)", c.Depth, c.LateDepth, c.Table, c.RandomTies)
}

// NewAgent builds the agent c describes.
func (c AgentConfig) NewAgent() agent.Agent {
	if c.Random {
		return agent.NewRandomAgent(c.Seed)
	}

	options := []searcher.Option{
		searcher.WithDepths(c.Depth, c.LateDepth),
		searcher.WithMetrics(),
		searcher.WithLogger(log.With().Str("component", "searcher").Logger()),
	}
	if c.Table {
		options = append(options, searcher.WithTable(table.NewZobrist(table.DefaultSeed)))
	}

	var agentOptions []agent.Option
	if c.RandomTies {
		agentOptions = append(agentOptions, agent.WithRandomTies())
	}
	return agent.NewSearchAgent(searcher.NewAlphaBeta(options...), agentOptions...)
}

// Tally counts outcomes per agent config across sides.
type Tally struct {
	FirstWins  int // games won by the first config
	SecondWins int
	Ties       int
}

// RunMatch plays games between first and second, alternating who plays X,
// and writes the records under dir unless it is empty.
func RunMatch(first, second AgentConfig, games int, dir string) (Tally, error) {
	var tally Tally
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting match of %d games between %s and %s...", games, first, second)

	for i := 0; i < games; i++ {
		x, o := first, second
		if i%2 == 1 {
			x, o = second, first
		}

		e := engine.NewLocalEngine(x.NewAgent(), o.NewAgent())
		status, gameMetric, moveMetrics := e.Run()

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         e.ID,
			XAgent:     x.String(),
			OAgent:     o.String(),
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       e.ID,
				MoveMetric: mm,
			})
		}

		tally.add(status, i%2 == 1)
		log.Info().Msgf("completed game %d of %d: X %s", i+1, games, status)
	}

	log.Info().Msgf("completed match: %+v", tally)

	if dir == "" {
		return tally, nil
	}
	return tally, store(dir, gameRecords, moveRecords)
}

func (t *Tally) add(status game.Status, swapped bool) {
	switch status {
	case game.Tied:
		t.Ties++
	case game.Won, game.Lost:
		firstWon := status == game.Won
		if swapped {
			firstWon = !firstWon
		}
		if firstWon {
			t.FirstWins++
		} else {
			t.SecondWins++
		}
	default:
		panic(fmt.Sprintf("game ended %s", status))
	}
}

func store(dir string, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteGameRecords(games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
