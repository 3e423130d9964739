package main

import (
	"flag"
	"os"
	"time"
	"ultimate/experiments"
	"ultimate/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	depth := flag.Int("depth", searcher.EarlyDepth, "Search depth before the late game")
	lateDepth := flag.Int("late-depth", searcher.LateDepth, "Search depth once the late game starts")
	opponent := flag.String("opponent", "random", "Opponent of the search engine: random or engine")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed of the random opponent")
	useTable := flag.Bool("table", false, "Memoize static scores in a transposition table")
	randomTies := flag.Bool("random-ties", false, "Pick randomly among equally scored moves")
	games := flag.Int("games", 1, "Number of games, alternating sides")
	metricsDir := flag.String("metrics-dir", "", "Write game and move records as CSV under this directory")
	debug := flag.Bool("debug", false, "Log every search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	engine := experiments.AgentConfig{
		Depth:      *depth,
		LateDepth:  *lateDepth,
		Table:      *useTable,
		RandomTies: *randomTies,
	}

	var other experiments.AgentConfig
	switch *opponent {
	case "random":
		other = experiments.AgentConfig{Random: true, Seed: *seed}
	case "engine":
		other = engine
	default:
		log.Fatal().Msgf("unknown opponent %q, want random or engine", *opponent)
	}

	tally, err := experiments.RunMatch(engine, other, *games, *metricsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("match failed")
	}
	log.Info().Msgf("engine won %d, %s won %d, tied %d", tally.FirstWins, *opponent, tally.SecondWins, tally.Ties)
}
