package searcher

import (
	"cmp"
	"fmt"
	"math"
	"ultimate/experiments/metrics"
	"ultimate/game"
	"ultimate/table"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

type Option func(a *AlphaBeta)

// AlphaBeta is a depth-bounded minimax search with alpha-beta pruning. A
// single AlphaBeta must not run two searches at once; Rank parallelizes
// internally.
type AlphaBeta struct {
	earlyDepth    int
	lateDepth     int
	lateGame      int
	orderingDepth int
	evaluate      game.Evaluate
	zobrist       *table.Zobrist
	metrics       metrics.Collector
	logger        zerolog.Logger
	last          metrics.SearchMetric
}

func WithDepths(early, late int) Option {
	return func(a *AlphaBeta) {
		if early > 0 {
			a.earlyDepth = early
		}
		if late > 0 {
			a.lateDepth = late
		}
	}
}

func WithLateGame(moves int) Option {
	return func(a *AlphaBeta) {
		if moves >= 0 {
			a.lateGame = moves
		}
	}
}

func WithOrderingDepth(depth int) Option {
	return func(a *AlphaBeta) {
		a.orderingDepth = depth
	}
}

// WithTable memoizes static scores in a transposition table. Each search
// gets a fresh table hashed with z.
func WithTable(z *table.Zobrist) Option {
	return func(a *AlphaBeta) {
		a.zobrist = z
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(a *AlphaBeta) {
		if evaluate != nil {
			a.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(a *AlphaBeta) {
		a.logger = logger
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		earlyDepth:    EarlyDepth,
		lateDepth:     LateDepth,
		lateGame:      LateGameMoves,
		orderingDepth: OrderingDepth,
		evaluate:      game.ScoreGame,
		metrics:       metrics.NewDummyCollector(),
		logger:        zerolog.Nop(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// MaxDepth returns the ply budget for a search from g.
func (a *AlphaBeta) MaxDepth(g *game.Game) int {
	if g.MoveCount() >= a.lateGame {
		return a.lateDepth
	}
	return a.earlyDepth
}

// LastMetric returns the metrics of the most recent Search or Rank. Only the
// score is recorded unless the searcher was built WithMetrics.
func (a *AlphaBeta) LastMetric() metrics.SearchMetric {
	return a.last
}

// Search returns the minimax score of g for X and the move that achieves it.
// Equal scores keep the first move tried. The move is game.NoMove when g is
// already decided.
func (a *AlphaBeta) Search(g game.Game) (int, game.Move) {
	maxDepth := a.MaxDepth(&g)
	a.metrics.Start(maxDepth)

	s := a.newSearch()
	score, move := s.alphaBeta(g, 0, maxDepth, math.MinInt, math.MaxInt, true)

	a.last = a.metrics.Complete()
	a.last.Score = score
	a.logger.Debug().
		Int("depth", maxDepth).
		Int("score", score).
		Stringer("move", move).
		Int("nodes", a.last.Nodes).
		Int("cutoffs", a.last.Cutoffs).
		Dur("duration", a.last.Duration).
		Msg("search complete")
	return score, move
}

// search is the state of one search call: the shared configuration plus an
// optional memo of static scores.
type search struct {
	*AlphaBeta
	memo *table.Table
}

func (a *AlphaBeta) newSearch() *search {
	s := &search{AlphaBeta: a}
	if a.zobrist != nil {
		s.memo = table.New(a.zobrist)
	}
	return s
}

type child struct {
	move  game.Move
	game  game.Game
	score int
}

func (s *search) alphaBeta(g game.Game, depth, maxDepth, alpha, beta int, maximizing bool) (int, game.Move) {
	s.metrics.AddNode()

	turn := sideOf(maximizing)
	if depth >= maxDepth || g.Status != game.Undecided {
		return s.static(&g, turn), game.NoMove
	}

	children := s.expand(&g, depth, turn, maximizing)
	if len(children) == 0 {
		return s.static(&g, turn), game.NoMove
	}

	bestMove := game.NoMove
	if maximizing {
		best := math.MinInt
		for _, c := range children {
			score, _ := s.alphaBeta(c.game, nextDepth(depth, &c.game, true), maxDepth, alpha, beta, false)
			if score > best {
				best, bestMove = score, c.move
			}
			alpha = max(alpha, best)
			if best >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
		return best, bestMove
	}

	best := math.MaxInt
	for _, c := range children {
		score, _ := s.alphaBeta(c.game, nextDepth(depth, &c.game, false), maxDepth, alpha, beta, true)
		if score < best {
			best, bestMove = score, c.move
		}
		beta = min(beta, best)
		if best <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return best, bestMove
}

// expand plays every legal move of turn. Near the root the children are sorted
// best first for the mover, since pruning depends on trying good moves early.
func (s *search) expand(g *game.Game, depth int, turn game.Slot, maximizing bool) []child {
	moves := game.LegalMoves(g)
	children := make([]child, 0, len(moves))
	for _, m := range moves {
		next, err := g.SimMove(m, turn)
		if err != nil {
			panic(fmt.Sprintf("generated illegal move %s: %v", m, err))
		}
		children = append(children, child{move: m, game: next})
	}

	if depth > s.orderingDepth {
		return children
	}

	for i := range children {
		children[i].score = s.static(&children[i].game, turn.Opponent())
	}
	slices.SortStableFunc(children, func(a, b child) int {
		if maximizing {
			return cmp.Compare(b.score, a.score)
		}
		return cmp.Compare(a.score, b.score)
	})
	return children
}

func (s *search) static(g *game.Game, turn game.Slot) int {
	if s.memo == nil {
		return s.evaluate(g, turn)
	}

	v, hit := s.memo.GetOrInsert(*g, turn, s.evaluate)
	s.metrics.AddProbe(hit)
	return v
}

// nextDepth charges one ply per move, plus an extension when the move leaves
// the opponent a free choice of board.
func nextDepth(depth int, child *game.Game, maximizing bool) int {
	depth++
	if child.Active == game.FreeChoice {
		if maximizing {
			depth += FreeChoiceMaxExtension
		} else {
			depth += FreeChoiceMinExtension
		}
	}
	return depth
}

func sideOf(maximizing bool) game.Slot {
	if maximizing {
		return game.X
	}
	return game.O
}
