package game

// Weights of the static evaluation. They are tuned by play, not derived, and
// changing any of them changes how the engine plays.
const (
	WinScore = 10_000

	metaWeight        = 100
	boardDivisor      = 4
	decidedBonus      = 100
	freeChoiceDivisor = 3

	cornerWeight      = 1
	moverThreatWeight = 6
	otherThreatWeight = 3
)

// Score rates a single board for X, given whose turn it is.
func Score(b BitBoard, turn Slot) int {
	if b.WonBy(X) {
		return WinScore
	}
	if b.WonBy(O) {
		return -WinScore
	}

	score := cornerWeight * (b.Corners(X) - b.Corners(O))

	// Threats of the side to move weigh double
	if turn == X {
		score += moverThreatWeight*b.OneAways(X) - otherThreatWeight*b.OneAways(O)
	} else {
		score += otherThreatWeight*b.OneAways(X) - moverThreatWeight*b.OneAways(O)
	}
	return score
}

// ScoreGame rates the whole game for X, given whose turn it is.
func ScoreGame(g *Game, turn Slot) int {
	score := metaWeight * Score(g.Shrink(), turn)

	for _, b := range g.Boards {
		score += Score(b, turn) / boardDivisor

		switch b.Status() {
		case Won:
			score += decidedBonus
		case Lost:
			score -= decidedBonus
		}
	}

	// A free choice is worth a third more to the side holding it.
	if g.Active == FreeChoice {
		if turn == X {
			score += abs(score) / freeChoiceDivisor
		} else {
			score -= abs(score) / freeChoiceDivisor
		}
	}
	return score
}

// ScoreGame satisfies Evaluate.
var _ Evaluate = ScoreGame

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
