package searcher

// Search budget and ordering parameters

// Ply budgets before and after LateGameMoves cells have been played
const EarlyDepth = 11
const LateDepth = 13
const LateGameMoves = 30

// Children are pre-sorted by static score down to this depth only
const OrderingDepth = 8

// Extra plies charged when a move hands the opponent a free choice
const FreeChoiceMaxExtension = 2
const FreeChoiceMinExtension = 1
