// Package engine picks moves by searching a bounded-depth game tree with
// alpha-beta pruning and scoring the leaves with a static evaluator.
package engine

import (
	"math"

	"github.com/notnil/chess"
)

// Stats carries instrumentation from a single FindBestMove call.
type Stats struct {
	// Leaves counts the positions statically evaluated across the whole
	// invocation, summed over every root move's sub-tree.
	Leaves int64
}

// alphaBeta returns the extremal score reachable from pos within depth
// plies. The window (alpha, beta) uses a fail-hard cutoff: once beta <=
// alpha the remaining sibling moves are skipped and the best value so far
// is returned. Every evaluated leaf bumps *leaves by one.
func alphaBeta(pos *chess.Position, depth int, maximizing bool, alpha, beta int64, leaves *int64) int64 {
	if depth == 0 || pos.Status() != chess.NoMethod {
		*leaves++
		return Evaluate(pos)
	}

	if maximizing {
		best := int64(math.MinInt64)
		for _, move := range pos.ValidMoves() {
			value := alphaBeta(pos.Update(move), depth-1, false, alpha, beta, leaves)
			best = max(best, value)
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := int64(math.MaxInt64)
	for _, move := range pos.ValidMoves() {
		value := alphaBeta(pos.Update(move), depth-1, true, alpha, beta, leaves)
		best = min(best, value)
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// FindBestMove searches every legal move at pos to the given ply depth and
// returns the one whose sub-tree scores best for the side to move: Black
// picks the largest value, White the smallest, ties keeping the move that
// was enumerated first. Each root move is searched with its own full
// (min, max) window. The returned move is nil when the position has no
// legal moves.
func FindBestMove(pos *chess.Position, depth int) (*chess.Move, Stats) {
	blackToMove := pos.Turn() == chess.Black

	var bestValue int64
	var better func(x, y int64) bool
	if blackToMove {
		bestValue = math.MinInt64
		better = func(x, y int64) bool { return x > y }
	} else {
		bestValue = math.MaxInt64
		better = func(x, y int64) bool { return x < y }
	}

	var stats Stats
	var bestMove *chess.Move
	for _, move := range pos.ValidMoves() {
		value := alphaBeta(pos.Update(move), depth, blackToMove, math.MinInt64, math.MaxInt64, &stats.Leaves)
		if better(value, bestValue) {
			bestValue = value
			bestMove = move
		}
	}
	return bestMove, stats
}
