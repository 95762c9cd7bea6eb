package engine

import (
	"math"
	"testing"

	"github.com/notnil/chess"
)

// plainMinimax mirrors alphaBeta with the cutoff disabled; pruning must
// never change the value found from a full window.
func plainMinimax(pos *chess.Position, depth int, maximizing bool, leaves *int64) int64 {
	if depth == 0 || pos.Status() != chess.NoMethod {
		*leaves++
		return Evaluate(pos)
	}
	if maximizing {
		best := int64(math.MinInt64)
		for _, move := range pos.ValidMoves() {
			best = max(best, plainMinimax(pos.Update(move), depth-1, false, leaves))
		}
		return best
	}
	best := int64(math.MaxInt64)
	for _, move := range pos.ValidMoves() {
		best = min(best, plainMinimax(pos.Update(move), depth-1, true, leaves))
	}
	return best
}

func TestSearchDepthZeroIsStaticEvaluation(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/k7/3p4/p2P1p2/P2P1P2/8/8/K7 w - - 0 1",
	}
	for _, fen := range fens {
		pos := positionFromFEN(t, fen)
		want := Evaluate(pos)
		for _, maximizing := range []bool{true, false} {
			var leaves int64
			got := alphaBeta(pos, 0, maximizing, math.MinInt64, math.MaxInt64, &leaves)
			if got != want {
				t.Fatalf("depth 0 search of %q returned %d, want %d", fen, got, want)
			}
			if leaves != 1 {
				t.Fatalf("depth 0 search of %q counted %d leaves, want 1", fen, leaves)
			}
		}
	}
}

func TestSearchTerminalPositionCountsOneLeaf(t *testing.T) {
	// Checkmated positions have no moves to expand, so any depth evaluates
	// the position itself.
	pos := positionFromFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	var leaves int64
	got := alphaBeta(pos, 3, true, math.MinInt64, math.MaxInt64, &leaves)
	if got != 20000 {
		t.Fatalf("terminal search returned %d, want 20000", got)
	}
	if leaves != 1 {
		t.Fatalf("terminal search counted %d leaves, want 1", leaves)
	}
}

func TestSearchPruningMatchesPlainMinimax(t *testing.T) {
	cases := []struct {
		fen      string
		maxDepth int
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 2},
		{"rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2", 2},
		{"8/k7/3p4/p2P1p2/P2P1P2/8/8/K7 w - - 0 1", 3},
	}
	for _, c := range cases {
		pos := positionFromFEN(t, c.fen)
		for depth := 1; depth <= c.maxDepth; depth++ {
			for _, maximizing := range []bool{true, false} {
				var prunedLeaves, plainLeaves int64
				pruned := alphaBeta(pos, depth, maximizing, math.MinInt64, math.MaxInt64, &prunedLeaves)
				plain := plainMinimax(pos, depth, maximizing, &plainLeaves)
				if pruned != plain {
					t.Fatalf("%q depth %d maximizing %v: pruned %d, plain %d", c.fen, depth, maximizing, pruned, plain)
				}
				if prunedLeaves > plainLeaves {
					t.Fatalf("%q depth %d maximizing %v: pruned search counted %d leaves, plain %d", c.fen, depth, maximizing, prunedLeaves, plainLeaves)
				}
			}
		}
	}
}

func TestFindBestMoveStartingPosition(t *testing.T) {
	pos := chess.StartingPosition()
	moves := pos.ValidMoves()
	if len(moves) != 20 {
		t.Fatalf("starting position has %d moves, want 20", len(moves))
	}
	move, stats := FindBestMove(pos, 1)
	if move == nil {
		t.Fatal("no move found for the starting position")
	}
	found := false
	for _, m := range moves {
		if m.String() == move.String() {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("returned move %s is not a legal opening move", move)
	}
	if stats.Leaves == 0 {
		t.Fatal("search reported zero evaluated leaves")
	}
}

func TestFindBestMoveDeterministic(t *testing.T) {
	pos := chess.StartingPosition()
	first, firstStats := FindBestMove(pos, 2)
	second, secondStats := FindBestMove(pos, 2)
	if first == nil || second == nil {
		t.Fatal("no move found for the starting position")
	}
	if first.String() != second.String() {
		t.Fatalf("repeated searches picked %s then %s", first, second)
	}
	if firstStats.Leaves != secondStats.Leaves {
		t.Fatalf("repeated searches counted %d then %d leaves", firstStats.Leaves, secondStats.Leaves)
	}
}

func TestFindBestMoveMateInOneForBlack(t *testing.T) {
	// Fool's mate setup after 1.f3 e5 2.g4, Black mates with Qh4#. The
	// mated child scores +20000, above every quiet continuation, so the
	// maximizing Black side picks it at any depth.
	pos := positionFromFEN(t, "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	for depth := 1; depth <= 2; depth++ {
		move, _ := FindBestMove(pos, depth)
		if move == nil {
			t.Fatalf("depth %d: no move found", depth)
		}
		if move.String() != "d8h4" {
			t.Fatalf("depth %d: picked %s, want d8h4", depth, move)
		}
		if got := Evaluate(pos.Update(move)); got != 20000 {
			t.Fatalf("depth %d: mating child evaluated to %d, want 20000", depth, got)
		}
	}
}

func TestFindBestMoveWhiteSkipsMateInOne(t *testing.T) {
	// Scholar's mate position with Qxf7# available for the h5 queen.
	// Ongoing positions score below -20000 because every piece on the
	// board subtracts from the total, so the minimizing White side keeps
	// playing quiet moves instead of mating.
	pos := positionFromFEN(t, "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	var mate *chess.Move
	for _, m := range pos.ValidMoves() {
		if m.String() == "h5f7" {
			mate = m
			break
		}
	}
	if mate == nil {
		t.Fatal("expected Qxf7 to be legal")
	}
	if got := Evaluate(pos.Update(mate)); got != -20000 {
		t.Fatalf("mating child evaluated to %d, want -20000", got)
	}
	move, _ := FindBestMove(pos, 1)
	if move == nil {
		t.Fatal("no move found")
	}
	if move.String() == "h5f7" {
		t.Fatal("expected the mate to score worse than a quiet move for White")
	}
	if got := Evaluate(pos.Update(move)); got >= -20000 {
		t.Fatalf("picked child evaluated to %d, want below -20000", got)
	}
}

func TestFindBestMoveSingleLegalMove(t *testing.T) {
	// White king on a1 boxed in by the rook on h2, only Kb1 is legal.
	pos := positionFromFEN(t, "8/8/8/8/8/8/7r/K6k w - - 0 1")
	if n := len(pos.ValidMoves()); n != 1 {
		t.Fatalf("position has %d moves, want 1", n)
	}
	for depth := 1; depth <= 4; depth++ {
		move, _ := FindBestMove(pos, depth)
		if move == nil || move.String() != "a1b1" {
			t.Fatalf("depth %d: picked %v, want a1b1", depth, move)
		}
	}
}

func TestFindBestMoveTerminalPositions(t *testing.T) {
	fens := []string{
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	}
	for _, fen := range fens {
		pos := positionFromFEN(t, fen)
		move, stats := FindBestMove(pos, 3)
		if move != nil {
			t.Fatalf("%q: got move %s, want none", fen, move)
		}
		if stats.Leaves != 0 {
			t.Fatalf("%q: counted %d leaves, want 0", fen, stats.Leaves)
		}
	}
}

func TestFindBestMoveLeafCountSpansRootMoves(t *testing.T) {
	// One counter runs through the entire invocation: searching each root
	// move by hand with a fresh counter and the same full window must sum
	// to the reported total.
	pos := chess.StartingPosition()
	blackToMove := pos.Turn() == chess.Black
	for depth := 1; depth <= 2; depth++ {
		_, stats := FindBestMove(pos, depth)
		var sum int64
		for _, move := range pos.ValidMoves() {
			var n int64
			alphaBeta(pos.Update(move), depth, blackToMove, math.MinInt64, math.MaxInt64, &n)
			sum += n
		}
		if stats.Leaves != sum {
			t.Fatalf("depth %d: reported %d leaves, summed %d", depth, stats.Leaves, sum)
		}
	}
}
