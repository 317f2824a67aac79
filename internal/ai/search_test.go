package ai

import (
	"math"
	"testing"

	"github.com/notnil/chess"

	"chesscoach/internal/rules"
)

// plainNegamax is a full-width reference search with no pruning. Alpha-beta
// must agree with it on the root score.
func plainNegamax(pos *chess.Position, depth int) int {
	if depth == 0 || rules.StatusOf(pos).GameOver() {
		return Evaluate(pos)
	}
	best := math.MinInt32
	for _, mv := range rules.LegalMoves(pos) {
		if score := -plainNegamax(pos.Update(mv), depth-1); score > best {
			best = score
		}
	}
	return best
}

func TestBestMoveMatchesFullWidthSearch(t *testing.T) {
	fens := []string{
		startFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"k7/8/2p5/8/3Q4/8/8/K7 w - - 0 1",
	}
	for _, fen := range fens {
		pos := mustParse(t, fen)
		best, err := BestMove(pos, 2)
		if err != nil {
			t.Fatalf("BestMove(%q): %v", fen, err)
		}
		if want := plainNegamax(pos, 2); best.Score != want {
			t.Errorf("%q: pruned score %d, full-width score %d", fen, best.Score, want)
		}
	}
}

func TestBestMoveIsDeterministic(t *testing.T) {
	pos := mustParse(t, "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	first, err := BestMove(pos, 3)
	if err != nil {
		t.Fatal(err)
	}
	second, err := BestMove(pos, 3)
	if err != nil {
		t.Fatal(err)
	}
	if first.Move.String() != second.Move.String() || first.Score != second.Score {
		t.Fatalf("repeated search diverged: %v/%d vs %v/%d",
			first.Move, first.Score, second.Move, second.Score)
	}
}

func TestBestMoveFindsBackRankMate(t *testing.T) {
	pos := mustParse(t, backRankFEN)
	for depth := 1; depth <= 3; depth++ {
		best, err := BestMove(pos, depth)
		if err != nil {
			t.Fatalf("depth %d: %v", depth, err)
		}
		if got := best.Move.String(); got != "d1d8" {
			t.Errorf("depth %d: best move = %s, want d1d8", depth, got)
		}
		if best.Score != CheckmateScore {
			t.Errorf("depth %d: score = %d, want %d", depth, best.Score, CheckmateScore)
		}
	}
}

func TestBestMoveNoLegalMoves(t *testing.T) {
	pos := mustParse(t, foolsMateFEN)
	if _, err := BestMove(pos, 2); err != ErrNoLegalMoves {
		t.Fatalf("expected ErrNoLegalMoves on a finished game, got %v", err)
	}
}
