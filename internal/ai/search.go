package ai

import (
	"errors"
	"math"

	"github.com/notnil/chess"

	"chesscoach/internal/rules"
)

// ErrNoLegalMoves is returned when a move is requested on a position with
// no legal moves. Callers check game-over state first, so hitting it
// indicates an internal invariant violation.
var ErrNoLegalMoves = errors.New("no legal moves available")

// ScoredMove pairs a move with its centipawn score from the mover's
// perspective.
type ScoredMove struct {
	Move  *chess.Move
	Score int
}

// BestMove runs a depth-bounded negamax search with alpha-beta pruning and
// returns the strongest move found. Deterministic for a fixed position and
// depth.
func BestMove(pos *chess.Position, depth int) (ScoredMove, error) {
	alpha, beta := math.MinInt32, math.MaxInt32
	best := ScoredMove{Score: math.MinInt32}

	for _, mv := range orderMoves(pos, rules.LegalMoves(pos)) {
		score := -negamax(pos.Update(mv), depth-1, -beta, -alpha)
		// The first move examined is provisionally best so a move is
		// always returned when one exists.
		if best.Move == nil || score > best.Score {
			best = ScoredMove{Move: mv, Score: score}
		}
		if score > alpha {
			alpha = score
		}
	}
	if best.Move == nil {
		return ScoredMove{}, ErrNoLegalMoves
	}
	return best, nil
}

func negamax(pos *chess.Position, depth, alpha, beta int) int {
	if depth == 0 || rules.StatusOf(pos).GameOver() {
		return Evaluate(pos)
	}

	maxEval := math.MinInt32
	for _, mv := range orderMoves(pos, rules.LegalMoves(pos)) {
		score := -negamax(pos.Update(mv), depth-1, -beta, -alpha)
		if score > maxEval {
			maxEval = score
		}
		if maxEval > alpha {
			alpha = maxEval
		}
		if alpha >= beta {
			break
		}
	}
	return maxEval
}
