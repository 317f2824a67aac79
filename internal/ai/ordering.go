package ai

import (
	"sort"

	"github.com/notnil/chess"

	"chesscoach/internal/rules"
)

// OrderScore assigns a heuristic priority to a legal move: captures by
// victim value, then checks, castling, and center occupation. Higher sorts
// first. Used both for alpha-beta move ordering and to bias the beginner
// policy toward reasonable-looking moves.
func OrderScore(pos *chess.Position, mv *chess.Move) int {
	score := 0
	if rules.IsCapture(pos, mv) {
		// En passant leaves the destination square empty, so it gets the
		// capture flag but no victim bonus.
		if victim := pos.Board().Piece(mv.S2()); victim != chess.NoPiece {
			score += 10 * pieceValues[victim.Type()]
		}
	}
	if rules.GivesCheck(pos, mv) {
		score += 80
	}
	if rules.IsCastle(mv) {
		score += 40
	}
	if isCenterSquare(mv.S2()) {
		score += 25
	}
	return score
}

// orderMoves sorts moves by descending priority, keeping generation order
// among ties.
func orderMoves(pos *chess.Position, moves []*chess.Move) []*chess.Move {
	scores := make([]int, len(moves))
	for i, mv := range moves {
		scores[i] = OrderScore(pos, mv)
	}
	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })
	ordered := make([]*chess.Move, len(moves))
	for i, j := range idx {
		ordered[i] = moves[j]
	}
	return ordered
}
