package ai

import (
	"github.com/notnil/chess"

	"chesscoach/internal/rules"
)

// IsSafe is a 1-ply safety heuristic: a move is unsafe if it results in a
// check or parks the moved piece on a square the opponent attacks. Deeper
// tactics (pins, deflections) are out of scope for the audience this
// trainer targets.
func IsSafe(pos *chess.Position, mv *chess.Move) bool {
	next := pos.Update(mv)
	if rules.InCheck(next) {
		return false
	}
	return !rules.IsAttacked(next.Board(), mv.S2(), next.Turn())
}
