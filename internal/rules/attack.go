package rules

import "github.com/notnil/chess"

// Attack detection works on pseudo-legal reach: a pinned piece still attacks.
// notnil/chess keeps its attack bitboards private, so the scan is done here
// with offset tables and sliding rays.

type delta struct{ df, dr int }

var (
	knightDeltas = []delta{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas   = []delta{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	bishopRays   = []delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookRays     = []delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

func squareAt(file, rank int) (chess.Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return chess.NoSquare, false
	}
	return chess.NewSquare(chess.File(file), chess.Rank(rank)), true
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func IsAttacked(board *chess.Board, sq chess.Square, by chess.Color) bool {
	file, rank := int(sq.File()), int(sq.Rank())

	// Pawns attack one rank forward diagonally, so an attacker sits one
	// rank behind sq from its own point of view.
	pawnRank := rank - 1
	if by == chess.Black {
		pawnRank = rank + 1
	}
	for _, df := range []int{-1, 1} {
		if from, ok := squareAt(file+df, pawnRank); ok {
			if p := board.Piece(from); p.Color() == by && p.Type() == chess.Pawn {
				return true
			}
		}
	}

	for _, d := range knightDeltas {
		if from, ok := squareAt(file+d.df, rank+d.dr); ok {
			if p := board.Piece(from); p.Color() == by && p.Type() == chess.Knight {
				return true
			}
		}
	}

	for _, d := range kingDeltas {
		if from, ok := squareAt(file+d.df, rank+d.dr); ok {
			if p := board.Piece(from); p.Color() == by && p.Type() == chess.King {
				return true
			}
		}
	}

	if rayHits(board, file, rank, bishopRays, by, chess.Bishop) {
		return true
	}
	return rayHits(board, file, rank, rookRays, by, chess.Rook)
}

// rayHits walks each ray until it meets a piece and reports whether that
// piece is a slider of the given type (or a queen) of color by.
func rayHits(board *chess.Board, file, rank int, rays []delta, by chess.Color, slider chess.PieceType) bool {
	for _, d := range rays {
		for step := 1; ; step++ {
			from, ok := squareAt(file+d.df*step, rank+d.dr*step)
			if !ok {
				break
			}
			p := board.Piece(from)
			if p == chess.NoPiece {
				continue
			}
			if p.Color() == by && (p.Type() == slider || p.Type() == chess.Queen) {
				return true
			}
			break
		}
	}
	return false
}

// InCheck reports whether the side to move has its king attacked.
func InCheck(pos *chess.Position) bool {
	board := pos.Board()
	us := pos.Turn()
	for sq, p := range board.SquareMap() {
		if p.Type() == chess.King && p.Color() == us {
			return IsAttacked(board, sq, us.Other())
		}
	}
	return false
}

// InsufficientMaterial reports dead-draw material: bare kings, a lone minor
// piece, or same-colored bishops only.
func InsufficientMaterial(board *chess.Board) bool {
	minors := 0
	bishops := []chess.Square{}
	for sq, p := range board.SquareMap() {
		switch p.Type() {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Knight:
			minors++
		case chess.Bishop:
			minors++
			bishops = append(bishops, sq)
		}
	}
	if minors <= 1 {
		return true
	}
	if len(bishops) != minors {
		return false
	}
	// All minors are bishops: drawn only if they share a square color.
	shade := (int(bishops[0].File()) + int(bishops[0].Rank())) % 2
	for _, sq := range bishops[1:] {
		if (int(sq.File())+int(sq.Rank()))%2 != shade {
			return false
		}
	}
	return true
}
