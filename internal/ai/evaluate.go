package ai

import (
	"github.com/notnil/chess"

	"chesscoach/internal/rules"
)

// Evaluate scores a position in centipawns relative to the side to move
// (negamax convention). Checkmate of the side to move scores
// -CheckmateScore; stalemate and dead-draw material score 0.
//
// The mobility bonus is added unsigned after the perspective flip, so it
// always rewards whichever side is to move. The difficulty profiles were
// tuned against that behavior.
func Evaluate(pos *chess.Position) int {
	switch pos.Status() {
	case chess.Checkmate:
		return -CheckmateScore
	case chess.Stalemate:
		return 0
	}
	board := pos.Board()
	if rules.InsufficientMaterial(board) {
		return 0
	}

	pieces := board.SquareMap()
	endgame := isEndgame(pieces)

	material := 0
	positional := 0
	center := 0
	whiteBishops, blackBishops := 0, 0

	for sq, p := range pieces {
		value := pieceValues[p.Type()]
		if p.Color() == chess.White {
			material += value
			positional += pieceSquareValue(p, sq, endgame)
			if p.Type() == chess.Bishop {
				whiteBishops++
			}
			if isCenterSquare(sq) {
				center += 15
			}
		} else {
			material -= value
			positional += pieceSquareValue(p, sq, endgame)
			if p.Type() == chess.Bishop {
				blackBishops++
			}
			if isCenterSquare(sq) {
				center -= 15
			}
		}
	}

	kingSafety := 0
	cr := pos.CastleRights()
	if cr.CanCastle(chess.White, chess.KingSide) || cr.CanCastle(chess.White, chess.QueenSide) {
		kingSafety += 30
	}
	if cr.CanCastle(chess.Black, chess.KingSide) || cr.CanCastle(chess.Black, chess.QueenSide) {
		kingSafety -= 30
	}

	bishopPair := 0
	if whiteBishops >= 2 {
		bishopPair += 35
	}
	if blackBishops >= 2 {
		bishopPair -= 35
	}

	mobility := 5 * len(pos.ValidMoves())

	whiteScore := material + positional + center + kingSafety + bishopPair
	if pos.Turn() == chess.White {
		return whiteScore + mobility
	}
	return -whiteScore + mobility
}

// isEndgame: at most four minor pieces in total and no queens left.
func isEndgame(pieces map[chess.Square]chess.Piece) bool {
	minors := 0
	for _, p := range pieces {
		switch p.Type() {
		case chess.Queen:
			return false
		case chess.Knight, chess.Bishop:
			minors++
		}
	}
	return minors <= 4
}

// pieceSquareValue reads the positional bonus for a piece on a square.
// White reads tables directly; Black reads the vertical mirror and negates.
func pieceSquareValue(p chess.Piece, sq chess.Square, endgame bool) int {
	table, ok := tableLookup[p.Type()]
	if !ok {
		if p.Type() != chess.King {
			return 0
		}
		table = &kingTableMid
		if endgame {
			table = &kingTableEnd
		}
	}
	if p.Color() == chess.White {
		return table[sq]
	}
	return -table[mirrorSquare(sq)]
}
