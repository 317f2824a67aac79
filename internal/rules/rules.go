// Package rules wraps the notnil/chess rules engine behind the small surface
// the trainer needs: FEN parsing, legal move enumeration, move annotation,
// notation codecs, and game-status reporting for a single stateless position.
package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartingPosition returns a fresh copy of the starting position.
func StartingPosition() *chess.Position {
	return chess.StartingPosition()
}

// ParseFEN parses a FEN string into a position.
func ParseFEN(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}
	return chess.NewGame(opt).Position(), nil
}

// LegalMoves enumerates the strictly legal moves for the side to move.
func LegalMoves(pos *chess.Position) []*chess.Move {
	return pos.ValidMoves()
}

// SquareFromName parses algebraic square names like "e2".
func SquareFromName(name string) (chess.Square, error) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return chess.NoSquare, fmt.Errorf("invalid square %q", name)
	}
	return chess.NewSquare(chess.File(name[0]-'a'), chess.Rank(name[1]-'1')), nil
}

// DecodeUCI parses a coordinate-notation move ("e2e4", "e7e8q") against a
// position. The returned move carries the generator's tags.
func DecodeUCI(pos *chess.Position, uci string) (*chess.Move, error) {
	mv, err := chess.UCINotation{}.Decode(pos, uci)
	if err != nil {
		return nil, fmt.Errorf("invalid move encoding %q: %w", uci, err)
	}
	return mv, nil
}

// EncodeSAN formats a move in standard algebraic notation relative to the
// position it is played from.
func EncodeSAN(pos *chess.Position, mv *chess.Move) string {
	return chess.AlgebraicNotation{}.Encode(pos, mv)
}

// IsCapture reports whether the move takes a piece, including en passant.
func IsCapture(pos *chess.Position, mv *chess.Move) bool {
	return pos.Board().Piece(mv.S2()) != chess.NoPiece || mv.HasTag(chess.EnPassant)
}

// IsCastle reports whether the move is a castling move.
func IsCastle(mv *chess.Move) bool {
	return mv.HasTag(chess.KingSideCastle) || mv.HasTag(chess.QueenSideCastle)
}

// GivesCheck reports whether playing the move leaves the opponent in check.
func GivesCheck(pos *chess.Position, mv *chess.Move) bool {
	return InCheck(pos.Update(mv))
}

// PromotionSymbol returns the lowercase piece letter for a promotion move,
// or "" when the move does not promote.
func PromotionSymbol(mv *chess.Move) string {
	switch mv.Promo() {
	case chess.Queen:
		return "q"
	case chess.Rook:
		return "r"
	case chess.Bishop:
		return "b"
	case chess.Knight:
		return "n"
	}
	return ""
}

// HalfMoveClock reads the halfmove counter from the position's FEN tail.
// The rules engine tracks it internally but does not expose an accessor.
func HalfMoveClock(pos *chess.Position) int {
	return fenField(pos, 4)
}

// FullMoveNumber reads the fullmove counter from the position's FEN tail.
func FullMoveNumber(pos *chess.Position) int {
	return fenField(pos, 5)
}

func fenField(pos *chess.Position, idx int) int {
	fields := strings.Fields(pos.String())
	if len(fields) != 6 {
		return 0
	}
	n, err := strconv.Atoi(fields[idx])
	if err != nil {
		return 0
	}
	return n
}

// Status is the outcome report for a single position. Repetition flags are
// always false: the trainer receives bare FEN strings, so no move history
// exists to repeat.
type Status struct {
	IsCheck                bool   `json:"is_check"`
	IsCheckmate            bool   `json:"is_checkmate"`
	IsStalemate            bool   `json:"is_stalemate"`
	IsInsufficientMaterial bool   `json:"is_insufficient_material"`
	IsSeventyFiveMoves     bool   `json:"is_seventyfive_moves"`
	IsFivefoldRepetition   bool   `json:"is_fivefold_repetition"`
	Winner                 string `json:"winner,omitempty"`
	Result                 string `json:"result,omitempty"`
}

// GameOver reports whether the position admits no further play.
func (s Status) GameOver() bool {
	return s.IsCheckmate || s.IsStalemate || s.IsInsufficientMaterial ||
		s.IsSeventyFiveMoves || s.IsFivefoldRepetition
}

// StatusOf computes the full status payload for a position.
func StatusOf(pos *chess.Position) Status {
	s := Status{
		IsCheck:                InCheck(pos),
		IsCheckmate:            pos.Status() == chess.Checkmate,
		IsStalemate:            pos.Status() == chess.Stalemate,
		IsInsufficientMaterial: InsufficientMaterial(pos.Board()),
	}
	// The 75-move rule yields to checkmate and needs a playable position.
	if !s.IsCheckmate && HalfMoveClock(pos) >= 150 && len(pos.ValidMoves()) > 0 {
		s.IsSeventyFiveMoves = true
	}

	switch {
	case s.IsCheckmate:
		if pos.Turn() == chess.White {
			s.Winner, s.Result = "black", "0-1"
		} else {
			s.Winner, s.Result = "white", "1-0"
		}
	case s.IsStalemate, s.IsInsufficientMaterial, s.IsSeventyFiveMoves:
		s.Winner, s.Result = "draw", "1/2-1/2"
	}
	return s
}
