package ai

import (
	"testing"

	"github.com/notnil/chess"

	"chesscoach/internal/rules"
)

func findMove(t *testing.T, pos *chess.Position, uci string) *chess.Move {
	t.Helper()
	for _, mv := range rules.LegalMoves(pos) {
		if mv.String() == uci {
			return mv
		}
	}
	t.Fatalf("move %s is not legal in %s", uci, pos.String())
	return nil
}

func TestOrderScoreComponents(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		uci  string
		want int
	}{
		{
			// Queen capture on a center square: 10x900 victim plus 25 center.
			name: "queen capture on center square",
			fen:  "k7/8/8/3q4/8/8/3R4/K7 w - - 0 1",
			uci:  "d2d5",
			want: 9025,
		},
		{
			name: "kingside castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			uci:  "e1g1",
			want: 40,
		},
		{
			name: "center pawn push",
			fen:  startFEN,
			uci:  "e2e4",
			want: 25,
		},
		{
			name: "quiet developing move",
			fen:  startFEN,
			uci:  "g1f3",
			want: 0,
		},
		{
			name: "checking move",
			fen:  backRankFEN,
			uci:  "d1d8",
			want: 80,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParse(t, tc.fen)
			mv := findMove(t, pos, tc.uci)
			if got := OrderScore(pos, mv); got != tc.want {
				t.Fatalf("OrderScore(%s) = %d, want %d", tc.uci, got, tc.want)
			}
		})
	}
}

func TestOrderMovesDescendingAndStable(t *testing.T) {
	pos := mustParse(t, "k7/8/8/3q4/8/8/3R4/K7 w - - 0 1")
	ordered := orderMoves(pos, rules.LegalMoves(pos))

	if ordered[0].String() != "d2d5" {
		t.Fatalf("highest-priority move should lead, got %s", ordered[0])
	}
	for i := 1; i < len(ordered); i++ {
		if OrderScore(pos, ordered[i-1]) < OrderScore(pos, ordered[i]) {
			t.Fatalf("ordering not descending at index %d", i)
		}
	}
}
