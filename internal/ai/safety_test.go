package ai

import "testing"

func TestIsSafe(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		uci  string
		want bool
	}{
		{
			// d5 is covered by the c6 pawn; the queen would hang.
			name: "queen steps into pawn attack",
			fen:  "k7/8/2p5/8/3Q4/8/8/K7 w - - 0 1",
			uci:  "d4d5",
			want: false,
		},
		{
			// d8 is not attacked, but the move checks the king and checks
			// are treated as risky for beginners.
			name: "checking move counts as risky",
			fen:  "k7/8/2p5/8/3Q4/8/8/K7 w - - 0 1",
			uci:  "d4d8",
			want: false,
		},
		{
			name: "quiet knight development",
			fen:  startFEN,
			uci:  "g1f3",
			want: true,
		},
		{
			name: "safe queen retreat",
			fen:  "k7/8/2p5/8/3Q4/8/8/K7 w - - 0 1",
			uci:  "d4d1",
			want: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParse(t, tc.fen)
			mv := findMove(t, pos, tc.uci)
			if got := IsSafe(pos, mv); got != tc.want {
				t.Fatalf("IsSafe(%s) = %v, want %v", tc.uci, got, tc.want)
			}
		})
	}
}
