package display

import (
	"strings"
	"testing"
)

func TestBoardASCII(t *testing.T) {
	out, err := BoardASCII("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}
	if lines[0] != "  a b c d e f g h" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "8 r n b q k b n r  8" {
		t.Errorf("rank 8 = %q", lines[1])
	}
	if lines[8] != "1 R N B Q K B N R  1" {
		t.Errorf("rank 1 = %q", lines[8])
	}
	if !strings.Contains(lines[4], ". . . . . . . .") {
		t.Errorf("empty rank = %q", lines[4])
	}
}

func TestBoardASCIIAfterMove(t *testing.T) {
	out, err := BoardASCII("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")
	if lines[5] != "4 . . . . P . . .  4" {
		t.Errorf("rank 4 = %q", lines[5])
	}
	if lines[7] != "2 P P P P . P P P  2" {
		t.Errorf("rank 2 = %q", lines[7])
	}
}

func TestBoardASCIIInvalid(t *testing.T) {
	for _, bad := range []string{"", "8/8/8", "9/8/8/8/8/8/8/8 w - - 0 1", "ppppppppp/8/8/8/8/8/8/8 w - - 0 1"} {
		if _, err := BoardASCII(bad); err == nil {
			t.Errorf("BoardASCII(%q) should fail", bad)
		}
	}
}
