package academy

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"chesscoach/internal/rules"
)

const (
	backRankMateFEN = "6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1"
	foolsMateFEN    = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
)

func newTestAcademy() *Academy {
	return NewWithSource(rand.NewSource(7))
}

func TestNewGame(t *testing.T) {
	out := newTestAcademy().NewGame()
	if out.FEN != rules.StartingFEN {
		t.Errorf("FEN = %s", out.FEN)
	}
	if out.Turn != "white" || out.FullmoveNumber != 1 || out.HalfmoveClock != 0 {
		t.Errorf("unexpected counters: %+v", out)
	}
	if out.Status.GameOver() {
		t.Error("fresh game reported as over")
	}
	if out.Message == "" {
		t.Error("missing welcome message")
	}
}

func TestLegalMovesForPawn(t *testing.T) {
	coll, err := newTestAcademy().LegalMoves(rules.StartingFEN, "e2")
	if err != nil {
		t.Fatal(err)
	}
	if coll.SideToMove != "white" || coll.InCheck {
		t.Errorf("side/check wrong: %+v", coll)
	}

	var got []string
	for _, mv := range coll.LegalMoves {
		if mv.IsCapture {
			t.Errorf("opening pawn move %s flagged as capture", mv.UCI)
		}
		if mv.FromSquare != "e2" {
			t.Errorf("move %s does not start on e2", mv.UCI)
		}
		got = append(got, mv.UCI)
	}
	sort.Strings(got)
	want := []string{"e2e3", "e2e4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("legal moves mismatch (-want +got):\n%s", diff)
	}
}

func TestLegalMovesErrors(t *testing.T) {
	a := newTestAcademy()
	cases := []struct {
		name   string
		fen    string
		square string
		want   error
	}{
		{"empty square", rules.StartingFEN, "e4", ErrNoPieceOnSquare},
		{"opponent piece", rules.StartingFEN, "e7", ErrWrongSidePiece},
		{"bad square name", rules.StartingFEN, "z9", ErrInvalidMoveEncoding},
		{"bad fen", "garbage", "e2", ErrInvalidPosition},
		{"finished game", foolsMateFEN, "e2", ErrGameOver},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := a.LegalMoves(tc.fen, tc.square)
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestApplyMove(t *testing.T) {
	a := newTestAcademy()
	out, err := a.ApplyMove(rules.StartingFEN, "e2e4", "")
	if err != nil {
		t.Fatal(err)
	}
	if out.Turn != "black" {
		t.Errorf("turn = %s, want black", out.Turn)
	}
	if out.Move.SAN != "e4" || out.Move.UCI != "e2e4" {
		t.Errorf("move annotation wrong: %+v", out.Move)
	}
	if out.FullmoveNumber != 1 {
		t.Errorf("fullmove = %d, want 1", out.FullmoveNumber)
	}
	if !strings.HasPrefix(out.FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b") {
		t.Errorf("FEN after e4: %s", out.FEN)
	}
	if out.Message == "" {
		t.Error("missing coach message")
	}
}

func TestApplyMovePromotion(t *testing.T) {
	a := newTestAcademy()
	out, err := a.ApplyMove("8/P7/8/8/8/8/7K/k7 w - - 0 40", "a7a8", "q")
	if err != nil {
		t.Fatal(err)
	}
	if out.Move.Promotion != "q" {
		t.Errorf("promotion = %q, want q", out.Move.Promotion)
	}
	if !strings.Contains(strings.Fields(out.FEN)[0], "Q") {
		t.Errorf("no queen on the board after promotion: %s", out.FEN)
	}
	if !out.Move.GivesCheck {
		t.Error("a8=Q+ checks the a1 king")
	}
}

func TestApplyMoveErrors(t *testing.T) {
	a := newTestAcademy()
	if _, err := a.ApplyMove(rules.StartingFEN, "e2e5", ""); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("e2e5: %v, want ErrIllegalMove", err)
	}
	if _, err := a.ApplyMove(rules.StartingFEN, "zz", ""); !errors.Is(err, ErrInvalidMoveEncoding) {
		t.Errorf("zz: %v, want ErrInvalidMoveEncoding", err)
	}
	if _, err := a.ApplyMove("junk", "e2e4", ""); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("junk fen: %v, want ErrInvalidPosition", err)
	}
}

func TestAIMoveFromStart(t *testing.T) {
	a := newTestAcademy()
	res, err := a.AIMove(rules.StartingFEN, "advanced")
	if err != nil {
		t.Fatal(err)
	}
	if res.Difficulty != "advanced" || res.Depth != 3 {
		t.Errorf("profile echo wrong: %+v", res)
	}

	// The reply has to be one of white's twenty opening moves.
	coll, err := a.LegalMoves(rules.StartingFEN, res.Move.FromSquare)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, mv := range coll.LegalMoves {
		if mv.UCI == res.Move.UCI {
			found = true
		}
	}
	if !found {
		t.Fatalf("AI played non-legal move %s", res.Move.UCI)
	}
	if !strings.Contains(res.FEN, " b ") {
		t.Errorf("black should be on move after the reply: %s", res.FEN)
	}
	if res.CoachMessage == "" {
		t.Error("missing coach message")
	}
}

func TestAIMoveDeliversMate(t *testing.T) {
	a := newTestAcademy()
	res, err := a.AIMove(backRankMateFEN, "advanced")
	if err != nil {
		t.Fatal(err)
	}
	if res.Move.UCI != "d1d8" {
		t.Fatalf("AI move = %s, want d1d8", res.Move.UCI)
	}
	if !res.Status.IsCheckmate || res.Status.Winner != "white" {
		t.Errorf("status after mate: %+v", res.Status)
	}
	if !strings.Contains(res.CoachMessage, "winning") {
		t.Errorf("mate should trigger the victory message, got %q", res.CoachMessage)
	}
}

func TestAIMoveErrors(t *testing.T) {
	a := newTestAcademy()
	if _, err := a.AIMove(foolsMateFEN, "beginner"); !errors.Is(err, ErrGameOver) {
		t.Errorf("finished game: %v, want ErrGameOver", err)
	}
	if _, err := a.AIMove(rules.StartingFEN, "boss"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("bad difficulty: %v, want ErrUnknownDifficulty", err)
	}
	if _, err := a.AIMove("nope", "beginner"); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("bad fen: %v, want ErrInvalidPosition", err)
	}
}

func TestHintFindsMate(t *testing.T) {
	a := newTestAcademy()
	res, err := a.Hint(backRankMateFEN, "advanced")
	if err != nil {
		t.Fatal(err)
	}
	if res.Hint.UCI != "d1d8" {
		t.Fatalf("hint = %s, want d1d8", res.Hint.UCI)
	}
	if res.Evaluation != 100000 {
		t.Errorf("evaluation = %d, want 100000", res.Evaluation)
	}
	if !res.Hint.GivesCheck {
		t.Error("mate hint must flag the check")
	}
}

func TestHintDefaultDifficulty(t *testing.T) {
	a := newTestAcademy()

	// No difficulty given: early game defaults to intermediate and the
	// result echoes the resolved profile.
	res, err := a.Hint(rules.StartingFEN, "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Hint.UCI == "" || res.Suggestion == "" {
		t.Errorf("incomplete hint: %+v", res)
	}
	if res.Difficulty != "intermediate" {
		t.Errorf("difficulty = %q, want intermediate", res.Difficulty)
	}

	late, err := a.Hint("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 31", "")
	if err != nil {
		t.Fatal(err)
	}
	if late.Difficulty != "advanced" {
		t.Errorf("late-game difficulty = %q, want advanced", late.Difficulty)
	}

	if _, err := a.Hint(foolsMateFEN, ""); !errors.Is(err, ErrGameOver) {
		t.Errorf("finished game hint: %v, want ErrGameOver", err)
	}
	if _, err := a.Hint(rules.StartingFEN, "boss"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("bad difficulty: %v, want ErrUnknownDifficulty", err)
	}
}

func TestPracticePuzzle(t *testing.T) {
	a := newTestAcademy()
	for i := 0; i < 10; i++ {
		p := a.PracticePuzzle()
		if p.FEN == "" || p.Theme == "" || len(p.Solution) == 0 {
			t.Fatalf("incomplete puzzle: %+v", p)
		}
		if _, err := rules.ParseFEN(p.FEN); err != nil {
			t.Fatalf("puzzle FEN invalid: %v", err)
		}
	}
}
