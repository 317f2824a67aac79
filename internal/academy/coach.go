package academy

import (
	"github.com/notnil/chess"

	"chesscoach/internal/rules"
)

// Coach tips are bucketed by game phase: openings through move 10, the
// middlegame through move 25, endgames after.
var coachTips = map[string][]string{
	"opening": {
		"Try walking two little pawns to the center early, the board gets much more fun!",
		"Develop your knights and bishops first, they are your scouting party.",
		"Don't rush the queen out, let her friends open the roads first.",
	},
	"middle": {
		"Keep your king protected, castling is a great way to do it.",
		"Look at what the opponent's pieces are attacking and plan your next step.",
		"Put your pieces in the center and they become much stronger!",
	},
	"endgame": {
		"In the endgame the king can become a brave adventurer too.",
		"Keep pushing your pawns, promoting one to a queen is fantastic!",
		"Team up your queen and king to leave the opponent nowhere to stand.",
	},
}

// coachMessage picks a tip for the phase the position is in.
func (a *Academy) coachMessage(pos *chess.Position) string {
	bucket := "endgame"
	switch moves := rules.FullMoveNumber(pos); {
	case moves <= 10:
		bucket = "opening"
	case moves <= 25:
		bucket = "middle"
	}
	tips := coachTips[bucket]

	a.mu.Lock()
	defer a.mu.Unlock()
	return tips[a.rng.Intn(len(tips))]
}

// PracticePuzzle returns a random curated puzzle.
func (a *Academy) PracticePuzzle() Puzzle {
	a.mu.Lock()
	defer a.mu.Unlock()
	return puzzles[a.rng.Intn(len(puzzles))]
}
