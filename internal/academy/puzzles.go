package academy

// Curated practice positions for the puzzle endpoint. Solutions are listed
// in coordinate notation with SAN suffixes where the lesson plan used them.
var puzzles = []Puzzle{
	{
		FEN:        "6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1",
		Theme:      "mate in one",
		SideToMove: "white",
		Goal:       "White to move and checkmate in a single move.",
		CoachTip:   "The back rank is a fence with no gate. Can your rook get inside?",
		Solution:   []string{"d1d8#"},
	},
	{
		FEN:        "6k1/5ppp/8/8/4Q3/5K2/8/6q1 w - - 0 1",
		Theme:      "queen and king attack",
		SideToMove: "white",
		Goal:       "White to move, find the one winning blow.",
		CoachTip:   "Queen and king make the best of partners.",
		Solution:   []string{"e4e8#"},
	},
	{
		FEN:        "8/2P5/3k4/8/8/8/8/4K3 w - - 0 1",
		Theme:      "pawn promotion",
		SideToMove: "white",
		Goal:       "White to move, turn the little pawn into a queen.",
		CoachTip:   "One step at a time, even a little pawn can become a hero!",
		Solution:   []string{"c7c8Q"},
	},
}
