package academy

import (
	"errors"

	"chesscoach/internal/rules"
)

// Error taxonomy surfaced to callers. The transport layer maps these to
// HTTP statuses; nothing here is retried.
var (
	ErrInvalidPosition     = errors.New("invalid position")
	ErrGameOver            = errors.New("game is already over")
	ErrUnknownDifficulty   = errors.New("unknown difficulty")
	ErrIllegalMove         = errors.New("illegal move for the current board state")
	ErrInvalidMoveEncoding = errors.New("invalid move encoding")
	ErrNoPieceOnSquare     = errors.New("no piece on the selected square")
	ErrWrongSidePiece      = errors.New("it's not that piece's turn to move")
)

// MoveInfo is the annotated form of a single move as shown to the UI.
type MoveInfo struct {
	FromSquare string `json:"from_square"`
	ToSquare   string `json:"to_square"`
	UCI        string `json:"uci"`
	SAN        string `json:"san"`
	Promotion  string `json:"promotion,omitempty"`
	IsCapture  bool   `json:"is_capture"`
	GivesCheck bool   `json:"gives_check"`
	IsSafe     bool   `json:"is_safe"`
}

// MoveOutcome reports the board after a move (or a fresh game).
type MoveOutcome struct {
	FEN            string       `json:"fen"`
	Turn           string       `json:"turn"`
	Move           MoveInfo     `json:"move"`
	HalfmoveClock  int          `json:"halfmove_clock"`
	FullmoveNumber int          `json:"fullmove_number"`
	Status         rules.Status `json:"status"`
	Evaluation     int          `json:"evaluation"`
	Message        string       `json:"message,omitempty"`
}

// MoveCollection lists the annotated legal moves of one piece.
type MoveCollection struct {
	SideToMove string     `json:"side_to_move"`
	InCheck    bool       `json:"in_check"`
	LegalMoves []MoveInfo `json:"legal_moves"`
	Message    string     `json:"message"`
}

// AIMoveResult is the engine's reply to an AI-move request.
type AIMoveResult struct {
	Difficulty   string       `json:"difficulty"`
	Depth        int          `json:"depth"`
	Move         MoveInfo     `json:"move"`
	FEN          string       `json:"fen"`
	Evaluation   int          `json:"evaluation"`
	CoachMessage string       `json:"coach_message"`
	Status       rules.Status `json:"status"`
}

// HintResult is a best-play suggestion with its search score. Difficulty
// echoes the profile that was searched, including a phase-based default
// when the request named none.
type HintResult struct {
	Difficulty string       `json:"difficulty"`
	Hint       MoveInfo     `json:"hint"`
	Evaluation int          `json:"evaluation"`
	Suggestion string       `json:"suggestion"`
	Status     rules.Status `json:"status"`
}

// Puzzle is one curated practice position.
type Puzzle struct {
	FEN        string   `json:"fen"`
	Theme      string   `json:"theme"`
	SideToMove string   `json:"side_to_move"`
	Goal       string   `json:"goal"`
	CoachTip   string   `json:"coach_tip"`
	Solution   []string `json:"solution"`
}
