package http

// Request types. Validation tags are enforced before any handler logic runs.

type FENRequest struct {
	FEN string `json:"fen" validate:"required,min=1"`
}

type LegalMovesRequest struct {
	FEN    string `json:"fen" validate:"required,min=1"`
	Square string `json:"square" validate:"required,len=2"`
}

type MoveRequest struct {
	FEN       string `json:"fen" validate:"required,min=1"`
	Move      string `json:"move" validate:"required,min=4,max=5"`
	Promotion string `json:"promotion,omitempty" validate:"omitempty,oneof=q r b n"`
}

type AIMoveRequest struct {
	FEN        string `json:"fen" validate:"required,min=1"`
	Difficulty string `json:"difficulty,omitempty"`
}

type HintRequest struct {
	FEN        string `json:"fen" validate:"required,min=1"`
	Difficulty string `json:"difficulty,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Error codes
const (
	ErrInvalidFEN          = "INVALID_FEN"
	ErrGameOver            = "GAME_OVER"
	ErrIllegalMove         = "ILLEGAL_MOVE"
	ErrInvalidMoveEncoding = "INVALID_MOVE_ENCODING"
	ErrUnknownDifficulty   = "UNKNOWN_DIFFICULTY"
	ErrPieceNotFound       = "PIECE_NOT_FOUND"
	ErrWrongSide           = "WRONG_SIDE"
	ErrRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
	ErrInvalidContent      = "INVALID_CONTENT_TYPE"
	ErrInvalidRequest      = "INVALID_REQUEST"
	ErrInternalError       = "INTERNAL_ERROR"
)
