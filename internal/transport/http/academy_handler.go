package http

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"chesscoach/internal/academy"
	"chesscoach/internal/storage"
)

var validate = validator.New()

// parseBody decodes and validates a JSON request body. On failure it writes
// the 400 response itself and reports ok=false; a successful JSON write
// yields a nil error, so handlers must branch on ok, not on err.
func parseBody(c *fiber.Ctx, req any) (ok bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid request body",
			Code:    ErrInvalidRequest,
			Details: err.Error(),
		})
	}
	if err := validate.Struct(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation failed",
			Code:    ErrInvalidRequest,
			Details: err.Error(),
		})
	}
	return true, nil
}

// academyError maps façade errors to HTTP responses.
func academyError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	code := ErrInvalidRequest

	switch {
	case errors.Is(err, academy.ErrInvalidPosition):
		code = ErrInvalidFEN
	case errors.Is(err, academy.ErrGameOver):
		code = ErrGameOver
	case errors.Is(err, academy.ErrIllegalMove):
		code = ErrIllegalMove
	case errors.Is(err, academy.ErrInvalidMoveEncoding):
		code = ErrInvalidMoveEncoding
	case errors.Is(err, academy.ErrUnknownDifficulty):
		code = ErrUnknownDifficulty
	case errors.Is(err, academy.ErrWrongSidePiece):
		code = ErrWrongSide
	case errors.Is(err, academy.ErrNoPieceOnSquare):
		status, code = fiber.StatusNotFound, ErrPieceNotFound
	default:
		status, code = fiber.StatusInternalServerError, ErrInternalError
	}

	return c.Status(status).JSON(ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}

// NewGame returns a fresh starting position.
func (h *Handler) NewGame(c *fiber.Ctx) error {
	return c.JSON(h.academy.NewGame())
}

// LegalMoves lists the annotated moves for the piece on a square.
func (h *Handler) LegalMoves(c *fiber.Ctx) error {
	var req LegalMovesRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	moves, err := h.academy.LegalMoves(req.FEN, req.Square)
	if err != nil {
		return academyError(c, err)
	}
	return c.JSON(moves)
}

// ApplyMove plays a player's move.
func (h *Handler) ApplyMove(c *fiber.Ctx) error {
	var req MoveRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	outcome, err := h.academy.ApplyMove(req.FEN, req.Move, req.Promotion)
	if err != nil {
		return academyError(c, err)
	}

	h.record(storage.EventRecord{
		Kind:       "player_move",
		FENBefore:  req.FEN,
		FENAfter:   outcome.FEN,
		MoveUCI:    outcome.Move.UCI,
		MoveSAN:    outcome.Move.SAN,
		Evaluation: outcome.Evaluation,
	})
	return c.JSON(outcome)
}

// AIMove computes and plays the engine's move.
func (h *Handler) AIMove(c *fiber.Ctx) error {
	var req AIMoveRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	if req.Difficulty == "" {
		req.Difficulty = "beginner"
	}

	result, err := h.academy.AIMove(req.FEN, req.Difficulty)
	if err != nil {
		return academyError(c, err)
	}

	h.record(storage.EventRecord{
		Kind:       "ai_move",
		FENBefore:  req.FEN,
		FENAfter:   result.FEN,
		MoveUCI:    result.Move.UCI,
		MoveSAN:    result.Move.SAN,
		Difficulty: result.Difficulty,
		Evaluation: result.Evaluation,
	})
	return c.JSON(result)
}

// Hint suggests the strongest move for the side to move.
func (h *Handler) Hint(c *fiber.Ctx) error {
	var req HintRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	result, err := h.academy.Hint(req.FEN, req.Difficulty)
	if err != nil {
		return academyError(c, err)
	}

	h.record(storage.EventRecord{
		Kind:       "hint",
		FENBefore:  req.FEN,
		MoveUCI:    result.Hint.UCI,
		MoveSAN:    result.Hint.SAN,
		Difficulty: result.Difficulty,
		Evaluation: result.Evaluation,
	})
	return c.JSON(result)
}

// PracticePuzzle returns a random curated puzzle.
func (h *Handler) PracticePuzzle(c *fiber.Ctx) error {
	return c.JSON(h.academy.PracticePuzzle())
}

// record appends a training event when persistence is enabled.
func (h *Handler) record(event storage.EventRecord) {
	if h.store == nil {
		return
	}
	event.EventID = uuid.New().String()
	event.CreatedUTC = time.Now().UTC()
	h.store.RecordEvent(event)
}
