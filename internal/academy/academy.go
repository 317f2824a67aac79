// Package academy is the stateless session façade of the chess trainer. It
// orchestrates the rules engine and the move intelligence to answer one
// request at a time: legal moves for a piece, a player move, an AI move at
// a difficulty, or a hint. Nothing survives between calls.
package academy

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/notnil/chess"

	"chesscoach/internal/ai"
	"chesscoach/internal/rules"
)

// Academy answers trainer requests. Safe for concurrent use: every request
// owns its own position, and the only shared state is the lock-protected
// randomness in the selector and tip picker.
type Academy struct {
	selector *ai.Selector
	mu       sync.Mutex
	rng      *rand.Rand
}

// New creates an academy seeded from the clock.
func New() *Academy {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates an academy with caller-owned randomness, letting
// tests reproduce move selection and coach-tip choice.
func NewWithSource(src rand.Source) *Academy {
	rng := rand.New(src)
	return &Academy{
		selector: ai.NewSelectorWithSource(rand.NewSource(rng.Int63())),
		rng:      rng,
	}
}

// NewGame returns the starting position with its status and evaluation.
func (a *Academy) NewGame() MoveOutcome {
	pos := rules.StartingPosition()
	return MoveOutcome{
		FEN:            pos.String(),
		Turn:           "white",
		HalfmoveClock:  rules.HalfMoveClock(pos),
		FullmoveNumber: rules.FullMoveNumber(pos),
		Status:         rules.StatusOf(pos),
		Evaluation:     ai.Evaluate(pos),
		Message:        "A new game is ready! Pick a difficulty and make your first move.",
	}
}

// LegalMoves returns the annotated legal moves for the piece on square.
func (a *Academy) LegalMoves(fen, square string) (MoveCollection, error) {
	pos, err := a.parsePlayable(fen)
	if err != nil {
		return MoveCollection{}, err
	}

	sq, err := rules.SquareFromName(square)
	if err != nil {
		return MoveCollection{}, fmt.Errorf("%w: %v", ErrInvalidMoveEncoding, err)
	}
	piece := pos.Board().Piece(sq)
	if piece == chess.NoPiece {
		return MoveCollection{}, ErrNoPieceOnSquare
	}
	if piece.Color() != pos.Turn() {
		return MoveCollection{}, ErrWrongSidePiece
	}

	var serialized []MoveInfo
	for _, mv := range rules.LegalMoves(pos) {
		if mv.S1() == sq {
			serialized = append(serialized, a.serializeMove(pos, mv))
		}
	}
	message := "Here are the possible moves. Tap a highlighted square to play one."
	if len(serialized) == 0 {
		message = "That piece can't move right now. Try another one."
	}
	return MoveCollection{
		SideToMove: colorName(pos.Turn()),
		InCheck:    rules.InCheck(pos),
		LegalMoves: serialized,
		Message:    message,
	}, nil
}

// ApplyMove validates and plays the player's move, returning the resulting
// position. The input position is never modified on error.
func (a *Academy) ApplyMove(fen, move, promotion string) (MoveOutcome, error) {
	pos, err := a.parsePosition(fen)
	if err != nil {
		return MoveOutcome{}, err
	}

	uci := strings.TrimSpace(move)
	if promotion != "" && len(uci) == 4 {
		uci += promotion
	}
	decoded, err := rules.DecodeUCI(pos, uci)
	if err != nil {
		return MoveOutcome{}, fmt.Errorf("%w: %v", ErrInvalidMoveEncoding, err)
	}

	legal := findLegal(pos, decoded)
	if legal == nil {
		return MoveOutcome{}, ErrIllegalMove
	}

	info := a.serializeMove(pos, legal)
	next := pos.Update(legal)
	status := rules.StatusOf(next)

	return MoveOutcome{
		FEN:            next.String(),
		Turn:           colorName(next.Turn()),
		Move:           info,
		HalfmoveClock:  rules.HalfMoveClock(next),
		FullmoveNumber: rules.FullMoveNumber(next),
		Status:         status,
		Evaluation:     ai.Evaluate(next),
		Message:        a.coachMessage(next),
	}, nil
}

// AIMove picks and plays the engine's move at the given difficulty.
func (a *Academy) AIMove(fen, difficulty string) (AIMoveResult, error) {
	pos, err := a.parsePlayable(fen)
	if err != nil {
		return AIMoveResult{}, err
	}
	level, err := ai.ParseDifficulty(difficulty)
	if err != nil {
		return AIMoveResult{}, fmt.Errorf("%w: %v", ErrUnknownDifficulty, err)
	}

	choice, err := a.selector.SelectMove(pos, level)
	if err != nil {
		// Unreachable after the game-over check; fail loudly if it isn't.
		return AIMoveResult{}, fmt.Errorf("selecting move: %w", err)
	}

	info := a.serializeMove(pos, choice.Move)
	next := pos.Update(choice.Move)
	status := rules.StatusOf(next)

	message := a.coachMessage(next)
	if status.IsCheckmate {
		message = "What a finish! That was the winning blow. Play again and keep practicing!"
	}

	return AIMoveResult{
		Difficulty:   level.String(),
		Depth:        level.Profile().Depth,
		Move:         info,
		FEN:          next.String(),
		Evaluation:   ai.Evaluate(next),
		CoachMessage: message,
		Status:       status,
	}, nil
}

// Hint suggests genuine best play for the side to move. An empty difficulty
// defaults by game phase: advanced past move 20, intermediate before.
func (a *Academy) Hint(fen, difficulty string) (HintResult, error) {
	pos, err := a.parsePlayable(fen)
	if err != nil {
		return HintResult{}, err
	}

	var level ai.Difficulty
	if strings.TrimSpace(difficulty) == "" {
		level = ai.DefaultHintDifficulty(pos)
	} else {
		level, err = ai.ParseDifficulty(difficulty)
		if err != nil {
			return HintResult{}, fmt.Errorf("%w: %v", ErrUnknownDifficulty, err)
		}
	}

	suggestion, err := ai.Hint(pos, level)
	if err != nil {
		return HintResult{}, fmt.Errorf("searching hint: %w", err)
	}

	guidance := "This is the smartest plan right now and should improve your position."
	if level == ai.Explorer || level == ai.Beginner {
		guidance = "This move keeps your king safe and prepares a counterattack. Give it a try!"
	}
	return HintResult{
		Difficulty: level.String(),
		Hint:       a.serializeMove(pos, suggestion.Move),
		Evaluation: suggestion.Score,
		Suggestion: guidance,
		Status:     rules.StatusOf(pos),
	}, nil
}

// parsePosition parses a FEN, mapping failures to ErrInvalidPosition.
func (a *Academy) parsePosition(fen string) (*chess.Position, error) {
	pos, err := rules.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, err)
	}
	return pos, nil
}

// parsePlayable additionally rejects finished games.
func (a *Academy) parsePlayable(fen string) (*chess.Position, error) {
	pos, err := a.parsePosition(fen)
	if err != nil {
		return nil, err
	}
	if rules.StatusOf(pos).GameOver() {
		return nil, ErrGameOver
	}
	return pos, nil
}

// serializeMove annotates a move with notation, capture, check and safety
// flags relative to the position it is played from.
func (a *Academy) serializeMove(pos *chess.Position, mv *chess.Move) MoveInfo {
	return MoveInfo{
		FromSquare: mv.S1().String(),
		ToSquare:   mv.S2().String(),
		UCI:        mv.String(),
		SAN:        rules.EncodeSAN(pos, mv),
		Promotion:  rules.PromotionSymbol(mv),
		IsCapture:  rules.IsCapture(pos, mv),
		GivesCheck: rules.GivesCheck(pos, mv),
		IsSafe:     ai.IsSafe(pos, mv),
	}
}

// findLegal matches a decoded move against the legal move list so the
// returned move carries the generator's tags.
func findLegal(pos *chess.Position, decoded *chess.Move) *chess.Move {
	for _, mv := range rules.LegalMoves(pos) {
		if mv.String() == decoded.String() {
			return mv
		}
	}
	return nil
}

func colorName(c chess.Color) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
