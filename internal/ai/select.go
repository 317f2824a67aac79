package ai

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/notnil/chess"

	"chesscoach/internal/rules"
)

// Difficulty identifies one of the four fixed play-strength profiles.
type Difficulty int

const (
	Explorer Difficulty = iota
	Beginner
	Intermediate
	Advanced
)

// Profile carries the tuning of one difficulty level: how deep the engine
// searches and how often it plays the deliberately imperfect beginner
// heuristic instead.
type Profile struct {
	Label      string
	Depth      int
	Randomness float64
}

var profiles = [...]Profile{
	Explorer:     {Label: "explorer", Depth: 1, Randomness: 0.6},
	Beginner:     {Label: "beginner", Depth: 1, Randomness: 0.4},
	Intermediate: {Label: "intermediate", Depth: 2, Randomness: 0.1},
	Advanced:     {Label: "advanced", Depth: 3, Randomness: 0.0},
}

// Profile returns the difficulty's static configuration.
func (d Difficulty) Profile() Profile { return profiles[d] }

func (d Difficulty) String() string { return profiles[d].Label }

// Labels lists the valid difficulty labels in ascending strength order.
func Labels() []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.Label
	}
	return out
}

// ParseDifficulty resolves a label case-insensitively, ignoring surrounding
// whitespace.
func ParseDifficulty(label string) (Difficulty, error) {
	canonical := strings.ToLower(strings.TrimSpace(label))
	for i, p := range profiles {
		if p.Label == canonical {
			return Difficulty(i), nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q: choose from %s", label, strings.Join(Labels(), ", "))
}

// Selector picks moves according to a difficulty profile. All randomness
// lives here, never inside the search itself. Safe for concurrent use.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a selector seeded from the clock.
func NewSelector() *Selector {
	return NewSelectorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewSelectorWithSource creates a selector with a caller-owned randomness
// source, which makes policy behavior reproducible in tests.
func NewSelectorWithSource(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// SelectMove chooses a move for the given difficulty: the weaker profiles
// sometimes play the beginner heuristic, everything else defers to search.
func (s *Selector) SelectMove(pos *chess.Position, d Difficulty) (ScoredMove, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := d.Profile()
	if (d == Explorer || d == Beginner) && s.rng.Float64() < p.Randomness {
		return s.beginnerMove(pos, p.Randomness)
	}
	return BestMove(pos, p.Depth)
}

// beginnerMove simulates beginner play: shuffle the legal moves, score each
// by the (negated) evaluation after playing it, penalize unsafe moves by
// 150 centipawns without excluding them, then usually play the
// highest-priority safe move and occasionally the best-scored move overall.
func (s *Selector) beginnerMove(pos *chess.Position, randomness float64) (ScoredMove, error) {
	moves := rules.LegalMoves(pos)
	if len(moves) == 0 {
		return ScoredMove{}, ErrNoLegalMoves
	}
	s.rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

	// One pass builds both views: the safe subset and the fully scored list.
	var safeMoves []*chess.Move
	scored := make([]ScoredMove, 0, len(moves))
	for _, mv := range moves {
		score := -Evaluate(pos.Update(mv))
		if IsSafe(pos, mv) {
			safeMoves = append(safeMoves, mv)
			scored = append(scored, ScoredMove{Move: mv, Score: score})
		} else {
			scored = append(scored, ScoredMove{Move: mv, Score: score - 150})
		}
	}

	if len(safeMoves) > 0 && s.rng.Float64() > randomness {
		best := safeMoves[0]
		bestPriority := OrderScore(pos, best)
		for _, mv := range safeMoves[1:] {
			if prio := OrderScore(pos, mv); prio > bestPriority {
				best, bestPriority = mv, prio
			}
		}
		return ScoredMove{Move: best, Score: -Evaluate(pos.Update(best))}, nil
	}

	// No safe move, or the dice said blunder: best-scored move overall,
	// penalty included. This fallback is a defined path, not an error.
	best := scored[0]
	for _, sm := range scored[1:] {
		if sm.Score > best.Score {
			best = sm
		}
	}
	return best, nil
}

// Hint always reflects genuine best play: it routes through search at the
// profile's depth and never takes the beginner branch. When no difficulty
// is requested, late game (fullmove > 20) hints search at advanced depth,
// earlier ones at intermediate.
func Hint(pos *chess.Position, d Difficulty) (ScoredMove, error) {
	depth := d.Profile().Depth
	if depth < 1 {
		depth = 1
	}
	return BestMove(pos, depth)
}

// DefaultHintDifficulty picks the difficulty used when a hint request does
// not name one.
func DefaultHintDifficulty(pos *chess.Position) Difficulty {
	if rules.FullMoveNumber(pos) > 20 {
		return Advanced
	}
	return Intermediate
}
