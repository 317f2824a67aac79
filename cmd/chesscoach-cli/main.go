// Package main implements an interactive terminal trainer: play against the
// engine, ask for hints, and browse practice puzzles without a server.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"chesscoach/internal/academy"
	"chesscoach/internal/display"
)

type session struct {
	coach      *academy.Academy
	fen        string
	difficulty string
	gameOver   bool
}

func main() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "chesscoach> ",
		HistoryFile:     ".chesscoach_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	s := &session{coach: academy.New(), difficulty: "beginner"}
	s.newGame("")

	fmt.Println("Chess Trainer")
	fmt.Println("Type 'help' for commands")
	fmt.Println()
	s.showBoard()

	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" || line == "q" {
			break
		}

		s.execute(line)
	}
}

func (s *session) execute(line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help", "h":
		printHelp()
	case "new":
		difficulty := ""
		if len(args) > 0 {
			difficulty = args[0]
		}
		s.newGame(difficulty)
		s.showBoard()
	case "show", "board":
		s.showBoard()
	case "move", "m":
		if len(args) < 1 {
			fmt.Println("usage: move <uci>  (e.g. move e2e4, move e7e8q)")
			return
		}
		s.playMove(args[0])
	case "moves":
		if len(args) < 1 {
			fmt.Println("usage: moves <square>  (e.g. moves e2)")
			return
		}
		s.listMoves(args[0])
	case "hint":
		s.hint()
	case "puzzle":
		s.puzzle()
	case "fen":
		fmt.Println(s.fen)
	default:
		fmt.Printf("unknown command %q, type 'help'\n", cmd)
	}
}

func (s *session) newGame(difficulty string) {
	if difficulty != "" {
		s.difficulty = difficulty
	}
	outcome := s.coach.NewGame()
	s.fen = outcome.FEN
	s.gameOver = false
	fmt.Printf("%s (difficulty: %s)\n", outcome.Message, s.difficulty)
}

func (s *session) showBoard() {
	board, err := display.BoardASCII(s.fen)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println(board)
}

func (s *session) playMove(uci string) {
	if s.gameOver {
		fmt.Println("Game is over. Start a new one with 'new'.")
		return
	}

	outcome, err := s.coach.ApplyMove(s.fen, uci, "")
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	s.fen = outcome.FEN
	fmt.Printf("You played %s (eval %d)\n", outcome.Move.SAN, outcome.Evaluation)
	if outcome.Status.GameOver() {
		s.finish(outcome.Status.Winner)
		return
	}

	reply, err := s.coach.AIMove(s.fen, s.difficulty)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	s.fen = reply.FEN
	fmt.Printf("Coach played %s (eval %d)\n", reply.Move.SAN, reply.Evaluation)
	fmt.Printf("Tip: %s\n", reply.CoachMessage)
	s.showBoard()
	if reply.Status.GameOver() {
		s.finish(reply.Status.Winner)
	}
}

func (s *session) listMoves(square string) {
	moves, err := s.coach.LegalMoves(s.fen, square)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if len(moves.LegalMoves) == 0 {
		fmt.Println(moves.Message)
		return
	}
	for _, mv := range moves.LegalMoves {
		notes := []string{}
		if mv.IsCapture {
			notes = append(notes, "capture")
		}
		if mv.GivesCheck {
			notes = append(notes, "check")
		}
		if !mv.IsSafe {
			notes = append(notes, "risky")
		}
		suffix := ""
		if len(notes) > 0 {
			suffix = " (" + strings.Join(notes, ", ") + ")"
		}
		fmt.Printf("  %s  %s%s\n", mv.UCI, mv.SAN, suffix)
	}
}

func (s *session) hint() {
	if s.gameOver {
		fmt.Println("Game is over. Start a new one with 'new'.")
		return
	}
	result, err := s.coach.Hint(s.fen, "")
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("Try %s (%s, score %d)\n", result.Hint.SAN, result.Hint.UCI, result.Evaluation)
	fmt.Println(result.Suggestion)
}

func (s *session) puzzle() {
	p := s.coach.PracticePuzzle()
	board, err := display.BoardASCII(p.FEN)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("Puzzle (%s): %s\n", p.Theme, p.Goal)
	fmt.Println(board)
	fmt.Printf("Tip: %s\n", p.CoachTip)
}

func (s *session) finish(winner string) {
	s.gameOver = true
	switch winner {
	case "draw":
		fmt.Println("Game over: draw! Well played.")
	case "":
		fmt.Println("Game over.")
	default:
		fmt.Printf("Game over: %s wins!\n", winner)
	}
}

func printHelp() {
	fmt.Println(`Commands:
  new [difficulty]   start a new game (explorer, beginner, intermediate, advanced)
  move <uci>         play a move, e.g. move e2e4 or move e7e8q
  moves <square>     list legal moves for the piece on a square
  hint               ask the coach for the best move
  puzzle             show a random practice puzzle
  show               print the board
  fen                print the current position
  quit               leave`)
}
