// Package display renders FEN positions as ASCII boards for the trainer CLI.
package display

import (
	"fmt"
	"strings"
)

// BoardASCII renders the piece-placement field of a FEN string as an
// ASCII board with file and rank labels.
func BoardASCII(fen string) (string, error) {
	squares, err := parsePlacement(fen)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for r := 0; r < 8; r++ {
		sb.WriteString(fmt.Sprintf("%d ", 8-r))
		for f := 0; f < 8; f++ {
			piece := squares[r][f]
			if piece == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%c ", piece))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", 8-r))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String(), nil
}

// parsePlacement parses the first FEN field into an 8x8 grid, rank 8 first.
func parsePlacement(fen string) ([8][8]byte, error) {
	var squares [8][8]byte

	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return squares, fmt.Errorf("invalid FEN: empty string")
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return squares, fmt.Errorf("invalid FEN: expected 8 ranks, got %d", len(ranks))
	}

	for r := 0; r < 8; r++ {
		file := 0
		for _, ch := range ranks[r] {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return squares, fmt.Errorf("invalid FEN: too many pieces in rank %d", 8-r)
			}
			squares[r][file] = byte(ch)
			file++
		}
		if file != 8 {
			return squares, fmt.Errorf("invalid FEN: rank %d has %d files", 8-r, file)
		}
	}

	return squares, nil
}
