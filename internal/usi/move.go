// Package usi reads and writes the text forms used by the Universal Shogi
// Interface: moves ("7g7f", "8h2b+", "P*5e"), SFEN positions and
// "position" command lines.
package usi

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/lgbarn/shogi-core-go/internal/errors"
	"github.com/lgbarn/shogi-core-go/internal/shogi"
)

// parseSquare reads a square such as "7g".
func parseSquare(s string) (shogi.Square, bool) {
	if len(s) != 2 || s[0] < '1' || s[0] > '9' || s[1] < 'a' || s[1] > 'i' {
		return 0, false
	}
	return shogi.NewSquare(s[0]-'0', s[1]-'a'+1)
}

// ParseMove parses a move in USI notation. A drop is attributed to color,
// since the notation itself always uses uppercase piece letters.
func ParseMove(s string, color shogi.Color) (shogi.Move, error) {
	if len(s) == 4 && s[1] == '*' {
		piece, ok := shogi.PieceFromUSI(s[:1])
		if !ok || piece.Color() != shogi.Black || !piece.Kind().IsDroppable() {
			return shogi.Move{}, invalidMove(s, "droppable piece letter")
		}
		to, ok := parseSquare(s[2:])
		if !ok {
			return shogi.Move{}, invalidMove(s, "destination square")
		}
		return shogi.DropMove(shogi.NewPiece(piece.Kind(), color), to), nil
	}

	promote := strings.HasSuffix(s, "+")
	body := strings.TrimSuffix(s, "+")
	if len(body) != 4 {
		return shogi.Move{}, invalidMove(s, "move")
	}
	from, ok := parseSquare(body[:2])
	if !ok {
		return shogi.Move{}, invalidMove(s, "source square")
	}
	to, ok := parseSquare(body[2:])
	if !ok {
		return shogi.Move{}, invalidMove(s, "destination square")
	}
	return shogi.NormalMove(from, to, promote), nil
}

func invalidMove(s, expected string) error {
	return &errors.ParseError{Err: errors.ErrInvalidUSI, Expected: expected, Got: s}
}

// FormatMove returns mv in USI notation.
func FormatMove(mv shogi.Move) string {
	return mv.String()
}

// FormatMoves joins moves with single spaces.
func FormatMoves(moves []shogi.Move) string {
	return strings.Join(lo.Map(moves, func(mv shogi.Move, _ int) string {
		return FormatMove(mv)
	}), " ")
}

// ParseMoves parses a space separated move list starting with color to move.
// Only the notation is checked; the moves are not applied.
func ParseMoves(s string, color shogi.Color) ([]shogi.Move, error) {
	fields := strings.Fields(s)
	moves := make([]shogi.Move, 0, len(fields))
	for i, f := range fields {
		mv, err := ParseMove(f, color)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, mv)
		color = color.Flip()
	}
	return moves, nil
}
