package usi

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/lgbarn/shogi-core-go/internal/errors"
	"github.com/lgbarn/shogi-core-go/internal/position"
)

// ParsePosition parses a USI position command and replays its moves:
//
//	position startpos moves 7g7f 3c3d
//	position sfen <sfen> moves 8h2b+
//
// The leading "position" keyword is optional, and so is a bare SFEN
// without the "sfen" keyword. Moves are applied with MakeMove, so only
// structurally impossible moves are rejected.
func ParsePosition(line string) (*position.Position, error) {
	tokens := strings.Fields(line)
	if len(tokens) > 0 && tokens[0] == "position" {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty position command: %w", errors.ErrInvalidUSI)
	}

	head, moveTokens := tokens, []string(nil)
	if i := lo.IndexOf(tokens, "moves"); i >= 0 {
		head, moveTokens = tokens[:i], tokens[i+1:]
	}

	if len(head) == 0 {
		return nil, fmt.Errorf("missing startpos or sfen: %w", errors.ErrInvalidUSI)
	}

	var pos *position.Position
	switch head[0] {
	case "startpos":
		if len(head) != 1 {
			return nil, fmt.Errorf("unexpected %q after startpos: %w", head[1], errors.ErrInvalidUSI)
		}
		pos = position.Startpos()
	case "sfen":
		p, err := ParseSFEN(strings.Join(head[1:], " "))
		if err != nil {
			return nil, err
		}
		pos = position.FromPartial(p)
	default:
		p, err := ParseSFEN(strings.Join(head, " "))
		if err != nil {
			return nil, err
		}
		pos = position.FromPartial(p)
	}

	for i, tok := range moveTokens {
		mv, err := ParseMove(tok, pos.SideToMove())
		if err != nil {
			return nil, &errors.RecordError{Err: err, Ply: i + 1, MoveText: tok}
		}
		if !pos.MakeMove(mv) {
			return nil, &errors.RecordError{Err: errors.ErrIllegalMove, Ply: i + 1, MoveText: tok}
		}
	}
	return pos, nil
}

// FormatPosition writes pos as a position command. Histories starting from
// the standard position use "startpos".
func FormatPosition(pos *position.Position) string {
	var sb strings.Builder
	sb.WriteString("position ")
	if pos.Initial().Equal(position.StartposPartial()) {
		sb.WriteString("startpos")
	} else {
		sb.WriteString("sfen ")
		sb.WriteString(pos.Initial().ToSFEN())
	}
	if moves := pos.Moves(); len(moves) > 0 {
		sb.WriteString(" moves ")
		sb.WriteString(FormatMoves(moves))
	}
	return sb.String()
}
