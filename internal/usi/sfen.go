package usi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/shogi-core-go/internal/errors"
	"github.com/lgbarn/shogi-core-go/internal/position"
	"github.com/lgbarn/shogi-core-go/internal/shogi"
)

// StartposSFEN is the standard starting position.
const StartposSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// ParseSFEN parses an SFEN string. The ply field may be omitted, in which
// case the position starts at ply 1.
func ParseSFEN(sfen string) (*position.PartialPosition, error) {
	parts := strings.Fields(sfen)
	if len(parts) < 3 || len(parts) > 4 {
		return nil, fmt.Errorf("expected 3 or 4 fields, got %d: %w", len(parts), errors.ErrInvalidSFEN)
	}

	p := position.EmptyPartial()
	if err := parsePiecePositions(p, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(p, parts[1]); err != nil {
		return nil, err
	}
	if err := parseHands(p, parts[2]); err != nil {
		return nil, err
	}
	if len(parts) == 4 {
		if err := parsePly(p, parts[3]); err != nil {
			return nil, err
		}
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "sfen")
	}
	return p, nil
}

// parsePiecePositions reads the board field, rank 1 first, each rank from
// file 9 to file 1.
func parsePiecePositions(p *position.PartialPosition, board string) error {
	rows := strings.Split(board, "/")
	if len(rows) != 9 {
		return fmt.Errorf("board has %d ranks: %w", len(rows), errors.ErrInvalidSFEN)
	}
	for i, row := range rows {
		rank := uint8(i + 1)
		file := 9
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '9' {
				file -= int(c - '0')
				if file < 0 {
					return fmt.Errorf("rank %d overflows: %w", rank, errors.ErrInvalidSFEN)
				}
				continue
			}
			symbol := row[j : j+1]
			if c == '+' && j+1 < len(row) {
				symbol = row[j : j+2]
				j++
			}
			piece, ok := shogi.PieceFromUSI(symbol)
			if !ok {
				return fmt.Errorf("invalid piece %q: %w", symbol, errors.ErrInvalidSFEN)
			}
			if file < 1 {
				return fmt.Errorf("rank %d overflows: %w", rank, errors.ErrInvalidSFEN)
			}
			sq, _ := shogi.NewSquare(uint8(file), rank)
			p.SetPiece(sq, shogi.SomePiece(piece))
			file--
		}
		if file != 0 {
			return fmt.Errorf("rank %d has %d files: %w", rank, 9-file, errors.ErrInvalidSFEN)
		}
	}
	return nil
}

func parseSideToMove(p *position.PartialPosition, field string) error {
	switch field {
	case "b":
		p.SetSideToMove(shogi.Black)
	case "w":
		p.SetSideToMove(shogi.White)
	default:
		return fmt.Errorf("invalid side to move: %s: %w", field, errors.ErrInvalidSFEN)
	}
	return nil
}

// parseHands reads the hand field, e.g. "-", "Bb", "R2G3p".
func parseHands(p *position.PartialPosition, field string) error {
	if field == "-" {
		return nil
	}
	var hands [shogi.NumColors]shogi.Hand
	count := 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c >= '0' && c <= '9' {
			count = count*10 + int(c-'0')
			if count > 255 {
				return fmt.Errorf("hand count too large: %w", errors.ErrInvalidSFEN)
			}
			continue
		}
		piece, ok := shogi.PieceFromUSI(field[i : i+1])
		if !ok || !piece.Kind().IsDroppable() {
			return fmt.Errorf("invalid hand piece %q: %w", field[i:i+1], errors.ErrInvalidSFEN)
		}
		if count == 0 {
			count = 1
		}
		h := &hands[piece.Color().ArrayIndex()]
		for ; count > 0; count-- {
			*h, _ = h.Added(piece.Kind())
		}
	}
	if count != 0 {
		return fmt.Errorf("hand ends with a count: %w", errors.ErrInvalidSFEN)
	}
	p.SetHand(shogi.Black, hands[0])
	p.SetHand(shogi.White, hands[1])
	return nil
}

func parsePly(p *position.PartialPosition, field string) error {
	ply, err := strconv.ParseUint(field, 10, 16)
	if err != nil || !p.SetPly(uint16(ply)) {
		return fmt.Errorf("invalid ply: %s: %w", field, errors.ErrInvalidSFEN)
	}
	return nil
}
