// Package legality defines the contract a shogi rules engine implements on
// top of the position types. No engine lives here; callers plug one in.
package legality

import (
	"github.com/lgbarn/shogi-core-go/internal/bitboard"
	"github.com/lgbarn/shogi-core-go/internal/position"
	"github.com/lgbarn/shogi-core-go/internal/shogi"
)

// PositionStatus is the state of a position as judged by a Checker.
type PositionStatus uint8

const (
	BlackWins PositionStatus = iota + 1
	WhiteWins
	Draw
	InProgress
	Invalid
)

func (s PositionStatus) String() string {
	switch s {
	case BlackWins:
		return "BlackWins"
	case WhiteWins:
		return "WhiteWins"
	case Draw:
		return "Draw"
	case InProgress:
		return "InProgress"
	case Invalid:
		return "Invalid"
	}
	return "PositionStatus(?)"
}

// Checker judges positions and moves.
//
// IsLegalPartial and IsLegalPartialLite are only meaningful while the
// position is in progress; use the package-level IsLegal and IsLegalLite,
// which check the status first.
type Checker interface {
	// Status judges a position with its full history, so repetition can be
	// taken into account.
	Status(pos *position.Position) PositionStatus
	// StatusPartial judges a position without history.
	StatusPartial(p *position.PartialPosition) PositionStatus
	// IsLegalPartial returns nil or the IllegalMoveKind describing why mv is
	// illegal.
	IsLegalPartial(p *position.PartialPosition, mv shogi.Move) error
	// IsLegalPartialLite may skip expensive checks (such as drop pawn mate)
	// and so may accept some illegal moves.
	IsLegalPartialLite(p *position.PartialPosition, mv shogi.Move) bool
	// AllLegalMovesPartial lists every legal move.
	AllLegalMovesPartial(p *position.PartialPosition) []shogi.Move
	// NormalFromCandidates returns the squares the piece on from can legally move to.
	NormalFromCandidates(p *position.PartialPosition, from shogi.Square) bitboard.Bitboard
	// NormalToCandidates returns the squares from which piece can legally
	// move to to. piece is the piece after the move.
	NormalToCandidates(p *position.PartialPosition, to shogi.Square, piece shogi.Piece) bitboard.Bitboard
	// DropCandidates returns the squares piece can legally be dropped on.
	DropCandidates(p *position.PartialPosition, piece shogi.Piece) bitboard.Bitboard
}

// IsLegal checks mv against the full position. A finished game rejects
// every move with GameFinished.
func IsLegal(c Checker, pos *position.Position, mv shogi.Move) error {
	if c.Status(pos) != InProgress {
		return shogi.GameFinished
	}
	return c.IsLegalPartial(pos.Inner(), mv)
}

// IsLegalLite is the inexpensive variant of IsLegal.
func IsLegalLite(c Checker, pos *position.Position, mv shogi.Move) bool {
	if c.Status(pos) != InProgress {
		return false
	}
	return c.IsLegalPartialLite(pos.Inner(), mv)
}

// IsLegalPartial checks mv against a position without history.
func IsLegalPartial(c Checker, p *position.PartialPosition, mv shogi.Move) error {
	if c.StatusPartial(p) != InProgress {
		return shogi.GameFinished
	}
	return c.IsLegalPartial(p, mv)
}

// AllLegalMoves lists the legal moves of the full position, none once the
// game is over.
func AllLegalMoves(c Checker, pos *position.Position) []shogi.Move {
	if c.Status(pos) != InProgress {
		return nil
	}
	return c.AllLegalMovesPartial(pos.Inner())
}

// MakeMove checks mv and applies it. The position is unchanged on error.
func MakeMove(c Checker, pos *position.Position, mv shogi.Move) error {
	if err := IsLegal(c, pos, mv); err != nil {
		return err
	}
	if !pos.MakeMove(mv) {
		return shogi.IncorrectMove
	}
	return nil
}
