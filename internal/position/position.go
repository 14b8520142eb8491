package position

import (
	"github.com/lgbarn/shogi-core-go/internal/bitboard"
	"github.com/lgbarn/shogi-core-go/internal/shogi"
)

// Position is a PartialPosition together with the position it started from
// and every move made since. Replaying the moves on the initial position
// always reproduces the current one.
type Position struct {
	initial PartialPosition
	inner   PartialPosition
	moves   []shogi.Move
}

// Startpos returns a game history starting from the standard position.
func Startpos() *Position {
	return FromPartial(StartposPartial())
}

// FromPartial starts a history at an arbitrary position. p is copied.
func FromPartial(p *PartialPosition) *Position {
	return &Position{initial: *p, inner: *p}
}

// MakeMove applies mv and records it. On failure nothing changes.
func (pos *Position) MakeMove(mv shogi.Move) bool {
	if !pos.inner.MakeMove(mv) {
		return false
	}
	pos.moves = append(pos.moves, mv)
	return true
}

// MakeCompactMove is MakeMove for a packed move.
func (pos *Position) MakeCompactMove(cm shogi.CompactMove) bool {
	return pos.MakeMove(cm.Move())
}

// UndoLastMove removes the most recent move by replaying the rest of the
// history from the initial position.
func (pos *Position) UndoLastMove() (shogi.Move, bool) {
	if len(pos.moves) == 0 {
		return shogi.Move{}, false
	}
	last := pos.moves[len(pos.moves)-1]
	inner := pos.initial
	for _, mv := range pos.moves[:len(pos.moves)-1] {
		if !inner.MakeMove(mv) {
			return shogi.Move{}, false
		}
	}
	pos.inner = inner
	pos.moves = pos.moves[:len(pos.moves)-1]
	return last, true
}

// Replay applies the recorded moves to a copy of the initial position.
func (pos *Position) Replay() (*PartialPosition, bool) {
	p := pos.initial
	for _, mv := range pos.moves {
		if !p.MakeMove(mv) {
			return nil, false
		}
	}
	return &p, true
}

// Moves returns the moves made so far. The slice must not be modified.
func (pos *Position) Moves() []shogi.Move {
	return pos.moves
}

// Initial returns the position the history started from.
func (pos *Position) Initial() *PartialPosition {
	return &pos.initial
}

// Inner returns the current position. Changing it through SetPiece or
// similar breaks the replay guarantee.
func (pos *Position) Inner() *PartialPosition {
	return &pos.inner
}

// Equal compares initial position, current position and move list.
func (pos *Position) Equal(o *Position) bool {
	if !pos.initial.Equal(&o.initial) || !pos.inner.Equal(&o.inner) || len(pos.moves) != len(o.moves) {
		return false
	}
	for i := range pos.moves {
		if pos.moves[i] != o.moves[i] {
			return false
		}
	}
	return true
}

func (pos *Position) SideToMove() shogi.Color { return pos.inner.SideToMove() }

func (pos *Position) Ply() uint16 { return pos.inner.Ply() }

func (pos *Position) Hand(c shogi.Color) shogi.Hand { return pos.inner.Hand(c) }

func (pos *Position) HandCount(piece shogi.Piece) (uint8, bool) { return pos.inner.HandCount(piece) }

func (pos *Position) PieceAt(sq shogi.Square) (shogi.Piece, bool) { return pos.inner.PieceAt(sq) }

func (pos *Position) OccupiedBitboard() bitboard.Bitboard { return pos.inner.OccupiedBitboard() }

func (pos *Position) VacantBitboard() bitboard.Bitboard { return pos.inner.VacantBitboard() }

func (pos *Position) PlayerBitboard(c shogi.Color) bitboard.Bitboard {
	return pos.inner.PlayerBitboard(c)
}

func (pos *Position) PieceBitboard(piece shogi.Piece) bitboard.Bitboard {
	return pos.inner.PieceBitboard(piece)
}

func (pos *Position) PieceKindBitboard(kind shogi.PieceKind) bitboard.Bitboard {
	return pos.inner.PieceKindBitboard(kind)
}

func (pos *Position) KingPosition(c shogi.Color) (shogi.Square, bool) {
	return pos.inner.KingPosition(c)
}

func (pos *Position) LastMove() (shogi.Move, bool) { return pos.inner.LastMove() }

func (pos *Position) LastCompactMove() (shogi.CompactMove, bool) { return pos.inner.LastCompactMove() }

// ToSFEN returns the current position as SFEN.
func (pos *Position) ToSFEN() string { return pos.inner.ToSFEN() }
