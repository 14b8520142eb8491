// Package position holds shogi positions and games: the board array, the
// bitboards derived from it, both hands, the side to move and the ply.
//
// Moves are applied without legality checking. MakeMove only refuses moves
// that are structurally impossible, such as moving from an empty square or
// dropping a piece that is not in hand.
package position

import (
	"github.com/lgbarn/shogi-core-go/internal/bitboard"
	"github.com/lgbarn/shogi-core-go/internal/shogi"
)

// PartialPosition is a position without its move history.
//
// The board array is authoritative. playerBB, pieceBB and kingSquare are
// caches kept in sync by SetPiece.
type PartialPosition struct {
	side       shogi.Color
	ply        uint16
	hands      [shogi.NumColors]shogi.Hand
	board      [shogi.NumSquares]shogi.OptionPiece
	playerBB   [shogi.NumColors]bitboard.Bitboard
	pieceBB    [shogi.NumPieceKinds]bitboard.Bitboard
	lastMove   shogi.OptionCompactMove
	kingSquare [shogi.NumColors]shogi.OptionSquare
}

// EmptyPartial returns an empty board, empty hands, Black to move, ply 1.
func EmptyPartial() *PartialPosition {
	return &PartialPosition{side: shogi.Black, ply: 1}
}

var backRank = [9]shogi.PieceKind{
	shogi.Lance, shogi.Knight, shogi.Silver, shogi.Gold, shogi.King,
	shogi.Gold, shogi.Silver, shogi.Knight, shogi.Lance,
}

// StartposPartial returns the standard (hirate) starting position.
func StartposPartial() *PartialPosition {
	p := EmptyPartial()
	for file := uint8(1); file <= 9; file++ {
		kind := backRank[file-1]
		p.put(file, 1, shogi.NewPiece(kind, shogi.White))
		p.put(file, 3, shogi.WhitePawn)
		p.put(file, 7, shogi.BlackPawn)
		p.put(file, 9, shogi.NewPiece(kind, shogi.Black))
	}
	p.SetPiece(shogi.SQ8B, shogi.SomePiece(shogi.WhiteRook))
	p.SetPiece(shogi.SQ2B, shogi.SomePiece(shogi.WhiteBishop))
	p.SetPiece(shogi.SQ8H, shogi.SomePiece(shogi.BlackBishop))
	p.SetPiece(shogi.SQ2H, shogi.SomePiece(shogi.BlackRook))
	return p
}

func (p *PartialPosition) put(file, rank uint8, piece shogi.Piece) {
	sq, _ := shogi.NewSquare(file, rank)
	p.SetPiece(sq, shogi.SomePiece(piece))
}

// Clone returns an independent copy.
func (p *PartialPosition) Clone() *PartialPosition {
	c := *p
	return &c
}

// Equal reports whether both positions have the same board, hands, side,
// ply and last move. The caches are derived from the board and not compared.
func (p *PartialPosition) Equal(o *PartialPosition) bool {
	return p.side == o.side &&
		p.ply == o.ply &&
		p.hands[0].Equal(o.hands[0]) &&
		p.hands[1].Equal(o.hands[1]) &&
		p.board == o.board &&
		p.lastMove == o.lastMove
}

// SideToMove returns the player to move.
func (p *PartialPosition) SideToMove() shogi.Color {
	return p.side
}

// SetSideToMove sets the player to move.
func (p *PartialPosition) SetSideToMove(c shogi.Color) {
	p.side = c
}

// Ply returns the ply number. The starting position is ply 1.
func (p *PartialPosition) Ply() uint16 {
	return p.ply
}

// SetPly sets the ply number. Zero is rejected.
func (p *PartialPosition) SetPly(ply uint16) bool {
	if ply == 0 {
		return false
	}
	p.ply = ply
	return true
}

// Hand returns color's hand.
func (p *PartialPosition) Hand(c shogi.Color) shogi.Hand {
	return p.hands[c.ArrayIndex()]
}

// SetHand replaces color's hand.
func (p *PartialPosition) SetHand(c shogi.Color, h shogi.Hand) {
	p.hands[c.ArrayIndex()] = h
}

// HandCount returns how many of piece's kind its owner holds.
func (p *PartialPosition) HandCount(piece shogi.Piece) (uint8, bool) {
	return p.hands[piece.Color().ArrayIndex()].Count(piece.Kind())
}

// PieceAt returns the piece on sq, if any.
func (p *PartialPosition) PieceAt(sq shogi.Square) (shogi.Piece, bool) {
	return p.board[sq.ArrayIndex()].Get()
}

// SetPiece places piece on sq, or clears sq when piece is absent, and
// updates the bitboards and king cache.
func (p *PartialPosition) SetPiece(sq shogi.Square, piece shogi.OptionPiece) {
	var kingChanged [shogi.NumColors]bool
	i := sq.ArrayIndex()
	if old, ok := p.board[i].Get(); ok {
		kind, color := old.Parts()
		p.playerBB[color.ArrayIndex()] = p.playerBB[color.ArrayIndex()].Without(sq)
		p.pieceBB[kind.ArrayIndex()] = p.pieceBB[kind.ArrayIndex()].Without(sq)
		kingChanged[color.ArrayIndex()] = kind == shogi.King
	}
	p.board[i] = piece
	if np, ok := piece.Get(); ok {
		kind, color := np.Parts()
		p.playerBB[color.ArrayIndex()] = p.playerBB[color.ArrayIndex()].With(sq)
		p.pieceBB[kind.ArrayIndex()] = p.pieceBB[kind.ArrayIndex()].With(sq)
		kingChanged[color.ArrayIndex()] = kingChanged[color.ArrayIndex()] || kind == shogi.King
	}
	for _, c := range shogi.AllColors() {
		if kingChanged[c.ArrayIndex()] {
			p.refreshKing(c)
		}
	}
}

// refreshKing caches the king square of color when exactly one king of
// that color is on the board.
func (p *PartialPosition) refreshKing(c shogi.Color) {
	kings := p.PieceBitboard(shogi.NewPiece(shogi.King, c))
	p.kingSquare[c.ArrayIndex()] = shogi.NoneSquare
	if kings.Count() == 1 {
		sq, _ := kings.Pop()
		p.kingSquare[c.ArrayIndex()] = shogi.SomeSquare(sq)
	}
}

// OccupiedBitboard returns all occupied squares.
func (p *PartialPosition) OccupiedBitboard() bitboard.Bitboard {
	return p.playerBB[0].Or(p.playerBB[1])
}

// VacantBitboard returns all empty squares.
func (p *PartialPosition) VacantBitboard() bitboard.Bitboard {
	return p.OccupiedBitboard().Not()
}

// PlayerBitboard returns the squares occupied by color.
func (p *PartialPosition) PlayerBitboard(c shogi.Color) bitboard.Bitboard {
	return p.playerBB[c.ArrayIndex()]
}

// PieceKindBitboard returns the squares holding kind, either color.
func (p *PartialPosition) PieceKindBitboard(kind shogi.PieceKind) bitboard.Bitboard {
	return p.pieceBB[kind.ArrayIndex()]
}

// PieceBitboard returns the squares holding piece.
func (p *PartialPosition) PieceBitboard(piece shogi.Piece) bitboard.Bitboard {
	kind, color := piece.Parts()
	return p.pieceBB[kind.ArrayIndex()].And(p.playerBB[color.ArrayIndex()])
}

// KingPosition returns the square of color's king when exactly one is on
// the board.
func (p *PartialPosition) KingPosition(c shogi.Color) (shogi.Square, bool) {
	return p.kingSquare[c.ArrayIndex()].Get()
}

// LastCompactMove returns the most recent move in packed form.
func (p *PartialPosition) LastCompactMove() (shogi.CompactMove, bool) {
	return p.lastMove.Get()
}

// LastMove returns the most recent move.
func (p *PartialPosition) LastMove() (shogi.Move, bool) {
	cm, ok := p.lastMove.Get()
	if !ok {
		return shogi.Move{}, false
	}
	return cm.Move(), true
}

// SetLastMove overrides the recorded last move, as when loading a position
// from an external record.
func (p *PartialPosition) SetLastMove(mv shogi.OptionCompactMove) {
	p.lastMove = mv
}
