package position

import "github.com/lgbarn/shogi-core-go/internal/shogi"

// MakeMove applies mv for the side to move. It returns false, leaving p
// untouched, when the move is structurally impossible:
//
//   - a normal move from an empty square or a square held by the opponent
//   - promoting a piece that has no promoted form
//   - moving onto a square held by the mover
//   - capturing a piece that cannot go into hand (a king)
//   - dropping a piece of the wrong color, a promoted piece or a king
//   - dropping onto an occupied square or without the piece in hand
//
// Legality (checks, pawn drops, dead pieces) is not considered.
func (p *PartialPosition) MakeMove(mv shogi.Move) bool {
	if !mv.To().IsValid() {
		return false
	}
	var ok bool
	if mv.IsDrop() {
		ok = p.makeDrop(mv)
	} else {
		ok = p.makeNormal(mv)
	}
	if !ok {
		return false
	}
	p.lastMove = shogi.SomeCompactMove(shogi.CompactMoveFromMove(mv))
	p.side = p.side.Flip()
	p.ply++
	return true
}

// MakeCompactMove is MakeMove for a packed move.
func (p *PartialPosition) MakeCompactMove(cm shogi.CompactMove) bool {
	return p.MakeMove(cm.Move())
}

func (p *PartialPosition) makeNormal(mv shogi.Move) bool {
	from, _ := mv.From()
	to := mv.To()
	if !from.IsValid() {
		return false
	}
	moving, ok := p.PieceAt(from)
	if !ok || moving.Color() != p.side {
		return false
	}
	placed := moving
	if mv.IsPromoting() {
		if placed, ok = moving.Promote(); !ok {
			return false
		}
	}

	hand := p.Hand(p.side)
	if captured, ok := p.PieceAt(to); ok {
		if captured.Color() == p.side {
			return false
		}
		kind := captured.Kind()
		if base, ok := kind.Unpromote(); ok {
			kind = base
		}
		if hand, ok = hand.Added(kind); !ok {
			return false
		}
	}

	p.SetHand(p.side, hand)
	p.SetPiece(from, shogi.NonePiece)
	p.SetPiece(to, shogi.SomePiece(placed))
	return true
}

func (p *PartialPosition) makeDrop(mv shogi.Move) bool {
	piece, _ := mv.DroppedPiece()
	to := mv.To()
	if !piece.IsValid() || piece.Color() != p.side || piece.Kind().IsPromoted() {
		return false
	}
	if _, occupied := p.PieceAt(to); occupied {
		return false
	}
	hand, ok := p.Hand(p.side).Removed(piece.Kind())
	if !ok {
		return false
	}

	p.SetHand(p.side, hand)
	p.SetPiece(to, shogi.SomePiece(piece))
	return true
}
