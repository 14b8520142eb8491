package position

import (
	"fmt"

	"github.com/lgbarn/shogi-core-go/internal/bitboard"
	"github.com/lgbarn/shogi-core-go/internal/errors"
	"github.com/lgbarn/shogi-core-go/internal/shogi"
)

// Validate cross-checks the board array against the bitboards and the king
// cache. A position built only through SetPiece and MakeMove always passes.
func (p *PartialPosition) Validate() error {
	if !p.side.IsValid() {
		return fmt.Errorf("side to move %d: %w", p.side, errors.ErrInconsistentPosition)
	}
	if p.ply == 0 {
		return fmt.Errorf("ply is zero: %w", errors.ErrInconsistentPosition)
	}

	var players [shogi.NumColors]bitboard.Bitboard
	var kinds [shogi.NumPieceKinds]bitboard.Bitboard
	for _, sq := range shogi.AllSquares() {
		opt := p.board[sq.ArrayIndex()]
		piece, ok := opt.Get()
		if !ok {
			continue
		}
		if !piece.IsValid() {
			return fmt.Errorf("invalid piece %d on %v: %w", uint8(opt), sq, errors.ErrInconsistentPosition)
		}
		kind, color := piece.Parts()
		players[color.ArrayIndex()] = players[color.ArrayIndex()].With(sq)
		kinds[kind.ArrayIndex()] = kinds[kind.ArrayIndex()].With(sq)
	}

	if p.playerBB != players {
		return fmt.Errorf("player bitboards disagree with board: %w", errors.ErrInconsistentPosition)
	}
	if p.pieceBB != kinds {
		return fmt.Errorf("piece bitboards disagree with board: %w", errors.ErrInconsistentPosition)
	}
	if !players[0].And(players[1]).IsEmpty() {
		return fmt.Errorf("player bitboards overlap: %w", errors.ErrInconsistentPosition)
	}

	for _, c := range shogi.AllColors() {
		kings := p.PieceBitboard(shogi.NewPiece(shogi.King, c))
		cached, ok := p.KingPosition(c)
		switch {
		case kings.Count() == 1 && (!ok || !kings.Contains(cached)):
			return fmt.Errorf("%v king cache is stale: %w", c, errors.ErrInconsistentPosition)
		case kings.Count() != 1 && ok:
			return fmt.Errorf("%v king cache set with %d kings: %w", c, kings.Count(), errors.ErrInconsistentPosition)
		}
	}
	return nil
}
