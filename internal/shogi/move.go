package shogi

// Move is either a normal move (from, to, promote) or a drop (piece, to).
// A drop is recognised by its zero source square.
type Move struct {
	from    Square
	to      Square
	promote bool
	piece   Piece
}

// NormalMove builds a board move.
func NormalMove(from, to Square, promote bool) Move {
	return Move{from: from, to: to, promote: promote}
}

// DropMove builds a move placing piece from hand onto to.
func DropMove(piece Piece, to Square) Move {
	return Move{to: to, piece: piece}
}

// IsDrop reports whether m is a drop.
func (m Move) IsDrop() bool {
	return m.from == 0
}

// From returns the source square of a normal move.
func (m Move) From() (Square, bool) {
	if m.IsDrop() {
		return 0, false
	}
	return m.from, true
}

// To returns the destination square.
func (m Move) To() Square {
	return m.to
}

// IsPromoting reports whether a normal move promotes. Drops never do.
func (m Move) IsPromoting() bool {
	return m.promote
}

// DroppedPiece returns the piece placed by a drop.
func (m Move) DroppedPiece() (Piece, bool) {
	if !m.IsDrop() {
		return 0, false
	}
	return m.piece, true
}

// IsValid reports whether the squares are on the board and a dropped piece
// is an unpromoted droppable kind.
func (m Move) IsValid() bool {
	if !m.to.IsValid() {
		return false
	}
	if m.IsDrop() {
		return m.piece.IsValid() && m.piece.Kind().IsDroppable()
	}
	return m.from.IsValid()
}

// Equal reports whether two moves are the same.
func (m Move) Equal(other Move) bool {
	return m == other
}

// String returns the move in USI notation.
func (m Move) String() string {
	if !m.IsValid() {
		return "Move(?)"
	}
	return string(m.AppendUSI(nil))
}
