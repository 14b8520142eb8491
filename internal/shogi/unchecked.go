package shogi

// The constructors below skip validation. Callers must already have proven
// the precondition, typically because the value came out of a bitboard, a
// validated CompactMove or a buffer this package produced.

// SquareUnchecked converts v to a Square. v must be in 1..=81.
func SquareUnchecked(v uint8) Square {
	return Square(v)
}

// PieceKindUnchecked converts v to a PieceKind. v must be in 1..=14.
func PieceKindUnchecked(v uint8) PieceKind {
	return PieceKind(v)
}

// PieceUnchecked converts v to a Piece. v&15 must be in 1..=14 and v < 32.
func PieceUnchecked(v uint8) Piece {
	return Piece(v)
}

// CompactMoveUnchecked converts v to a CompactMove. v must satisfy
// CompactMoveFromUint16.
func CompactMoveUnchecked(v uint16) CompactMove {
	return CompactMove(v)
}

// GameResolutionUnchecked converts v to a GameResolution. v must be in 1..=5.
func GameResolutionUnchecked(v uint8) GameResolution {
	return GameResolution(v)
}
