package shogi

// Option types carry an optional identifier in the identifier's own
// encoding, with zero meaning absent. They are the layout used when values
// cross into raw byte buffers or foreign callers.

// Absent values.
const (
	NoneSquare         OptionSquare         = 0
	NonePiece          OptionPiece          = 0
	NonePieceKind      OptionPieceKind      = 0
	NoneCompactMove    OptionCompactMove    = 0
	NoneGameResolution OptionGameResolution = 0
)

// OptionSquare is an optional Square.
type OptionSquare uint8

// SomeSquare wraps sq.
func SomeSquare(sq Square) OptionSquare { return OptionSquare(sq) }

// Get returns the square, if present.
func (o OptionSquare) Get() (Square, bool) { return SquareUnchecked(uint8(o)), o != 0 }

// IsSome reports whether a square is present.
func (o OptionSquare) IsSome() bool { return o != 0 }

// OptionPiece is an optional Piece.
type OptionPiece uint8

// SomePiece wraps p.
func SomePiece(p Piece) OptionPiece { return OptionPiece(p) }

// Get returns the piece, if present.
func (o OptionPiece) Get() (Piece, bool) { return PieceUnchecked(uint8(o)), o != 0 }

// IsSome reports whether a piece is present.
func (o OptionPiece) IsSome() bool { return o != 0 }

// OptionPieceKind is an optional PieceKind.
type OptionPieceKind uint8

// SomePieceKind wraps k.
func SomePieceKind(k PieceKind) OptionPieceKind { return OptionPieceKind(k) }

// Get returns the kind, if present.
func (o OptionPieceKind) Get() (PieceKind, bool) {
	return PieceKindUnchecked(uint8(o)), o != 0
}

// OptionCompactMove is an optional CompactMove.
type OptionCompactMove uint16

// SomeCompactMove wraps c.
func SomeCompactMove(c CompactMove) OptionCompactMove { return OptionCompactMove(c) }

// Get returns the move, if present.
func (o OptionCompactMove) Get() (CompactMove, bool) {
	return CompactMoveUnchecked(uint16(o)), o != 0
}

// OptionGameResolution is an optional GameResolution.
type OptionGameResolution uint8

// SomeGameResolution wraps r.
func SomeGameResolution(r GameResolution) OptionGameResolution { return OptionGameResolution(r) }

// Get returns the resolution, if present.
func (o OptionGameResolution) Get() (GameResolution, bool) {
	return GameResolutionUnchecked(uint8(o)), o != 0
}

// ResultIllegalMoveKind is zero for success, otherwise the IllegalMoveKind
// that caused the failure.
type ResultIllegalMoveKind uint8

// ResultFromError converts the result of a legality check. Errors that are
// not an IllegalMoveKind map to IncorrectMove.
func ResultFromError(err error) ResultIllegalMoveKind {
	if err == nil {
		return 0
	}
	if kind, ok := err.(IllegalMoveKind); ok {
		return ResultIllegalMoveKind(kind)
	}
	return ResultIllegalMoveKind(IncorrectMove)
}

// Err returns nil for success or the IllegalMoveKind.
func (r ResultIllegalMoveKind) Err() error {
	if r == 0 {
		return nil
	}
	return IllegalMoveKind(r)
}
