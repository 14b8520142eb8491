package shogi

// Piece is a colored piece. The low four bits hold the kind and bit 4 is set
// for White, so valid values are 1..=14 and 17..=30.
type Piece uint8

const whiteBit = 16

// NumPieces is the number of distinct colored pieces.
const NumPieces = 2 * NumPieceKinds

// NewPiece combines a kind and a color.
func NewPiece(kind PieceKind, color Color) Piece {
	if color == White {
		return Piece(kind) | whiteBit
	}
	return Piece(kind)
}

// PieceFromUint8 converts a raw value, rejecting anything that is not a
// valid kind/color combination.
func PieceFromUint8(v uint8) (Piece, bool) {
	if (v&15)-1 >= NumPieceKinds || v >= 32 {
		return 0, false
	}
	return Piece(v), true
}

// Parts splits p into kind and color.
func (p Piece) Parts() (PieceKind, Color) {
	return p.Kind(), p.Color()
}

// Kind returns the piece's kind.
func (p Piece) Kind() PieceKind {
	return PieceKind(p & 15)
}

// Color returns the piece's owner.
func (p Piece) Color() Color {
	if p >= whiteBit {
		return White
	}
	return Black
}

// IsValid reports whether p holds a valid kind/color combination.
func (p Piece) IsValid() bool {
	_, ok := PieceFromUint8(uint8(p))
	return ok
}

// Promote returns the promoted piece of the same color.
func (p Piece) Promote() (Piece, bool) {
	kind, ok := p.Kind().Promote()
	if !ok {
		return 0, false
	}
	return NewPiece(kind, p.Color()), true
}

// Unpromote returns the unpromoted piece of the same color.
func (p Piece) Unpromote() (Piece, bool) {
	kind, ok := p.Kind().Unpromote()
	if !ok {
		return 0, false
	}
	return NewPiece(kind, p.Color()), true
}

// AllPieces returns the 28 pieces, Black's first.
func AllPieces() [NumPieces]Piece {
	var all [NumPieces]Piece
	for i, kind := range AllPieceKinds() {
		all[i] = NewPiece(kind, Black)
		all[i+NumPieceKinds] = NewPiece(kind, White)
	}
	return all
}

// String returns the USI symbol, e.g. "P", "+r".
func (p Piece) String() string {
	if !p.IsValid() {
		return "Piece(?)"
	}
	return string(p.AppendUSI(nil))
}
