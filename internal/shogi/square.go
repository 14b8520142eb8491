package shogi

import "fmt"

// Square is a board square, 1..=81. The index is file*9 + rank - 9, so the
// nine squares of a file are contiguous and file 1 comes first.
type Square uint8

// NumSquares is the number of squares on the board.
const NumSquares = 81

// NewSquare returns the square at (file, rank). Both coordinates must be in 1..=9.
func NewSquare(file, rank uint8) (Square, bool) {
	if file-1 >= 9 || rank-1 >= 9 {
		return 0, false
	}
	return Square(file*9 + rank - 9), true
}

// NewRelativeSquare is NewSquare seen from color's side of the board.
// For White the result is rotated by 180 degrees.
func NewRelativeSquare(file, rank uint8, color Color) (Square, bool) {
	sq, ok := NewSquare(file, rank)
	if !ok {
		return 0, false
	}
	if color == White {
		return sq.Flip(), true
	}
	return sq, true
}

// SquareFromUint8 converts a raw index, rejecting anything outside 1..=81.
func SquareFromUint8(v uint8) (Square, bool) {
	if v-1 >= NumSquares {
		return 0, false
	}
	return Square(v), true
}

// File returns the file, 1..=9.
func (s Square) File() uint8 {
	return (uint8(s) + 8) / 9
}

// Rank returns the rank, 1..=9.
func (s Square) Rank() uint8 {
	return (uint8(s)-1)%9 + 1
}

// Index returns the raw index, 1..=81.
func (s Square) Index() uint8 {
	return uint8(s)
}

// ArrayIndex returns the zero-based index, 0..=80.
func (s Square) ArrayIndex() int {
	return int(s) - 1
}

// RelativeFile returns the file as seen by color.
func (s Square) RelativeFile(color Color) uint8 {
	if color == White {
		return 10 - s.File()
	}
	return s.File()
}

// RelativeRank returns the rank as seen by color.
func (s Square) RelativeRank(color Color) uint8 {
	if color == White {
		return 10 - s.Rank()
	}
	return s.Rank()
}

// Flip rotates the square by 180 degrees.
func (s Square) Flip() Square {
	return 82 - s
}

// Shift moves the square by the given deltas. It reports false when the
// destination falls off the board.
func (s Square) Shift(fileDelta, rankDelta int8) (Square, bool) {
	file := int(s.File()) + int(fileDelta)
	rank := int(s.Rank()) + int(rankDelta)
	if file < 1 || file > 9 || rank < 1 || rank > 9 {
		return 0, false
	}
	return Square(file*9 + rank - 9), true
}

// IsValid reports whether s is in 1..=81.
func (s Square) IsValid() bool {
	return s-1 < NumSquares
}

// AllSquares returns every square in index order (1A, 1B, ..., 9I).
func AllSquares() [NumSquares]Square {
	var all [NumSquares]Square
	for i := range all {
		all[i] = Square(i + 1)
	}
	return all
}

// String returns the USI name of the square, e.g. "7g".
func (s Square) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Square(%d)", uint8(s))
	}
	return string([]byte{'0' + s.File(), 'a' + s.Rank() - 1})
}
