// Package shogi defines the identifier types of the shogi data model:
// colors, squares, piece kinds, pieces, hands and moves.
//
// All identifiers are small integers whose zero value is never a valid
// member, so the zero value doubles as "absent" in the Option types.
package shogi

//go:generate go run ./gen -o consts_gen.go

// Color is a player, Black (sente) or White (gote).
type Color uint8

const (
	Black Color = 1
	White Color = 2
)

// NumColors is the number of players.
const NumColors = 2

// Flip returns the opponent's color.
func (c Color) Flip() Color {
	return c ^ 3
}

// ArrayIndex returns 0 for Black and 1 for White.
func (c Color) ArrayIndex() int {
	return int(c) - 1
}

// IsValid reports whether c is Black or White.
func (c Color) IsValid() bool {
	return c == Black || c == White
}

// AllColors returns Black and White in that order.
func AllColors() [NumColors]Color {
	return [NumColors]Color{Black, White}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Color(?)"
	}
}
