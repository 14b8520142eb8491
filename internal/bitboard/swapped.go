package bitboard

import "math/bits"

// Swapped is a bitboard whose words are stored byte-reversed, the layout
// some external board formats use. It supports the same set algebra.
type Swapped struct {
	w [2]uint64
}

var swappedFull = Swapped{w: [2]uint64{bits.ReverseBytes64(word0Mask), bits.ReverseBytes64(word1Mask)}}

// SwapBytes converts b to the byte-reversed layout.
func (b Bitboard) SwapBytes() Swapped {
	return Swapped{w: [2]uint64{bits.ReverseBytes64(b.w[0]), bits.ReverseBytes64(b.w[1])}}
}

// Unswap converts back to the native layout.
func (s Swapped) Unswap() Bitboard {
	return Bitboard{w: [2]uint64{bits.ReverseBytes64(s.w[0]), bits.ReverseBytes64(s.w[1])}}
}

// Words returns the raw byte-reversed words.
func (s Swapped) Words() [2]uint64 {
	return s.w
}

func (s Swapped) And(o Swapped) Swapped {
	return Swapped{w: [2]uint64{s.w[0] & o.w[0], s.w[1] & o.w[1]}}
}

func (s Swapped) Or(o Swapped) Swapped {
	return Swapped{w: [2]uint64{s.w[0] | o.w[0], s.w[1] | o.w[1]}}
}

func (s Swapped) Xor(o Swapped) Swapped {
	return Swapped{w: [2]uint64{s.w[0] ^ o.w[0], s.w[1] ^ o.w[1]}}
}

func (s Swapped) AndNot(o Swapped) Swapped {
	return Swapped{w: [2]uint64{s.w[0] &^ o.w[0], s.w[1] &^ o.w[1]}}
}

// Not returns the complement within the 81 squares.
func (s Swapped) Not() Swapped {
	return Swapped{w: [2]uint64{^s.w[0] & swappedFull.w[0], ^s.w[1] & swappedFull.w[1]}}
}

func (s Swapped) IsEmpty() bool {
	return s.w[0]|s.w[1] == 0
}

func (s Swapped) Count() int {
	return bits.OnesCount64(s.w[0]) + bits.OnesCount64(s.w[1])
}

func (s Swapped) Equal(o Swapped) bool {
	return s.w == o.w
}
