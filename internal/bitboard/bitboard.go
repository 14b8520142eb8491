// Package bitboard implements the 81-square set used by positions.
//
// Layout: square i (1..=81) is bit i-1 of word 0 when i <= 63, that is files
// 1..=7, and bit i-64 of word 1 otherwise (files 8 and 9). Each file is a
// contiguous run of nine bits, rank 1 lowest. Bit 63 of word 0 and bits 18
// and above of word 1 are always zero. Every mask and shift below is derived
// from the constants in this file.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/lgbarn/shogi-core-go/internal/shogi"
)

const (
	filesPerWord0 = 7
	bitsPerFile   = 9
	word0Squares  = filesPerWord0 * bitsPerFile
	word1Squares  = shogi.NumSquares - word0Squares
	word0Mask     = uint64(1)<<word0Squares - 1
	word1Mask     = uint64(1)<<word1Squares - 1
	fileMask      = uint64(1)<<bitsPerFile - 1
)

// Bitboard is a set of squares.
type Bitboard struct {
	w [2]uint64
}

var (
	fileMasks [10]Bitboard // index 1..=9
	rankMasks [10]Bitboard // index 1..=9
	// keepAfterUp[d] holds the ranks that stay on the board after shifting up by d.
	keepAfterUp [10]Bitboard
	// keepAfterDown[d] holds the ranks that stay on the board after shifting down by d.
	keepAfterDown [10]Bitboard
)

func init() {
	for _, sq := range shogi.AllSquares() {
		fileMasks[sq.File()] = fileMasks[sq.File()].With(sq)
		rankMasks[sq.Rank()] = rankMasks[sq.Rank()].With(sq)
	}
	for d := 0; d <= 9; d++ {
		for rank := 1; rank <= 9; rank++ {
			if rank <= 9-d {
				keepAfterUp[d] = keepAfterUp[d].Or(rankMasks[rank])
			}
			if rank > d {
				keepAfterDown[d] = keepAfterDown[d].Or(rankMasks[rank])
			}
		}
	}
}

// Empty returns the empty set.
func Empty() Bitboard {
	return Bitboard{}
}

// Full returns the set of all 81 squares.
func Full() Bitboard {
	return Bitboard{w: [2]uint64{word0Mask, word1Mask}}
}

// Single returns the set containing only sq. An invalid square gives the
// empty set.
func Single(sq shogi.Square) Bitboard {
	if !sq.IsValid() {
		return Bitboard{}
	}
	i := sq.ArrayIndex()
	if i < word0Squares {
		return Bitboard{w: [2]uint64{1 << i, 0}}
	}
	return Bitboard{w: [2]uint64{0, 1 << (i - word0Squares)}}
}

// FromWords rebuilds a bitboard from its raw words, rejecting words with
// bits outside the board.
func FromWords(w [2]uint64) (Bitboard, bool) {
	if w[0]&^word0Mask != 0 || w[1]&^word1Mask != 0 {
		return Bitboard{}, false
	}
	return Bitboard{w: w}, true
}

// FileMask returns the nine squares of file (1..=9).
func FileMask(file uint8) Bitboard {
	if file < 1 || file > 9 {
		return Bitboard{}
	}
	return fileMasks[file]
}

// RankMask returns the nine squares of rank (1..=9).
func RankMask(rank uint8) Bitboard {
	if rank < 1 || rank > 9 {
		return Bitboard{}
	}
	return rankMasks[rank]
}

// Words returns the raw words.
func (b Bitboard) Words() [2]uint64 {
	return b.w
}

// Contains reports whether sq is in the set.
func (b Bitboard) Contains(sq shogi.Square) bool {
	return !b.And(Single(sq)).IsEmpty()
}

// With returns b with sq added.
func (b Bitboard) With(sq shogi.Square) Bitboard {
	return b.Or(Single(sq))
}

// Without returns b with sq removed.
func (b Bitboard) Without(sq shogi.Square) Bitboard {
	return b.AndNot(Single(sq))
}

// IsEmpty reports whether the set is empty.
func (b Bitboard) IsEmpty() bool {
	return b.w[0]|b.w[1] == 0
}

// Count returns the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(b.w[0]) + bits.OnesCount64(b.w[1])
}

func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{w: [2]uint64{b.w[0] & o.w[0], b.w[1] & o.w[1]}}
}

func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{w: [2]uint64{b.w[0] | o.w[0], b.w[1] | o.w[1]}}
}

func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{w: [2]uint64{b.w[0] ^ o.w[0], b.w[1] ^ o.w[1]}}
}

// AndNot returns b minus o.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{w: [2]uint64{b.w[0] &^ o.w[0], b.w[1] &^ o.w[1]}}
}

// Not returns the complement within the 81 squares.
func (b Bitboard) Not() Bitboard {
	return Bitboard{w: [2]uint64{^b.w[0] & word0Mask, ^b.w[1] & word1Mask}}
}

// Equal reports whether both sets hold the same squares.
func (b Bitboard) Equal(o Bitboard) bool {
	return b.w == o.w
}

// Pop removes and returns the lowest-index square.
func (b *Bitboard) Pop() (shogi.Square, bool) {
	if b.w[0] != 0 {
		i := bits.TrailingZeros64(b.w[0])
		b.w[0] &= b.w[0] - 1
		return shogi.SquareUnchecked(uint8(i + 1)), true
	}
	if b.w[1] != 0 {
		i := bits.TrailingZeros64(b.w[1])
		b.w[1] &= b.w[1] - 1
		return shogi.SquareUnchecked(uint8(i + word0Squares + 1)), true
	}
	return 0, false
}

// ForEach calls fn for every square in ascending index order.
func (b Bitboard) ForEach(fn func(sq shogi.Square)) {
	for {
		sq, ok := b.Pop()
		if !ok {
			return
		}
		fn(sq)
	}
}

// Squares returns the squares in ascending index order.
func (b Bitboard) Squares() []shogi.Square {
	squares := make([]shogi.Square, 0, b.Count())
	b.ForEach(func(sq shogi.Square) {
		squares = append(squares, sq)
	})
	return squares
}

// String draws the board from Black's side, rank 1 on top and file 9 on
// the left.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := uint8(1); rank <= 9; rank++ {
		for file := uint8(9); file >= 1; file-- {
			sq, _ := shogi.NewSquare(file, rank)
			if b.Contains(sq) {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
