package bitboard

import "math/bits"

// The board as one 128-bit value: bit i-1 is square i for all 81 squares.
func (b Bitboard) wide() (lo, hi uint64) {
	return b.w[0] | b.w[1]<<word0Squares, b.w[1] >> (64 - word0Squares)
}

func fromWide(lo, hi uint64) Bitboard {
	w0 := lo & word0Mask
	w1 := (lo>>word0Squares | hi<<(64-word0Squares)) & word1Mask
	return Bitboard{w: [2]uint64{w0, w1}}
}

func shl128(lo, hi uint64, n uint) (uint64, uint64) {
	if n < 64 {
		return lo << n, hi<<n | lo>>(64-n)
	}
	return 0, lo << (n - 64)
}

func shr128(lo, hi uint64, n uint) (uint64, uint64) {
	if n < 64 {
		return lo>>n | hi<<(64-n), hi >> n
	}
	return hi >> (n - 64), 0
}

func clampDelta(delta int) uint {
	if delta < 0 {
		return 0
	}
	if delta > 9 {
		return 9
	}
	return uint(delta)
}

// ShiftUp moves every square delta ranks toward rank 1. Squares that leave
// the board are dropped. delta is clamped to 0..=9.
func (b Bitboard) ShiftUp(delta int) Bitboard {
	d := clampDelta(delta)
	keep := keepAfterUp[d]
	return Bitboard{w: [2]uint64{b.w[0] >> d & keep.w[0], b.w[1] >> d & keep.w[1]}}
}

// ShiftDown moves every square delta ranks toward rank 9.
func (b Bitboard) ShiftDown(delta int) Bitboard {
	d := clampDelta(delta)
	keep := keepAfterDown[d]
	return Bitboard{w: [2]uint64{b.w[0] << d & keep.w[0], b.w[1] << d & keep.w[1]}}
}

// ShiftLeft moves every square delta files toward file 9.
func (b Bitboard) ShiftLeft(delta int) Bitboard {
	lo, hi := b.wide()
	return fromWide(shl128(lo, hi, clampDelta(delta)*bitsPerFile))
}

// ShiftRight moves every square delta files toward file 1.
func (b Bitboard) ShiftRight(delta int) Bitboard {
	lo, hi := b.wide()
	return fromWide(shr128(lo, hi, clampDelta(delta)*bitsPerFile))
}

// Flip rotates the set by 180 degrees, mapping square i to 82-i.
func (b Bitboard) Flip() Bitboard {
	lo, hi := b.wide()
	// Reversing 128 bits maps bit p to 127-p; shifting down by 47 lands it on 80-p.
	rlo, rhi := bits.Reverse64(hi), bits.Reverse64(lo)
	return fromWide(shr128(rlo, rhi, 128-shogiBits))
}

const shogiBits = word0Squares + word1Squares

func fileShift(file uint8) (word int, shift uint) {
	if file <= filesPerWord0 {
		return 0, uint(file-1) * bitsPerFile
	}
	return 1, uint(file-1-filesPerWord0) * bitsPerFile
}

// File returns the nine bits of file (1..=9), rank 1 in bit 0.
func (b Bitboard) File(file uint8) uint16 {
	if file < 1 || file > 9 {
		return 0
	}
	word, shift := fileShift(file)
	return uint16(b.w[word] >> shift & fileMask)
}

// WithFile returns b with file (1..=9) replaced by the low nine bits of pattern.
func (b Bitboard) WithFile(file uint8, pattern uint16) Bitboard {
	if file < 1 || file > 9 {
		return b
	}
	word, shift := fileShift(file)
	b.w[word] = b.w[word]&^(fileMask<<shift) | (uint64(pattern)&fileMask)<<shift
	return b
}

// FromFile returns a set holding only the given pattern on file.
func FromFile(file uint8, pattern uint16) Bitboard {
	return Bitboard{}.WithFile(file, pattern)
}
