package shogi

import "encoding/binary"

// Hand holds the pieces one player has captured, one counter per droppable
// kind. The eighth byte is padding so the block packs into a uint64.
type Hand [8]uint8

func handIndex(kind PieceKind) (int, bool) {
	i := int(kind) - 1
	if i < 0 || i >= NumHandKinds {
		return 0, false
	}
	return i, true
}

// Count returns how many pieces of kind are held. It fails for kinds that
// cannot be in hand.
func (h Hand) Count(kind PieceKind) (uint8, bool) {
	i, ok := handIndex(kind)
	if !ok {
		return 0, false
	}
	return h[i], true
}

// Added returns h with one more piece of kind. The counter wraps past 255.
func (h Hand) Added(kind PieceKind) (Hand, bool) {
	i, ok := handIndex(kind)
	if !ok {
		return h, false
	}
	h[i]++
	return h, true
}

// Removed returns h with one piece of kind taken out. It fails when none is held.
func (h Hand) Removed(kind PieceKind) (Hand, bool) {
	i, ok := handIndex(kind)
	if !ok || h[i] == 0 {
		return h, false
	}
	h[i]--
	return h, true
}

// IsEmpty reports whether no piece is held.
func (h Hand) IsEmpty() bool {
	return h.Packed() == 0
}

// Packed returns the counter block as one little-endian word.
func (h Hand) Packed() uint64 {
	return binary.LittleEndian.Uint64(h[:])
}

// Equal compares the packed counter blocks.
func (h Hand) Equal(other Hand) bool {
	return h.Packed() == other.Packed()
}

// Compare orders hands by their packed counter block.
func (h Hand) Compare(other Hand) int {
	a, b := h.Packed(), other.Packed()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
