package shogi

// CompactMove is a Move packed into 16 bits. It is never zero.
//
//	normal: promote<<15 | from<<8 | to
//	drop:   piece<<8 | 0x80 | to
type CompactMove uint16

const (
	compactDropFlag    = 0x80
	compactPromoteFlag = 0x8000
	compactSquareMask  = 0x7f
)

// CompactMoveFromMove packs m.
func CompactMoveFromMove(m Move) CompactMove {
	if m.IsDrop() {
		return CompactMove(uint16(m.piece)<<8 | compactDropFlag | uint16(m.to))
	}
	v := uint16(m.from)<<8 | uint16(m.to)
	if m.promote {
		v |= compactPromoteFlag
	}
	return CompactMove(v)
}

// CompactMoveFromUint16 validates a raw value: both squares (or the dropped
// piece) must decode to valid identifiers.
func CompactMoveFromUint16(v uint16) (CompactMove, bool) {
	if _, ok := SquareFromUint8(uint8(v & compactSquareMask)); !ok {
		return 0, false
	}
	if v&compactDropFlag != 0 {
		if _, ok := PieceFromUint8(uint8(v >> 8)); !ok {
			return 0, false
		}
		return CompactMove(v), true
	}
	if _, ok := SquareFromUint8(uint8(v>>8) & compactSquareMask); !ok {
		return 0, false
	}
	return CompactMove(v), true
}

// IsDrop reports whether the packed move is a drop.
func (c CompactMove) IsDrop() bool {
	return c&compactDropFlag != 0
}

// To returns the destination square.
func (c CompactMove) To() Square {
	return SquareUnchecked(uint8(c) & compactSquareMask)
}

// From returns the source square of a normal move.
func (c CompactMove) From() (Square, bool) {
	if c.IsDrop() {
		return 0, false
	}
	return SquareUnchecked(uint8(c>>8) & compactSquareMask), true
}

// IsPromoting reports whether a normal move promotes.
func (c CompactMove) IsPromoting() bool {
	return !c.IsDrop() && c&compactPromoteFlag != 0
}

// Move unpacks c.
func (c CompactMove) Move() Move {
	to := c.To()
	if c.IsDrop() {
		return DropMove(PieceUnchecked(uint8(c>>8)), to)
	}
	from, _ := c.From()
	return NormalMove(from, to, c.IsPromoting())
}

// Uint16 returns the raw encoding.
func (c CompactMove) Uint16() uint16 {
	return uint16(c)
}

func (c CompactMove) String() string {
	return c.Move().String()
}
