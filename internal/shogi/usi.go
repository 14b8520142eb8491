package shogi

import "strconv"

const usiKindSymbols = "PLNSGBRK"

// AppendUSI appends 'b' or 'w'.
func (c Color) AppendUSI(dst []byte) []byte {
	if c == White {
		return append(dst, 'w')
	}
	return append(dst, 'b')
}

// AppendUSI appends the piece symbol: uppercase for Black, lowercase for
// White, with a leading '+' for promoted kinds.
func (p Piece) AppendUSI(dst []byte) []byte {
	kind := p.Kind()
	if base, ok := kind.Unpromote(); ok {
		dst = append(dst, '+')
		kind = base
	}
	sym := usiKindSymbols[kind-1]
	if p.Color() == White {
		sym += 'a' - 'A'
	}
	return append(dst, sym)
}

// PieceFromUSI parses a single piece symbol, with or without the '+' prefix.
func PieceFromUSI(s string) (Piece, bool) {
	promoted := false
	if len(s) == 2 && s[0] == '+' {
		promoted = true
		s = s[1:]
	}
	if len(s) != 1 {
		return 0, false
	}
	color := Black
	c := s[0]
	if c >= 'a' && c <= 'z' {
		color = White
		c -= 'a' - 'A'
	}
	for i := 0; i < len(usiKindSymbols); i++ {
		if usiKindSymbols[i] != c {
			continue
		}
		kind := PieceKind(i + 1)
		if promoted {
			var ok bool
			if kind, ok = kind.Promote(); !ok {
				return 0, false
			}
		}
		return NewPiece(kind, color), true
	}
	return 0, false
}

// AppendUSI appends the square in USI form, e.g. "7g".
func (s Square) AppendUSI(dst []byte) []byte {
	return append(dst, '0'+s.File(), 'a'+s.Rank()-1)
}

// AppendUSI appends the move in USI form: "7g7f", "8h2b+" or "P*5e".
// The dropped piece is always written uppercase. A move that fails IsValid
// is written as "?".
func (m Move) AppendUSI(dst []byte) []byte {
	if !m.IsValid() {
		return append(dst, '?')
	}
	if m.IsDrop() {
		dst = append(dst, usiKindSymbols[m.piece.Kind()-1], '*')
		return m.to.AppendUSI(dst)
	}
	dst = m.from.AppendUSI(dst)
	dst = m.to.AppendUSI(dst)
	if m.promote {
		dst = append(dst, '+')
	}
	return dst
}

// AppendHandsUSI appends the hand field of an SFEN string. Black's pieces
// come first, each side in rook-to-pawn order, counts written only when
// greater than one. Two empty hands are written as "-".
func AppendHandsUSI(dst []byte, hands [NumColors]Hand) []byte {
	if hands[0].IsEmpty() && hands[1].IsEmpty() {
		return append(dst, '-')
	}
	for _, color := range AllColors() {
		hand := hands[color.ArrayIndex()]
		for i := NumHandKinds - 1; i >= 0; i-- {
			count := hand[i]
			if count == 0 {
				continue
			}
			if count > 1 {
				dst = strconv.AppendUint(dst, uint64(count), 10)
			}
			dst = NewPiece(PieceKind(i+1), color).AppendUSI(dst)
		}
	}
	return dst
}
