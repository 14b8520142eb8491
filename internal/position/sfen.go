package position

import (
	"strconv"

	"github.com/lgbarn/shogi-core-go/internal/shogi"
)

// SFENBufferSize is enough room for any SFEN PutSFEN can write, terminator
// included: 170 bytes of board (81 promoted pieces and 8 slashes), 3 for
// the side field, 56 for fourteen hand entries with three-digit counts,
// 6 for the ply field and 1 for the terminating NUL.
const SFENBufferSize = 236

// ToSFEN returns the position as an SFEN string, e.g.
// "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1".
func (p *PartialPosition) ToSFEN() string {
	return string(p.AppendSFEN(make([]byte, 0, 128)))
}

// AppendSFEN appends the SFEN string to dst.
func (p *PartialPosition) AppendSFEN(dst []byte) []byte {
	dst = p.appendBoard(dst)
	dst = append(dst, ' ')
	dst = p.side.AppendUSI(dst)
	dst = append(dst, ' ')
	dst = shogi.AppendHandsUSI(dst, p.hands)
	dst = append(dst, ' ')
	return strconv.AppendUint(dst, uint64(p.ply), 10)
}

// PutSFEN writes the SFEN string followed by a NUL byte into buf and returns
// the string length. Nothing is written if buf is too small; a buffer of
// SFENBufferSize bytes always suffices.
func (p *PartialPosition) PutSFEN(buf []byte) (int, bool) {
	var scratch [SFENBufferSize]byte
	s := p.AppendSFEN(scratch[:0])
	if len(s)+1 > len(buf) {
		return 0, false
	}
	n := copy(buf, s)
	buf[n] = 0
	return n, true
}

// Rows run from rank 1 to rank 9, each from file 9 to file 1.
func (p *PartialPosition) appendBoard(dst []byte) []byte {
	for rank := uint8(1); rank <= 9; rank++ {
		if rank > 1 {
			dst = append(dst, '/')
		}
		vacant := byte(0)
		for file := uint8(9); file >= 1; file-- {
			sq, _ := shogi.NewSquare(file, rank)
			piece, ok := p.PieceAt(sq)
			if !ok {
				vacant++
				continue
			}
			if vacant > 0 {
				dst = append(dst, '0'+vacant)
				vacant = 0
			}
			dst = piece.AppendUSI(dst)
		}
		if vacant > 0 {
			dst = append(dst, '0'+vacant)
		}
	}
	return dst
}
