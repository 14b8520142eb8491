package hashing

import (
	"math"

	"github.com/cespare/xxhash"
	"lukechampine.com/frand"

	"github.com/lgbarn/shogi-core-go/internal/position"
	"github.com/lgbarn/shogi-core-go/internal/shogi"
)

// maxHandCount is the number of distinct values a hand counter can take.
const maxHandCount = 256

// Zobrist holds the random keys for position hashing. Keys for the board
// are indexed by the raw piece value, so White's pieces start at 17.
type Zobrist struct {
	board [32][shogi.NumSquares]uint64
	hand  [shogi.NumColors][shogi.NumHandKinds][maxHandCount]uint64
	white uint64
}

// defaultSeed fixes the keys so hashes are stable across runs.
var defaultSeed = [32]byte{
	's', 'h', 'o', 'g', 'i', '-', 'c', 'o', 'r', 'e', '-', 'z', 'o', 'b', 'r', 'i',
	's', 't', 0x5a, 0x0b, 0x71, 0x57, 0x2e, 0x11, 0x93, 0xc4, 0x08, 0xde, 0x6f, 0x42, 0x19, 0x81,
}

var defaultZobrist = NewZobrist(defaultSeed)

// NewZobrist generates a key set from seed. Equal seeds give equal keys.
func NewZobrist(seed [32]byte) *Zobrist {
	rng := frand.NewCustom(seed[:], 1024, 12)
	next := func() uint64 {
		return rng.Uint64n(math.MaxUint64) + 1
	}

	z := &Zobrist{}
	for _, piece := range shogi.AllPieces() {
		for i := range z.board[piece] {
			z.board[piece][i] = next()
		}
	}
	for c := range z.hand {
		for k := range z.hand[c] {
			// A count of zero contributes nothing, so empty hands hash alike.
			for n := 1; n < maxHandCount; n++ {
				z.hand[c][k][n] = next()
			}
		}
	}
	z.white = next()
	return z
}

// Key hashes the board, both hands and the side to move. The ply and the
// last move are ignored, so repeated positions share a key.
func (z *Zobrist) Key(p *position.PartialPosition) uint64 {
	var key uint64
	p.OccupiedBitboard().ForEach(func(sq shogi.Square) {
		piece, _ := p.PieceAt(sq)
		key ^= z.board[piece][sq.ArrayIndex()]
	})
	for _, c := range shogi.AllColors() {
		hand := p.Hand(c)
		for k := 0; k < shogi.NumHandKinds; k++ {
			key ^= z.hand[c.ArrayIndex()][k][hand[k]]
		}
	}
	if p.SideToMove() == shogi.White {
		key ^= z.white
	}
	return key
}

// Key hashes p with the default key set.
func Key(p *position.PartialPosition) uint64 {
	return defaultZobrist.Key(p)
}

// WeakHash is an independent hash of the same fields as Key, used to
// confirm a Zobrist match.
func WeakHash(p *position.PartialPosition) uint64 {
	var buf [shogi.NumSquares + 2*8 + 1]byte
	for _, sq := range shogi.AllSquares() {
		if piece, ok := p.PieceAt(sq); ok {
			buf[sq.ArrayIndex()] = uint8(piece)
		}
	}
	black, white := p.Hand(shogi.Black), p.Hand(shogi.White)
	copy(buf[shogi.NumSquares:], black[:])
	copy(buf[shogi.NumSquares+8:], white[:])
	buf[len(buf)-1] = uint8(p.SideToMove())
	return xxhash.Sum64(buf[:])
}

// RepetitionCount returns how many times the current position of pos has
// occurred in its history, counting the current occurrence.
func RepetitionCount(pos *position.Position) int {
	current := Key(pos.Inner())
	p := pos.Initial().Clone()
	count := 0
	if Key(p) == current {
		count++
	}
	for _, mv := range pos.Moves() {
		if !p.MakeMove(mv) {
			break
		}
		if Key(p) == current {
			count++
		}
	}
	return count
}
