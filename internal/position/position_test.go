package position

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/shogi-core-go/internal/bitboard"
	"github.com/lgbarn/shogi-core-go/internal/shogi"
	"github.com/lgbarn/shogi-core-go/internal/testutil"
)

const startSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

func mustMove(t *testing.T, pos *Position, mv shogi.Move) {
	t.Helper()
	if !pos.MakeMove(mv) {
		t.Fatalf("MakeMove(%v) failed at %s", mv, pos.ToSFEN())
	}
}

func TestStartposSFEN(t *testing.T) {
	p := StartposPartial()
	testutil.AssertEqual(t, p.ToSFEN(), startSFEN)
	testutil.AssertNoError(t, p.Validate())
	testutil.AssertEqual(t, p.SideToMove(), shogi.Black)
	testutil.AssertEqual(t, p.Ply(), uint16(1))
	testutil.AssertEqual(t, p.OccupiedBitboard().Count(), 40)

	king, ok := p.KingPosition(shogi.Black)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, king, shogi.SQ5I)
	king, ok = p.KingPosition(shogi.White)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, king, shogi.SQ5A)

	testutil.AssertEqual(t, p.PieceBitboard(shogi.BlackPawn).Count(), 9)
	testutil.AssertEqual(t, p.PieceKindBitboard(shogi.Gold).Count(), 4)
	testutil.AssertEqual(t, p.PieceBitboard(shogi.BlackBishop), bitboard.Single(shogi.SQ8H))
	testutil.AssertEqual(t, p.PieceBitboard(shogi.WhiteRook), bitboard.Single(shogi.SQ8B))
}

func TestEmptyPartial(t *testing.T) {
	p := EmptyPartial()
	testutil.AssertEqual(t, p.ToSFEN(), "9/9/9/9/9/9/9/9/9 b - 1")
	testutil.AssertTrue(t, p.OccupiedBitboard().IsEmpty())
	testutil.AssertEqual(t, p.VacantBitboard(), bitboard.Full())
	_, ok := p.KingPosition(shogi.Black)
	testutil.AssertFalse(t, ok)
	_, ok = p.LastMove()
	testutil.AssertFalse(t, ok)
}

func TestMakeMoveSFEN(t *testing.T) {
	pos := Startpos()
	mustMove(t, pos, shogi.NormalMove(shogi.SQ7G, shogi.SQ7F, false))
	testutil.AssertEqual(t, pos.ToSFEN(), "lnsgkgsnl/1r5b1/ppppppppp/9/9/2P6/PP1PPPPPP/1B5R1/LNSGKGSNL w - 2")

	mustMove(t, pos, shogi.NormalMove(shogi.SQ3C, shogi.SQ3D, false))
	mustMove(t, pos, shogi.NormalMove(shogi.SQ8H, shogi.SQ2B, true))
	mustMove(t, pos, shogi.NormalMove(shogi.SQ3A, shogi.SQ2B, false))
	testutil.AssertEqual(t, pos.ToSFEN(), "lnsgkg1nl/1r5s1/pppppp1pp/6p2/9/2P6/PP1PPPPPP/7R1/LNSGKGSNL b Bb 5")

	n, ok := pos.HandCount(shogi.BlackBishop)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, n, uint8(1))
	n, _ = pos.HandCount(shogi.WhiteBishop)
	testutil.AssertEqual(t, n, uint8(1), "captured promoted bishop returns to hand unpromoted")

	last, ok := pos.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, last, shogi.NormalMove(shogi.SQ3A, shogi.SQ2B, false))
	testutil.AssertEqual(t, len(pos.Moves()), 4)
	testutil.AssertNoError(t, pos.Inner().Validate())

	mustMove(t, pos, shogi.DropMove(shogi.BlackBishop, shogi.SQ5E))
	testutil.AssertEqual(t, pos.ToSFEN(), "lnsgkg1nl/1r5s1/pppppp1pp/6p2/4B4/2P6/PP1PPPPPP/7R1/LNSGKGSNL w b 6")
	cm, ok := pos.LastCompactMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertTrue(t, cm.IsDrop())
}

func TestMakeMoveRejects(t *testing.T) {
	setup := func() *PartialPosition {
		p := StartposPartial()
		p.SetHand(shogi.Black, shogi.Hand{1, 0, 0, 0, 0, 0, 0})
		return p
	}
	tests := []struct {
		name string
		mv   shogi.Move
	}{
		{"vacant source", shogi.NormalMove(shogi.SQ5E, shogi.SQ5D, false)},
		{"opponent piece", shogi.NormalMove(shogi.SQ3C, shogi.SQ3D, false)},
		{"own piece on target", shogi.NormalMove(shogi.SQ9I, shogi.SQ9G, false)},
		{"gold cannot promote", shogi.NormalMove(shogi.SQ6I, shogi.SQ6H, true)},
		{"king cannot promote", shogi.NormalMove(shogi.SQ5I, shogi.SQ5H, true)},
		{"same square", shogi.NormalMove(shogi.SQ7G, shogi.SQ7G, false)},
		{"drop opponent piece", shogi.DropMove(shogi.WhitePawn, shogi.SQ5E)},
		{"drop promoted piece", shogi.DropMove(shogi.BlackProPawn, shogi.SQ5E)},
		{"drop king", shogi.DropMove(shogi.BlackKing, shogi.SQ5E)},
		{"drop onto occupied", shogi.DropMove(shogi.BlackPawn, shogi.SQ5G)},
		{"drop not in hand", shogi.DropMove(shogi.BlackRook, shogi.SQ5E)},
		{"invalid destination", shogi.NormalMove(shogi.SQ7G, 0, false)},
		{"invalid source", shogi.NormalMove(90, shogi.SQ7F, false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := setup()
			before := *p
			if p.MakeMove(tt.mv) {
				t.Fatalf("MakeMove(%v) succeeded", tt.mv)
			}
			if *p != before {
				t.Errorf("failed MakeMove(%v) changed the position", tt.mv)
			}
		})
	}
}

func TestMakeMoveCaptureKingFails(t *testing.T) {
	p := EmptyPartial()
	p.SetPiece(shogi.SQ5E, shogi.SomePiece(shogi.BlackRook))
	p.SetPiece(shogi.SQ5A, shogi.SomePiece(shogi.WhiteKing))
	before := *p
	testutil.AssertFalse(t, p.MakeMove(shogi.NormalMove(shogi.SQ5E, shogi.SQ5A, false)))
	testutil.AssertTrue(t, *p == before)
}

func TestPlyWraps(t *testing.T) {
	p := StartposPartial()
	testutil.AssertFalse(t, p.SetPly(0))
	testutil.AssertEqual(t, p.Ply(), uint16(1))
	testutil.AssertTrue(t, p.SetPly(65535))
	testutil.AssertTrue(t, p.MakeMove(shogi.NormalMove(shogi.SQ7G, shogi.SQ7F, false)))
	testutil.AssertEqual(t, p.Ply(), uint16(0))
}

func TestSetPieceKingCache(t *testing.T) {
	p := EmptyPartial()
	p.SetPiece(shogi.SQ5I, shogi.SomePiece(shogi.BlackKing))
	sq, ok := p.KingPosition(shogi.Black)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, sq, shogi.SQ5I)

	// Overwriting the king clears the cache.
	p.SetPiece(shogi.SQ5I, shogi.SomePiece(shogi.BlackGold))
	_, ok = p.KingPosition(shogi.Black)
	testutil.AssertFalse(t, ok)
	testutil.AssertNoError(t, p.Validate())

	// Two kings of one color leave the cache empty.
	p.SetPiece(shogi.SQ1I, shogi.SomePiece(shogi.BlackKing))
	p.SetPiece(shogi.SQ9I, shogi.SomePiece(shogi.BlackKing))
	_, ok = p.KingPosition(shogi.Black)
	testutil.AssertFalse(t, ok)
	testutil.AssertNoError(t, p.Validate())

	p.SetPiece(shogi.SQ9I, shogi.NonePiece)
	sq, ok = p.KingPosition(shogi.Black)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, sq, shogi.SQ1I)

	// A white piece over the black king clears only Black's cache.
	p.SetPiece(shogi.SQ5A, shogi.SomePiece(shogi.WhiteKing))
	p.SetPiece(shogi.SQ1I, shogi.SomePiece(shogi.WhiteKing))
	_, ok = p.KingPosition(shogi.Black)
	testutil.AssertFalse(t, ok)
	_, ok = p.KingPosition(shogi.White)
	testutil.AssertFalse(t, ok, "two white kings")
	testutil.AssertNoError(t, p.Validate())
}

func TestValidateDetectsCorruption(t *testing.T) {
	p := StartposPartial()
	p.board[shogi.SQ5E.ArrayIndex()] = shogi.SomePiece(shogi.BlackGold)
	testutil.AssertError(t, p.Validate())

	p = StartposPartial()
	p.kingSquare[0] = shogi.SomeSquare(shogi.SQ1A)
	testutil.AssertError(t, p.Validate())

	p = StartposPartial()
	p.ply = 0
	testutil.AssertError(t, p.Validate())
}

func TestPutSFEN(t *testing.T) {
	p := StartposPartial()
	var buf [SFENBufferSize]byte
	n, ok := p.PutSFEN(buf[:])
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, string(buf[:n]), startSFEN)
	testutil.AssertEqual(t, buf[n], byte(0))

	small := make([]byte, len(startSFEN))
	_, ok = p.PutSFEN(small)
	testutil.AssertFalse(t, ok, "no room for the terminator")
}

func TestPutSFENWorstCase(t *testing.T) {
	p := EmptyPartial()
	for _, sq := range shogi.AllSquares() {
		p.SetPiece(sq, shogi.SomePiece(shogi.WhiteProRook))
	}
	var h shogi.Hand
	for i := 0; i < shogi.NumHandKinds; i++ {
		h[i] = 255
	}
	p.SetHand(shogi.Black, h)
	p.SetHand(shogi.White, h)
	p.SetPly(65535)

	var buf [SFENBufferSize]byte
	n, ok := p.PutSFEN(buf[:])
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, n, SFENBufferSize-1)
}

func TestUndoLastMove(t *testing.T) {
	pos := Startpos()
	_, ok := pos.UndoLastMove()
	testutil.AssertFalse(t, ok)

	mustMove(t, pos, shogi.NormalMove(shogi.SQ7G, shogi.SQ7F, false))
	mustMove(t, pos, shogi.NormalMove(shogi.SQ3C, shogi.SQ3D, false))
	mustMove(t, pos, shogi.NormalMove(shogi.SQ8H, shogi.SQ2B, true))

	mv, ok := pos.UndoLastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, mv, shogi.NormalMove(shogi.SQ8H, shogi.SQ2B, true))
	testutil.AssertEqual(t, pos.ToSFEN(), "lnsgkgsnl/1r5b1/pppppp1pp/6p2/9/2P6/PP1PPPPPP/1B5R1/LNSGKGSNL b - 3")
	testutil.AssertEqual(t, len(pos.Moves()), 2)
}

func TestMakeCompactMove(t *testing.T) {
	const after7g7f = "lnsgkgsnl/1r5b1/ppppppppp/9/9/2P6/PP1PPPPPP/1B5R1/LNSGKGSNL w - 2"
	cm := shogi.CompactMoveFromMove(shogi.NormalMove(shogi.SQ7G, shogi.SQ7F, false))

	partial := StartposPartial()
	testutil.AssertFalse(t, partial.MakeCompactMove(0))
	testutil.AssertFalse(t, partial.MakeCompactMove(shogi.CompactMoveFromMove(shogi.NormalMove(shogi.SQ7G, shogi.SQ7E, false))))
	testutil.AssertEqual(t, partial.ToSFEN(), startSFEN)
	_, ok := partial.LastCompactMove()
	testutil.AssertFalse(t, ok)

	testutil.AssertTrue(t, partial.MakeCompactMove(cm))
	testutil.AssertEqual(t, partial.ToSFEN(), after7g7f)
	last, ok := partial.LastCompactMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, last, cm)

	pos := Startpos()
	testutil.AssertFalse(t, pos.MakeCompactMove(0))
	testutil.AssertEqual(t, len(pos.Moves()), 0)
	testutil.AssertTrue(t, pos.MakeCompactMove(cm))
	testutil.AssertEqual(t, pos.ToSFEN(), after7g7f)
	mv, ok := pos.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, mv, cm.Move())
}

func TestSetLastMove(t *testing.T) {
	p := StartposPartial()
	drop := shogi.CompactMoveFromMove(shogi.DropMove(shogi.WhiteBishop, shogi.SQ5E))
	p.SetLastMove(shogi.SomeCompactMove(drop))

	got, ok := p.LastCompactMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, got, drop)
	mv, ok := p.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, mv, shogi.DropMove(shogi.WhiteBishop, shogi.SQ5E))
	testutil.AssertEqual(t, p.ToSFEN(), startSFEN)

	p.SetLastMove(shogi.NoneCompactMove)
	_, ok = p.LastMove()
	testutil.AssertFalse(t, ok)
}

func TestGameResolution(t *testing.T) {
	pos := Startpos()
	mustMove(t, pos, shogi.NormalMove(shogi.SQ7G, shogi.SQ7F, false))
	g := NewGame(pos)
	before := g.Position().ToSFEN()

	_, ok := g.Resolution()
	testutil.AssertFalse(t, ok)

	g.Resolve(shogi.WhiteWins)
	r, ok := g.Resolution()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, r, shogi.WhiteWins)
	testutil.AssertEqual(t, g.Position().ToSFEN(), before)

	g.Unresolve()
	_, ok = g.Resolution()
	testutil.AssertFalse(t, ok)

	pg := NewPartialGame(StartposPartial())
	pg.Resolve(shogi.Aborted)
	r, _ = pg.Resolution()
	testutil.AssertEqual(t, r, shogi.Aborted)
	testutil.AssertEqual(t, pg.Position().ToSFEN(), startSFEN)
}

// randomMove picks a move MakeMove may or may not accept: any own piece to
// any square, or any held piece to any square.
func randomMove(r *rand.Rand, p *PartialPosition) shogi.Move {
	side := p.SideToMove()
	hand := p.Hand(side)
	if !hand.IsEmpty() && r.Intn(4) == 0 {
		kind := shogi.PieceKind(r.Intn(shogi.NumHandKinds) + 1)
		to := shogi.Square(r.Intn(shogi.NumSquares) + 1)
		return shogi.DropMove(shogi.NewPiece(kind, side), to)
	}
	own := p.PlayerBitboard(side).Squares()
	from := own[r.Intn(len(own))]
	to := shogi.Square(r.Intn(shogi.NumSquares) + 1)
	return shogi.NormalMove(from, to, r.Intn(3) == 0)
}

func TestRandomGamesKeepInvariants(t *testing.T) {
	r := testutil.NewRand(t, 20240601)
	for game := 0; game < 20; game++ {
		pos := Startpos()
		for attempt := 0; attempt < 2000 && len(pos.Moves()) < 300; attempt++ {
			before := *pos.Inner()
			mv := randomMove(r, pos.Inner())
			if !pos.MakeMove(mv) {
				if *pos.Inner() != before {
					t.Fatalf("failed MakeMove(%v) changed %s", mv, before.ToSFEN())
				}
				continue
			}
			if err := pos.Inner().Validate(); err != nil {
				t.Fatalf("after %v: %v", mv, err)
			}
			if pos.SideToMove() == before.SideToMove() {
				t.Fatalf("side to move did not flip after %v", mv)
			}
			if pos.Ply() != before.Ply()+1 {
				t.Fatalf("ply %d after %d", pos.Ply(), before.Ply())
			}
			if pos.OccupiedBitboard().Count()+totalInHand(pos.Inner()) != 40 {
				t.Fatalf("piece count changed after %v: %s", mv, pos.ToSFEN())
			}
		}
		replayed, ok := pos.Replay()
		if !ok {
			t.Fatal("Replay() failed")
		}
		if !replayed.Equal(pos.Inner()) {
			t.Fatalf("Replay() = %s; want %s", replayed.ToSFEN(), pos.ToSFEN())
		}
	}
}

func totalInHand(p *PartialPosition) int {
	total := 0
	for _, c := range shogi.AllColors() {
		h := p.Hand(c)
		for i := 0; i < shogi.NumHandKinds; i++ {
			total += int(h[i])
		}
	}
	return total
}
