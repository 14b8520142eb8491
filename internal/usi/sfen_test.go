package usi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/shogi-core-go/internal/errors"
	"github.com/lgbarn/shogi-core-go/internal/position"
	"github.com/lgbarn/shogi-core-go/internal/shogi"
)

func TestParseSFENRoundTrip(t *testing.T) {
	for _, sfen := range []string{
		StartposSFEN,
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/2P6/PP1PPPPPP/1B5R1/LNSGKGSNL w - 2",
		"lnsgkg1nl/1r5s1/pppppp1pp/6p2/9/2P6/PP1PPPPPP/7R1/LNSGKGSNL b Bb 5",
		"8l/1l+R2P3/p2pBG1pp/kps1p4/Nn1P2G2/P1P1P2PP/1PS6/1KSG3+r1/LN2+p3L w Sbgn3p 124",
		"9/9/9/9/9/9/9/9/9 b 2R2B4G4S4N4L18P2p 1",
	} {
		t.Run(sfen, func(t *testing.T) {
			p, err := ParseSFEN(sfen)
			require.NoError(t, err)
			assert.Equal(t, sfen, p.ToSFEN())
			assert.NoError(t, p.Validate())
		})
	}
}

func TestParseSFENMatchesStartpos(t *testing.T) {
	p, err := ParseSFEN(StartposSFEN)
	require.NoError(t, err)
	assert.True(t, p.Equal(position.StartposPartial()))

	king, ok := p.KingPosition(shogi.White)
	assert.True(t, ok)
	assert.Equal(t, shogi.SQ5A, king)
}

func TestParseSFENWithoutPly(t *testing.T) {
	p, err := ParseSFEN("lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b -")
	require.NoError(t, err)
	assert.Equal(t, uint16(1), p.Ply())
}

func TestParseSFENErrors(t *testing.T) {
	tests := []struct {
		name string
		sfen string
	}{
		{"empty", ""},
		{"too few ranks", "9/9/9 b - 1"},
		{"long rank", "lnsgkgsnl1/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"},
		{"short rank", "lnsgkgsn/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"},
		{"bad piece", "lnsgxgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"},
		{"promoted gold", "lnsg+kgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSN b - 1"},
		{"bad side", "9/9/9/9/9/9/9/9/9 x - 1"},
		{"king in hand", "9/9/9/9/9/9/9/9/9 b K 1"},
		{"dangling count", "9/9/9/9/9/9/9/9/9 b 2 1"},
		{"huge count", "9/9/9/9/9/9/9/9/9 b 256P 1"},
		{"zero ply", "9/9/9/9/9/9/9/9/9 b - 0"},
		{"bad ply", "9/9/9/9/9/9/9/9/9 b - x"},
		{"extra field", "9/9/9/9/9/9/9/9/9 b - 1 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSFEN(tt.sfen)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidSFEN)
		})
	}
}
