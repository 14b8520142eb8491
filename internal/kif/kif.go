// Package kif writes games in KIF, the Japanese kifu text format read by
// most shogi GUIs.
package kif

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/lgbarn/shogi-core-go/internal/errors"
	"github.com/lgbarn/shogi-core-go/internal/position"
	"github.com/lgbarn/shogi-core-go/internal/shogi"
)

// Supported output encodings.
const (
	EncodingUTF8     = "utf-8"
	EncodingShiftJIS = "shift_jis"
)

// Options controls KIF output.
type Options struct {
	// Encoding is EncodingUTF8 (default) or EncodingShiftJIS.
	Encoding string
	// Comment is written as a leading "#" line when not empty.
	Comment string
}

var (
	moveNames = [shogi.NumPieceKinds + 1]string{
		"", "歩", "香", "桂", "銀", "金", "角", "飛", "玉",
		"と", "成香", "成桂", "成銀", "馬", "龍",
	}
	boardNames = [shogi.NumPieceKinds + 1]string{
		"", "歩", "香", "桂", "銀", "金", "角", "飛", "玉",
		"と", "杏", "圭", "全", "馬", "龍",
	}
	fileDigits = []string{"", "１", "２", "３", "４", "５", "６", "７", "８", "９"}
	rankKanji  = []string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	handOrder  = []shogi.PieceKind{
		shogi.Rook, shogi.Bishop, shogi.Gold, shogi.Silver, shogi.Knight, shogi.Lance, shogi.Pawn,
	}
)

// Write renders g as KIF and writes it to w.
func Write(w io.Writer, g *position.Game, opt Options) error {
	text, err := Format(g, opt)
	if err != nil {
		return err
	}
	switch opt.Encoding {
	case "", EncodingUTF8:
		_, err = io.WriteString(w, text)
		return err
	case EncodingShiftJIS:
		tw := transform.NewWriter(w, japanese.ShiftJIS.NewEncoder())
		if _, err := io.WriteString(tw, text); err != nil {
			return errors.Wrap(err, "shift_jis")
		}
		return tw.Close()
	}
	return fmt.Errorf("unknown KIF encoding %q: %w", opt.Encoding, errors.ErrInvalidConfig)
}

// Format renders g as KIF text (always UTF-8).
func Format(g *position.Game, opt Options) (string, error) {
	var sb strings.Builder
	pos := g.Position()

	if opt.Comment != "" {
		sb.WriteString("# " + opt.Comment + "\n")
	}
	writeInitial(&sb, pos.Initial())
	sb.WriteString("手数----指手---------消費時間--\n")

	p := pos.Initial().Clone()
	var prevTo shogi.Square
	for i, mv := range pos.Moves() {
		body, ok := moveText(p, mv, prevTo)
		if !ok || !p.MakeMove(mv) {
			return "", &errors.RecordError{Err: errors.ErrIllegalMove, Ply: i + 1, MoveText: mv.String()}
		}
		fmt.Fprintf(&sb, "%4d %s\n", i+1, body)
		prevTo = mv.To()
	}

	if r, ok := g.Resolution(); ok {
		sb.WriteString(resultLine(len(pos.Moves()), r) + "\n")
	}
	return sb.String(), nil
}

// moveText renders mv as played from p, e.g. "７六歩(77)", "同　銀(31)", "５五角打".
func moveText(p *position.PartialPosition, mv shogi.Move, prevTo shogi.Square) (string, bool) {
	var sb strings.Builder
	to := mv.To()
	if to == prevTo {
		sb.WriteString("同　")
	} else {
		sb.WriteString(fileDigits[to.File()] + rankKanji[to.Rank()])
	}

	if piece, ok := mv.DroppedPiece(); ok {
		sb.WriteString(moveNames[piece.Kind()] + "打")
		return sb.String(), true
	}

	from, _ := mv.From()
	piece, ok := p.PieceAt(from)
	if !ok {
		return "", false
	}
	sb.WriteString(moveNames[piece.Kind()])
	if mv.IsPromoting() {
		sb.WriteString("成")
	}
	fmt.Fprintf(&sb, "(%d%d)", from.File(), from.Rank())
	return sb.String(), true
}

func writeInitial(sb *strings.Builder, p *position.PartialPosition) {
	if p.Equal(position.StartposPartial()) {
		sb.WriteString("手合割：平手\n")
		return
	}
	sb.WriteString("後手の持駒：" + handText(p.Hand(shogi.White)) + "\n")
	sb.WriteString("  ９ ８ ７ ６ ５ ４ ３ ２ １\n")
	sb.WriteString("+---------------------------+\n")
	for rank := uint8(1); rank <= 9; rank++ {
		sb.WriteString("|")
		for file := uint8(9); file >= 1; file-- {
			sq, _ := shogi.NewSquare(file, rank)
			piece, ok := p.PieceAt(sq)
			switch {
			case !ok:
				sb.WriteString(" ・")
			case piece.Color() == shogi.White:
				sb.WriteString("v" + boardNames[piece.Kind()])
			default:
				sb.WriteString(" " + boardNames[piece.Kind()])
			}
		}
		sb.WriteString("|" + rankKanji[rank] + "\n")
	}
	sb.WriteString("+---------------------------+\n")
	sb.WriteString("先手の持駒：" + handText(p.Hand(shogi.Black)) + "\n")
	if p.SideToMove() == shogi.White {
		sb.WriteString("後手番\n")
	}
}

func handText(h shogi.Hand) string {
	if h.IsEmpty() {
		return "なし"
	}
	var sb strings.Builder
	for _, kind := range handOrder {
		n, _ := h.Count(kind)
		if n == 0 {
			continue
		}
		sb.WriteString(moveNames[kind])
		if n > 1 {
			sb.WriteString(kanjiNumber(int(n)))
		}
		sb.WriteString("　")
	}
	return sb.String()
}

// kanjiNumber writes 1..99 in kanji; larger counts fall back to digits.
func kanjiNumber(n int) string {
	if n < 1 || n > 99 {
		return strconv.Itoa(n)
	}
	var s string
	if tens := n / 10; tens > 0 {
		if tens > 1 {
			s = rankKanji[tens]
		}
		s += "十"
	}
	if ones := n % 10; ones > 0 {
		s += rankKanji[ones]
	}
	return s
}

func resultLine(plies int, r shogi.GameResolution) string {
	switch r {
	case shogi.BlackWins:
		return fmt.Sprintf("まで%d手で先手の勝ち", plies)
	case shogi.WhiteWins:
		return fmt.Sprintf("まで%d手で後手の勝ち", plies)
	case shogi.Draw:
		return fmt.Sprintf("まで%d手で引き分け", plies)
	case shogi.Rematch:
		return fmt.Sprintf("まで%d手で指し直し", plies)
	}
	return fmt.Sprintf("まで%d手で中断", plies)
}
