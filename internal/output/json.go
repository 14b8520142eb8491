package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/lgbarn/shogi-core-go/internal/config"
	"github.com/lgbarn/shogi-core-go/internal/hashing"
	"github.com/lgbarn/shogi-core-go/internal/shogi"
)

// JSONRecord represents a record in JSON format.
type JSONRecord struct {
	Index       int        `json:"index"`
	InitialSFEN string     `json:"initialSFEN"`
	FinalSFEN   string     `json:"finalSFEN"`
	Moves       []JSONMove `json:"moves,omitempty"`
	PlyCount    int        `json:"plyCount"`
	Resolution  string     `json:"resolution,omitempty"`
	ZobristKey  string     `json:"zobristKey"`
	Repetitions int        `json:"repetitions,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply     int    `json:"ply"`
	Color   string `json:"color"`
	USI     string `json:"usi"`
	Compact uint16 `json:"compact"`
	SFEN    string `json:"sfen,omitempty"`
}

// JSONOutput holds multiple records for array output.
type JSONOutput struct {
	Records []*JSONRecord `json:"records"`
}

// RecordToJSON converts a record to its JSON form.
func RecordToJSON(rec *Record, cfg *config.Config) *JSONRecord {
	pos := rec.Game.Position()
	initial := pos.Initial()

	jr := &JSONRecord{
		Index:       rec.Index,
		InitialSFEN: initial.ToSFEN(),
		FinalSFEN:   pos.ToSFEN(),
		PlyCount:    len(pos.Moves()),
		ZobristKey:  fmt.Sprintf("%016x", hashing.Key(pos.Inner())),
		Repetitions: rec.Repetitions,
	}
	if r, ok := rec.Game.Resolution(); ok {
		jr.Resolution = r.String()
	}

	side := initial.SideToMove()
	jr.Moves = lo.Map(pos.Moves(), func(mv shogi.Move, i int) JSONMove {
		c := side
		if i%2 == 1 {
			c = side.Flip()
		}
		return JSONMove{
			Ply:     i + 1,
			Color:   c.String(),
			USI:     mv.String(),
			Compact: shogi.CompactMoveFromMove(mv).Uint16(),
		}
	})

	if cfg.Output.MoveSFEN {
		p := initial.Clone()
		for i, mv := range pos.Moves() {
			p.MakeMove(mv)
			jr.Moves[i].SFEN = p.ToSFEN()
		}
	}
	return jr
}

// JSONWriter writes records in JSON format.
// It buffers records and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	records []*JSONRecord
	single  bool // If true, write each record immediately as one line
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches records and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		records: make([]*JSONRecord, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each record immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteRecord buffers a record for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteRecord(rec *Record) error {
	jr := RecordToJSON(rec, jw.cfg)
	if jw.single {
		return json.NewEncoder(jw.w).Encode(jr)
	}
	jw.records = append(jw.records, jr)
	return nil
}

// Flush writes all buffered records as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.records) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Records: jw.records})

	// Clear buffer after writing
	jw.records = jw.records[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
