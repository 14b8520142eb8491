// Package output writes replayed game records in the supported formats.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/shogi-core-go/internal/config"
	"github.com/lgbarn/shogi-core-go/internal/kif"
	"github.com/lgbarn/shogi-core-go/internal/position"
	"github.com/lgbarn/shogi-core-go/internal/usi"
)

// Record is one replayed game and its place in the input.
type Record struct {
	// Index is the zero-based input position of the record
	Index int
	Game  *position.Game
	// Repetitions is the repetition count of the final position, 0 when not computed
	Repetitions int
}

// RecordWriter is the interface for writing records to output.
type RecordWriter interface {
	// WriteRecord writes a single record to the output.
	WriteRecord(rec *Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) (RecordWriter, error) {
	switch cfg.Output.Format {
	case config.SFEN:
		return NewSFENWriter(w), nil
	case config.USI:
		return NewUSIWriter(w), nil
	case config.JSON:
		if cfg.Output.JSONLines {
			return NewJSONWriterSingle(w, cfg), nil
		}
		return NewJSONWriter(w, cfg), nil
	case config.KIF:
		return NewKIFWriter(w, kif.Options{Encoding: cfg.Output.Encoding, Comment: cfg.Output.Comment}), nil
	}
	return nil, fmt.Errorf("no writer for format %v", cfg.Output.Format)
}

// lineWriter writes one line of text per record.
type lineWriter struct {
	bw     *bufio.Writer
	format func(*Record) string
}

func (lw *lineWriter) WriteRecord(rec *Record) error {
	if _, err := lw.bw.WriteString(lw.format(rec)); err != nil {
		return err
	}
	return lw.bw.WriteByte('\n')
}

func (lw *lineWriter) Flush() error { return lw.bw.Flush() }

func (lw *lineWriter) Close() error { return lw.Flush() }

// NewSFENWriter writes the final position of each record as an SFEN line.
func NewSFENWriter(w io.Writer) RecordWriter {
	return &lineWriter{
		bw:     bufio.NewWriter(w),
		format: func(rec *Record) string { return rec.Game.Position().ToSFEN() },
	}
}

// NewUSIWriter writes each record as a USI position command.
func NewUSIWriter(w io.Writer) RecordWriter {
	return &lineWriter{
		bw:     bufio.NewWriter(w),
		format: func(rec *Record) string { return usi.FormatPosition(rec.Game.Position()) },
	}
}

// KIFWriter writes records as KIF, separated by blank lines.
type KIFWriter struct {
	w       io.Writer
	opt     kif.Options
	written int
}

// NewKIFWriter creates a new KIF writer.
func NewKIFWriter(w io.Writer, opt kif.Options) *KIFWriter {
	return &KIFWriter{w: w, opt: opt}
}

// WriteRecord writes a record in KIF format.
func (kw *KIFWriter) WriteRecord(rec *Record) error {
	if kw.written > 0 {
		if _, err := io.WriteString(kw.w, "\n"); err != nil {
			return err
		}
	}
	kw.written++
	return kif.Write(kw.w, rec.Game, kw.opt)
}

// Flush is a no-op; kif.Write does not buffer across records.
func (kw *KIFWriter) Flush() error { return nil }

// Close closes the KIF writer.
func (kw *KIFWriter) Close() error { return nil }
