package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/shogi-core-go/internal/config"
	"github.com/lgbarn/shogi-core-go/internal/errors"
	"github.com/lgbarn/shogi-core-go/internal/hashing"
	"github.com/lgbarn/shogi-core-go/internal/output"
	"github.com/lgbarn/shogi-core-go/internal/position"
	"github.com/lgbarn/shogi-core-go/internal/shogi"
	"github.com/lgbarn/shogi-core-go/internal/usi"
	"github.com/lgbarn/shogi-core-go/internal/worker"
)

// maxLineSize bounds a single record line.
const maxLineSize = 1 << 20

// resultTokens are the values accepted after a trailing "result" keyword.
var resultTokens = map[string]shogi.GameResolution{
	"black":   shogi.BlackWins,
	"white":   shogi.WhiteWins,
	"draw":    shogi.Draw,
	"rematch": shogi.Rematch,
	"abort":   shogi.Aborted,
}

var hashTypes = map[string]hashing.HashType{
	config.HashFinal:    hashing.HashFinalPosition,
	config.HashAll:      hashing.HashAllPositions,
	config.HashSequence: hashing.HashMoveSequence,
}

type statistics struct {
	records    int
	written    int
	failed     int
	duplicates int
}

// processor replays records on a worker pool and writes them in input order.
type processor struct {
	cfg      *config.Config
	log      zerolog.Logger
	out      output.RecordWriter
	detector *hashing.ThreadSafeDuplicateDetector
	stats    statistics
}

func newProcessor(cfg *config.Config, logger zerolog.Logger) (*processor, error) {
	out, err := output.NewWriter(cfg.OutputFile, cfg)
	if err != nil {
		return nil, err
	}
	p := &processor{cfg: cfg, log: logger, out: out}
	if cfg.Duplicate.Suppress || cfg.Duplicate.DuplicateFile != nil {
		hasher := hashing.NewGameHasher(hashTypes[cfg.Duplicate.HashMode])
		p.detector = hashing.WrapDetector(
			hashing.NewDuplicateDetectorWithHasher(hasher, cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity))
	}
	return p, nil
}

// run reads all inputs and returns the first read, replay or write error
// that stops processing.
func (p *processor) run(ctx context.Context, inputs []input) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := worker.NewPool(p.replay,
		worker.WithWorkers(p.cfg.Workers),
		worker.WithBufferSize(p.cfg.BufferSize))
	pool.Start(ctx)

	var emitErr error
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer pool.Close()
		return readInputs(gctx, inputs, pool)
	})
	g.Go(func() error {
		emitErr = worker.InOrder(pool.Results(), func(r worker.ProcessResult) error {
			if err := p.emit(r); err != nil {
				cancel()
				return err
			}
			return nil
		})
		return emitErr
	})

	err := g.Wait()
	closeErr := p.out.Close()
	switch {
	case emitErr != nil:
		return emitErr
	case err != nil:
		return err
	}
	return closeErr
}

// readInputs submits every non-blank, non-comment line as a work item.
func readInputs(ctx context.Context, inputs []input, pool *worker.Pool) error {
	index := 0
	for _, in := range inputs {
		sc := bufio.NewScanner(in.r)
		sc.Buffer(make([]byte, 64*1024), maxLineSize)
		lineNo := 0
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			item := worker.WorkItem{
				Index:  index,
				Line:   line,
				Source: fmt.Sprintf("%s:%d", in.name, lineNo),
			}
			if err := pool.Submit(ctx, item); err != nil {
				return err
			}
			index++
		}
		if err := sc.Err(); err != nil {
			return errors.Wrapf(err, "read %s", in.name)
		}
	}
	return nil
}

// replay runs on the worker goroutines.
func (p *processor) replay(item worker.WorkItem) worker.ProcessResult {
	res := worker.ProcessResult{Index: item.Index, Source: item.Source}
	line, result, err := splitResult(item.Line)
	if err != nil {
		res.Err = recordError(err, item)
		return res
	}
	pos, err := usi.ParsePosition(line)
	if err != nil {
		res.Err = recordError(err, item)
		return res
	}
	res.Game = position.NewGame(pos)
	if r, ok := result.Get(); ok {
		res.Game.Resolve(r)
	}
	if p.detector != nil {
		res.Signature = p.detector.Signature(pos)
	}
	if p.cfg.ReportRepetitions {
		res.Repetitions = hashing.RepetitionCount(pos)
	}
	return res
}

// splitResult strips an optional trailing "result <outcome>" from a record
// line.
func splitResult(line string) (string, shogi.OptionGameResolution, error) {
	fields := strings.Fields(line)
	n := len(fields)
	if n < 2 || fields[n-2] != "result" {
		if n > 0 && fields[n-1] == "result" {
			return "", shogi.NoneGameResolution, fmt.Errorf("missing outcome after result: %w", errors.ErrInvalidUSI)
		}
		return line, shogi.NoneGameResolution, nil
	}
	r, ok := resultTokens[fields[n-1]]
	if !ok {
		return "", shogi.NoneGameResolution, fmt.Errorf("unknown result %q: %w", fields[n-1], errors.ErrInvalidUSI)
	}
	return strings.Join(fields[:n-2], " "), shogi.SomeGameResolution(r), nil
}

// recordError attaches the record location. Errors raised before any move
// was replayed are classified as parse failures.
func recordError(err error, item worker.WorkItem) error {
	var re *errors.RecordError
	if stderrors.As(err, &re) {
		re.RecordNum = item.Index + 1
		re.File = item.Source
		return re
	}
	return &errors.RecordError{
		Err:       fmt.Errorf("%w: %w", errors.ErrParseFailure, err),
		RecordNum: item.Index + 1,
		File:      item.Source,
	}
}

// emit handles one result in input order.
func (p *processor) emit(r worker.ProcessResult) error {
	p.stats.records++
	if r.Err != nil {
		p.stats.failed++
		if p.cfg.StopOnError {
			return r.Err
		}
		p.log.Warn().Err(r.Err).Msg("skipping record")
		return nil
	}

	pos := r.Game.Position()
	if p.detector != nil && p.detector.CheckAndAddSignature(r.Signature) {
		p.stats.duplicates++
		p.log.Debug().
			Err(&errors.RecordError{Err: errors.ErrDuplicateRecord, RecordNum: r.Index + 1, File: r.Source}).
			Msg("duplicate record")
		if dup := p.cfg.Duplicate.DuplicateFile; dup != nil {
			if _, err := io.WriteString(dup, usi.FormatPosition(pos)+"\n"); err != nil {
				return errors.Wrap(err, "write duplicate")
			}
		}
		if p.cfg.Duplicate.Suppress {
			return nil
		}
	}

	rec := &output.Record{Index: r.Index, Game: r.Game, Repetitions: r.Repetitions}
	if err := p.out.WriteRecord(rec); err != nil {
		return errors.Wrap(err, "write record")
	}
	p.stats.written++
	if p.cfg.Verbosity > 1 {
		p.log.Info().Str("source", r.Source).Int("plies", len(pos.Moves())).Msg("record written")
	}
	return nil
}

func (p *processor) reportStatistics() {
	ev := p.log.Info().
		Int("records", p.stats.records).
		Int("written", p.stats.written).
		Int("failed", p.stats.failed)
	if p.detector != nil {
		_, unique := p.detector.Counts()
		ev = ev.Int("duplicates", p.stats.duplicates).Int("unique", unique)
	}
	ev.Msg("done")
}
