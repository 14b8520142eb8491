// shogi-record replays shogi game records given as USI position commands
// and writes them as SFEN, USI, JSON or KIF.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/lgbarn/shogi-core-go/internal/config"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := config.NewFlagSet("shogi-record")
	fs.SetOutput(stderr)
	version := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: shogi-record [flags] [file ...]\n\n")
		fmt.Fprintf(stderr, "Each input line is a USI position command, e.g.\n")
		fmt.Fprintf(stderr, "  position startpos moves 7g7f 3c3d\n\n")
		fs.PrintDefaults()
	}

	cfg, err := config.Load(fs, args)
	if stderrors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "shogi-record: %v\n", err)
		return exitUsage
	}
	if *version {
		fmt.Fprintf(stdout, "shogi-record version %s\n", programVersion)
		return exitOK
	}
	cfg.OutputFile = stdout
	cfg.LogFile = stderr

	logger := newLogger(cfg)
	log.Logger = logger

	if err := setupFiles(cfg); err != nil {
		logger.Error().Err(err).Msg("cannot open output")
		return exitError
	}
	defer closeFiles(cfg, logger)

	inputs, closeInputs, err := openInputs(cfg.Inputs, stdin)
	if err != nil {
		logger.Error().Err(err).Msg("cannot open input")
		return exitError
	}
	defer closeInputs()

	p, err := newProcessor(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("cannot create writer")
		return exitError
	}
	runErr := p.run(ctx, inputs)

	if cfg.Verbosity > 0 {
		p.reportStatistics()
	}
	if runErr != nil {
		logger.Error().Err(runErr).Msg("processing stopped")
		return exitError
	}
	return exitOK
}

// newLogger builds the zerolog logger described by cfg.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	w := cfg.LogFile
	if cfg.LogPretty {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// setupFiles opens the output and duplicate files named in cfg.
func setupFiles(cfg *config.Config) error {
	if cfg.OutputFilename != "" {
		file, err := os.Create(cfg.OutputFilename)
		if err != nil {
			return err
		}
		cfg.OutputFile = file
	}
	if cfg.Duplicate.Filename != "" {
		file, err := os.Create(cfg.Duplicate.Filename)
		if err != nil {
			return err
		}
		cfg.Duplicate.DuplicateFile = file
	}
	return nil
}

func closeFiles(cfg *config.Config, logger zerolog.Logger) {
	for _, w := range []io.Writer{cfg.OutputFile, cfg.Duplicate.DuplicateFile} {
		if f, ok := w.(*os.File); ok && f != os.Stdout {
			if err := f.Close(); err != nil {
				logger.Warn().Err(err).Str("file", f.Name()).Msg("close failed")
			}
		}
	}
}

// input is one named source of record lines.
type input struct {
	name string
	r    io.Reader
}

// openInputs opens the named files, or returns stdin when there are none.
func openInputs(names []string, stdin io.Reader) ([]input, func(), error) {
	if len(names) == 0 {
		return []input{{name: "<stdin>", r: stdin}}, func() {}, nil
	}
	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	inputs := make([]input, 0, len(names))
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		files = append(files, f)
		inputs = append(inputs, input{name: name, r: f})
	}
	return inputs, closeAll, nil
}
