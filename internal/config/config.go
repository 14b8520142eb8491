// Package config provides configuration for the shogi-record tool.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/shogi-core-go/internal/errors"
)

// OutputFormat selects how each record is written.
type OutputFormat int

const (
	SFEN OutputFormat = iota // final position as SFEN
	USI                      // "position ... moves ..." command line
	JSON                     // JSON document per record
	KIF                      // KIF kifu
)

var formatNames = map[OutputFormat]string{
	SFEN: "sfen",
	USI:  "usi",
	JSON: "json",
	KIF:  "kif",
}

func (f OutputFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat parses a format name, case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Output    *OutputConfig
	Duplicate *DuplicateConfig

	// Workers is the number of replay goroutines
	Workers int
	// BufferSize is the channel buffer of the worker pool
	BufferSize int

	// LogLevel is one of debug, info, warn, error, disabled
	LogLevel string
	// LogPretty uses the human readable console log format
	LogPretty bool
	// Verbosity 0=nothing, 1=summary, 2=per record
	Verbosity int

	// ReportRepetitions adds repetition counts to JSON output
	ReportRepetitions bool
	// StopOnError aborts on the first bad record instead of skipping it
	StopOnError bool

	// Inputs are the record files; empty means standard input
	Inputs         []string
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Workers:    1,
		BufferSize: 64,
		LogLevel:   "info",
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks value ranges and combinations.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	if c.BufferSize < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "buffer size must be at least 1, got %d", c.BufferSize)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown log level %q", c.LogLevel)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Duplicate.Validate()
}
