package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lgbarn/shogi-core-go/internal/errors"
)

// EnvPrefix prefixes environment overrides, e.g. SHOGI_WORKERS=4.
const EnvPrefix = "SHOGI"

// NewFlagSet defines the command line flags. Flag names double as viper
// keys and, upper-cased with '-' replaced by '_', as environment variables.
func NewFlagSet(name string) *pflag.FlagSet {
	def := NewConfig()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "YAML config file")
	fs.StringP("format", "f", def.Output.Format.String(), "output format: sfen, usi, json, kif")
	fs.String("encoding", def.Output.Encoding, "KIF encoding: utf-8, shift_jis")
	fs.Bool("json-lines", false, "write one JSON object per line")
	fs.Bool("move-sfen", false, "include the position after each move in JSON")
	fs.String("comment", "", "comment line for KIF records")
	fs.BoolP("suppress-duplicates", "D", false, "drop records already seen")
	fs.Bool("exact-duplicates", false, "duplicates must also have equal move counts")
	fs.String("duplicate-hash", def.Duplicate.HashMode, "duplicate comparison: final, all, sequence")
	fs.Int("duplicate-capacity", 0, "maximum stored signatures (0 = unlimited)")
	fs.String("duplicate-file", "", "write suppressed duplicates to this file")
	fs.IntP("workers", "w", def.Workers, "replay goroutines")
	fs.Int("buffer-size", def.BufferSize, "worker channel buffer")
	fs.Bool("repetitions", false, "report repetition counts")
	fs.Bool("stop-on-error", false, "abort at the first bad record")
	fs.StringP("output", "o", "", "output file (default stdout)")
	fs.String("log-level", def.LogLevel, "log level: debug, info, warn, error, disabled")
	fs.Bool("log-pretty", false, "human readable logs")
	fs.IntP("verbosity", "v", def.Verbosity, "0=quiet, 1=summary, 2=per record")
	return fs
}

// Load parses args, applies environment overrides and an optional config
// file, and returns a validated Config. Positional arguments become Inputs.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "read %s: %v", path, err)
		}
	}
	return FromViper(v, fs.Args())
}

// FromViper builds a Config from resolved settings.
func FromViper(v *viper.Viper, inputs []string) (*Config, error) {
	cfg := NewConfig()

	format, err := ParseOutputFormat(v.GetString("format"))
	if err != nil {
		return nil, err
	}
	cfg.Output.Format = format
	cfg.Output.Encoding = strings.ToLower(v.GetString("encoding"))
	cfg.Output.JSONLines = v.GetBool("json-lines")
	cfg.Output.MoveSFEN = v.GetBool("move-sfen")
	cfg.Output.Comment = v.GetString("comment")

	cfg.Duplicate.Suppress = v.GetBool("suppress-duplicates")
	cfg.Duplicate.ExactMatch = v.GetBool("exact-duplicates")
	cfg.Duplicate.HashMode = v.GetString("duplicate-hash")
	cfg.Duplicate.MaxCapacity = v.GetInt("duplicate-capacity")
	cfg.Duplicate.Filename = v.GetString("duplicate-file")

	cfg.Workers = v.GetInt("workers")
	cfg.BufferSize = v.GetInt("buffer-size")
	cfg.ReportRepetitions = v.GetBool("repetitions")
	cfg.StopOnError = v.GetBool("stop-on-error")
	cfg.OutputFilename = v.GetString("output")
	cfg.LogLevel = v.GetString("log-level")
	cfg.LogPretty = v.GetBool("log-pretty")
	cfg.Verbosity = v.GetInt("verbosity")
	cfg.Inputs = inputs

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
