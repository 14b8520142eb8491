package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithEncoding sets the KIF encoding.
func (b *ConfigBuilder) WithEncoding(encoding string) *ConfigBuilder {
	b.cfg.Output.Encoding = encoding
	return b
}

// WithJSONLines switches JSON output to one object per line.
func (b *ConfigBuilder) WithJSONLines(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONLines = enabled
	return b
}

// WithMoveSFEN adds per-move positions to JSON output.
func (b *ConfigBuilder) WithMoveSFEN(enabled bool) *ConfigBuilder {
	b.cfg.Output.MoveSFEN = enabled
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithDuplicateHashMode sets how records are compared.
func (b *ConfigBuilder) WithDuplicateHashMode(mode string, exact bool) *ConfigBuilder {
	b.cfg.Duplicate.HashMode = mode
	b.cfg.Duplicate.ExactMatch = exact
	return b
}

// WithWorkers sets the number of replay goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithRepetitions enables repetition counts.
func (b *ConfigBuilder) WithRepetitions(enabled bool) *ConfigBuilder {
	b.cfg.ReportRepetitions = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
