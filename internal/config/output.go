package config

import "github.com/lgbarn/shogi-core-go/internal/errors"

// KIF encodings.
const (
	EncodingUTF8     = "utf-8"
	EncodingShiftJIS = "shift_jis"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the record format
	Format OutputFormat

	// Encoding is the KIF text encoding (utf-8 or shift_jis)
	Encoding string

	// JSONLines writes one compact JSON object per line instead of an array
	JSONLines bool

	// MoveSFEN adds the position after each move to JSON output
	MoveSFEN bool

	// Comment is written at the top of each KIF record
	Comment string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:   SFEN,
		Encoding: EncodingUTF8,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if _, ok := formatNames[o.Format]; !ok {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %d", int(o.Format))
	}
	switch o.Encoding {
	case EncodingUTF8, EncodingShiftJIS:
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidConfig, "unknown encoding %q", o.Encoding)
}
