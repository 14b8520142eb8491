package config

import (
	"io"

	"github.com/lgbarn/shogi-core-go/internal/errors"
)

// Duplicate hash modes.
const (
	HashFinal    = "final"
	HashAll      = "all"
	HashSequence = "sequence"
)

// DuplicateConfig holds settings for duplicate record detection.
type DuplicateConfig struct {
	// Suppress drops records whose signature was already seen
	Suppress bool

	// ExactMatch also requires equal move counts
	ExactMatch bool

	// HashMode is final, all or sequence
	HashMode string

	// MaxCapacity limits stored signatures (0 = unlimited)
	MaxCapacity int

	// Filename receives suppressed records as position commands when set
	Filename string

	// DuplicateFile is the opened Filename
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		HashMode: HashFinal,
	}
}

// Validate checks the duplicate settings.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "duplicate capacity must not be negative, got %d", d.MaxCapacity)
	}
	switch d.HashMode {
	case HashFinal, HashAll, HashSequence:
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidConfig, "unknown duplicate hash mode %q", d.HashMode)
}
