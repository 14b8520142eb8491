// Package errors provides sentinel errors and error types for shogi-core-go.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSFEN indicates a malformed SFEN string.
	ErrInvalidSFEN = errors.New("invalid SFEN string")

	// ErrInvalidUSI indicates malformed USI move or position text.
	ErrInvalidUSI = errors.New("invalid USI text")

	// ErrIllegalMove indicates a move that cannot be applied to the position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInconsistentPosition indicates that a position's board, bitboards
	// and king cache disagree.
	ErrInconsistentPosition = errors.New("inconsistent position")

	// ErrParseFailure indicates a general record parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDuplicateRecord indicates a record whose final position was already seen.
	ErrDuplicateRecord = errors.New("duplicate record")
)

// RecordError wraps errors with record context: record number, ply and
// move text. It supports unwrapping via errors.Is() and errors.As().
type RecordError struct {
	Err       error  // The underlying error
	RecordNum int    // 1-based record number in the input
	Ply       int    // Ply at which the error occurred (0 if not applicable)
	MoveText  string // The move text that caused the error (if applicable)
	File      string // Source file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *RecordError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.RecordNum > 0 {
		parts = append(parts, fmt.Sprintf("record %d", e.RecordNum))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with location context.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // Name of the input (file name or field)
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := e.Input
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	} else if e.Column > 0 {
		parts = append(parts, fmt.Sprintf("column %d", e.Column))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
