package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrInvalidSFEN, ErrInvalidUSI, ErrIllegalMove, ErrInconsistentPosition,
		ErrParseFailure, ErrInvalidConfig, ErrDuplicateRecord,
	}
	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
			for _, other := range sentinels {
				if other != sentinel && errors.Is(wrapped, other) {
					t.Errorf("errors.Is(wrapped, %v) = true, want false", other)
				}
			}
		})
	}
}

func TestRecordError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *RecordError
		contains []string
	}{
		{
			name: "full context",
			err: &RecordError{
				Err:       ErrIllegalMove,
				RecordNum: 5,
				Ply:       12,
				MoveText:  "8h2b+",
				File:      "games.usi",
			},
			contains: []string{"games.usi", "record 5", "ply 12", `"8h2b+"`, "illegal move"},
		},
		{
			name:     "record only",
			err:      &RecordError{Err: ErrInvalidSFEN, RecordNum: 1},
			contains: []string{"record 1", "invalid SFEN"},
		},
		{
			name:     "bare",
			err:      &RecordError{Err: ErrParseFailure},
			contains: []string{"parse failure"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q; want it to contain %q", msg, want)
				}
			}
		})
	}
}

func TestRecordError_As(t *testing.T) {
	var err error = Wrap(&RecordError{Err: ErrIllegalMove, RecordNum: 3}, "replay")

	var re *RecordError
	if !errors.As(err, &re) {
		t.Fatal("errors.As(*RecordError) = false")
	}
	if re.RecordNum != 3 {
		t.Errorf("RecordNum = %d; want 3", re.RecordNum)
	}
	if !errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is(err, ErrIllegalMove) = false")
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "location and expectation",
			err:  &ParseError{Err: ErrInvalidSFEN, Input: "sfen", Column: 3, Expected: "side to move", Got: "x"},
			want: `sfen: expected side to move, got "x": invalid SFEN string`,
		},
		{
			name: "column only",
			err:  &ParseError{Err: ErrInvalidUSI, Column: 7, Got: "9j"},
			want: `column 7: unexpected "9j": invalid USI text`,
		},
		{
			name: "empty",
			err:  &ParseError{},
			want: "parse error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "x") != nil {
		t.Error("Wrap(nil) != nil")
	}
	if Wrapf(nil, "x %d", 1) != nil {
		t.Error("Wrapf(nil) != nil")
	}
	err := Wrapf(ErrInvalidConfig, "workers %d", -1)
	if got, want := err.Error(), "workers -1: invalid configuration"; got != want {
		t.Errorf("Wrapf() = %q; want %q", got, want)
	}
}
