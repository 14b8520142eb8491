package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// recorder captures failures so the failing paths can be checked.
type recorder struct {
	testing.TB
	errs []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...interface{}) {
	r.errs = append(r.errs, fmt.Sprint(args...))
}

func TestAssertionsPass(t *testing.T) {
	var p *int
	AssertEqual(t, []uint8{1, 2, 3}, []uint8{1, 2, 3})
	AssertEqual(t, nil, nil, "value should be %d", 42)
	AssertNoError(t, nil)
	AssertError(t, errors.New("boom"))
	AssertTrue(t, true)
	AssertFalse(t, false)
	AssertNil(t, p)
	AssertNil(t, nil)
}

func TestAssertionsFail(t *testing.T) {
	tests := []struct {
		name string
		run  func(tb *recorder)
		want string
	}{
		{"equal", func(tb *recorder) { AssertEqual(tb, 1, 2, "ply %d", 3) }, "ply 3: mismatch (-want +got):"},
		{"no error", func(tb *recorder) { AssertNoError(tb, errors.New("boom")) }, "unexpected error: boom"},
		{"error", func(tb *recorder) { AssertError(tb, nil, "parse") }, "parse: expected error but got nil"},
		{"true", func(tb *recorder) { AssertTrue(tb, false) }, "expected true but got false"},
		{"false", func(tb *recorder) { AssertFalse(tb, true) }, "expected false but got true"},
		{"nil", func(tb *recorder) { AssertNil(tb, 7) }, "expected nil but got 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{TB: t}
			tt.run(r)
			if len(r.errs) != 1 {
				t.Fatalf("got %d failures; want 1", len(r.errs))
			}
			if !strings.HasPrefix(r.errs[0], tt.want) {
				t.Errorf("failure = %q; want prefix %q", r.errs[0], tt.want)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"square %s", "7g"}, "square 7g"},
		{"format multiple", []interface{}{"%s %d %s", "ply", 42, "end"}, "ply 42 end"},
		{"non-string format", []interface{}{1, 2}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q; want %q", tt.args, got, tt.want)
			}
		})
	}
}
