package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	startSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"
	// 7g7f 3c3d 2g2f and 2g2f 3c3d 7g7f transpose into this position.
	transposedSFEN = "lnsgkgsnl/1r5b1/pppppp1pp/6p2/9/2P4P1/PP1PPPP1P/1B5R1/LNSGKGSNL w - 4"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_SFENInInputOrder(t *testing.T) {
	input := strings.Join([]string{
		"# opening records",
		"position startpos",
		"",
		"position startpos moves 7g7f 3c3d 2g2f",
		"startpos moves 2g2f",
	}, "\n")

	code, out, stderr := runCLI(t, input, "-w", "4", "--log-level", "warn")
	require.Equal(t, exitOK, code, stderr)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, startSFEN, lines[0])
	assert.Equal(t, transposedSFEN, lines[1])
	assert.Equal(t, "lnsgkgsnl/1r5b1/ppppppppp/9/9/7P1/PPPPPPP1P/1B5R1/LNSGKGSNL w - 2", lines[2])
	assert.Empty(t, stderr)
}

func TestRun_DuplicateSuppression(t *testing.T) {
	input := "position startpos moves 7g7f 3c3d 2g2f\n" +
		"position startpos moves 2g2f 3c3d 7g7f\n" +
		"position startpos moves 7g7f\n"

	t.Run("final position", func(t *testing.T) {
		code, out, stderr := runCLI(t, input, "-D", "-f", "usi")
		require.Equal(t, exitOK, code, stderr)
		assert.Equal(t,
			"position startpos moves 7g7f 3c3d 2g2f\nposition startpos moves 7g7f\n", out)
		assert.Contains(t, stderr, `"duplicates":1`)
	})

	t.Run("move sequence", func(t *testing.T) {
		code, out, stderr := runCLI(t, input, "-D", "--duplicate-hash", "sequence")
		require.Equal(t, exitOK, code, stderr)
		assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
		assert.Contains(t, stderr, `"duplicates":0`)
	})

	t.Run("debug log", func(t *testing.T) {
		code, _, stderr := runCLI(t, input, "-D", "--log-level", "debug")
		require.Equal(t, exitOK, code, stderr)
		assert.Contains(t, stderr, `"message":"duplicate record"`)
		assert.Contains(t, stderr, "<stdin>:2, record 2: duplicate record")
	})

	t.Run("duplicate file", func(t *testing.T) {
		dupPath := filepath.Join(t.TempDir(), "dups.usi")
		code, _, stderr := runCLI(t, input, "-D", "--duplicate-file", dupPath, "--log-level", "error")
		require.Equal(t, exitOK, code, stderr)

		dups, err := os.ReadFile(dupPath)
		require.NoError(t, err)
		assert.Equal(t, "position startpos moves 2g2f 3c3d 7g7f\n", string(dups))
	})
}

func TestRun_BadRecords(t *testing.T) {
	input := "position startpos moves 7g7f\n" +
		"position startpos moves 7g7f zz\n" +
		"position startpos moves 2g2f\n"

	t.Run("skipped", func(t *testing.T) {
		code, out, stderr := runCLI(t, input)
		require.Equal(t, exitOK, code)
		assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
		assert.Contains(t, stderr, "skipping record")
		assert.Contains(t, stderr, "<stdin>:2")
		assert.Contains(t, stderr, `"failed":1`)
	})

	t.Run("missing header", func(t *testing.T) {
		code, out, stderr := runCLI(t, "position moves 7g7f\nmoves\nposition startpos\n")
		require.Equal(t, exitOK, code, stderr)
		assert.Equal(t, startSFEN+"\n", out)
		assert.Contains(t, stderr, "parse failure: missing startpos or sfen")
		assert.Contains(t, stderr, `"failed":2`)
	})

	t.Run("stop on error", func(t *testing.T) {
		code, out, stderr := runCLI(t, input, "--stop-on-error")
		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr, "processing stopped")
		// records before the failure are still written
		assert.True(t, strings.HasPrefix(out, "lnsgkgsnl/1r5b1/ppppppppp/9/9/2P6/PP1PPPPPP/1B5R1/LNSGKGSNL w - 2\n"))
	})
}

func TestRun_FilesAndOutputFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.usi")
	b := filepath.Join(dir, "b.usi")
	require.NoError(t, os.WriteFile(a, []byte("position startpos moves 7g7f\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("position startpos\n"), 0o600))
	outPath := filepath.Join(dir, "out.json")

	code, stdout, stderr := runCLI(t, "", "-f", "json", "--json-lines", "--repetitions", "-o", outPath, a, b)
	require.Equal(t, exitOK, code, stderr)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"usi":"7g7f"`)
	assert.Contains(t, lines[1], `"index":1`)
	assert.Contains(t, lines[1], `"repetitions":1`)
}

func TestRun_KIF(t *testing.T) {
	code, out, stderr := runCLI(t, "position startpos moves 7g7f 3c3d\n", "-f", "kif", "--log-level", "disabled")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, out, "手合割：平手")
	assert.Contains(t, out, "３四歩(33)")
}

func TestRun_ResultToken(t *testing.T) {
	input := "position startpos moves 7g7f 3c3d result black\n" +
		"position startpos moves 2g2f result draw\n" +
		"position startpos moves 7g7f\n"

	code, out, stderr := runCLI(t, input, "-f", "json", "--json-lines")
	require.Equal(t, exitOK, code, stderr)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"resolution":"BlackWins"`)
	assert.Contains(t, lines[1], `"resolution":"Draw"`)
	assert.NotContains(t, lines[2], "resolution")

	code, out, stderr = runCLI(t, "position startpos moves 7g7f 3c3d result black\n", "-f", "kif", "--log-level", "disabled")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, out, "まで2手で先手の勝ち")

	code, out, stderr = runCLI(t, "position startpos result resign\nposition startpos moves 7g7f result\n")
	require.Equal(t, exitOK, code, stderr)
	assert.Empty(t, out)
	assert.Contains(t, stderr, `unknown result \"resign\"`)
	assert.Contains(t, stderr, "missing outcome after result")
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t, "", "--no-such-flag")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "no-such-flag")

	code, _, stderr = runCLI(t, "", "-w", "0")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "invalid configuration")

	code, _, stderr = runCLI(t, "", "--help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "usage: shogi-record")

	code, out, _ := runCLI(t, "", "--version")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "shogi-record version "+programVersion+"\n", out)
}

func TestRun_MissingInput(t *testing.T) {
	code, _, stderr := runCLI(t, "", filepath.Join(t.TempDir(), "missing.usi"))
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "cannot open input")
}
