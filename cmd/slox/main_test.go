package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o600))
	return path
}

func TestRunExitCodes(t *testing.T) {
	testCases := []struct {
		name   string
		source string
		code   int
	}{
		{"ok", "var x = 1; { var x = 2; print x; }; print x;", exitOK},
		{"lex error", "print \"abc", exitData},
		{"parse error", "print 1", exitData},
		{"runtime error", "print y;", exitSoftware},
		{"type mismatch", "print -nil;", exitSoftware},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeScript(t, tc.source)
			assert.Equal(t, tc.code, run([]string{"--log-type", "text", path}))
		})
	}
}

func TestRunPrintModes(t *testing.T) {
	path := writeScript(t, "print 1 + 2;")

	assert.Equal(t, exitOK, run([]string{"--print-tokens", path}))
	assert.Equal(t, exitOK, run([]string{"--print-ast", path}))

	bad := writeScript(t, "print 1 +;")
	assert.Equal(t, exitData, run([]string{"--print-ast", bad}))
	assert.Equal(t, exitOK, run([]string{"--print-tokens", bad}))
}

func TestRunUsage(t *testing.T) {
	assert.Equal(t, exitUsage, run([]string{"a.lox", "b.lox"}))
	assert.Equal(t, exitUsage, run([]string{"--no-such-flag"}))
	assert.Equal(t, exitUsage, run([]string{"--log-level", "loud", "a.lox"}))
	assert.Equal(t, exitOK, run([]string{"--help"}))
}

func TestRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.lox")

	assert.Equal(t, exitNoInput, run([]string{path}))
}
