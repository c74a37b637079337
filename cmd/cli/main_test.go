package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/rpinject/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "pom.hcl")
	err := os.WriteFile(filePath, []byte(`
project {
  group    = "com.example"
  artifact = "app"
  version  = "1.0"
}
`), 0o600)
	require.NoError(t, err, "failed to set up test file")
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, []string{"--log-format", "text", "--mode", "copy", filePath})

	// --- Assert ---
	require.NoError(t, runErr)
	require.Contains(t, out.String(), "Test output prepared.")
	_, statErr := os.Stat(filepath.Join(tempDir, "target", "test-classes", "junit-platform.properties"))
	require.NoError(t, statErr, "the junit5 setup should have run")
}

func TestRun_DescriptorError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An unterminated block fails in the load step, not at startup.
	filePath := filepath.Join(t.TempDir(), "pom.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte("project {\n"), 0o600))
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "load descriptor")
	require.NotContains(t, runErr.Error(), "panicked")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestExitStatus(t *testing.T) {
	t.Parallel()

	code, msg := exitStatus(&cli.ExitError{Code: 2, Message: "unknown flag: --x"})
	require.Equal(t, 2, code)
	require.Equal(t, "unknown flag: --x", msg)

	code, msg = exitStatus(errors.New("merge properties: boom"))
	require.Equal(t, 1, code)
	require.Equal(t, "rpinject: merge properties: boom", msg)
}
