package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	ok, err := Exists(file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(filepath.Join(dir, "absent.txt"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAtomicWriteFile_CreatesParentsAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.properties")

	require.NoError(t, AtomicWriteFile(path, []byte("first"), 0o644))
	require.NoError(t, AtomicWriteFile(path, []byte("second"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFindFirst(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build.yaml"), []byte("{}"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "build.hcl"), 0o755))

	found, err := FindFirst(dir, "build.hcl", "build.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "build.yaml"), found)

	found, err = FindFirst(dir, "build.toml")
	require.NoError(t, err)
	assert.Empty(t, found)

	assert.Panics(t, func() { _, _ = FindFirst(dir) })
}
