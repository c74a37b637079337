package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Fixture is a throwaway project directory.
type Fixture struct {
	Root string
}

// NewFixture creates an empty project directory that is removed when the
// test ends.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{Root: t.TempDir()}
}

// Path joins rel (slash-separated) onto the fixture root.
func (f *Fixture) Path(rel string) string {
	return filepath.Join(f.Root, filepath.FromSlash(rel))
}

// WriteFiles writes every file in files, keyed by slash-separated path
// relative to the root, creating directories as needed.
func (f *Fixture) WriteFiles(t *testing.T, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := f.Path(name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// ReadFile returns the content of rel, failing the test if it is unreadable.
func (f *Fixture) ReadFile(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(f.Path(rel))
	require.NoError(t, err)
	return string(data)
}

// Exists reports whether rel exists under the root.
func (f *Fixture) Exists(rel string) bool {
	_, err := os.Lstat(f.Path(rel))
	return err == nil
}

// LogOnFailure dumps captured logs when the test fails or RPINJECT_TEST_LOGS
// is set to true.
func LogOnFailure(t *testing.T, logs *SafeBuffer) {
	t.Helper()
	t.Cleanup(func() {
		if t.Failed() || os.Getenv("RPINJECT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
}
