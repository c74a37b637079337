package fault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIOError_NamesOperationAndPath(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap("write", "/tmp/out/reportportal.properties", cause)

	require.Error(t, err)
	assert.Equal(t, "unable to write /tmp/out/reportportal.properties: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)

	var ioErr *IOError
	require.ErrorAs(t, fmt.Errorf("merge properties: %w", err), &ioErr)
	assert.Equal(t, "write", ioErr.Op)
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap("read", "x", nil))
}

func TestResourceMissingError(t *testing.T) {
	err := &ResourceMissingError{Path: "services/missing"}
	assert.Contains(t, err.Error(), "services/missing")
}

func TestIsAbsent(t *testing.T) {
	_, err := os.Stat(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, IsAbsent(err))
	assert.True(t, IsAbsent(Wrap("read", "nope", fs.ErrNotExist)))
	assert.False(t, IsAbsent(errors.New("boom")))
	assert.False(t, IsAbsent(nil))
}
