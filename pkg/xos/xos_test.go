package xos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Dockerfile")

	require.NoError(t, WriteFile(path, []byte("old\n"), 0o644))
	require.NoError(t, WriteFile(path, []byte("new\n"), 0o644))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestReadFileMissingIsHostIO(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHostIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing")
}

func TestWriteFileIntoMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "file")
	err := WriteFile(path, []byte("x"), 0o644)
	assert.ErrorIs(t, err, ErrHostIO)
}

func TestCreateDirAndChmod(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, CreateDir(dir, 0o755))

	path := filepath.Join(dir, "script")
	require.NoError(t, WriteFile(path, []byte("#!/bin/sh\n"), 0o600))
	require.NoError(t, Chmod(path, 0o755))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if os.PathSeparator == '/' {
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	}
}
