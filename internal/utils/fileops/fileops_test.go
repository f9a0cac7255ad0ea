package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/fwdgen/internal/errors"
)

func TestFileOps_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stream.hpp")
	require.NoError(t, os.WriteFile(path, []byte("void close();\n"), 0o644))

	fo := NewFileOps()

	content, err := fo.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "void close();\n", content)

	_, err = fo.ReadFile(filepath.Join(dir, "missing.hpp"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.FileSystemErrorCode))
	assert.Contains(t, err.Error(), "does not exist")

	_, err = fo.ReadFile(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")

	_, err = fo.ReadFile("")
	assert.Error(t, err)
}

func TestFileOps_EnsureParentDir(t *testing.T) {
	dir := t.TempDir()
	fo := NewFileOps()

	nested := filepath.Join(dir, "gen", "io", "stream.hpp")
	require.NoError(t, fo.EnsureParentDir(nested))
	assert.True(t, fo.PathValidator().IsDir(filepath.Join(dir, "gen", "io")))

	// existing directory is not an error
	require.NoError(t, fo.EnsureParentDir(nested))

	// no directory component
	require.NoError(t, fo.EnsureParentDir("stream.hpp"))
}

func TestFileOps_EnsureParentDir_BlockedByFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "gen")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := NewFileOps().EnsureParentDir(filepath.Join(blocker, "io", "stream.hpp"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.OutputDirectoryCode))
}

func TestFileOps_WriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.hpp")
	fo := NewFileOps()

	require.NoError(t, fo.WriteFile(path, []byte("first")))
	require.NoError(t, fo.WriteFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	err = fo.WriteFile(filepath.Join(dir, "missing", "out.hpp"), []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.FileSystemErrorCode))
}

func TestPathValidator_SamePath(t *testing.T) {
	pv := NewPathValidator()

	assert.True(t, pv.SamePath("a/b.hpp", "./a/../a/b.hpp"))
	assert.False(t, pv.SamePath("a/b.hpp", "a/c.hpp"))
	assert.True(t, pv.Exists("."))
	assert.False(t, pv.Exists("definitely-not-here.hpp"))
}
