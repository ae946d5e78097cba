package filex

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS_ReadFile_MissingIsNotAnError(t *testing.T) {
	var fs OS
	b, err := fs.ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestOS_WriteReadDelete(t *testing.T) {
	var fs OS
	path := filepath.Join(t.TempDir(), "a.json")

	require.NoError(t, fs.WriteFile(path, []byte(`[]`)))

	b, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), b)

	require.NoError(t, fs.DeleteFile(path))
	require.NoError(t, fs.DeleteFile(path), "deleting a missing file is a no-op")

	b, err = fs.ReadFile(path)
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestOS_ListDirectory(t *testing.T) {
	var fs OS
	dir := t.TempDir()

	names, err := fs.ListDirectory(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, fs.WriteFile(filepath.Join(dir, "2024-01-15.json"), []byte(`[]`)))
	require.NoError(t, fs.WriteFile(filepath.Join(dir, "2024-01-16.json"), []byte(`[]`)))

	names, err = fs.ListDirectory(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2024-01-15.json", "2024-01-16.json"}, names)
}

func TestOS_EnsureDirectory(t *testing.T) {
	var fs OS
	dir := filepath.Join(t.TempDir(), "a", "b", ".microlog")
	require.NoError(t, fs.EnsureDirectory(dir))
	require.NoError(t, fs.EnsureDirectory(dir), "idempotent")

	require.NoError(t, fs.WriteFile(filepath.Join(dir, "config.json"), []byte(`{}`)))
}
