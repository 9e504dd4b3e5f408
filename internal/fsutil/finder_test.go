package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	for _, name := range []string{"b.hcl", "a.hcl", "nested/c.hcl", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(""), 0644))
	}

	files, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "c.hcl"),
	}, files)
}

func TestFindFilesByExtension_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bot.hcl")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	files, err := FindFilesByExtension(path, ".hcl")
	require.NoError(t, err)
	require.Equal(t, []string{path}, files)

	other := filepath.Join(dir, "bot.txt")
	require.NoError(t, os.WriteFile(other, []byte(""), 0644))
	_, err = FindFilesByExtension(other, ".hcl")
	require.Error(t, err)
}

func TestFindFilesByExtension_MissingPath(t *testing.T) {
	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".hcl")
	require.Error(t, err)
}
