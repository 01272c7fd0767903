//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "lib.rs")
	require.NoError(t, os.WriteFile(file, []byte("pub fn a() {}"), 0644))

	exists, err := fs.Exists(file)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(tempDir, "missing.rs"))
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_IsDir(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "lib.rs")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	isDir, err := fs.IsDir(tempDir)
	assert.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = fs.IsDir(file)
	assert.NoError(t, err)
	assert.False(t, isDir)

	_, err = fs.IsDir(filepath.Join(tempDir, "missing"))
	assert.True(t, fs.IsNotExist(err))
}

func TestFS_ReadFile_NotExist(t *testing.T) {
	fs := NewFS()

	_, err := fs.ReadFile(filepath.Join(t.TempDir(), "missing.rs"))
	assert.Error(t, err)
	assert.True(t, fs.IsNotExist(err))
}

func TestFS_FileMode(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "lib.rs")
	require.NoError(t, os.WriteFile(file, nil, 0600))
	require.NoError(t, os.Chmod(file, 0640))

	mode, err := fs.FileMode(file)
	assert.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), mode)

	_, err = fs.FileMode(tempDir)
	assert.ErrorIs(t, err, ErrNotRegularFile)
}

func TestFS_WriteFile(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "lib.rs")
	require.NoError(t, os.WriteFile(file, []byte("pub fn a() {}\npub fn b() {}\n"), 0600))
	require.NoError(t, os.Chmod(file, 0640))

	err := fs.WriteFile(file, []byte("fn a() {}"), 0644)
	require.NoError(t, err)

	content, err := fs.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "fn a() {}", string(content))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFS_WriteFile_Symlink(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "real.rs")
	link := filepath.Join(tempDir, "lib.rs")
	require.NoError(t, os.WriteFile(target, []byte("pub fn a() {}\n"), 0644))
	require.NoError(t, os.Symlink("real.rs", link))

	require.NoError(t, fs.WriteFile(link, []byte("fn a() {}\n"), 0644))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link must survive the write")

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "fn a() {}\n", string(content))
}

func TestFS_WriteFile_HardLink(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "lib.rs")
	other := filepath.Join(tempDir, "other.rs")
	require.NoError(t, os.WriteFile(file, []byte("pub fn a() {}\n"), 0644))
	require.NoError(t, os.Link(file, other))

	require.NoError(t, fs.WriteFile(file, []byte("fn a() {}\n"), 0644))

	content, err := os.ReadFile(other)
	require.NoError(t, err)
	assert.Equal(t, "fn a() {}\n", string(content))
}

func TestFS_WriteFile_MissingDirectory(t *testing.T) {
	fs := NewFS()

	err := fs.WriteFile(filepath.Join(t.TempDir(), "missing", "lib.rs"), []byte("x"), 0644)
	assert.Error(t, err)
}

func TestFS_Glob(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	for _, name := range []string{"a.rs", "b.rs", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), nil, 0644))
	}

	matches, err := fs.Glob(filepath.Join(tempDir, "*.rs"))
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{filepath.Join(tempDir, "a.rs"), filepath.Join(tempDir, "b.rs")}, matches)

	_, err = fs.Glob("[invalid")
	assert.Error(t, err)
}

func TestFS_ExpandPath(t *testing.T) {
	fs := NewFS()
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := fs.ExpandPath("~/src/lib.rs")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "src", "lib.rs"), expanded)

	expanded, err = fs.ExpandPath("~")
	assert.NoError(t, err)
	assert.Equal(t, homeDir, expanded)

	expanded, err = fs.ExpandPath("src/~lib.rs")
	assert.NoError(t, err)
	assert.Equal(t, "src/~lib.rs", expanded)
}
