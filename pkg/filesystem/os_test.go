package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	require.NoError(t, fsys.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755))

	entries, err := fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, fsys.Remove(testFile))
	_, err = fsys.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestOSWriteFile_Atomic(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()
	path := filepath.Join(dir, ".zshrc")

	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0600))
	require.NoError(t, fsys.WriteFile(path, []byte("new\n"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "existing mode is kept")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestOSWriteFile_ThroughSymlink(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()
	realPath := filepath.Join(dir, "dotfiles", "zshrc")
	link := filepath.Join(dir, ".zshrc")

	require.NoError(t, os.MkdirAll(filepath.Dir(realPath), 0755))
	require.NoError(t, os.WriteFile(realPath, []byte("a\n"), 0644))
	require.NoError(t, os.Symlink(realPath, link))

	require.NoError(t, fsys.WriteFile(link, []byte("b\n"), 0644))

	assert.True(t, IsSymlink(fsys, link), "link is preserved")
	data, err := os.ReadFile(realPath)
	require.NoError(t, err)
	assert.Equal(t, "b\n", string(data))
}

func TestOSWriteFile_DanglingSymlink(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dotfiles"), 0755))
	link := filepath.Join(dir, ".zshrc")
	require.NoError(t, os.Symlink(filepath.Join("dotfiles", "zshrc"), link))

	require.NoError(t, fsys.WriteFile(link, []byte("b\n"), 0644))

	assert.True(t, IsSymlink(fsys, link), "link is preserved")
	data, err := os.ReadFile(filepath.Join(dir, "dotfiles", "zshrc"))
	require.NoError(t, err)
	assert.Equal(t, "b\n", string(data))
}

func TestOSWriteFile_SymlinkLoop(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a"), filepath.Join(dir, "b")
	require.NoError(t, os.Symlink(b, a))
	require.NoError(t, os.Symlink(a, b))

	assert.Error(t, fsys.WriteFile(a, []byte("x"), 0644))
	assert.True(t, IsSymlink(fsys, a))
}

func TestOSSymlink(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")

	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
	require.NoError(t, fsys.Symlink(target, link))

	got, err := fsys.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)
	assert.True(t, IsSymlink(fsys, link))
	assert.False(t, IsSymlink(fsys, target))
}

func TestReadFileOrEmpty(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()

	got, err := ReadFileOrEmpty(fsys, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Equal(t, "", got)

	path := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0644))
	got, err = ReadFileOrEmpty(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "text", got)

	_, err = ReadFileOrEmpty(fsys, dir)
	assert.Error(t, err, "a directory is not readable as a file")
}
