package testutil

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotinstall/pkg/filesystem"
)

// FileTree describes a directory: string values are file contents and
// FileTree values are subdirectories.
type FileTree map[string]interface{}

// CreateFileTree writes tree under basePath.
func CreateFileTree(t *testing.T, fsys filesystem.FS, basePath string, tree FileTree) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(basePath, 0755))
	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			require.NoError(t, fsys.MkdirAll(filepath.Dir(fullPath), 0755))
			require.NoError(t, fsys.WriteFile(fullPath, []byte(v), 0644), "write %s", fullPath)
		case FileTree:
			CreateFileTree(t, fsys, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// ReadFile returns the content of path, failing the test if it is missing.
func ReadFile(t *testing.T, fsys filesystem.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	require.NoError(t, err, "read %s", path)
	return string(data)
}

// AssertSymlink checks that path is a symlink to want.
func AssertSymlink(t *testing.T, fsys filesystem.FS, path, want string) {
	t.Helper()

	info, err := fsys.Lstat(path)
	if !assert.NoError(t, err, "lstat %s", path) {
		return
	}
	if !assert.NotZero(t, info.Mode()&fs.ModeSymlink, "%s is not a symlink", path) {
		return
	}
	got, err := fsys.Readlink(path)
	assert.NoError(t, err)
	assert.Equal(t, want, got, "link target of %s", path)
}

// AssertNotExists checks that nothing is at path.
func AssertNotExists(t *testing.T, fsys filesystem.FS, path string) {
	t.Helper()
	assert.False(t, filesystem.Exists(fsys, path), "%s should not exist", path)
}
