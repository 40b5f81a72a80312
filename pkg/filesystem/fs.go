package filesystem

import (
	"errors"
	"io/fs"
)

// FS is the set of filesystem calls installers make.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	MkdirAll(path string, perm fs.FileMode) error

	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
}

// ReadFileOrEmpty returns the content of name, or "" when it does not exist.
func ReadFileOrEmpty(fsys FS, name string) (string, error) {
	data, err := fsys.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Exists reports whether name exists without following a final symlink.
func Exists(fsys FS, name string) bool {
	_, err := fsys.Lstat(name)
	return err == nil
}

// IsSymlink reports whether name is a symlink.
func IsSymlink(fsys FS, name string) bool {
	info, err := fsys.Lstat(name)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}
