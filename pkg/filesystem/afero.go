package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// aferoFS adapts an afero.Fs. Backends without symlink support (MemMapFs)
// get symlinks simulated in a side table: the link path exists as an empty
// placeholder file, Lstat reports ModeSymlink and Stat/ReadFile follow it.
type aferoFS struct {
	fs afero.Fs

	mu    sync.RWMutex
	links map[string]string
}

// NewAferoFS wraps fs.
func NewAferoFS(fs afero.Fs) FS {
	return &aferoFS{fs: fs, links: make(map[string]string)}
}

// NewMemoryFS returns an empty in-memory filesystem.
func NewMemoryFS() FS {
	return NewAferoFS(afero.NewMemMapFs())
}

func (a *aferoFS) link(name string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	target, ok := a.links[filepath.Clean(name)]
	return target, ok
}

// resolve follows simulated links, relative targets included.
func (a *aferoFS) resolve(name string) string {
	for i := 0; i < 40; i++ {
		target, ok := a.link(name)
		if !ok {
			return name
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(name), target)
		}
		name = target
	}
	return name
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(a.resolve(name))
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if target, ok := a.link(name); ok {
		return linkInfo{name: filepath.Base(name), target: target}, nil
	}
	if l, ok := a.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	name = a.resolve(name)
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, a.resolve(name), data, perm)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, a.resolve(name))
	if err != nil {
		return nil, err
	}
	out := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		info := entry
		if target, ok := a.link(filepath.Join(name, entry.Name())); ok {
			info = linkInfo{name: entry.Name(), target: target}
		}
		out[i] = fs.FileInfoToDirEntry(info)
	}
	return out, nil
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Symlink(oldname, newname string) error {
	if l, ok := a.fs.(afero.Linker); ok {
		return l.SymlinkIfPossible(oldname, newname)
	}
	if _, err := a.Lstat(newname); err == nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: fs.ErrExist}
	}
	if err := afero.WriteFile(a.fs, newname, nil, 0777); err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.links[filepath.Clean(newname)] = oldname
	return nil
}

func (a *aferoFS) Readlink(name string) (string, error) {
	if target, ok := a.link(name); ok {
		return target, nil
	}
	if r, ok := a.fs.(afero.LinkReader); ok {
		return r.ReadlinkIfPossible(name)
	}
	return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrInvalid}
}

func (a *aferoFS) Remove(name string) error {
	if err := a.fs.Remove(name); err != nil {
		return err
	}
	a.forget(name)
	return nil
}

func (a *aferoFS) RemoveAll(path string) error {
	if err := a.fs.RemoveAll(path); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	prefix := filepath.Clean(path) + string(filepath.Separator)
	for name := range a.links {
		if name == filepath.Clean(path) || len(name) > len(prefix) && name[:len(prefix)] == prefix {
			delete(a.links, name)
		}
	}
	return nil
}

func (a *aferoFS) Rename(oldpath, newpath string) error {
	if err := a.fs.Rename(oldpath, newpath); err != nil {
		return err
	}
	if target, ok := a.link(oldpath); ok {
		a.forget(oldpath)
		a.mu.Lock()
		a.links[filepath.Clean(newpath)] = target
		a.mu.Unlock()
	}
	return nil
}

func (a *aferoFS) forget(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.links, filepath.Clean(name))
}

// linkInfo describes a simulated symlink.
type linkInfo struct {
	name   string
	target string
}

func (l linkInfo) Name() string       { return l.name }
func (l linkInfo) Size() int64        { return int64(len(l.target)) }
func (l linkInfo) Mode() fs.FileMode  { return fs.ModeSymlink | 0777 }
func (l linkInfo) ModTime() time.Time { return time.Time{} }
func (l linkInfo) IsDir() bool        { return false }
func (l linkInfo) Sys() interface{}   { return nil }
