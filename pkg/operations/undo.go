package operations

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"
)

// undoFS is the part of a filesystem needed to record and restore a path.
// Both filesystem.FS and synthfs filesystems provide it.
type undoFS interface {
	Stat(name string) (fs.FileInfo, error)
	Readlink(name string) (string, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Symlink(oldname, newname string) error
	Remove(name string) error
	RemoveAll(path string) error
}

type entryKind int

const (
	kindAbsent entryKind = iota
	kindFile
	kindLink
	kindDir
)

// snapshot is what a path held before an operation touched it.
type snapshot struct {
	path string
	kind entryKind
	data []byte
	mode fs.FileMode
	link string
}

func takeSnapshot(fsys undoFS, read func(string) ([]byte, error), path string) (snapshot, error) {
	s := snapshot{path: path}
	if dest, err := fsys.Readlink(path); err == nil {
		s.kind, s.link = kindLink, dest
		return s, nil
	}
	info, err := fsys.Stat(path)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return s, err
	case info.IsDir():
		s.kind, s.mode = kindDir, info.Mode().Perm()
		return s, nil
	}
	data, err := read(path)
	if err != nil {
		return s, err
	}
	s.kind, s.data, s.mode = kindFile, data, info.Mode().Perm()
	return s, nil
}

// topmostMissing returns the highest directory MkdirAll(dir) would create,
// or "" when dir already exists.
func topmostMissing(fsys undoFS, dir string) string {
	missing := ""
	for d := filepath.Clean(dir); ; d = filepath.Dir(d) {
		if _, err := fsys.Stat(d); err == nil {
			return missing
		}
		missing = d
		if parent := filepath.Dir(d); parent == d {
			return missing
		}
	}
}

// restore puts the path back the way the snapshot found it. Whatever sits
// there now is removed first so a link is never written through.
func (s snapshot) restore(fsys undoFS) error {
	switch s.kind {
	case kindDir:
		return fsys.MkdirAll(s.path, s.mode)
	case kindAbsent:
		if err := fsys.RemoveAll(s.path); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}

	if err := fsys.Remove(s.path); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return err
	}
	if s.kind == kindLink {
		return fsys.Symlink(s.link, s.path)
	}
	return fsys.WriteFile(s.path, s.data, s.mode)
}

// journal records snapshots in execution order.
type journal struct {
	fsys    undoFS
	read    func(string) ([]byte, error)
	entries []snapshot
}

// record snapshots the paths op is about to change.
func (j *journal) record(op Operation) error {
	path := op.Target
	if op.Type == Mkdir {
		path = topmostMissing(j.fsys, op.Target)
		if path == "" {
			return nil
		}
	}
	s, err := takeSnapshot(j.fsys, j.read, path)
	if err != nil {
		return err
	}
	j.entries = append(j.entries, s)
	return nil
}

// rollback restores every recorded path, newest first. It keeps going past
// failures and returns the first one.
func (j *journal) rollback(logger zerolog.Logger) error {
	var first error
	for i := len(j.entries) - 1; i >= 0; i-- {
		s := j.entries[i]
		if err := s.restore(j.fsys); err != nil {
			logger.Error().Err(err).Str("path", s.path).Msg("Rollback failed")
			if first == nil {
				first = err
			}
			continue
		}
		logger.Debug().Str("path", s.path).Msg("Restored")
	}
	j.entries = nil
	return first
}
