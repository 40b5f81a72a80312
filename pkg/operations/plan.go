package operations

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/logging"
)

// DirMode is used for directories created on the way to a link.
const DirMode os.FileMode = 0755

// LinkOptions tunes PlanLink.
type LinkOptions struct {
	// Force replaces a regular file at the target after backing it up.
	Force bool
	// BackupSuffix is appended to the target to name the backup.
	BackupSuffix string
}

// PlanLink plans making target a symlink to source.
//
//   - target already links to source: nothing to do
//   - target is a symlink elsewhere: it is replaced
//   - target is a regular file: with Force it is backed up and replaced,
//     otherwise SYMLINK_EXISTS
//   - target is a directory: SYMLINK_EXISTS
//   - target is missing: its parent is created if needed, then linked
func PlanLink(fsys filesystem.FS, source, target string, opts LinkOptions) ([]Operation, error) {
	logger := logging.GetLogger("operations").With().
		Str("source", source).
		Str("target", target).
		Logger()

	if _, err := fsys.Lstat(source); err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "link source %s does not exist", source).
			WithDetail("path", source)
	}

	info, err := fsys.Lstat(target)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		var ops []Operation
		parent := filepath.Dir(target)
		if _, err := fsys.Stat(parent); err != nil {
			ops = append(ops, Operation{Type: Mkdir, Target: parent, Mode: DirMode})
		}
		return append(ops, Operation{Type: Symlink, Source: source, Target: target}), nil

	case err != nil:
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", target)

	case info.Mode()&fs.ModeSymlink != 0:
		current, err := fsys.Readlink(target)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", target)
		}
		if current == source {
			logger.Debug().Msg("Already linked")
			return nil, nil
		}
		logger.Info().Str("current", current).Msg("Replacing symlink")
		return []Operation{
			{Type: Remove, Target: target},
			{Type: Symlink, Source: source, Target: target},
		}, nil

	case info.IsDir():
		return nil, errors.Newf(errors.ErrSymlinkExists, "%s is a directory", target).
			WithDetail("path", target)

	case !opts.Force:
		return nil, errors.Newf(errors.ErrSymlinkExists, "%s already exists; use --force to replace it", target).
			WithDetail("path", target)

	default:
		suffix := opts.BackupSuffix
		if suffix == "" {
			suffix = ".bak"
		}
		return []Operation{
			{Type: Backup, Source: target, Target: target + suffix, Mode: info.Mode().Perm()},
			{Type: Remove, Target: target},
			{Type: Symlink, Source: source, Target: target},
		}, nil
	}
}

// TreeResult is the plan for linking a directory tree.
type TreeResult struct {
	Ops []Operation
	// Conflicts lists targets left alone because something is already there.
	Conflicts []string
}

// PlanLinkTree plans linking every file under sourceDir to the same
// relative path under destDir. Directories are created, never linked.
// Existing targets are reported as conflicts instead of failing the tree.
func PlanLinkTree(fsys filesystem.FS, sourceDir, destDir string) (*TreeResult, error) {
	info, err := fsys.Stat(sourceDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "source directory %s does not exist", sourceDir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", sourceDir)
	}

	res := &TreeResult{}
	made := map[string]bool{}
	mkdir := func(dir string) {
		if made[dir] {
			return
		}
		made[dir] = true
		if _, err := fsys.Stat(dir); err != nil {
			res.Ops = append(res.Ops, Operation{Type: Mkdir, Target: dir, Mode: DirMode})
		}
	}

	if dest, err := fsys.Lstat(destDir); err == nil && !dest.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", destDir)
	}
	mkdir(destDir)

	var walk func(rel string) error
	walk = func(rel string) error {
		entries, err := fsys.ReadDir(filepath.Join(sourceDir, rel))
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", filepath.Join(sourceDir, rel))
		}
		for _, entry := range entries {
			childRel := filepath.Join(rel, entry.Name())
			if entry.IsDir() {
				mkdir(filepath.Join(destDir, childRel))
				if err := walk(childRel); err != nil {
					return err
				}
				continue
			}

			source := filepath.Join(sourceDir, childRel)
			target := filepath.Join(destDir, childRel)
			ops, err := PlanLink(fsys, source, target, LinkOptions{})
			if errors.IsErrorCode(err, errors.ErrSymlinkExists) {
				res.Conflicts = append(res.Conflicts, target)
				continue
			}
			if err != nil {
				return err
			}
			for _, op := range ops {
				if op.Type == Mkdir {
					continue
				}
				res.Ops = append(res.Ops, op)
			}
		}
		return nil
	}

	if err := walk(""); err != nil {
		return nil, err
	}
	return res, nil
}
