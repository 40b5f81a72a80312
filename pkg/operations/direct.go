package operations

import (
	"context"
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/logging"
)

// Applier carries out planned operations.
type Applier interface {
	Execute(ctx context.Context, ops []Operation) error
	DryRun() bool
}

var (
	_ Applier = (*Executor)(nil)
	_ Applier = (*DirectExecutor)(nil)
)

// DirectExecutor applies operations one by one on a filesystem.FS and
// restores the touched paths when one fails. It backs in-memory filesystems
// where a synthfs pipeline has nothing to run against.
type DirectExecutor struct {
	fsys   filesystem.FS
	dryRun bool
}

// NewDirectExecutor creates an executor over fsys.
func NewDirectExecutor(fsys filesystem.FS, dryRun bool) *DirectExecutor {
	return &DirectExecutor{fsys: fsys, dryRun: dryRun}
}

// DryRun reports whether the executor only logs.
func (e *DirectExecutor) DryRun() bool { return e.dryRun }

// Execute applies ops in order. At the first failure the paths already
// changed are restored and the error is returned.
func (e *DirectExecutor) Execute(ctx context.Context, ops []Operation) error {
	logger := logging.GetLogger("operations.direct")
	j := &journal{fsys: e.fsys, read: e.fsys.ReadFile}

	for _, op := range ops {
		if e.dryRun {
			logger.Info().Str("type", string(op.Type)).Str("target", op.Target).Msg("Would " + op.Describe())
			continue
		}
		err := ctx.Err()
		if err == nil {
			logger.Debug().Str("type", string(op.Type)).Str("target", op.Target).Msg(op.Describe())
			if err = j.record(op); err != nil {
				err = errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", op.Target)
			} else {
				err = e.apply(op)
			}
		}
		if err != nil {
			_ = j.rollback(logger)
			return err
		}
	}
	return nil
}

func (e *DirectExecutor) apply(op Operation) error {
	switch op.Type {
	case Mkdir:
		mode := op.Mode
		if mode == 0 {
			mode = DirMode
		}
		if err := e.fsys.MkdirAll(op.Target, mode); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", op.Target)
		}
	case Symlink:
		if err := e.fsys.Symlink(op.Source, op.Target); err != nil {
			return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s", op.Target)
		}
	case Remove:
		if err := e.fsys.Remove(op.Target); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot remove %s", op.Target)
		}
	case Backup:
		data, err := e.fsys.ReadFile(op.Source)
		if err == nil {
			mode := op.Mode
			if mode == 0 {
				mode = 0644
			}
			err = e.fsys.WriteFile(op.Target, data, mode)
		}
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot back up %s", op.Source)
		}
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown operation type %q", op.Type)
	}
	return nil
}
