package operations

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/logging"
)

// Executor runs planned operations through a synthfs pipeline.
type Executor struct {
	logger     zerolog.Logger
	filesystem filesystem.FullFileSystem
	dryRun     bool
	rollback   bool
}

// NewExecutor creates an executor over the real filesystem with absolute
// paths. In dry-run mode operations are only logged.
func NewExecutor(dryRun bool) *Executor {
	osfs := filesystem.NewOSFileSystem("/")
	return NewExecutorWithFS(synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths(), dryRun)
}

// NewExecutorWithFS creates an executor over fsys.
func NewExecutorWithFS(fsys filesystem.FullFileSystem, dryRun bool) *Executor {
	return &Executor{
		logger:     logging.GetLogger("operations.executor"),
		filesystem: fsys,
		dryRun:     dryRun,
		rollback:   true,
	}
}

// DryRun reports whether the executor only logs.
func (e *Executor) DryRun() bool { return e.dryRun }

// Execute runs ops in order. Every step snapshots the path it changes, and
// a failure restores the snapshots newest first, so a forced relink that
// fails leaves the original file in place.
func (e *Executor) Execute(ctx context.Context, ops []Operation) error {
	if len(ops) == 0 {
		return nil
	}

	if e.dryRun {
		for _, op := range ops {
			e.logger.Info().
				Str("type", string(op.Type)).
				Str("target", op.Target).
				Msg("Would " + op.Describe())
		}
		return nil
	}

	j := &journal{
		fsys: e.filesystem,
		read: func(name string) ([]byte, error) { return fs.ReadFile(e.filesystem, name) },
	}

	sfs := synthfs.New()
	synthfsOps := make([]synthfs.Operation, 0, len(ops))
	for i, op := range ops {
		id := fmt.Sprintf("%03d_%s_%s", i, op.Type, op.Target)
		synthfsOps = append(synthfsOps, sfs.CustomOperationWithID(id, e.step(op, j)))
	}

	// Custom steps carry no synthfs reverse operation; the journal undoes them.
	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = false

	e.logger.Info().
		Int("operationCount", len(synthfsOps)).
		Bool("rollbackEnabled", e.rollback).
		Msg("Executing synthfs operations")

	if _, err := synthfs.RunWithOptions(ctx, e.filesystem, options, synthfsOps...); err != nil {
		e.logger.Error().Err(err).Msg("Operations failed")
		wrapped := errors.Wrap(err, errors.ErrFileWrite, "failed to apply filesystem operations")
		if e.rollback {
			if rbErr := j.rollback(e.logger); rbErr != nil {
				wrapped.WithDetail("rollback_error", rbErr.Error())
			}
		}
		return wrapped
	}

	return nil
}

func (e *Executor) step(op Operation, j *journal) func(ctx context.Context, _ filesystem.FileSystem) error {
	return func(ctx context.Context, _ filesystem.FileSystem) error {
		e.logger.Debug().Str("type", string(op.Type)).Str("target", op.Target).Msg(op.Describe())
		if err := j.record(op); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", op.Target)
		}

		fsys := e.filesystem
		switch op.Type {
		case Mkdir:
			mode := op.Mode
			if mode == 0 {
				mode = DirMode
			}
			if err := fsys.MkdirAll(op.Target, mode); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", op.Target)
			}
		case Symlink:
			if err := fsys.Symlink(op.Source, op.Target); err != nil {
				return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s", op.Target)
			}
		case Remove:
			if err := fsys.Remove(op.Target); err != nil && !os.IsNotExist(err) {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot remove %s", op.Target)
			}
		case Backup:
			if err := copyFile(fsys, op.Source, op.Target, op.Mode); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot back up %s", op.Source)
			}
		default:
			return errors.Newf(errors.ErrInvalidInput, "unknown operation type %q", op.Type)
		}
		return nil
	}
}

func copyFile(fsys filesystem.FullFileSystem, source, target string, mode os.FileMode) error {
	data, err := fs.ReadFile(fsys, source)
	if err != nil {
		return err
	}
	if mode == 0 {
		mode = 0644
	}
	return fsys.WriteFile(target, data, mode)
}
