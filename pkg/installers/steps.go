package installers

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotinstall/pkg/change"
	"github.com/arthur-debert/dotinstall/pkg/config"
	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/logging"
	"github.com/arthur-debert/dotinstall/pkg/operations"
	"github.com/arthur-debert/dotinstall/pkg/patch"
	"github.com/arthur-debert/dotinstall/pkg/paths"
	"github.com/arthur-debert/dotinstall/pkg/runner"
)

// InstallFence installs the block from d's source into d's target. An
// existing block is left alone unless replace is set.
func InstallFence(env *Env, d config.Domain, replace bool) error {
	logger := logging.GetLogger("installers.fence").With().
		Str("fence", d.Name).
		Str("target", d.Target).
		Logger()

	source, err := env.FS.ReadFile(d.Source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s source %s", d.Name, d.Source).
			WithDetail("path", d.Source)
	}
	target, err := filesystem.ReadFileOrEmpty(env.FS, d.Target)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", d.Target).
			WithDetail("path", d.Target)
	}

	plan, err := patch.Compute(d.Fence, string(source), target, replace)
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) {
			e.WithDetail("fence", d.Name).WithDetail("path", d.Target)
		}
		return err
	}
	logger.Debug().Str("kind", plan.Kind.String()).Msg("Fence planned")

	display := paths.Contract(d.Target)
	if plan.Kind == patch.NoOp {
		env.Out.Skip(MsgFenceInstalled, d.Name, display)
		env.Report.Record(d.Installer, d.Name, change.Unchanged)
		return nil
	}
	if !plan.Changed() {
		env.Out.Skip(MsgFenceUpToDate, d.Name, display)
		env.Report.Record(d.Installer, d.Name, change.Unchanged)
		return nil
	}

	env.Out.Header("%s (%s)", d.Name, strings.ToLower(plan.Kind.String()))
	outcome, err := change.Confirm(plan.Change(d.Target), env.FS, env.Prompter, change.Options{
		Yes:      env.Yes,
		DryRun:   env.DryRun,
		Context:  env.Config.Diff.Context,
		Out:      env.Out.Writer(),
		Colorize: env.Out.ColorizeDiff,
	})
	if err != nil {
		return err
	}

	reportOutcome(env, d.Installer, d.Name, display, outcome)
	return nil
}

// InstallFences installs each domain in order, stopping at the first error.
func InstallFences(env *Env, domains []config.Domain, replace bool) error {
	for _, d := range domains {
		if err := InstallFence(env, d, replace); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir makes sure dir exists, asking before creating it. It reports
// whether the directory exists afterwards; in dry-run mode it does not.
func EnsureDir(env *Env, installer, dir string, mode os.FileMode) (bool, error) {
	info, err := env.FS.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", dir).
				WithDetail("path", dir)
		}
		return true, nil
	}

	display := paths.Contract(dir)
	if env.DryRun {
		env.Out.Skip(MsgWouldCreateDir, display)
		env.Report.Record(installer, dir, change.Previewed)
		return false, nil
	}

	ok, err := env.ask(fmt.Sprintf(MsgAskCreateDir, display))
	if err != nil {
		return false, err
	}
	if !ok {
		env.Out.Skip(MsgSkipped, display)
		env.Report.Record(installer, dir, change.Declined)
		return false, nil
	}

	op := operations.Operation{Type: operations.Mkdir, Target: dir, Mode: mode}
	if err := env.Executor.Execute(env.context(), []operations.Operation{op}); err != nil {
		return false, err
	}
	env.Out.Success(MsgCreatedDir, display)
	env.Report.Record(installer, dir, change.Applied)
	return true, nil
}

// LinkPair is one source to link at one target.
type LinkPair struct {
	Source string
	Target string
}

// Link links target to source. See LinkAll.
func Link(env *Env, installer, source, target string, force bool) (bool, error) {
	return LinkAll(env, installer, []LinkPair{{Source: source, Target: target}}, force)
}

// LinkAll plans every pair, shows the plan and applies it after a single
// confirmation. Targets that already exist and need --force are reported
// and skipped. It reports whether links were created.
func LinkAll(env *Env, installer string, pairs []LinkPair, force bool) (bool, error) {
	var ops []operations.Operation
	for _, p := range pairs {
		planned, err := operations.PlanLink(env.FS, p.Source, p.Target, operations.LinkOptions{
			Force:        force,
			BackupSuffix: env.Config.Backup.Suffix,
		})
		switch {
		case errors.IsErrorCode(err, errors.ErrSymlinkExists):
			env.Out.Warn(MsgLinkExists, paths.Contract(p.Target))
			env.Report.Record(installer, p.Target, change.Declined)
			continue
		case err != nil:
			return false, err
		case len(planned) == 0:
			env.Out.Skip(MsgAlreadyLinked, paths.Contract(p.Target))
			env.Report.Record(installer, p.Target, change.Unchanged)
			continue
		}
		ops = append(ops, planned...)
	}

	return applyOps(env, installer, ops)
}

// LinkTree links every file under sourceDir into destDir, keeping the
// directory layout. Existing files are reported as conflicts.
func LinkTree(env *Env, installer, sourceDir, destDir string) (bool, error) {
	res, err := operations.PlanLinkTree(env.FS, sourceDir, destDir)
	if err != nil {
		return false, err
	}
	for _, c := range res.Conflicts {
		env.Out.Warn(MsgTreeConflict, paths.Contract(c))
	}
	if len(res.Ops) == 0 {
		env.Out.Skip(MsgAlreadyLinked, paths.Contract(destDir))
		env.Report.Record(installer, destDir, change.Unchanged)
		return false, nil
	}
	return applyOps(env, installer, res.Ops)
}

func applyOps(env *Env, installer string, ops []operations.Operation) (bool, error) {
	if len(ops) == 0 {
		return false, nil
	}

	for _, op := range ops {
		env.Out.Println("  %s", op.Describe())
	}
	subject := ops[len(ops)-1].Target

	if env.DryRun {
		env.Report.Record(installer, subject, change.Previewed)
		return false, nil
	}

	ok, err := env.ask(MsgAskApply)
	if err != nil {
		return false, err
	}
	if !ok {
		env.Out.Skip(MsgSkipped, paths.Contract(subject))
		env.Report.Record(installer, subject, change.Declined)
		return false, nil
	}

	if err := env.Executor.Execute(env.context(), ops); err != nil {
		return false, err
	}
	for _, op := range ops {
		if op.Type == operations.Symlink {
			env.Out.Success(MsgLinked, paths.Contract(op.Target), paths.Contract(op.Source))
		}
	}
	env.Report.Record(installer, subject, change.Applied)
	return true, nil
}

// EnsureBrewed returns the path of formula's executable, offering to
// install it with Homebrew when it is missing. An empty path with a nil
// error means the user declined or this is a dry run.
func EnsureBrewed(env *Env, installer, formula string) (string, error) {
	if path := runner.Dependency(env.Runner, formula); path != "" {
		return path, nil
	}

	brew := runner.Dependency(env.Runner, "brew")
	if brew == "" {
		return "", errors.Newf(errors.ErrDependency, "%s is not installed and Homebrew is not available", formula).
			WithDetail("command", "brew")
	}

	ran, err := Run(env, installer, fmt.Sprintf(MsgAskBrewInstall, formula), brew, "install", formula)
	if err != nil || !ran {
		return "", err
	}
	return runner.Dependency(env.Runner, formula), nil
}

// Run asks question and then runs the command. In dry-run mode the command
// is only printed. It reports whether the command ran; a declined question
// is not an error.
func Run(env *Env, installer, question, name string, args ...string) (bool, error) {
	line := strings.Join(append([]string{filepath.Base(name)}, args...), " ")

	if env.DryRun {
		env.Out.Skip(MsgWouldRun, line)
		env.Report.Record(installer, line, change.Previewed)
		return false, nil
	}

	if question != "" {
		ok, err := env.ask(question)
		if err != nil {
			return false, err
		}
		if !ok {
			env.Out.Skip(MsgSkipped, line)
			env.Report.Record(installer, line, change.Declined)
			return false, nil
		}
	}

	env.Out.Println(MsgRunning, line)
	if err := env.Runner.Run(env.context(), name, args...); err != nil {
		return false, err
	}
	env.Report.Record(installer, line, change.Applied)
	return true, nil
}

func reportOutcome(env *Env, installer, subject, display string, outcome change.Outcome) {
	switch outcome {
	case change.Applied:
		env.Out.Success(MsgFenceApplied, subject, display)
	case change.Declined:
		env.Out.Skip(MsgSkipped, subject)
	}
	env.Report.Record(installer, subject, outcome)
}
