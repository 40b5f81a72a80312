// Package runner runs external programs: package managers, git and the
// tools installers bootstrap.
package runner

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/logging"
)

// DefaultTimeout bounds every command.
const DefaultTimeout = 5 * time.Minute

// Runner runs commands.
type Runner interface {
	// LookPath returns the absolute path of an executable on PATH.
	LookPath(name string) (string, error)
	// Run runs a command with its output streamed to the user.
	Run(ctx context.Context, name string, args ...string) error
	// Output runs a command and returns its trimmed stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// Exec runs real processes.
type Exec struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Timeout time.Duration
	DryRun  bool
}

// NewExec creates a runner streaming to the process's stdout and stderr.
func NewExec(dryRun bool) *Exec {
	return &Exec{Stdout: os.Stdout, Stderr: os.Stderr, Timeout: DefaultTimeout, DryRun: dryRun}
}

// LookPath wraps exec.LookPath, returning DEPENDENCY_MISSING when absent.
func (e *Exec) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDependency, "%s not found on PATH", name).
			WithDetail("command", name)
	}
	return path, nil
}

// Run executes name with args. In dry-run mode it only logs.
func (e *Exec) Run(ctx context.Context, name string, args ...string) error {
	logger := logging.GetLogger("runner").With().Str("command", name).Strs("args", args).Logger()

	if e.DryRun {
		logger.Info().Msg("Dry run mode - command would be executed")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout())
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = io.MultiWriter(e.Stderr, &stderr)

	logger.Info().Msg("Executing command")
	if err := cmd.Run(); err != nil {
		logger.Error().Err(err).Str("stderr", stderr.String()).Msg("Command execution failed")
		return commandError(err, name, args)
	}
	logger.Debug().Msg("Command executed successfully")
	return nil
}

// Output executes name with args and returns stdout. It runs in dry-run
// mode too because callers need the answer to plan.
func (e *Exec) Output(ctx context.Context, name string, args ...string) (string, error) {
	logger := logging.GetLogger("runner").With().Str("command", name).Strs("args", args).Logger()

	ctx, cancel := context.WithTimeout(ctx, e.timeout())
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logger.Error().Err(err).Str("stderr", stderr.String()).Msg("Command execution failed")
		return "", commandError(err, name, args).WithDetail("stderr", stderr.String())
	}

	out := strings.TrimSpace(stdout.String())
	logger.Debug().Str("output", out).Msg("Command output")
	return out, nil
}

func (e *Exec) timeout() time.Duration {
	if e.Timeout <= 0 {
		return DefaultTimeout
	}
	return e.Timeout
}

func commandError(err error, name string, args []string) *errors.Error {
	code := errors.ErrCommandFailed
	if _, ok := err.(*exec.Error); ok {
		code = errors.ErrDependency
	}
	e := errors.Wrapf(err, code, "failed to execute command: %s", strings.Join(append([]string{name}, args...), " ")).
		WithDetail("command", name)
	if exitErr, ok := err.(*exec.ExitError); ok {
		e = e.WithDetail("exit_code", exitErr.ExitCode())
	}
	return e
}

// Dependency returns the path of name, or "" when it is not installed.
func Dependency(r Runner, name string) string {
	path, err := r.LookPath(name)
	if err != nil {
		return ""
	}
	return path
}
