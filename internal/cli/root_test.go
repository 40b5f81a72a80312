package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotinstall/pkg/config"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/installers"
	"github.com/arthur-debert/dotinstall/pkg/logging"
	"github.com/arthur-debert/dotinstall/pkg/operations"
	"github.com/arthur-debert/dotinstall/pkg/paths"
	"github.com/arthur-debert/dotinstall/pkg/runner"
	"github.com/arthur-debert/dotinstall/pkg/testutil"
	"github.com/arthur-debert/dotinstall/pkg/ui/output"
)

const (
	home  = "/home/u"
	dots  = "/dots"
	zshrc = home + "/.zshrc"
)

var aliasBlock = "### ALIAS ###\nalias ll='ls -l'\n### ALIAS ###\n"

type harness struct {
	app     *app
	fs      filesystem.FS
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	answers *testutil.Answers
}

// newHarness wires the app to an in-memory Env holding tree under /dots.
func newHarness(t *testing.T, tree testutil.FileTree) *harness {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("NO_COLOR", "1")
	t.Setenv(logging.EnvLogFile, "off")

	fsys := filesystem.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll(home, 0755))
	testutil.CreateFileTree(t, fsys, dots, tree)

	h := &harness{
		fs:      fsys,
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		answers: &testutil.Answers{},
	}
	h.app = newApp(nil, h.stdout, h.stderr)
	h.app.newEnv = func(a *app) (*installers.Env, error) {
		cfg, err := config.Load(config.LoadOptions{})
		if err != nil {
			return nil, err
		}
		p, err := paths.New(dots)
		if err != nil {
			return nil, err
		}
		reg, err := config.NewRegistry(cfg, p)
		if err != nil {
			return nil, err
		}
		return &installers.Env{
			Ctx:      context.Background(),
			FS:       fsys,
			Config:   cfg,
			Domains:  reg,
			Paths:    p,
			Prompter: h.answers,
			Runner:   runner.NewFake(),
			Executor: operations.NewDirectExecutor(fsys, a.dryRun),
			Out:      output.New(a.stdout, output.FormatText),
			DryRun:   a.dryRun,
			Yes:      a.yes,
			Report:   installers.NewReport(),
		}, nil
	}
	return h
}

// run executes args on a fresh app sharing the same filesystem.
func (h *harness) run(args ...string) int {
	h.stdout.Reset()
	h.stderr.Reset()
	next := newApp(nil, h.stdout, h.stderr)
	next.newEnv = h.app.newEnv
	h.app = next
	return next.execute(args)
}

func zshTree() testutil.FileTree {
	return testutil.FileTree{"zsh/aliases.sh": aliasBlock}
}

func TestExecute_InstallThenNoChanges(t *testing.T) {
	h := newHarness(t, zshTree())

	assert.Equal(t, installers.ExitApplied, h.run("zsh", "aliases", "--yes"))
	assert.Contains(t, h.stdout.String(), "zsh: 1 applied")
	assert.Equal(t, aliasBlock, testutil.ReadFile(t, h.fs, zshrc))

	assert.Equal(t, installers.ExitNoChanges, h.run("zsh", "aliases", "--yes"))
	assert.Contains(t, h.stdout.String(), "1 unchanged")
}

func TestExecute_Declined(t *testing.T) {
	h := newHarness(t, zshTree())
	h.answers.Replies = []bool{false}

	assert.Equal(t, installers.ExitNoChanges, h.run("zsh", "aliases"))
	assert.Len(t, h.answers.Asked, 1)
	testutil.AssertNotExists(t, h.fs, zshrc)
}

func TestExecute_DryRun(t *testing.T) {
	h := newHarness(t, zshTree())

	assert.Equal(t, installers.ExitNoChanges, h.run("--dry-run", "zsh", "aliases"))
	assert.Contains(t, h.stdout.String(), "1 previewed")
	testutil.AssertNotExists(t, h.fs, zshrc)
}

func TestExecute_AmbiguousSource(t *testing.T) {
	h := newHarness(t, testutil.FileTree{"zsh/aliases.sh": aliasBlock + aliasBlock})

	assert.Equal(t, installers.ExitError, h.run("zsh", "aliases", "--yes"))
	assert.Contains(t, h.stderr.String(), "--- block 1 ---")
	assert.Contains(t, h.stderr.String(), "--- block 2 ---")
}

func TestExecute_Errors(t *testing.T) {
	h := newHarness(t, zshTree())

	assert.Equal(t, installers.ExitError, h.run())
	assert.Equal(t, installers.ExitError, h.run("zsh", "nope"))
	assert.Contains(t, h.stderr.String(), "nope")
	assert.Equal(t, installers.ExitError, h.run("frobnicate"))
}

func TestListCmd(t *testing.T) {
	h := newHarness(t, zshTree())

	require.Equal(t, installers.ExitApplied, h.run("list"))
	out := h.stdout.String()
	assert.Contains(t, out, "lazygit")
	assert.Contains(t, out, "alias: lg")
	assert.Contains(t, out, "keybindings")
	assert.Contains(t, out, "shell aliases")
}

func TestStatusCmd(t *testing.T) {
	h := newHarness(t, zshTree())
	require.NoError(t, h.fs.WriteFile(zshrc, []byte(aliasBlock), 0644))

	require.Equal(t, installers.ExitApplied, h.run("status"))
	assert.Regexp(t, `aliases\s+installed\s+~/.zshrc`, h.stdout.String())
	assert.Regexp(t, `keybindings\s+error`, h.stdout.String())
}

func TestShowCmd(t *testing.T) {
	h := newHarness(t, zshTree())

	require.Equal(t, installers.ExitApplied, h.run("show", "aliases"))
	assert.Contains(t, h.stdout.String(), "alias ll='ls -l'")

	assert.Equal(t, installers.ExitError, h.run("show", "emacs"))
	assert.Contains(t, h.stderr.String(), `unknown snippet "emacs"`)
}

func TestConfigCmd(t *testing.T) {
	h := newHarness(t, nil)

	require.Equal(t, installers.ExitApplied, h.run("config"))
	assert.Contains(t, h.stdout.String(), "### KEYBINDINGS ###")
}

func TestVersionCmd(t *testing.T) {
	h := newHarness(t, nil)

	require.Equal(t, installers.ExitApplied, h.run("version"))
	assert.Contains(t, h.stdout.String(), "dotinstall version dev")
}

func TestCompletionCmd(t *testing.T) {
	h := newHarness(t, nil)

	require.Equal(t, installers.ExitApplied, h.run("completion", "zsh"))
	assert.Contains(t, h.stdout.String(), "#compdef dotinstall")

	assert.Equal(t, installers.ExitError, h.run("completion", "tcsh"))
}
