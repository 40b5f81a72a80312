package installers_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotinstall/pkg/config"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/installers"
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

// fixture is an Env over an in-memory filesystem with a fake runner.
type fixture struct {
	env     *installers.Env
	fs      filesystem.FS
	runner  *runner.Fake
	out     *bytes.Buffer
	answers *testutil.Answers
}

func newFixture(t *testing.T, tree testutil.FileTree) *fixture {
	t.Helper()
	t.Setenv("HOME", home)

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)
	p, err := paths.New(dots)
	require.NoError(t, err)
	reg, err := config.NewRegistry(cfg, p)
	require.NoError(t, err)

	fsys := filesystem.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll(home, 0755))
	testutil.CreateFileTree(t, fsys, dots, tree)

	f := &fixture{
		fs:      fsys,
		runner:  runner.NewFake(),
		out:     &bytes.Buffer{},
		answers: &testutil.Answers{},
	}
	f.env = &installers.Env{
		Ctx:      context.Background(),
		FS:       fsys,
		Config:   cfg,
		Domains:  reg,
		Paths:    p,
		Prompter: f.answers,
		Runner:   f.runner,
		Executor: operations.NewDirectExecutor(fsys, false),
		Out:      output.New(f.out, output.FormatText),
		Yes:      true,
		Report:   installers.NewReport(),
	}
	return f
}

// interactive turns off --yes and scripts the answers.
func (f *fixture) interactive(replies ...bool) {
	f.env.Yes = false
	f.answers.Replies = replies
}

func (f *fixture) dryRun() {
	f.env.DryRun = true
	f.env.Executor = operations.NewDirectExecutor(f.fs, true)
}

func (f *fixture) resetReport() {
	f.env.Report = installers.NewReport()
	f.out.Reset()
}

func block(marker, body string) string {
	return marker + "\n" + body + "\n" + marker + "\n"
}
