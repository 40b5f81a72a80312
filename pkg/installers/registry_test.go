package installers_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotinstall/pkg/change"
	"github.com/arthur-debert/dotinstall/pkg/config"
	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/installers"
	"github.com/arthur-debert/dotinstall/pkg/testutil"
)

func TestRegistry(t *testing.T) {
	var names []string
	for _, inst := range installers.Registry() {
		names = append(names, inst.Name)
		assert.NotEmpty(t, inst.Short, inst.Name)
	}
	assert.Equal(t, []string{"bin", "bob", "karabiner", "lazygit", "nvim", "ssh", "tmux", "zoxide", "zsh"}, names)

	_, err := installers.Lookup("emacs")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInstallerNotFound))
}

func TestInstallerCommand(t *testing.T) {
	f := newFixture(t, zshTree())

	root := &cobra.Command{Use: "dotinstall", SilenceUsage: true, SilenceErrors: true}
	root.AddGroup(&cobra.Group{ID: installers.GroupID, Title: "INSTALLERS:"})
	for _, inst := range installers.Registry() {
		root.AddCommand(inst.Command(func(*cobra.Command) (*installers.Env, error) {
			return f.env, nil
		}))
	}

	root.SetArgs([]string{"zsh", "aliases"})
	require.NoError(t, root.Execute())
	assert.Equal(t, aliasBlock, testutil.ReadFile(t, f.fs, zshrc))

	root.SetArgs([]string{"zsh"})
	assert.Error(t, root.Execute())

	root.SetArgs([]string{"nvim", "bogus"})
	assert.Error(t, root.Execute())
}

func TestStatus(t *testing.T) {
	f := newFixture(t, testutil.FileTree{
		"zsh": testutil.FileTree{
			"keybinds.sh":    block("### KEYBINDINGS ###", "bindkey -e"),
			"aliases.sh":     aliasBlock,
			"completions.sh": block("### COMPLETIONS ###", "new"),
		},
	})
	rc := block("### KEYBINDINGS ###", "bindkey -e") +
		block("### COMPLETIONS ###", "old") +
		block("### BIN WRAPPERS ###", "a") + block("### BIN WRAPPERS ###", "b")
	require.NoError(t, f.fs.WriteFile(zshrc, []byte(rc), 0644))

	got := map[string]installers.State{}
	for _, s := range installers.Status(f.fs, f.env.Domains.ForInstaller("zsh")) {
		got[s.Domain.Name] = s.State
		if s.State == installers.StateError {
			assert.Error(t, s.Err)
		}
	}

	assert.Equal(t, map[string]installers.State{
		"keybindings": installers.StateInstalled,
		"aliases":     installers.StateMissing,
		"completions": installers.StateOutdated,
		"wrappers":    installers.StateError,
	}, got)
}

func TestStatus_AmbiguousTarget(t *testing.T) {
	f := newFixture(t, testutil.FileTree{"zsh/aliases.sh": aliasBlock})
	require.NoError(t, f.fs.WriteFile(zshrc, []byte(aliasBlock+aliasBlock), 0644))

	d, ok := f.env.Domains.Get("aliases")
	require.True(t, ok)

	status := installers.Status(f.fs, []config.Domain{d})
	require.Len(t, status, 1)
	assert.Equal(t, installers.StateAmbiguous, status[0].State)
}

func TestReport(t *testing.T) {
	r := installers.NewReport()
	assert.Equal(t, installers.ExitNoChanges, r.ExitCode())

	r.Record("zsh", "aliases", change.Unchanged)
	r.Record("zsh", "keybindings", change.Declined)
	assert.Equal(t, installers.ExitNoChanges, r.ExitCode())

	r.Record("zsh", "completions", change.Applied)
	assert.Equal(t, installers.ExitApplied, r.ExitCode())
	assert.Equal(t, "1 applied, 1 unchanged, 0 previewed, 1 declined", r.Summary())
}
