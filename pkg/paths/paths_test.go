package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	home := t.TempDir()

	tests := []struct {
		name         string
		dotfilesRoot string
		env          map[string]string
		validate     func(t *testing.T, p *Paths)
	}{
		{
			name:         "explicit_root",
			dotfilesRoot: "/tmp/dotfiles",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/tmp/dotfiles", p.DotfilesRoot())
				assert.False(t, p.UsedFallback())
			},
		},
		{
			name:         "explicit_root_with_tilde",
			dotfilesRoot: "~/my-dotfiles",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, filepath.Join(home, "my-dotfiles"), p.DotfilesRoot())
			},
		},
		{
			name: "root_from_env",
			env:  map[string]string{EnvDotfilesRoot: "/env/dotfiles"},
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/env/dotfiles", p.DotfilesRoot())
			},
		},
		{
			name: "git_or_fallback",
			validate: func(t *testing.T, p *Paths) {
				assert.NotEmpty(t, p.DotfilesRoot())
				assert.True(t, filepath.IsAbs(p.DotfilesRoot()))
			},
		},
		{
			name: "xdg_dirs",
			env: map[string]string{
				"XDG_CONFIG_HOME": "/xdg/config",
				"XDG_STATE_HOME":  "/xdg/state",
			},
			dotfilesRoot: "/d",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/xdg/config/dotinstall", p.ConfigDir())
				assert.Equal(t, "/xdg/config/dotinstall/config.toml", p.ConfigFile())
				assert.Equal(t, "/xdg/state/dotinstall", p.StateDir())
			},
		},
		{
			name: "dir_overrides",
			env: map[string]string{
				EnvConfigDir: "~/cfg",
				EnvStateDir:  "/custom/state",
			},
			dotfilesRoot: "/d",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, filepath.Join(home, "cfg"), p.ConfigDir())
				assert.Equal(t, "/custom/state", p.StateDir())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvHome, home)
			t.Setenv(EnvDotfilesRoot, "")
			t.Setenv(EnvConfigDir, "")
			t.Setenv(EnvStateDir, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			p, err := New(tt.dotfilesRoot)
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestFallbackOutsideGit(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDotfilesRoot, "")
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	p, err := New("")
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(p.DotfilesRoot())
	require.NoError(t, err)
	assert.Equal(t, resolved, got)
	assert.True(t, p.UsedFallback())
}

func TestExpandAndContract(t *testing.T) {
	t.Setenv(EnvHome, "/home/u")

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "~", want: "/home/u"},
		{in: "~/.zshrc", want: "/home/u/.zshrc"},
		{in: "~other/x", want: "~other/x"},
		{in: "/etc/hosts", want: "/etc/hosts"},
		{in: "rel/path", want: "rel/path"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Expand(tt.in), "Expand(%q)", tt.in)
	}

	assert.Equal(t, "~/.zshrc", Contract("/home/u/.zshrc"))
	assert.Equal(t, "~", Contract("/home/u"))
	assert.Equal(t, "/home/user2/x", Contract("/home/user2/x"))
}

func TestJoinHelpers(t *testing.T) {
	t.Setenv(EnvHome, "/home/u")
	p, err := New("/dots")
	require.NoError(t, err)

	assert.Equal(t, "/dots/zsh/aliases.zsh", p.InDotfiles("zsh", "aliases.zsh"))
	assert.Equal(t, "/home/u/.ssh/config", p.HomePath(".ssh", "config"))
	assert.Equal(t, "/home/u/.local/bin", p.LocalBin())
	assert.Equal(t, "/home/u/.zshrc", p.Resolve("~/.zshrc"))
	assert.Equal(t, "/home/u/.zshrc", p.Resolve(".zshrc"))
	assert.Equal(t, "/etc/zshrc", p.Resolve("/etc/zshrc"))
	assert.Equal(t, "/home/u", p.Resolve("~"))
}
