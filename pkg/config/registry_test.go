package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotinstall/pkg/errors"
)

type fakeResolver struct{}

func (fakeResolver) InDotfiles(elem ...string) string {
	return filepath.Join(append([]string{"/dots"}, elem...)...)
}

func (fakeResolver) Resolve(path string) string {
	if len(path) > 1 && path[:2] == "~/" {
		return "/home/u/" + path[2:]
	}
	return path
}

func TestNewRegistry_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	reg, err := NewRegistry(cfg, fakeResolver{})
	require.NoError(t, err)

	assert.Equal(t, []string{"keybindings", "aliases", "completions", "wrappers"}, reg.Names("zsh"))
	assert.Equal(t, []string{"multiplexing"}, reg.Names("ssh"))
	assert.Empty(t, reg.Names("nope"))

	kb, ok := reg.Get("keybindings")
	require.True(t, ok)
	assert.Equal(t, "/dots/zsh/keybinds.sh", kb.Source)
	assert.Equal(t, "/home/u/.zshrc", kb.Target)
	assert.True(t, kb.Fence.IsSymmetric())

	_, ok = reg.Get("missing")
	assert.False(t, ok)

	assert.Len(t, reg.All(), len(cfg.Fences))
}

func TestNewRegistry_LiteralAndAsymmetric(t *testing.T) {
	cfg := &Config{Fences: map[string]FenceConfig{
		"lit": {Installer: "x", Start: "[[ begin ]]", End: "[[ end ]]", Literal: true, Source: "a", Target: "/t"},
	}}

	reg, err := NewRegistry(cfg, fakeResolver{})
	require.NoError(t, err)

	d, _ := reg.Get("lit")
	assert.False(t, d.Fence.IsSymmetric())
	blocks, err := d.Fence.FindBlocks("[[ begin ]]\nx\n[[ end ]]\n")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "x\n", blocks[0].Content)
}

func TestNewRegistry_InvalidFence(t *testing.T) {
	cfg := &Config{Fences: map[string]FenceConfig{
		"bad": {Installer: "x", Start: "(", Source: "a", Target: "/t"},
	}}

	_, err := NewRegistry(cfg, fakeResolver{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidFence))
	assert.Equal(t, "bad", errors.GetErrorDetails(err)["fence"])
}
