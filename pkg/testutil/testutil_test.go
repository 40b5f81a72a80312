package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotinstall/pkg/filesystem"
)

func TestCreateFileTree(t *testing.T) {
	fsys := filesystem.NewMemoryFS()

	CreateFileTree(t, fsys, "/dots", FileTree{
		"zsh": FileTree{
			"aliases.sh": "alias ll='ls -l'\n",
		},
		"bin/tool": "#!/bin/sh\n",
	})

	assert.Equal(t, "alias ll='ls -l'\n", ReadFile(t, fsys, "/dots/zsh/aliases.sh"))
	assert.Equal(t, "#!/bin/sh\n", ReadFile(t, fsys, "/dots/bin/tool"))
	AssertNotExists(t, fsys, "/dots/missing")
}

func TestAssertSymlink(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	CreateFileTree(t, fsys, "/dots", FileTree{"a": "x"})
	require.NoError(t, fsys.Symlink("/dots/a", "/dots/b"))

	AssertSymlink(t, fsys, "/dots/b", "/dots/a")
}

func TestAnswers(t *testing.T) {
	a := &Answers{Replies: []bool{true, false}}

	for _, want := range []bool{true, false, false} {
		got, err := a.Confirm("q?")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Len(t, a.Asked, 3)

	y := Yes(2)
	ok, _ := y.Confirm("one")
	assert.True(t, ok)
	ok, _ = y.Confirm("two")
	assert.True(t, ok)
	ok, _ = y.Confirm("three")
	assert.False(t, ok)
}
