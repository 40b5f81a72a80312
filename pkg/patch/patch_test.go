package patch_test

import (
	"testing"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/fencing"
	"github.com/arthur-debert/dotinstall/pkg/patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kb = "### KEYBINDINGS ###"

var (
	keybindings = fencing.MustFence(kb, kb)
	source      = kb + "\nbindkey -v\n" + kb + "\n"
)

func TestCompute_AppendToEmptyTarget(t *testing.T) {
	plan, err := patch.Compute(keybindings, source, "", false)
	require.NoError(t, err)

	assert.Equal(t, patch.Append, plan.Kind)
	assert.Equal(t, source, plan.After)
	assert.Nil(t, plan.Existing)
	assert.True(t, plan.Changed())
}

func TestCompute_AppendSeparatesWithNewline(t *testing.T) {
	target := "alias ll='ls -la'\n"

	plan, err := patch.Compute(keybindings, source, target, false)
	require.NoError(t, err)

	assert.Equal(t, patch.Append, plan.Kind)
	assert.Equal(t, target+"\n"+source, plan.After)
}

func TestCompute_ReplaceKeepsTargetDelimiters(t *testing.T) {
	target := "alias ll='ls -la'\n" + kb + "\nold binding\n" + kb + "\n"
	src := kb + "\nnew binding" + kb + "\n"

	plan, err := patch.Compute(keybindings, src, target, true)
	require.NoError(t, err)

	assert.Equal(t, patch.Replace, plan.Kind)
	assert.Equal(t, "alias ll='ls -la'\n"+kb+"\nnew binding"+kb+"\n", plan.After)
	require.NotNil(t, plan.Existing)
	assert.Equal(t, "old binding\n", plan.Existing.Content)
}

func TestCompute_ReplaceWithRegexDelimiters(t *testing.T) {
	// The target spells its delimiters differently from the source; replace
	// must keep the target's spelling.
	f := fencing.MustFence(`(?m)^# >>> ssh.*$`, `(?m)^# <<< ssh.*$`)
	src := "# >>> ssh\nControlMaster auto\n# <<< ssh\n"
	target := "Host *\n# >>> ssh (managed)\nControlMaster no\n# <<< ssh (managed)\n"

	plan, err := patch.Compute(f, src, target, true)
	require.NoError(t, err)

	assert.Equal(t, "Host *\n# >>> ssh (managed)\nControlMaster auto\n# <<< ssh (managed)\n", plan.After)
}

func TestCompute_NoOpWhenPresent(t *testing.T) {
	target := "export EDITOR=nvim\n" + kb + "\nbindkey -e\n" + kb + "\ntrailing\n"

	plan, err := patch.Compute(keybindings, source, target, false)
	require.NoError(t, err)

	assert.Equal(t, patch.NoOp, plan.Kind)
	assert.Equal(t, target, plan.After)
	assert.False(t, plan.Changed())
}

func TestCompute_ReplaceWithSameContentIsUnchanged(t *testing.T) {
	plan, err := patch.Compute(keybindings, source, source, true)
	require.NoError(t, err)

	assert.Equal(t, patch.Replace, plan.Kind)
	assert.False(t, plan.Changed())
}

func TestCompute_Errors(t *testing.T) {
	twoBlocks := kb + "\na\n" + kb + "\n" + kb + "\nb\n" + kb + "\n"

	tests := []struct {
		name   string
		source string
		target string
		code   errors.ErrorCode
		role   string
	}{
		{name: "source_without_block", source: "bindkey -v\n", target: "", code: errors.ErrMissingSourceBlock},
		{name: "source_with_two_blocks", source: twoBlocks, target: "", code: errors.ErrAmbiguousBlocks, role: "source"},
		{name: "target_with_two_blocks", source: source, target: twoBlocks, code: errors.ErrAmbiguousBlocks, role: "target"},
		{name: "unbalanced_source", source: kb + "\nx\n", target: "", code: errors.ErrUnbalancedFence},
		{name: "unbalanced_target", source: source, target: "x\n" + kb + "\n", code: errors.ErrUnbalancedFence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, replace := range []bool{false, true} {
				plan, err := patch.Compute(keybindings, tt.source, tt.target, replace)
				require.Error(t, err)
				assert.Nil(t, plan)
				assert.Equal(t, tt.code, errors.GetErrorCode(err))
				if tt.role != "" {
					assert.Equal(t, tt.role, errors.GetErrorDetails(err)["role"])
				}
			}
		})
	}
}

func TestCompute_AmbiguousCarriesBlockTexts(t *testing.T) {
	first := kb + "\na\n" + kb + "\n"
	second := kb + "\nb\n" + kb + "\n"

	_, err := patch.Compute(keybindings, source, first+"middle\n"+second, true)
	require.Error(t, err)

	blocks, ok := errors.GetErrorDetails(err)["blocks"].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{first, second}, blocks)
}

func TestCompute_NilFence(t *testing.T) {
	_, err := patch.Compute(nil, source, "", false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCompute_AppendRoundTrip(t *testing.T) {
	targets := []string{
		"",
		"\n",
		"alias ll='ls -la'",
		"alias ll='ls -la'\n",
		"# header\r\nexport PATH=$PATH:~/bin\r\n",
		"### KEYBINDINGS\nnot quite a marker\n",
	}

	src, err := patch.SourceBlock(keybindings, source)
	require.NoError(t, err)

	for _, target := range targets {
		plan, err := patch.Compute(keybindings, source, target, false)
		require.NoError(t, err, "target %q", target)
		require.Equal(t, patch.Append, plan.Kind)

		blocks, err := keybindings.FindBlocks(plan.After)
		require.NoError(t, err)
		require.Len(t, blocks, 1, "target %q", target)
		assert.Equal(t, src.Content, blocks[0].Content)

		again, err := patch.Compute(keybindings, source, plan.After, false)
		require.NoError(t, err)
		assert.Equal(t, patch.NoOp, again.Kind, "second install of %q should be a no-op", target)
	}
}

func TestPlan_Change(t *testing.T) {
	plan, err := patch.Compute(keybindings, source, "", false)
	require.NoError(t, err)

	c := plan.Change("/home/u/.zshrc")
	assert.Equal(t, "/home/u/.zshrc", c.Path)
	assert.Equal(t, "", c.Before)
	assert.Equal(t, source, c.After)
	assert.Equal(t, source, c.Block)
	assert.Equal(t, "Create /home/u/.zshrc", c.Describe())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "noop", patch.NoOp.String())
	assert.Equal(t, "append", patch.Append.String())
	assert.Equal(t, "replace", patch.Replace.String())
	assert.Equal(t, "unknown", patch.Kind(42).String())
}
