package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "auto", FormatAuto.String())
	assert.Equal(t, "term", FormatTerminal.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "unknown", Format(99).String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatAuto},
		{input: "auto", want: FormatAuto},
		{input: "TERM", want: FormatTerminal},
		{input: "terminal", want: FormatTerminal},
		{input: "plain", want: FormatText},
		{input: "json", want: FormatAuto, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	t.Run("buffer_is_text", func(t *testing.T) {
		assert.Equal(t, FormatText, DetectFormat(&bytes.Buffer{}))
	})

	t.Run("no_color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, FormatText, DetectFormat(&bytes.Buffer{}))
	})
}

func TestPrinter_TextLines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, FormatAuto)
	require.Equal(t, FormatText, p.Format())

	p.Header("zsh")
	p.Success("installed %s", "keybindings")
	p.Skip("aliases already installed")
	p.Warn("careful")
	p.Error("failed: %d", 1)
	p.Println("plain %s", "line")

	assert.Equal(t,
		"zsh\n"+
			"✓ installed keybindings\n"+
			"- aliases already installed\n"+
			"! careful\n"+
			"✗ failed: 1\n"+
			"plain line\n",
		buf.String())
}

func TestPrinter_ColorizeDiff(t *testing.T) {
	diff := "--- f\n+++ f\n@@ -1 +1 @@\n-a\n+b\n"

	plain := New(&bytes.Buffer{}, FormatText)
	assert.Equal(t, diff, plain.ColorizeDiff(diff))

	styled := New(&bytes.Buffer{}, FormatTerminal)
	got := styled.ColorizeDiff(diff)
	assert.Contains(t, got, "-a")
	assert.Contains(t, got, "+b")
	assert.Equal(t, 5, bytes.Count([]byte(got), []byte("\n")), "line structure is kept")
}

func TestPrinter_Snippet(t *testing.T) {
	p := New(&bytes.Buffer{}, FormatText)
	got := p.Snippet("keybindings", "sh", "bindkey -v")

	assert.Contains(t, got, "keybindings")
	assert.Contains(t, got, "bindkey -v")
}
