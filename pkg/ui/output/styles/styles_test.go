package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotinstall/pkg/ui/output/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDefinesEveryName(t *testing.T) {
	r := styles.Default()
	for _, name := range styles.Names {
		assert.True(t, r.Has(name), "style %s should be defined", name)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
colors:
  red:
    light: "#ff0000"
    dark: "#ff5555"
styles:
  Error:
    bold: true
    foreground: red
`)
	r, err := styles.Parse(data)
	require.NoError(t, err)

	assert.True(t, r.Has("Error"))
	assert.False(t, r.Has("Success"))
	assert.True(t, r.Get("Error").GetBold())
	assert.False(t, r.Get("Success").GetBold(), "unknown names get an empty style")
}

func TestParse_Invalid(t *testing.T) {
	_, err := styles.Parse([]byte("styles: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("styles:\n  Bold:\n    bold: true\n"), 0644))

	r, err := styles.Load(path)
	require.NoError(t, err)
	assert.True(t, r.Get("Bold").GetBold())

	_, err = styles.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPlainRendersUnchanged(t *testing.T) {
	r := styles.Plain()
	assert.Equal(t, "text", r.Render("Header", "text"))
}
