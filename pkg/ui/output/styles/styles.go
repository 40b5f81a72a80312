// Package styles holds the named lipgloss styles used for terminal output.
//
// Styles are declared in the embedded styles.yaml with adaptive colours that
// follow the terminal's light or dark background.
package styles

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive colour in YAML.
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style in YAML.
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Config is the whole styles file.
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to styles.
type Registry struct {
	styles map[string]lipgloss.Style
}

//go:embed styles.yaml
var embeddedStyles []byte

// Names every registry is expected to define.
var Names = []string{
	"Header", "Success", "Error", "Warning", "Info", "Muted", "Bold",
	"FilePath", "Installer", "Fence",
	"DiffHeader", "DiffHunk", "DiffAdd", "DiffDel", "DryRunBanner",
}

// Default returns the embedded styles, or plain styles if they cannot be
// parsed.
func Default() *Registry {
	r, err := Parse(embeddedStyles)
	if err != nil {
		return Plain()
	}
	return r
}

// Plain returns a registry where every name renders text unchanged.
func Plain() *Registry {
	r := &Registry{styles: make(map[string]lipgloss.Style, len(Names))}
	for _, name := range Names {
		r.styles[name] = lipgloss.NewStyle()
	}
	return r
}

// Load reads a styles file from disk.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a registry from YAML data.
func Parse(data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	r := &Registry{styles: make(map[string]lipgloss.Style, len(config.Styles))}
	for name, def := range config.Styles {
		r.styles[name] = buildStyle(def, colors)
	}
	return r, nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}

	return style
}

// Has reports whether name is defined.
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Get returns the named style, or an empty style for unknown names.
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to text.
func (r *Registry) Render(name, text string) string {
	return r.Get(name).Render(text)
}
