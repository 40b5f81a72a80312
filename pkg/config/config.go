package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dotinstall/pkg/errors"
)

// Config is the effective configuration.
type Config struct {
	DotfilesRoot string                 `koanf:"dotfiles_root" toml:"dotfiles_root"`
	Diff         DiffConfig             `koanf:"diff" toml:"diff"`
	Backup       BackupConfig           `koanf:"backup" toml:"backup"`
	Fences       map[string]FenceConfig `koanf:"fences" toml:"fences"`

	Tmux      TmuxConfig      `koanf:"tmux" toml:"tmux"`
	Bin       LinkConfig      `koanf:"bin" toml:"bin"`
	Nvim      NvimConfig      `koanf:"nvim" toml:"nvim"`
	Lazygit   LazygitConfig   `koanf:"lazygit" toml:"lazygit"`
	Karabiner KarabinerConfig `koanf:"karabiner" toml:"karabiner"`
	Bob       BobConfig       `koanf:"bob" toml:"bob"`
}

// DiffConfig controls diff previews.
type DiffConfig struct {
	Context int `koanf:"context" toml:"context"`
}

// BackupConfig controls backups of replaced files.
type BackupConfig struct {
	Suffix string `koanf:"suffix" toml:"suffix"`
}

// FenceConfig declares one fenced snippet.
type FenceConfig struct {
	Installer string `koanf:"installer" toml:"installer"`
	Order     int    `koanf:"order" toml:"order,omitempty"`
	Start     string `koanf:"start" toml:"start"`
	End       string `koanf:"end" toml:"end,omitempty"`
	// Literal quotes Start and End so they match verbatim.
	Literal bool   `koanf:"literal" toml:"literal,omitempty"`
	Source  string `koanf:"source" toml:"source"`
	Target  string `koanf:"target" toml:"target"`
	Help    string `koanf:"help" toml:"help,omitempty"`
}

// TmuxConfig configures the tmux installer.
type TmuxConfig struct {
	Config string `koanf:"config" toml:"config"`
	Target string `koanf:"target" toml:"target"`
	TPMURL string `koanf:"tpm_url" toml:"tpm_url"`
	TPMDir string `koanf:"tpm_dir" toml:"tpm_dir"`
}

// LinkConfig is a source in the dotfiles and where it is linked.
type LinkConfig struct {
	Source string `koanf:"source" toml:"source"`
	Target string `koanf:"target" toml:"target"`
}

// NvimConfig configures the nvim installer.
type NvimConfig struct {
	Source     string `koanf:"source" toml:"source"`
	Target     string `koanf:"target" toml:"target"`
	PluginsDir string `koanf:"plugins_dir" toml:"plugins_dir"`
	Pynvim     string `koanf:"pynvim" toml:"pynvim"`
}

// LazygitConfig configures the lazygit installer.
type LazygitConfig struct {
	Config string `koanf:"config" toml:"config"`
}

// KarabinerConfig configures the karabiner installer.
type KarabinerConfig struct {
	Config string `koanf:"config" toml:"config"`
	Target string `koanf:"target" toml:"target"`
}

// BobConfig configures the bob installer.
type BobConfig struct {
	Repo    string   `koanf:"repo" toml:"repo"`
	Install []string `koanf:"install" toml:"install"`
	Use     string   `koanf:"use" toml:"use"`
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	if c.Diff.Context < 0 {
		return errors.Newf(errors.ErrConfigValid, "diff.context must not be negative, got %d", c.Diff.Context)
	}
	if c.Backup.Suffix == "" {
		return errors.New(errors.ErrConfigValid, "backup.suffix must not be empty")
	}
	for name, f := range c.Fences {
		switch {
		case f.Start == "":
			return errors.Newf(errors.ErrConfigValid, "fences.%s.start is required", name)
		case f.Installer == "":
			return errors.Newf(errors.ErrConfigValid, "fences.%s.installer is required", name)
		case f.Source == "":
			return errors.Newf(errors.ErrConfigValid, "fences.%s.source is required", name)
		case f.Target == "":
			return errors.Newf(errors.ErrConfigValid, "fences.%s.target is required", name)
		}
	}
	return nil
}

// Dump renders the configuration as TOML.
func (c *Config) Dump() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}
