package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/logging"
)

// Environment variable names
const (
	EnvDotfilesRoot = "DOTFILES_ROOT"
	EnvConfigDir    = "DOTINSTALL_CONFIG_DIR"
	EnvStateDir     = "DOTINSTALL_STATE_DIR"
	EnvHome         = "HOME"
)

const (
	// AppDirName is the directory created under the XDG base dirs.
	AppDirName = "dotinstall"

	// ConfigFileName is the user configuration file inside ConfigDir.
	ConfigFileName = "config.toml"
)

// Paths holds the resolved directories for one invocation.
type Paths struct {
	home         string
	dotfilesRoot string
	configDir    string
	stateDir     string
	usedFallback bool
}

// New resolves every directory. An empty dotfilesRoot is discovered from the
// environment.
func New(dotfilesRoot string) (*Paths, error) {
	xdg.Reload()

	p := &Paths{home: Home()}

	if dotfilesRoot == "" {
		root, usedFallback, err := findDotfilesRoot()
		if err != nil {
			return nil, err
		}
		p.dotfilesRoot = root
		p.usedFallback = usedFallback
	} else {
		p.dotfilesRoot = Expand(dotfilesRoot)
	}

	absRoot, err := filepath.Abs(p.dotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for dotfiles root")
	}
	p.dotfilesRoot = absRoot

	p.configDir = dirFromEnv(EnvConfigDir, filepath.Join(xdg.ConfigHome, AppDirName))
	p.stateDir = dirFromEnv(EnvStateDir, filepath.Join(xdg.StateHome, AppDirName))

	logger := logging.GetLogger("paths")
	logger.Debug().
		Str("dotfiles_root", p.dotfilesRoot).
		Bool("fallback", p.usedFallback).
		Str("config_dir", p.configDir).
		Msg("Resolved paths")

	return p, nil
}

func dirFromEnv(name, fallback string) string {
	if dir := os.Getenv(name); dir != "" {
		return Expand(dir)
	}
	return fallback
}

// findDotfilesRoot tries DOTFILES_ROOT, then the git toplevel, then the
// working directory. The bool reports the working directory fallback.
func findDotfilesRoot() (string, bool, error) {
	if root := os.Getenv(EnvDotfilesRoot); root != "" {
		return Expand(root), false, nil
	}

	if gitRoot, err := findGitRoot(); err == nil {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return cwd, true, nil
}

func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		logger := logging.GetLogger("paths")
		logger.Trace().Err(err).Msg("Not inside a git repository")
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// Home returns the user's home directory, preferring $HOME.
func Home() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// Expand replaces a leading ~ or ~/ with the home directory. Other paths,
// ~user included, are returned unchanged.
func Expand(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home := Home()
	if home == "" {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}

// Contract is the inverse of Expand, for display.
func Contract(path string) string {
	home := Home()
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rel, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return "~/" + rel
	}
	return path
}

// DotfilesRoot returns the dotfiles checkout directory.
func (p *Paths) DotfilesRoot() string { return p.dotfilesRoot }

// UsedFallback reports whether the root is just the working directory.
func (p *Paths) UsedFallback() bool { return p.usedFallback }

// Home returns the home directory captured at construction.
func (p *Paths) Home() string { return p.home }

// ConfigDir returns the dotinstall config directory.
func (p *Paths) ConfigDir() string { return p.configDir }

// ConfigFile returns the user configuration file path.
func (p *Paths) ConfigFile() string { return filepath.Join(p.configDir, ConfigFileName) }

// StateDir returns the dotinstall state directory.
func (p *Paths) StateDir() string { return p.stateDir }

// InDotfiles joins elem onto the dotfiles root.
func (p *Paths) InDotfiles(elem ...string) string {
	return filepath.Join(append([]string{p.dotfilesRoot}, elem...)...)
}

// HomePath joins elem onto the home directory.
func (p *Paths) HomePath(elem ...string) string {
	return filepath.Join(append([]string{p.home}, elem...)...)
}

// Resolve expands ~ in path and anchors relative paths at the home
// directory.
func (p *Paths) Resolve(path string) string {
	if path == "~" {
		return p.home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(p.home, path[2:])
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.home, path)
}

// LocalBin returns ~/.local/bin.
func (p *Paths) LocalBin() string { return p.HomePath(".local", "bin") }
