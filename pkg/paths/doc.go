// Package paths resolves the directories dotinstall works with.
//
// # Environment Variables
//
//   - DOTFILES_ROOT: location of the dotfiles checkout
//   - DOTINSTALL_CONFIG_DIR: overrides $XDG_CONFIG_HOME/dotinstall
//   - DOTINSTALL_STATE_DIR: overrides $XDG_STATE_HOME/dotinstall
//
// # Dotfiles Root
//
// The root is taken from, in order: an explicit value (flag or config),
// DOTFILES_ROOT, the top of the git repository containing the working
// directory, and finally the working directory itself. UsedFallback reports
// the last case so the CLI can warn about it.
//
// # Usage
//
//	p, err := paths.New("")
//	if err != nil {
//	    return err
//	}
//	src := p.InDotfiles("zsh", "keybindings.zsh")
//	rc := p.HomePath(".zshrc")
package paths
