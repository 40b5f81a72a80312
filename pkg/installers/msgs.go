package installers

// Step messages
const (
	MsgFenceInstalled = "%s: already installed in %s (use --replace to overwrite it)"
	MsgFenceUpToDate  = "%s: %s is up to date"
	MsgFenceApplied   = "%s: installed in %s"
	MsgSkipped        = "skipped %s"

	MsgAskCreateDir   = "%s does not exist, create it now?"
	MsgWouldCreateDir = "would create directory %s"
	MsgCreatedDir     = "created directory %s"

	MsgAskApply      = "Apply these changes?"
	MsgLinkExists    = "%s already exists; use --force to replace it (a backup is kept)"
	MsgAlreadyLinked = "%s is already linked"
	MsgTreeConflict  = "%s already exists, leaving it alone"
	MsgLinked        = "linked %s -> %s"

	MsgAskBrewInstall = "Install %s with Homebrew?"
	MsgWouldRun       = "would run: %s"
	MsgRunning        = "running: %s"
)

// Installer messages
const (
	MsgZshShort = "Install zsh config snippets"
	MsgZshLong  = `Install fenced zsh snippets into ~/.zshrc.

Each snippet lives in the dotfiles checkout between marker lines. A snippet
that is not yet in ~/.zshrc is appended; one that is already there is left
alone unless --replace is given, which swaps in the latest content and keeps
the markers and everything around them.`
	MsgZshExample = `  # Preview every zsh snippet
  dotinstall zsh all --dry-run

  # Refresh the aliases block
  dotinstall zsh aliases --replace`
	MsgZshUnknown = "unknown zsh snippet %q (choose from: %s)"

	MsgSSHShort = "Add ssh configuration snippets"

	MsgZoxideShort    = "Install zoxide and configure shell integration"
	MsgZoxideMissing  = "zoxide is not available; install it first or drop --no-install"
	MsgFlagNoInstall  = "skip installing the program itself"
	MsgFlagReplace    = "replace snippets that are already installed"
	MsgFlagForce      = "replace existing files (a backup is kept)"
	MsgTmuxShort      = "Install tmux config with TPM (Tmux Plugin Manager)"
	MsgTmuxNoTPM      = "skip TPM installation"
	MsgTmuxNoPlugins  = "skip plugin installation"
	MsgTPMInstalled   = "TPM already installed at %s"
	MsgAskInstallTPM  = "Install TPM to %s?"
	MsgTPMNoGit       = "git not found; install TPM manually: git clone %s %s"
	MsgTPMFailed      = "failed to install TPM; install it manually: git clone %s %s"
	MsgTPMPluginsHint = "press prefix + I inside tmux if plugins are missing"
	MsgTPMPluginsFail = "could not install plugins; run %s manually"

	MsgBinShort    = "Link scripts from the dotfiles bin directory"
	MsgBinLong     = "Pick scripts from the dotfiles bin directory to link into ~/.local/bin. Use 'all' to link everything."
	MsgBinNotFound = "no script named %q in %s"

	MsgNvimShort       = "Install neovim config, or parts of it"
	MsgNvimLong        = "selective links single plugin files, all links the whole config file by file, pip installs the python provider."
	MsgNvimNeedsPlugin = "set --plugin to choose what to link"
	MsgNvimPlugin      = "plugin to link in selective mode"
	MsgNvimSymlinkDir  = "link the config directory itself instead of each file"
	MsgNvimUnknownMode = "unknown mode %q (choose from: selective, all, pip)"
	MsgAskPip          = "Install pynvim==%s with %s?"

	MsgLazygitShort  = "Set up lazygit with its config file linked"
	MsgLazygitDryRun = "lazygit is not installed yet; its config directory is known after install"

	MsgKarabinerShort = "Link karabiner.json"

	MsgBobShort      = "Install bob and the configured neovim versions"
	MsgAskBobInstall = "Install bob with cargo?"
	MsgAskBobUse     = "Install neovim %s with bob and use %s?"
	MsgBobNeedsCargo = "bob needs cargo; install rust first"
)
