package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install dotfiles snippets, links and tools"
	MsgVersionShort    = "Print version information"
	MsgListShort       = "List installers and snippets"
	MsgStatusShort     = "Show whether each snippet is installed"
	MsgShowShort       = "Print a snippet as it would be installed"
	MsgConfigShort     = "Print the effective configuration"
	MsgCompletionShort = "Generate shell completion script"

	// Groups
	MsgGroupInstallers = "Installers:"
	MsgGroupMisc       = "Misc:"

	// Output
	MsgInstallers    = "Installers"
	MsgSnippets      = "Snippets"
	MsgInstallerItem = "  %-10s %s"
	MsgAliasesSuffix = " (alias: %s)"
	MsgSnippetItem   = "  %-14s %-8s %s"
	MsgStatusItem    = "  %-14s %-10s %s"
	MsgSummary       = "%s: %s"
	MsgUnknownFence  = "unknown snippet %q"

	// Version output
	MsgVersionFormat = "dotinstall version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun       = "Preview changes without executing them"
	MsgFlagYes          = "Apply changes without asking"
	MsgFlagConfig       = "Config file (default $XDG_CONFIG_HOME/dotinstall/config.toml)"
	MsgFlagDotfilesRoot = "Dotfiles checkout (default $DOTFILES_ROOT, then the enclosing git repository)"
	MsgFlagFormat       = "Output format: auto, term or text"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw) + "\n"

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
