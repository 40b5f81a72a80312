package installers

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/logging"
	"github.com/arthur-debert/dotinstall/pkg/operations"
	"github.com/arthur-debert/dotinstall/pkg/paths"
	"github.com/arthur-debert/dotinstall/pkg/runner"
)

// TmuxOptions are the tmux installer flags.
type TmuxOptions struct {
	Force     bool
	Replace   bool
	NoTPM     bool
	NoPlugins bool
}

func tmuxInstaller() Installer {
	return Installer{
		Name:  "tmux",
		Short: MsgTmuxShort,
		Setup: func(cmd *cobra.Command, env EnvFunc) {
			var opts TmuxOptions

			cmd.Args = cobra.NoArgs
			cmd.Flags().BoolVar(&opts.Force, "force", false, MsgFlagForce)
			cmd.Flags().BoolVar(&opts.Replace, "replace", false, MsgFlagReplace)
			cmd.Flags().BoolVar(&opts.NoTPM, "no-tpm", false, MsgTmuxNoTPM)
			cmd.Flags().BoolVar(&opts.NoPlugins, "no-plugins", false, MsgTmuxNoPlugins)
			cmd.RunE = withEnv(env, func(e *Env, _ []string) error {
				return InstallTmux(e, opts)
			})
		},
	}
}

// InstallTmux clones TPM, links the tmux config, installs plugins and adds
// the tmux shell functions.
func InstallTmux(env *Env, opts TmuxOptions) error {
	cfg := env.Config.Tmux
	tpmDir := env.target(cfg.TPMDir)

	if !opts.NoTPM {
		if err := installTPM(env, cfg.TPMURL, tpmDir); err != nil {
			return err
		}
	}

	if _, err := Link(env, "tmux", env.source(cfg.Config), env.target(cfg.Target), opts.Force); err != nil {
		return err
	}

	if !opts.NoTPM && !opts.NoPlugins {
		installPlugins(env, tpmDir)
	}

	return InstallFences(env, env.Domains.ForInstaller("tmux"), opts.Replace)
}

// installTPM clones TPM. A missing git or a failed clone is reported but
// does not stop the rest of the install.
func installTPM(env *Env, url, dir string) error {
	display := paths.Contract(dir)
	if filesystem.Exists(env.FS, dir) {
		env.Out.Skip(MsgTPMInstalled, display)
		return nil
	}

	git := runner.Dependency(env.Runner, "git")
	if git == "" {
		env.Out.Warn(MsgTPMNoGit, url, display)
		return nil
	}

	if !env.DryRun {
		ok, err := env.ask(fmt.Sprintf(MsgAskInstallTPM, display))
		if err != nil {
			return err
		}
		if !ok {
			env.Out.Skip(MsgSkipped, "TPM")
			return nil
		}
		parent := filepath.Dir(dir)
		if !filesystem.Exists(env.FS, parent) {
			op := operations.Operation{Type: operations.Mkdir, Target: parent, Mode: operations.DirMode}
			if err := env.Executor.Execute(env.context(), []operations.Operation{op}); err != nil {
				return err
			}
		}
	}

	if _, err := Run(env, "tmux", "", git, "clone", url, dir); err != nil {
		logger := logging.GetLogger("installers.tmux")
		logger.Warn().Err(err).Msg("TPM clone failed")
		env.Out.Warn(MsgTPMFailed, url, display)
	}
	return nil
}

func installPlugins(env *Env, tpmDir string) {
	script := filepath.Join(tpmDir, "bin", "install_plugins")
	if !filesystem.Exists(env.FS, script) {
		return
	}

	env.Out.Println(MsgTPMPluginsHint)
	if _, err := Run(env, "tmux", "", script); err != nil {
		logger := logging.GetLogger("installers.tmux")
		logger.Warn().Err(err).Msg("Plugin install failed")
		env.Out.Warn(MsgTPMPluginsFail, paths.Contract(script))
	}
}
