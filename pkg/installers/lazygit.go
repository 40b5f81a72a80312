package installers

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/runner"
)

// LazygitOptions are the lazygit installer flags.
type LazygitOptions struct {
	Force     bool
	NoInstall bool
}

func lazygitInstaller() Installer {
	return Installer{
		Name:    "lazygit",
		Aliases: []string{"lg"},
		Short:   MsgLazygitShort,
		Setup: func(cmd *cobra.Command, env EnvFunc) {
			var opts LazygitOptions

			cmd.Args = cobra.NoArgs
			cmd.Flags().BoolVar(&opts.Force, "force", false, MsgFlagForce)
			cmd.Flags().BoolVar(&opts.NoInstall, "no-install", false, MsgFlagNoInstall)
			cmd.RunE = withEnv(env, func(e *Env, _ []string) error {
				return InstallLazygit(e, opts)
			})
		},
	}
}

// InstallLazygit installs lazygit with Homebrew and links its config into
// whatever directory lazygit reports, which depends on how it was
// installed.
func InstallLazygit(env *Env, opts LazygitOptions) error {
	if !opts.NoInstall {
		if _, err := EnsureBrewed(env, "lazygit", "lazygit"); err != nil {
			return err
		}
	}

	if runner.Dependency(env.Runner, "lazygit") == "" {
		if env.DryRun {
			env.Out.Skip(MsgLazygitDryRun)
			return nil
		}
		return errors.New(errors.ErrDependency, "lazygit is not installed").WithDetail("command", "lazygit")
	}

	dir, err := env.Runner.Output(env.context(), "lazygit", "--print-config-dir")
	if err != nil {
		return err
	}
	if dir == "" {
		return errors.New(errors.ErrCommandFailed, "lazygit did not report a config directory")
	}

	source := env.source(env.Config.Lazygit.Config)
	_, err = Link(env, "lazygit", source, filepath.Join(dir, filepath.Base(source)), opts.Force)
	return err
}
