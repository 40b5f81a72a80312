package installers

import (
	"github.com/spf13/cobra"
)

func zoxideInstaller() Installer {
	return Installer{
		Name:  "zoxide",
		Short: MsgZoxideShort,
		Setup: func(cmd *cobra.Command, env EnvFunc) {
			var replace, noInstall bool

			cmd.Args = cobra.NoArgs
			cmd.Flags().BoolVar(&replace, "replace", false, MsgFlagReplace)
			cmd.Flags().BoolVar(&noInstall, "no-install", false, MsgFlagNoInstall)
			cmd.RunE = withEnv(env, func(e *Env, _ []string) error {
				return InstallZoxide(e, replace, noInstall)
			})
		},
	}
}

// InstallZoxide installs zoxide with Homebrew unless told not to, then its
// shell integration.
func InstallZoxide(env *Env, replace, noInstall bool) error {
	if !noInstall {
		path, err := EnsureBrewed(env, "zoxide", "zoxide")
		if err != nil {
			return err
		}
		if path == "" && !env.DryRun {
			env.Out.Warn(MsgZoxideMissing)
			return nil
		}
	}
	return InstallFences(env, env.Domains.ForInstaller("zoxide"), replace)
}
