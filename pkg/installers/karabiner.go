package installers

import (
	"github.com/spf13/cobra"
)

func karabinerInstaller() Installer {
	return Installer{
		Name:  "karabiner",
		Short: MsgKarabinerShort,
		Setup: func(cmd *cobra.Command, env EnvFunc) {
			var force bool

			cmd.Args = cobra.NoArgs
			cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
			cmd.RunE = withEnv(env, func(e *Env, _ []string) error {
				return InstallKarabiner(e, force)
			})
		},
	}
}

// InstallKarabiner links karabiner.json.
func InstallKarabiner(env *Env, force bool) error {
	cfg := env.Config.Karabiner
	_, err := Link(env, "karabiner", env.source(cfg.Config), env.target(cfg.Target), force)
	return err
}
