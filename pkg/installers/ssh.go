package installers

import (
	"github.com/spf13/cobra"
)

// SSHDirMode is used for ~/.ssh and the multiplexing socket directory.
const SSHDirMode = 0700

func sshInstaller() Installer {
	return Installer{
		Name:  "ssh",
		Short: MsgSSHShort,
		Setup: func(cmd *cobra.Command, env EnvFunc) {
			var replace bool

			cmd.Args = cobra.NoArgs
			cmd.Flags().BoolVar(&replace, "replace", false, MsgFlagReplace)
			cmd.RunE = withEnv(env, func(e *Env, _ []string) error {
				return InstallSSH(e, replace)
			})
		},
	}
}

// InstallSSH creates ~/.ssh and its sockets directory, then installs the
// ssh snippets into ~/.ssh/config.
func InstallSSH(env *Env, replace bool) error {
	sshDir := env.Paths.HomePath(".ssh")
	if _, err := EnsureDir(env, "ssh", sshDir, SSHDirMode); err != nil {
		return err
	}
	if _, err := EnsureDir(env, "ssh", env.Paths.HomePath(".ssh", "sockets"), SSHDirMode); err != nil {
		return err
	}
	return InstallFences(env, env.Domains.ForInstaller("ssh"), replace)
}
