package installers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/runner"
)

func bobInstaller() Installer {
	return Installer{
		Name:  "bob",
		Short: MsgBobShort,
		Setup: func(cmd *cobra.Command, env EnvFunc) {
			cmd.Args = cobra.NoArgs
			cmd.RunE = withEnv(env, func(e *Env, _ []string) error {
				return InstallBob(e)
			})
		},
	}
}

// InstallBob installs bob with cargo when missing, then installs the
// configured neovim versions and selects one.
func InstallBob(env *Env) error {
	cfg := env.Config.Bob

	bob := runner.Dependency(env.Runner, "bob")
	if bob == "" {
		cargo := runner.Dependency(env.Runner, "cargo")
		if cargo == "" {
			return errors.New(errors.ErrDependency, MsgBobNeedsCargo).WithDetail("command", "cargo")
		}
		ran, err := Run(env, "bob", MsgAskBobInstall, cargo, "install", "--git", cfg.Repo)
		if err != nil {
			return err
		}
		if !ran && !env.DryRun {
			return nil
		}
		// cargo installs outside PATH until the shell is restarted.
		bob = env.Paths.HomePath(".cargo", "bin", "bob")
	}

	if len(cfg.Install) == 0 && cfg.Use == "" {
		return nil
	}

	question := fmt.Sprintf(MsgAskBobUse, strings.Join(cfg.Install, ", "), cfg.Use)
	if !env.DryRun {
		ok, err := env.ask(question)
		if err != nil {
			return err
		}
		if !ok {
			env.Out.Skip(MsgSkipped, "bob")
			return nil
		}
	}

	for _, version := range cfg.Install {
		if _, err := Run(env, "bob", "", bob, "install", version); err != nil {
			return err
		}
	}
	if cfg.Use != "" {
		_, err := Run(env, "bob", "", bob, "use", cfg.Use)
		return err
	}
	return nil
}
