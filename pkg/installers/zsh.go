package installers

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotinstall/pkg/config"
	"github.com/arthur-debert/dotinstall/pkg/errors"
)

// AllSnippets selects every snippet of an installer.
const AllSnippets = "all"

func zshInstaller() Installer {
	return Installer{
		Name:  "zsh",
		Short: MsgZshShort,
		Setup: func(cmd *cobra.Command, env EnvFunc) {
			var replace bool

			cmd.Use = "zsh <snippet|all>"
			cmd.Long = MsgZshLong
			cmd.Example = MsgZshExample
			cmd.Args = cobra.ExactArgs(1)
			cmd.Flags().BoolVar(&replace, "replace", false, MsgFlagReplace)
			cmd.ValidArgsFunction = domainCompletion(env, "zsh")
			cmd.RunE = withEnv(env, func(e *Env, args []string) error {
				return InstallZsh(e, args[0], replace)
			})
		},
	}
}

// InstallZsh installs one zsh snippet, or all of them in order.
func InstallZsh(env *Env, which string, replace bool) error {
	domains, err := selectDomains(env.Domains, "zsh", which)
	if err != nil {
		return err
	}
	return InstallFences(env, domains, replace)
}

func selectDomains(reg *config.Registry, installer, which string) ([]config.Domain, error) {
	if which == AllSnippets {
		return reg.ForInstaller(installer), nil
	}
	if d, ok := reg.Get(which); ok && d.Installer == installer {
		return []config.Domain{d}, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, MsgZshUnknown, which,
		strings.Join(append(reg.Names(installer), AllSnippets), ", ")).
		WithDetail("snippet", which)
}

// withEnv adapts an installer body to cobra's RunE.
func withEnv(env EnvFunc, fn func(e *Env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := env(cmd)
		if err != nil {
			return err
		}
		return fn(e, args)
	}
}

func domainCompletion(env EnvFunc, installer string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		e, err := env(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return append(e.Domains.Names(installer), AllSnippets), cobra.ShellCompDirectiveNoFileComp
	}
}
