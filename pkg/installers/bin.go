package installers

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/operations"
)

func binInstaller() Installer {
	return Installer{
		Name:  "bin",
		Short: MsgBinShort,
		Setup: func(cmd *cobra.Command, env EnvFunc) {
			var force bool

			cmd.Use = "bin <script...|all>"
			cmd.Long = MsgBinLong
			cmd.Args = cobra.MinimumNArgs(1)
			cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
			cmd.ValidArgsFunction = func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
				e, err := env(cmd)
				if err != nil {
					return nil, cobra.ShellCompDirectiveError
				}
				scripts, err := Scripts(e)
				if err != nil {
					return nil, cobra.ShellCompDirectiveError
				}
				return append(scripts, AllSnippets), cobra.ShellCompDirectiveNoFileComp
			}
			cmd.RunE = withEnv(env, func(e *Env, args []string) error {
				return InstallBin(e, args, force)
			})
		},
	}
}

// Scripts lists the regular files in the dotfiles bin directory.
func Scripts(env *Env) ([]string, error) {
	dir := env.source(env.Config.Bin.Source)
	entries, err := env.FS.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "cannot list %s", dir).WithDetail("path", dir)
	}
	var out []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			out = append(out, entry.Name())
		}
	}
	return out, nil
}

// InstallBin links the named scripts, or all of them, into the bin target.
func InstallBin(env *Env, names []string, force bool) error {
	sourceDir := env.source(env.Config.Bin.Source)
	targetDir := env.target(env.Config.Bin.Target)

	if len(names) == 1 && names[0] == AllSnippets {
		all, err := Scripts(env)
		if err != nil {
			return err
		}
		names = all
	}

	pairs := make([]LinkPair, 0, len(names))
	for _, name := range names {
		source := filepath.Join(sourceDir, name)
		info, err := env.FS.Stat(source)
		if err != nil || !info.Mode().IsRegular() {
			return errors.Newf(errors.ErrNotFound, MsgBinNotFound, name, sourceDir).WithDetail("script", name)
		}
		pairs = append(pairs, LinkPair{Source: source, Target: filepath.Join(targetDir, name)})
	}

	ok, err := EnsureDir(env, "bin", targetDir, operations.DirMode)
	if err != nil {
		return err
	}
	if !ok && !env.DryRun {
		return nil
	}

	_, err = LinkAll(env, "bin", pairs, force)
	return err
}
