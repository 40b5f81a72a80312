package installers

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/runner"
)

// Neovim install modes.
const (
	NvimSelective = "selective"
	NvimAll       = "all"
	NvimPip       = "pip"
)

// NvimOptions are the nvim installer flags.
type NvimOptions struct {
	Mode       string
	Plugin     string
	SymlinkDir bool
	Force      bool
}

func nvimInstaller() Installer {
	return Installer{
		Name:  "nvim",
		Short: MsgNvimShort,
		Setup: func(cmd *cobra.Command, env EnvFunc) {
			var opts NvimOptions

			cmd.Use = "nvim [selective|all|pip]"
			cmd.Long = MsgNvimLong
			cmd.Args = cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs)
			cmd.ValidArgs = []string{NvimSelective, NvimAll, NvimPip}
			cmd.Flags().StringVar(&opts.Plugin, "plugin", "", MsgNvimPlugin)
			cmd.Flags().BoolVar(&opts.SymlinkDir, "symlink-dir", false, MsgNvimSymlinkDir)
			cmd.Flags().BoolVar(&opts.Force, "force", false, MsgFlagForce)
			cmd.RunE = withEnv(env, func(e *Env, args []string) error {
				opts.Mode = NvimSelective
				if len(args) == 1 {
					opts.Mode = args[0]
				}
				return InstallNvim(e, opts)
			})
		},
	}
}

// InstallNvim links the neovim config, a single plugin spec, or installs
// the python provider.
func InstallNvim(env *Env, opts NvimOptions) error {
	cfg := env.Config.Nvim
	source := env.source(cfg.Source)
	target := env.target(cfg.Target)

	switch opts.Mode {
	case NvimAll:
		if opts.SymlinkDir {
			_, err := Link(env, "nvim", source, target, opts.Force)
			return err
		}
		_, err := LinkTree(env, "nvim", source, target)
		return err

	case NvimSelective, "":
		if opts.Plugin == "" {
			env.Out.Warn(MsgNvimNeedsPlugin)
			return nil
		}
		file := opts.Plugin + ".lua"
		_, err := Link(env, "nvim",
			filepath.Join(source, cfg.PluginsDir, file),
			filepath.Join(target, cfg.PluginsDir, file),
			opts.Force)
		return err

	case NvimPip:
		pip := runner.Dependency(env.Runner, "pip3")
		if pip == "" {
			pip = runner.Dependency(env.Runner, "pip")
		}
		if pip == "" {
			return errors.New(errors.ErrDependency, "pip is not installed").WithDetail("command", "pip")
		}
		pkg := "pynvim==" + cfg.Pynvim
		_, err := Run(env, "nvim", fmt.Sprintf(MsgAskPip, cfg.Pynvim, filepath.Base(pip)), pip, "install", pkg)
		return err

	default:
		return errors.Newf(errors.ErrInvalidInput, MsgNvimUnknownMode, opts.Mode).WithDetail("mode", opts.Mode)
	}
}
