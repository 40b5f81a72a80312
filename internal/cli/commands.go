package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotinstall/internal/version"
	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/installers"
	"github.com/arthur-debert/dotinstall/pkg/logging"
	"github.com/arthur-debert/dotinstall/pkg/patch"
	"github.com/arthur-debert/dotinstall/pkg/paths"
	"github.com/arthur-debert/dotinstall/pkg/ui/output"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.getEnv(cmd)
			if err != nil {
				return err
			}
			out := env.Out

			out.Header(MsgInstallers)
			for _, inst := range installers.Registry() {
				line := fmt.Sprintf(MsgInstallerItem, inst.Name, inst.Short)
				if len(inst.Aliases) > 0 {
					line += fmt.Sprintf(MsgAliasesSuffix, strings.Join(inst.Aliases, ", "))
				}
				out.Println("%s", line)
			}

			out.Println("")
			out.Header(MsgSnippets)
			for _, d := range env.Domains.All() {
				out.Println(MsgSnippetItem, d.Name, d.Installer, d.Help)
			}
			return nil
		},
	}
}

func (a *app) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.getEnv(cmd)
			if err != nil {
				return err
			}

			for _, s := range installers.Status(env.FS, env.Domains.All()) {
				line := fmt.Sprintf(MsgStatusItem, s.Domain.Name, s.State, paths.Contract(s.Domain.Target))
				switch s.State {
				case installers.StateInstalled:
					env.Out.Success("%s", line)
				case installers.StateMissing:
					env.Out.Skip("%s", line)
				case installers.StateError:
					env.Out.Error("%s: %v", line, s.Err)
				default:
					env.Out.Warn("%s", line)
				}
			}
			return nil
		},
	}
}

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <snippet>",
		Short:   MsgShowShort,
		GroupID: groupMisc,
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			env, err := a.getEnv(cmd)
			if err != nil || len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, d := range env.Domains.All() {
				names = append(names, d.Name)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.getEnv(cmd)
			if err != nil {
				return err
			}
			d, ok := env.Domains.Get(args[0])
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, MsgUnknownFence, args[0]).WithDetail("snippet", args[0])
			}

			source, err := env.FS.ReadFile(d.Source)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", d.Source)
			}
			block, err := patch.SourceBlock(d.Fence, string(source))
			if err != nil {
				return err
			}

			title := fmt.Sprintf("%s → %s", d.Name, paths.Contract(d.Target))
			_, _ = fmt.Fprint(env.Out.Writer(), env.Out.Snippet(title, "sh", block.Text))
			return nil
		},
	}
}

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.getEnv(cmd)
			if err != nil {
				return err
			}
			dump, err := env.Config.Dump()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(env.Out.Writer(), dump)
			return nil
		},
	}
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: groupMisc,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               groupMisc,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			default:
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			}
		},
	}
}

// printError reports err on stderr. Ambiguous blocks are listed so the user
// can see which copies to merge.
func (a *app) printError(err error) {
	logger := logging.GetLogger("cli")
	logger.Debug().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Command failed")

	out := output.New(a.stderr, output.FormatAuto)
	out.Error("%v", err)

	details := errors.GetErrorDetails(err)
	if blocks, ok := details["blocks"].([]string); ok {
		for i, b := range blocks {
			out.Println("--- block %d ---", i+1)
			out.Println("%s", strings.TrimRight(b, "\n"))
		}
	}
}
