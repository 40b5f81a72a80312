package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotinstall/internal/version"
	"github.com/arthur-debert/dotinstall/pkg/config"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/installers"
	"github.com/arthur-debert/dotinstall/pkg/logging"
	"github.com/arthur-debert/dotinstall/pkg/operations"
	"github.com/arthur-debert/dotinstall/pkg/paths"
	"github.com/arthur-debert/dotinstall/pkg/runner"
	"github.com/arthur-debert/dotinstall/pkg/ui/confirmations"
	"github.com/arthur-debert/dotinstall/pkg/ui/output"
)

const groupMisc = "misc"

// app holds the global flags and the Env built from them.
type app struct {
	verbosity    int
	dryRun       bool
	yes          bool
	configFile   string
	dotfilesRoot string
	format       string

	stdin  *os.File
	stdout io.Writer
	stderr io.Writer

	// newEnv builds the Env; tests swap it for an in-memory one.
	newEnv func(a *app) (*installers.Env, error)
	env    *installers.Env
}

func newApp(stdin *os.File, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		newEnv: buildEnv,
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newApp(os.Stdin, os.Stdout, os.Stderr).rootCmd()
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string) int {
	return newApp(os.Stdin, os.Stdout, os.Stderr).execute(args)
}

func (a *app) execute(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err != nil {
		a.printError(err)
		return installers.ExitError
	}

	if cmd.GroupID != installers.GroupID || a.env == nil {
		return installers.ExitApplied
	}
	report := a.env.Report
	a.env.Out.Println(MsgSummary, cmd.Name(), report.Summary())
	return report.ExitCode()
}

func (a *app) rootCmd() *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "dotinstall",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.BoolVarP(&a.yes, "yes", "y", false, MsgFlagYes)
	flags.StringVar(&a.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&a.dotfilesRoot, "dotfiles-root", "", MsgFlagDotfilesRoot)
	flags.StringVar(&a.format, "format", "auto", MsgFlagFormat)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.AddGroup(
		&cobra.Group{ID: installers.GroupID, Title: MsgGroupInstallers},
		&cobra.Group{ID: groupMisc, Title: MsgGroupMisc},
	)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	for _, inst := range installers.Registry() {
		rootCmd.AddCommand(inst.Command(a.getEnv))
	}

	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newStatusCmd())
	rootCmd.AddCommand(a.newShowCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(a.newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// getEnv builds the Env on first use.
func (a *app) getEnv(cmd *cobra.Command) (*installers.Env, error) {
	if a.env != nil {
		return a.env, nil
	}
	env, err := a.newEnv(a)
	if err != nil {
		return nil, err
	}
	env.Ctx = cmd.Context()
	a.env = env
	return env, nil
}

func buildEnv(a *app) (*installers.Env, error) {
	format, err := output.ParseFormat(a.format)
	if err != nil {
		return nil, err
	}
	printer := output.New(a.stdout, format)

	p, cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	if p.UsedFallback() {
		_, _ = fmt.Fprintf(a.stderr, MsgFallbackWarning, p.DotfilesRoot())
	}

	reg, err := config.NewRegistry(cfg, p)
	if err != nil {
		return nil, err
	}

	if a.dryRun {
		printer.DryRunBanner()
	}

	return &installers.Env{
		Ctx:      context.Background(),
		FS:       filesystem.NewOS(),
		Config:   cfg,
		Domains:  reg,
		Paths:    p,
		Prompter: confirmations.NewPrompter(a.yes, a.stdin, a.stdout),
		Runner:   runner.NewExec(a.dryRun),
		Executor: operations.NewExecutor(a.dryRun),
		Out:      printer,
		DryRun:   a.dryRun,
		Yes:      a.yes,
		Report:   installers.NewReport(),
	}, nil
}

// loadConfig resolves the dotfiles root in order: --dotfiles-root,
// $DOTFILES_ROOT, dotfiles_root from the config, the git toplevel, the
// working directory.
func (a *app) loadConfig() (*paths.Paths, *config.Config, error) {
	p, err := paths.New(a.dotfilesRoot)
	if err != nil {
		return nil, nil, err
	}

	file, required := a.configFile, true
	if file == "" {
		file, required = p.ConfigFile(), false
	}
	cfg, err := config.Load(config.LoadOptions{File: file, Required: required})
	if err != nil {
		return nil, nil, err
	}

	if a.dotfilesRoot == "" && os.Getenv(paths.EnvDotfilesRoot) == "" && cfg.DotfilesRoot != "" {
		if p, err = paths.New(cfg.DotfilesRoot); err != nil {
			return nil, nil, err
		}
	}
	return p, cfg, nil
}
