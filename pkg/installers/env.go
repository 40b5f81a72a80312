package installers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotinstall/pkg/change"
	"github.com/arthur-debert/dotinstall/pkg/config"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/operations"
	"github.com/arthur-debert/dotinstall/pkg/paths"
	"github.com/arthur-debert/dotinstall/pkg/runner"
	"github.com/arthur-debert/dotinstall/pkg/ui/output"
)

// Env is everything an installer needs for one invocation.
type Env struct {
	Ctx      context.Context
	FS       filesystem.FS
	Config   *config.Config
	Domains  *config.Registry
	Paths    *paths.Paths
	Prompter change.Prompter
	Runner   runner.Runner
	Executor operations.Applier
	Out      *output.Printer

	DryRun bool
	Yes    bool

	Report *Report
}

// EnvFunc builds the Env once flags are parsed.
type EnvFunc func(cmd *cobra.Command) (*Env, error)

func (env *Env) context() context.Context {
	if env.Ctx == nil {
		return context.Background()
	}
	return env.Ctx
}

// ask returns true without prompting when --yes is set.
func (env *Env) ask(question string) (bool, error) {
	if env.Yes {
		return true, nil
	}
	return env.Prompter.Confirm(question)
}

// source resolves a path relative to the dotfiles root.
func (env *Env) source(rel string) string {
	return env.Paths.InDotfiles(rel)
}

// target resolves a configured destination, ~ included.
func (env *Env) target(path string) string {
	return env.Paths.Resolve(path)
}
