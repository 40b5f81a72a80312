package installers

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/logging"
)

// GroupID is the cobra command group installers are listed under.
const GroupID = "installers"

// Installer is one subcommand. Setup declares flags and arguments on cmd
// and sets its RunE, calling env to get the Env once flags are parsed.
type Installer struct {
	Name    string
	Aliases []string
	Short   string
	Setup   func(cmd *cobra.Command, env EnvFunc)
}

// Command builds the cobra command for the installer.
func (i Installer) Command(env EnvFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:     i.Name,
		Aliases: i.Aliases,
		Short:   i.Short,
		GroupID: GroupID,
	}
	if i.Setup != nil {
		i.Setup(cmd, env)
	}
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			defer logging.Timed(logging.GetLogger("installers"), i.Name)()
			return run(c, args)
		}
	}
	return cmd
}

// Registry returns every installer, sorted by name.
func Registry() []Installer {
	all := []Installer{
		zshInstaller(),
		sshInstaller(),
		zoxideInstaller(),
		tmuxInstaller(),
		binInstaller(),
		nvimInstaller(),
		lazygitInstaller(),
		karabinerInstaller(),
		bobInstaller(),
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Lookup finds an installer by name or alias.
func Lookup(name string) (Installer, error) {
	for _, inst := range Registry() {
		if inst.Name == name {
			return inst, nil
		}
		for _, alias := range inst.Aliases {
			if alias == name {
				return inst, nil
			}
		}
	}
	return Installer{}, errors.Newf(errors.ErrInstallerNotFound, "no installer named %q", name).
		WithDetail("installer", name)
}
