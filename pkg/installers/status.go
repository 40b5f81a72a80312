package installers

import (
	"github.com/arthur-debert/dotinstall/pkg/config"
	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/filesystem"
	"github.com/arthur-debert/dotinstall/pkg/patch"
)

// State is how a snippet's target compares to its source.
type State string

const (
	StateInstalled State = "installed"
	StateOutdated  State = "outdated"
	StateMissing   State = "missing"
	StateAmbiguous State = "ambiguous"
	StateError     State = "error"
)

// FenceStatus is the state of one snippet.
type FenceStatus struct {
	Domain config.Domain
	State  State
	Err    error
}

// Status inspects every snippet without changing anything.
func Status(fsys filesystem.FS, domains []config.Domain) []FenceStatus {
	out := make([]FenceStatus, 0, len(domains))
	for _, d := range domains {
		state, err := fenceState(fsys, d)
		out = append(out, FenceStatus{Domain: d, State: state, Err: err})
	}
	return out
}

func fenceState(fsys filesystem.FS, d config.Domain) (State, error) {
	source, err := fsys.ReadFile(d.Source)
	if err != nil {
		return StateError, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", d.Source)
	}
	src, err := patch.SourceBlock(d.Fence, string(source))
	if err != nil {
		return StateError, err
	}

	target, err := filesystem.ReadFileOrEmpty(fsys, d.Target)
	if err != nil {
		return StateError, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", d.Target)
	}
	blocks, err := d.Fence.FindBlocks(target)
	if err != nil {
		return StateError, err
	}

	switch len(blocks) {
	case 0:
		return StateMissing, nil
	case 1:
		if blocks[0].Content == src.Content {
			return StateInstalled, nil
		}
		return StateOutdated, nil
	default:
		return StateAmbiguous, nil
	}
}
