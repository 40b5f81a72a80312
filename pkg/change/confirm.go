package change

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotinstall/pkg/logging"
)

// Outcome is what Confirm ended up doing with a change.
type Outcome int

const (
	// Unchanged means there was nothing to write.
	Unchanged Outcome = iota
	// Previewed means the diff was shown in dry-run mode.
	Previewed
	// Declined means the user answered no.
	Declined
	// Applied means the file was written.
	Applied
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Previewed:
		return "previewed"
	case Declined:
		return "declined"
	case Applied:
		return "applied"
	default:
		return "unknown"
	}
}

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// Options controls Confirm.
type Options struct {
	// Yes approves without asking.
	Yes bool
	// DryRun shows the change and never writes.
	DryRun bool
	// Prompt overrides the default "Apply?" question.
	Prompt string
	// Context is the diff context line count, negative for the default.
	Context int
	// Out receives the description and diff. Nil discards them.
	Out io.Writer
	// Colorize styles the diff before printing.
	Colorize func(diff string) string

	OnApplied func(c *Change)
	OnSkipped func(c *Change, why Outcome)
}

// Confirm previews c, asks for a decision and applies it on yes. Declining
// is a normal outcome, not an error.
func Confirm(c *Change, fs Writer, prompter Prompter, opts Options) (Outcome, error) {
	logger := logging.GetLogger("change").With().Str("path", c.Path).Logger()
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	skip := func(why Outcome) (Outcome, error) {
		logger.Info().Str("outcome", why.String()).Msg("Change skipped")
		if opts.OnSkipped != nil {
			opts.OnSkipped(c, why)
		}
		return why, nil
	}

	if c.IsNoop() {
		_, _ = fmt.Fprintln(out, c.Describe())
		return skip(Unchanged)
	}

	diff, err := c.Diff(opts.Context)
	if err != nil {
		return Unchanged, err
	}
	if opts.Colorize != nil {
		diff = opts.Colorize(diff)
	}
	_, _ = fmt.Fprintln(out, c.Describe())
	_, _ = fmt.Fprint(out, diff)

	if opts.DryRun {
		return skip(Previewed)
	}

	if !opts.Yes {
		question := opts.Prompt
		if question == "" {
			question = fmt.Sprintf("Apply changes to %s?", c.Path)
		}
		ok, err := prompter.Confirm(question)
		if err != nil {
			return Unchanged, err
		}
		if !ok {
			return skip(Declined)
		}
	}

	if err := c.Apply(fs); err != nil {
		return Unchanged, err
	}
	if opts.OnApplied != nil {
		opts.OnApplied(c)
	}
	return Applied, nil
}
