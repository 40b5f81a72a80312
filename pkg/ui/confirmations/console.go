// Package confirmations asks the user yes/no questions before anything is
// written.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/dotinstall/pkg/errors"
)

// Prompter asks a yes/no question.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// AutoApprove answers yes to everything. It backs --yes.
type AutoApprove struct{}

// Confirm always approves.
func (AutoApprove) Confirm(string) (bool, error) { return true, nil }

// ConsoleDialog reads a y/N answer line by line. Anything other than y or
// yes, end of input included, is a no.
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a dialog reading from in and writing to out.
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Confirm prints question and reads one answer.
func (d *ConsoleDialog) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(d.out, "%s [y/N]: ", question); err != nil {
		return false, errors.Wrap(err, errors.ErrInternal, "failed to write prompt")
	}

	line, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, errors.ErrInternal, "failed to read user input")
	}

	return isYes(line), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// InteractiveDialog uses pterm's interactive confirm, for terminals.
type InteractiveDialog struct{}

// Confirm shows an interactive prompt defaulting to no.
func (InteractiveDialog) Confirm(question string) (bool, error) {
	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultText(question).
		WithDefaultValue(false).
		Show()
	if err != nil {
		return false, errors.Wrap(err, errors.ErrInternal, "interactive confirmation failed")
	}
	return ok, nil
}

// NewPrompter picks a prompter: AutoApprove when yes is set, the interactive
// dialog when in is a terminal, the line reader otherwise.
func NewPrompter(yes bool, in *os.File, out io.Writer) Prompter {
	switch {
	case yes:
		return AutoApprove{}
	case in == nil:
		return NewConsoleDialog(strings.NewReader(""), out)
	case isTerminal(in.Fd()):
		return InteractiveDialog{}
	default:
		return NewConsoleDialog(in, out)
	}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
