package installers

import (
	"fmt"

	"github.com/arthur-debert/dotinstall/pkg/change"
)

// Exit codes returned by the CLI.
const (
	ExitApplied   = 0
	ExitError     = 1
	ExitNoChanges = 2
)

// Step is one recorded outcome.
type Step struct {
	Installer string
	Subject   string
	Outcome   change.Outcome
}

// Report collects the outcome of every step of a run.
type Report struct {
	Steps []Step
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Record adds a step.
func (r *Report) Record(installer, subject string, outcome change.Outcome) {
	r.Steps = append(r.Steps, Step{Installer: installer, Subject: subject, Outcome: outcome})
}

// Count returns how many steps ended with outcome.
func (r *Report) Count(outcome change.Outcome) int {
	n := 0
	for _, s := range r.Steps {
		if s.Outcome == outcome {
			n++
		}
	}
	return n
}

// Applied reports whether anything was written.
func (r *Report) Applied() bool {
	return r.Count(change.Applied) > 0
}

// ExitCode is ExitApplied when anything was written and ExitNoChanges
// otherwise. Errors are mapped by the caller.
func (r *Report) ExitCode() int {
	if r.Applied() {
		return ExitApplied
	}
	return ExitNoChanges
}

// Summary renders the counts for the closing line.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d applied, %d unchanged, %d previewed, %d declined",
		r.Count(change.Applied),
		r.Count(change.Unchanged),
		r.Count(change.Previewed),
		r.Count(change.Declined))
}
