package runner

import (
	"context"
	"strings"

	"github.com/arthur-debert/dotinstall/pkg/errors"
)

// Fake records commands instead of running them. Tests preload Paths and
// Outputs; Errors keys are full command lines.
type Fake struct {
	Paths   map[string]string
	Outputs map[string]string
	Errors  map[string]error
	Calls   []string
}

// NewFake creates an empty fake.
func NewFake() *Fake {
	return &Fake{
		Paths:   map[string]string{},
		Outputs: map[string]string{},
		Errors:  map[string]error{},
	}
}

// LookPath returns the preloaded path for name.
func (f *Fake) LookPath(name string) (string, error) {
	if p, ok := f.Paths[name]; ok {
		return p, nil
	}
	return "", errors.Newf(errors.ErrDependency, "%s not found on PATH", name)
}

// Run records the call.
func (f *Fake) Run(_ context.Context, name string, args ...string) error {
	line := commandLine(name, args)
	f.Calls = append(f.Calls, line)
	return f.Errors[line]
}

// Output records the call and returns the preloaded output.
func (f *Fake) Output(_ context.Context, name string, args ...string) (string, error) {
	line := commandLine(name, args)
	f.Calls = append(f.Calls, line)
	if err := f.Errors[line]; err != nil {
		return "", err
	}
	return f.Outputs[line], nil
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
