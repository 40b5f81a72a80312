// Package change holds a planned whole-file edit as a value that can be
// described, diffed, confirmed and finally written.
//
// Nothing touches the filesystem until Apply, and Confirm only calls Apply
// after an explicit yes (or an auto-approve flag). The file is read once when
// planning and written once here; a concurrent edit in between is lost.
package change

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/logging"
)

// DefaultContext is the number of unchanged lines shown around each hunk.
const DefaultContext = 2

// Change is the full before and after text of one target file.
type Change struct {
	Path   string
	Before string
	After  string
	// Block is the human readable text of the block being installed, if any.
	Block string
}

// Writer is the slice of a filesystem Apply needs.
type Writer interface {
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// IsNoop reports whether applying would leave the file as it is.
func (c *Change) IsNoop() bool {
	return c.Before == c.After
}

// Describe summarises the change in one line.
func (c *Change) Describe() string {
	switch {
	case c.IsNoop():
		return fmt.Sprintf("No change to %s", c.Path)
	case c.Before == "":
		return fmt.Sprintf("Create %s", c.Path)
	default:
		return fmt.Sprintf("Update %s", c.Path)
	}
}

// Diff renders a unified diff from Before to After with context lines of
// surrounding text. A negative context uses DefaultContext. An unchanged
// file yields an empty string.
func (c *Change) Diff(context int) (string, error) {
	if c.IsNoop() {
		return "", nil
	}
	if context < 0 {
		context = DefaultContext
	}

	diff := difflib.UnifiedDiff{
		A:        splitLines(c.Before),
		B:        splitLines(c.After),
		FromFile: c.Path,
		ToFile:   c.Path,
		Context:  context,
	}
	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "cannot diff %s", c.Path)
	}
	return out, nil
}

// splitLines keeps line terminators. An unterminated last line gets one so
// hunks stay line aligned; no empty trailing line is produced.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	} else {
		lines[last] += "\n"
	}
	return lines
}

// Apply writes After as the whole content of Path, creating the parent
// directory when missing. It is a single attempt: failures come back as
// TARGET_UNWRITABLE wrapping the underlying error.
func (c *Change) Apply(fs Writer) error {
	logger := logging.GetLogger("change").With().Str("path", c.Path).Logger()

	if err := fs.MkdirAll(filepath.Dir(c.Path), 0755); err != nil {
		logger.Error().Err(err).Msg("Cannot create parent directory")
		return errors.Wrapf(err, errors.ErrTargetUnwritable, "cannot create directory for %s", c.Path).
			WithDetail("path", c.Path)
	}

	if err := fs.WriteFile(c.Path, []byte(c.After), 0644); err != nil {
		logger.Error().Err(err).Msg("Cannot write target")
		return errors.Wrapf(err, errors.ErrTargetUnwritable, "cannot write %s", c.Path).
			WithDetail("path", c.Path)
	}

	logger.Info().Int("bytes", len(c.After)).Msg("Wrote target")
	return nil
}
