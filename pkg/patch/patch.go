// Package patch decides how a fenced snippet is installed into a target text.
//
// Planning is pure: Compute reads nothing from disk and writes nothing. The
// resulting Plan is turned into a change.Change for preview and apply.
package patch

import (
	"github.com/arthur-debert/dotinstall/pkg/change"
	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/fencing"
	"github.com/arthur-debert/dotinstall/pkg/logging"
)

// Kind is the edit a plan decided on.
type Kind int

const (
	// NoOp leaves the target untouched because the block is already there.
	NoOp Kind = iota
	// Append adds the source block after the existing target text.
	Append
	// Replace swaps the content of the existing block, keeping its delimiters.
	Replace
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case NoOp:
		return "noop"
	case Append:
		return "append"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Plan is the decided edit for one target text.
type Plan struct {
	Kind   Kind
	Fence  *fencing.Fence
	Before string
	After  string
	// Source is the single block found in the source text.
	Source fencing.Block
	// Existing is the block being superseded, nil for Append.
	Existing *fencing.Block
}

// Changed reports whether applying the plan would alter the target.
func (p *Plan) Changed() bool {
	return p.Before != p.After
}

// Change wraps the plan for preview and apply against path.
func (p *Plan) Change(path string) *change.Change {
	return &change.Change{
		Path:   path,
		Before: p.Before,
		After:  p.After,
		Block:  p.Source.Text,
	}
}

// SourceBlock returns the one block in source. Zero blocks is
// MISSING_SOURCE_BLOCK and more than one is AMBIGUOUS_BLOCKS.
func SourceBlock(fence *fencing.Fence, source string) (fencing.Block, error) {
	blocks, err := fence.FindBlocks(source)
	if err != nil {
		return fencing.Block{}, err
	}

	switch len(blocks) {
	case 0:
		return fencing.Block{}, errors.Newf(errors.ErrMissingSourceBlock,
			"source has no block delimited by %s", fence)
	case 1:
		return blocks[0], nil
	default:
		return fencing.Block{}, ambiguous("source", blocks)
	}
}

// Compute plans installing the block found in source into target.
func Compute(fence *fencing.Fence, source, target string, replace bool) (*Plan, error) {
	if fence == nil {
		return nil, errors.New(errors.ErrInvalidInput, "fence is required")
	}

	src, err := SourceBlock(fence, source)
	if err != nil {
		return nil, err
	}

	existing, err := fence.FindBlocks(target)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Fence:  fence,
		Before: target,
		Source: src,
	}

	switch len(existing) {
	case 0:
		plan.Kind = Append
		if target == "" {
			plan.After = src.Text
		} else {
			plan.After = target + "\n" + src.Text
		}
	case 1:
		block := existing[0]
		plan.Existing = &block
		if replace {
			plan.Kind = Replace
			plan.After = target[:block.ContentSpan.Start] + src.Content + target[block.ContentSpan.End:]
		} else {
			plan.Kind = NoOp
			plan.After = target
		}
	default:
		return nil, ambiguous("target", existing)
	}

	logger := logging.GetLogger("patch")
	logger.Debug().
		Str("fence", fence.String()).
		Str("kind", plan.Kind.String()).
		Bool("replace", replace).
		Bool("changed", plan.Changed()).
		Msg("Planned fence edit")

	return plan, nil
}

func ambiguous(role string, blocks []fencing.Block) *errors.Error {
	texts := make([]string, len(blocks))
	for i, b := range blocks {
		texts[i] = b.Text
	}
	return errors.Newf(errors.ErrAmbiguousBlocks,
		"%s has %d matching blocks; resolve them by hand", role, len(blocks)).
		WithDetail("role", role).
		WithDetail("blocks", texts)
}
