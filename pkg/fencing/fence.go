package fencing

import (
	"fmt"
	"regexp"

	"github.com/arthur-debert/dotinstall/pkg/errors"
	"github.com/arthur-debert/dotinstall/pkg/logging"
)

// Fence is an immutable pair of delimiter patterns. Patterns are compiled
// when the fence is built, so a malformed pattern fails at construction.
type Fence struct {
	start   string
	end     string
	startRe *regexp.Regexp
	endRe   *regexp.Regexp
	cache   *matchCache
}

// NewFence compiles start and end into a Fence.
func NewFence(start, end string) (*Fence, error) {
	startRe, err := compile("start", start)
	if err != nil {
		return nil, err
	}

	endRe := startRe
	if end != start {
		endRe, err = compile("end", end)
		if err != nil {
			return nil, err
		}
	}

	return &Fence{
		start:   start,
		end:     end,
		startRe: startRe,
		endRe:   endRe,
		cache:   newMatchCache(defaultCacheEntries),
	}, nil
}

// Symmetric builds a fence whose start and end pattern are the same marker.
func Symmetric(marker string) (*Fence, error) {
	return NewFence(marker, marker)
}

// MustFence is like NewFence but panics on error. Intended for package-level
// constants in tests and installers with literal markers.
func MustFence(start, end string) *Fence {
	f, err := NewFence(start, end)
	if err != nil {
		panic(err)
	}
	return f
}

func compile(role, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, errors.Newf(errors.ErrInvalidFence, "%s pattern is empty", role)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidFence, "invalid %s pattern %q", role, pattern)
	}
	// A delimiter that can match nothing cannot bound a block.
	if re.MatchString("") {
		return nil, errors.Newf(errors.ErrInvalidFence, "%s pattern %q matches the empty string", role, pattern)
	}
	return re, nil
}

// Start returns the start pattern source.
func (f *Fence) Start() string { return f.start }

// End returns the end pattern source.
func (f *Fence) End() string { return f.end }

// IsSymmetric reports whether start and end are the same pattern.
func (f *Fence) IsSymmetric() bool { return f.start == f.end }

// String renders the fence for messages.
func (f *Fence) String() string {
	if f.IsSymmetric() {
		return fmt.Sprintf("fence(%q)", f.start)
	}
	return fmt.Sprintf("fence(%q, %q)", f.start, f.end)
}

// matches returns every non-overlapping match of re in text, in order. A
// pattern that matches the empty string cannot delimit a block, so any
// zero-width match fails with INVALID_FENCE.
func (f *Fence) matches(re *regexp.Regexp, text string) ([]Match, error) {
	if cached, ok := f.cache.get(re.String(), text); ok {
		return cached, nil
	}

	locs := re.FindAllStringIndex(text, -1)
	out := make([]Match, len(locs))
	for i, loc := range locs {
		if loc[0] == loc[1] {
			return nil, errors.Newf(errors.ErrInvalidFence,
				"%s pattern %q matches the empty string at offset %d", f, re.String(), loc[0]).
				WithDetail("pattern", re.String()).
				WithDetail("offset", loc[0])
		}
		out[i] = Match{Start: loc[0], End: loc[1]}
	}

	f.cache.add(re.String(), text, out)
	return out, nil
}

// starts and ends split the matches according to the pairing rule.
func (f *Fence) starts(text string) ([]Match, error) {
	all, err := f.matches(f.startRe, text)
	if err != nil || !f.IsSymmetric() {
		return all, err
	}
	return everyOther(all, 0), nil
}

func (f *Fence) ends(text string) ([]Match, error) {
	all, err := f.matches(f.endRe, text)
	if err != nil || !f.IsSymmetric() {
		return all, err
	}
	return everyOther(all, 1), nil
}

func everyOther(ms []Match, offset int) []Match {
	out := make([]Match, 0, (len(ms)+1)/2)
	for i := offset; i < len(ms); i += 2 {
		out = append(out, ms[i])
	}
	return out
}

// FindBlocks returns every fenced block in text, in source order. It fails
// with UNBALANCED_FENCE when starts and ends cannot be paired one to one in
// order (a count mismatch, an end before its start, or a block opening before
// the previous one closed) rather than guessing a pairing.
func (f *Fence) FindBlocks(text string) ([]Block, error) {
	starts, err := f.starts(text)
	if err != nil {
		return nil, err
	}
	ends, err := f.ends(text)
	if err != nil {
		return nil, err
	}

	if len(starts) != len(ends) {
		logger := logging.GetLogger("fencing")
		logger.Debug().
			Str("fence", f.String()).
			Int("starts", len(starts)).
			Int("ends", len(ends)).
			Msg("Unbalanced fence markers")
		return nil, errors.Newf(errors.ErrUnbalancedFence,
			"%s has %d start and %d end markers", f, len(starts), len(ends)).
			WithDetail("starts", len(starts)).
			WithDetail("ends", len(ends))
	}

	blocks := make([]Block, 0, len(starts))
	prevEnd := 0
	for i := range starts {
		s, e := starts[i], ends[i]
		if s.Start < prevEnd || e.Start < s.End {
			return nil, errors.Newf(errors.ErrUnbalancedFence,
				"%s markers interleave near offset %d", f, s.Start).
				WithDetail("offset", s.Start)
		}
		b := newBlock(text, s, e)
		blocks = append(blocks, b)
		prevEnd = b.BlockSpan.End
	}

	return blocks, nil
}
