package fencing

// Match is a located occurrence of a delimiter pattern: a half-open byte
// range into the text it was found in.
type Match struct {
	Start int
	End   int
}

// Span is a half-open byte range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether o lies within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Block is one delimited region. Offsets are only meaningful relative to the
// exact text the block was found in.
type Block struct {
	// ContentSpan covers the lines between the delimiters.
	ContentSpan Span
	// BlockSpan covers both delimiters and the content.
	BlockSpan Span
	// Content is the text at ContentSpan.
	Content string
	// Text is the text at BlockSpan.
	Text string
}

func newBlock(text string, start, end Match) Block {
	contentStart := skipNewline(text, start.End)
	if contentStart > end.Start {
		contentStart = end.Start
	}
	blockEnd := skipNewline(text, end.End)

	content := Span{Start: contentStart, End: end.Start}
	block := Span{Start: start.Start, End: blockEnd}

	return Block{
		ContentSpan: content,
		BlockSpan:   block,
		Content:     text[content.Start:content.End],
		Text:        text[block.Start:block.End],
	}
}

// skipNewline returns the offset just past a line terminator at pos, or pos
// when there is none. The terminator belongs to the delimiter line.
func skipNewline(text string, pos int) int {
	switch {
	case pos < len(text) && text[pos] == '\n':
		return pos + 1
	case pos+1 < len(text) && text[pos] == '\r' && text[pos+1] == '\n':
		return pos + 2
	default:
		return pos
	}
}
