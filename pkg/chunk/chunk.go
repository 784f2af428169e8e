// Package chunk provides the flat, positioned unit model for lexical linting.
//
// A Positioned chunk is the smallest unit of input text a rule can inspect
// without tree structure: a run of characters with a source position and a
// lexical tag. A String is an ordered, immutable sequence of chunks covering
// one input; its order defines evaluation order and result ordering.
package chunk

import "github.com/leapstack-labs/sqlint/pkg/core"

// Well-known lexical tags produced by the splitter.
const (
	TagWhitespace         = "whitespace"
	TagTrailingWhitespace = "trailing_whitespace"
	TagNewline            = "newline"
	TagComment            = "comment"
	TagString             = "string"
	TagQuotedIdentifier   = "quoted_identifier"
	TagNumber             = "number"
	TagWord               = "word"
	TagKeyword            = "keyword"
	TagOperator           = "operator"
	TagPunctuation        = "punctuation"
)

// Positioned is a flat unit of input text with its source position and
// lexical tag. Values are immutable once constructed; identity is by value.
type Positioned struct {
	Content string
	Line    int
	Col     int
	Tag     string
}

// New constructs a positioned chunk.
func New(content string, line, col int, tag string) Positioned {
	return Positioned{Content: content, Line: line, Col: col, Tag: tag}
}

// Position returns the chunk's source position.
func (c Positioned) Position() core.Position {
	return core.Position{Line: c.Line, Col: c.Col}
}

// Text returns the chunk's text content.
func (c Positioned) Text() string {
	return c.Content
}

// String is an ordered sequence of positioned chunks representing one input
// split into units for evaluation. It is immutable after construction: the
// constructor copies its argument and accessors never expose the backing
// slice for mutation.
type String struct {
	chunks []Positioned
}

// NewString constructs a chunk string from chunks in evaluation order.
func NewString(chunks ...Positioned) String {
	owned := make([]Positioned, len(chunks))
	copy(owned, chunks)
	return String{chunks: owned}
}

// Len returns the number of chunks.
func (s String) Len() int {
	return len(s.chunks)
}

// At returns the chunk at index i.
func (s String) At(i int) Positioned {
	return s.chunks[i]
}

// Chunks returns a copy of the underlying sequence.
func (s String) Chunks() []Positioned {
	out := make([]Positioned, len(s.chunks))
	copy(out, s.chunks)
	return out
}

// Text reassembles the original input from the chunk contents.
func (s String) Text() string {
	n := 0
	for _, c := range s.chunks {
		n += len(c.Content)
	}
	buf := make([]byte, 0, n)
	for _, c := range s.chunks {
		buf = append(buf, c.Content...)
	}
	return string(buf)
}
